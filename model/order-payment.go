package model

import "time"

type Payment struct {
	DTO
	OrderID     uint    `gorm:"not null" json:"orderId"`
	Amount      float64 `gorm:"not null" json:"amount"`
	PaymentCode string  `gorm:"unique" json:"paymentCode"` // vnp_TxnRef
	Status      string  `gorm:"default:PENDING" json:"status"`
	Method      string  `json:"method"` // VNPAY

	// Thông tin cổng thanh toán trả về qua IPN
	GatewayTxnNo string     `json:"gatewayTxnNo"`
	BankCode     string     `json:"bankCode"`
	ResponseCode string     `json:"responseCode"`
	PaidAt       *time.Time `json:"paidAt"`

	Order Order `gorm:"foreignKey:OrderID" json:"-"`
}

type CreatePaymentInput struct {
	OrderId  uint   `json:"orderId" validate:"required,gt=0"`
	Method   string `json:"method" validate:"required,oneof=VNPAY"`
	BankCode string `json:"bankCode"`
	Locale   string `json:"locale" validate:"omitempty,oneof=vn en"`
}

type IPNResponse struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}
