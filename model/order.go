package model

import "time"

type Order struct {
	DTO
	PublicCode string    `gorm:"unique;size:20"` // Mã đơn hàng công khai (ví dụ: ORD-XXXXXX)
	CustomerID uint      `gorm:"not null;index" json:"customerId"`
	Customer   *Customer `json:"customer,omitempty"`

	TotalAmount   float64    `json:"totalAmount"`   // Tổng tiền sau giảm giá (VND)
	Status        string     `json:"status"`        // PENDING, PAID, CANCELLED, EXPIRED
	PaymentMethod string     `json:"paymentMethod"` // VNPAY, COD
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CancelledAt   *time.Time `json:"cancelledAt"`
	ExpiresAt     time.Time  `json:"expiresAt"`

	CouponID       *uint   `json:"couponId"`
	Coupon         *Coupon `gorm:"foreignKey:CouponID" json:"coupon,omitempty"`
	DiscountAmount float64 `json:"discountAmount"`

	ReceiverName  string `json:"receiverName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ShippingAddr  string `json:"shippingAddress"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

type Orders []Order

type OrderItem struct {
	DTO
	OrderID   uint    `gorm:"not null;index" json:"orderId"`
	ProductID uint    `gorm:"not null" json:"productId"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unitPrice"` // giá tại thời điểm đặt
}

type CreateOrderInput struct {
	Items []CreateOrderItemInput `validate:"required,min=1,dive" json:"items"`

	ReceiverName string `validate:"required" json:"receiverName"`
	Phone        string `validate:"required" json:"phone"`
	Email        string `validate:"omitempty,email" json:"email"`
	ShippingAddr string `validate:"required" json:"shippingAddress"`
	CouponCode   string `json:"couponCode"`
}

type CreateOrderItemInput struct {
	ProductID uint `validate:"required,gt=0" json:"productId"`
	Quantity  int  `validate:"required,gte=1" json:"quantity"`
}
