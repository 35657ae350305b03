package vnpay

import (
	"errors"
	"math"
	"strconv"
	"time"
)

const (
	Version  = "2.1.0"
	Command  = "pay"
	CurrCode = "VND"

	SecureHashField     = "vnp_SecureHash"
	SecureHashTypeField = "vnp_SecureHashType"
	ResponseCodeField   = "vnp_ResponseCode"

	// ResponseCodeSuccess "00" = giao dịch thành công theo tài liệu VNPay
	ResponseCodeSuccess = "00"

	dateFormat = "20060102150405"
)

var ErrInvalidAmount = errors.New("vnpay: amount must be a positive finite number")

type PaymentRequest struct {
	TxnRef    string
	Amount    float64 // VND (đơn vị lớn), sẽ nhân 100 khi ký
	OrderInfo string
	IPAddr    string
	Locale    string // mặc định "vn"
	OrderType string // mặc định "other"
	BankCode  string
}

// BuildPaymentURL dựng URL redirect sang trang thanh toán, đã ký.
// Chữ ký được nối vào sau cùng và không bao giờ nằm trong dữ liệu ký.
func BuildPaymentURL(cfg Config, req PaymentRequest) (string, error) {
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) || req.Amount <= 0 {
		return "", ErrInvalidAmount
	}
	// VNPay nhận số tiền theo đơn vị nhỏ: VND * 100, làm tròn gần nhất
	amountMinor := int64(math.Round(req.Amount * 100))

	locale := req.Locale
	if locale == "" {
		locale = "vn"
	}
	orderType := req.OrderType
	if orderType == "" {
		orderType = "other"
	}

	params := map[string]string{
		"vnp_Version":    Version,
		"vnp_Command":    Command,
		"vnp_TmnCode":    cfg.TmnCode,
		"vnp_Amount":     strconv.FormatInt(amountMinor, 10),
		"vnp_CurrCode":   CurrCode,
		"vnp_TxnRef":     req.TxnRef,
		"vnp_OrderInfo":  req.OrderInfo,
		"vnp_OrderType":  orderType,
		"vnp_Locale":     locale,
		"vnp_IpAddr":     req.IPAddr,
		"vnp_ReturnUrl":  cfg.ReturnURL,
		"vnp_CreateDate": time.Now().Format(dateFormat), // giờ máy chủ, không phải UTC
	}
	if req.BankCode != "" {
		params["vnp_BankCode"] = req.BankCode
	}

	query := EncodeQuery(params)
	hash := Sign(cfg.HashSecret, query)

	return cfg.BaseURL + "?" + query + "&" + SecureHashField + "=" + hash, nil
}
