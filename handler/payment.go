package handler

import (
	"errors"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/model"
	"farm2art/utils"
	"farm2art/vnpay"
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreatePayment tạo bản ghi thanh toán cho một đơn PENDING và trả về
// URL chuyển hướng sang VNPay. Tra đơn một lần, dựng URL một lần.
func CreatePayment(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	input, ok := c.Locals("CreatePayment").(model.CreatePaymentInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	cfg := vnpay.LoadConfig()
	if err := cfg.Validate(); err != nil {
		// Lỗi cấu hình triển khai, không phải lỗi dữ liệu người dùng
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var order model.Order
	if err := database.DB.Where("id = ? AND customer_id = ? AND status = ?",
		input.OrderId, customer.ID, constants.ORDER_PENDING).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Đơn hàng không hợp lệ", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	paymentCode := "PAY-" + uuid.New().String()[:8]

	paymentUrl, err := vnpay.BuildPaymentURL(cfg, vnpay.PaymentRequest{
		TxnRef:    paymentCode,
		Amount:    order.TotalAmount,
		OrderInfo: fmt.Sprintf("Thanh toan don hang %s", order.PublicCode),
		IPAddr:    c.IP(),
		Locale:    input.Locale,
		BankCode:  input.BankCode,
	})
	if err != nil {
		if errors.Is(err, vnpay.ErrInvalidAmount) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Số tiền đơn hàng không hợp lệ", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tạo payment URL", err)
	}

	payment := model.Payment{
		OrderID:     order.ID,
		Amount:      order.TotalAmount,
		PaymentCode: paymentCode,
		Status:      constants.PAYMENT_PENDING,
		Method:      input.Method,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"message":     "Tạo thanh toán thành công",
		"paymentUrl":  paymentUrl,
		"paymentCode": paymentCode,
		"nextStep":    "Hoàn tất thanh toán",
	})
}

// VNPayReturn người dùng quay về từ trang thanh toán. Chỉ xác minh chữ
// ký rồi chuyển hướng; cập nhật đơn là việc của IPN. Trang thất bại
// không nói rõ nguyên nhân.
func VNPayReturn(c *fiber.Ctx) error {
	cfg := vnpay.LoadConfig()

	result := vnpay.VerifyCallback(c.Queries(), cfg.HashSecret)
	if !result.OK {
		return c.Redirect(fmt.Sprintf("%s/payment-failed", os.Getenv("APP_URL")))
	}

	txnRef := result.Params["vnp_TxnRef"]
	if result.ResponseCode == vnpay.ResponseCodeSuccess {
		return c.Redirect(fmt.Sprintf("%s/payment-result?code=%s&status=success", os.Getenv("APP_URL"), txnRef))
	}
	return c.Redirect(fmt.Sprintf("%s/payment-result?code=%s&status=failed", os.Getenv("APP_URL"), txnRef))
}

// VNPayIPN kênh server-to-server của cổng. Luôn trả HTTP 200 kèm
// {RspCode, Message}; cổng dựa vào RspCode để quyết định gửi lại.
func VNPayIPN(c *fiber.Ctx) error {
	cfg := vnpay.LoadConfig()

	result := vnpay.VerifyCallback(c.Queries(), cfg.HashSecret)

	response, paid := Reconcile(defaultReconcileStore(), result)

	if paid {
		notifyOrderPaid(result.Params["vnp_TxnRef"])
	}

	return c.JSON(response)
}

// notifyOrderPaid gửi thông báo + email xác nhận sau khi đơn đã PAID
func notifyOrderPaid(paymentCode string) {
	var payment model.Payment
	if err := database.DB.Where("payment_code = ?", paymentCode).First(&payment).Error; err != nil {
		return
	}

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Items.Product").
		First(&order, payment.OrderID).Error; err != nil {
		return
	}

	CreateNotification(order.CustomerID,
		"Thanh toán thành công",
		fmt.Sprintf("Đơn hàng %s đã được thanh toán qua %s.", order.PublicCode, payment.Method))

	items := make([]utils.OrderConfirmationItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, utils.OrderConfirmationItem{
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	utils.SendOrderConfirmationEmail(order.Email, utils.OrderConfirmationData{
		OrderCode:     order.PublicCode,
		Items:         items,
		TotalAmount:   order.TotalAmount,
		PaymentMethod: payment.Method,
		ReceiverName:  order.ReceiverName,
		ShippingAddr:  order.ShippingAddr,
		DetailLink:    fmt.Sprintf("%s/don-hang/%s", os.Getenv("APP_URL"), order.PublicCode),
	})
}
