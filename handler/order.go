package handler

import (
	"encoding/base64"
	"errors"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/helper"
	"farm2art/model"
	"farm2art/utils"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateOrder tạo đơn PENDING. Giá lấy từ DB tại thời điểm đặt,
// không bao giờ tin giá phía client gửi lên.
func CreateOrder(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	input, ok := c.Locals("CreateOrder").(model.CreateOrderInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	tx := database.DB.Begin()

	var total float64
	items := make([]model.OrderItem, 0, len(input.Items))

	for _, item := range input.Items {
		var product model.Product
		// Khóa dòng sản phẩm để hai đơn cùng lúc không bán quá số lượng
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&product, item.ProductID).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Sản phẩm không tồn tại", err)
		}
		if product.Status != constants.PRODUCT_ACTIVE {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Sản phẩm '%s' hiện không bán", product.Name), errors.New("product not active"))
		}
		if product.Quantity < item.Quantity {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusBadRequest, fmt.Sprintf("Sản phẩm '%s' chỉ còn %d", product.Name, product.Quantity), errors.New("insufficient stock"))
		}
		if product.SellerID == customer.ID {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không thể mua sản phẩm của chính mình", errors.New("self purchase"))
		}

		total += product.Price * float64(item.Quantity)
		items = append(items, model.OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
	}

	var couponId *uint
	var discount float64
	if input.CouponCode != "" {
		coupon, d, err := helper.ApplyCoupon(tx, input.CouponCode, total)
		if err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		couponId = &coupon.ID
		discount = d
	}

	order := model.Order{
		PublicCode:     "ORD-" + uuid.New().String()[:8],
		CustomerID:     customer.ID,
		TotalAmount:    total - discount,
		DiscountAmount: discount,
		Status:         constants.ORDER_PENDING,
		ReceiverName:   input.ReceiverName,
		Phone:          input.Phone,
		Email:          input.Email,
		ShippingAddr:   input.ShippingAddr,
		CouponID:       couponId,
		ExpiresAt:      time.Now().Add(15 * time.Minute),
		Items:          items,
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"orderId":     order.ID,
		"publicCode":  order.PublicCode,
		"totalAmount": order.TotalAmount,
		"discount":    order.DiscountAmount,
		"expiresAt":   order.ExpiresAt,
		"nextStep":    "Tạo thanh toán để hoàn tất đơn hàng",
	})
}

func GetMyOrders(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	var orders model.Orders
	if err := database.DB.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Images").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi tải đơn hàng", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

func GetOrderDetail(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Images").
		Preload("Coupon").
		Where("public_code = ? AND customer_id = ?", orderCode, customer.ID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// QR chứa mã đơn để đối soát khi giao nhận
	qrBytes, err := utils.GenerateQRCode(order.PublicCode, 256)
	qrBase64 := ""
	if err == nil {
		qrBase64 = base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"order": order,
		"qr":    qrBase64,
	})
}

func CancelOrderByUser(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	orderCode := c.Params("publicCode")

	now := time.Now()
	result := database.DB.Model(&model.Order{}).
		Where("public_code = ? AND customer_id = ? AND status = ?", orderCode, customer.ID, constants.ORDER_PENDING).
		Updates(map[string]interface{}{
			"status":       constants.ORDER_CANCELLED,
			"cancelled_at": &now,
		})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Đơn không tồn tại hoặc không còn hủy được", errors.New("not cancellable"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đã hủy đơn hàng"})
}

func GetOrders(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	status := c.Query("status")

	db := database.DB
	query := db.Model(&model.Order{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders model.Orders
	if err := query.
		Preload("Customer").
		Preload("Items").
		Order("created_at desc").
		Limit(200).
		Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}
