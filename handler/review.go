package handler

import (
	"errors"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/model"
	"farm2art/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateReview chỉ khách đã mua (đơn PAID chứa sản phẩm) mới được đánh giá
func CreateReview(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	input, ok := c.Locals("CreateReview").(model.CreateReviewInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var purchased int64
	database.DB.Model(&model.OrderItem{}).
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("order_items.product_id = ? AND orders.customer_id = ? AND orders.status = ?",
			input.ProductID, customer.ID, constants.ORDER_PAID).
		Count(&purchased)
	if purchased == 0 {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Bạn cần mua sản phẩm trước khi đánh giá", errors.New("not purchased"))
	}

	var existing int64
	database.DB.Model(&model.Review{}).
		Where("product_id = ? AND customer_id = ?", input.ProductID, customer.ID).
		Count(&existing)
	if existing > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Bạn đã đánh giá sản phẩm này rồi", errors.New("duplicate review"))
	}

	review := model.Review{
		ProductID:  input.ProductID,
		CustomerID: customer.ID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, review)
}

func GetProductReviews(c *fiber.Ctx) error {
	productId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var reviews model.Reviews
	if err := database.DB.
		Preload("Customer").
		Where("product_id = ?", productId).
		Order("created_at desc").
		Find(&reviews).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, reviews)
}
