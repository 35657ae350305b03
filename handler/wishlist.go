package handler

import (
	"errors"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/model"
	"farm2art/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetMyWishlist(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	var items []model.WishlistItem
	if err := database.DB.
		Preload("Product").
		Preload("Product.Images").
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, items)
}

func AddToWishlist(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	productId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var product model.Product
	if err := database.DB.First(&product, "id = ? AND status <> ?", productId, constants.PRODUCT_HIDDEN).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var existing int64
	database.DB.Model(&model.WishlistItem{}).
		Where("customer_id = ? AND product_id = ?", customer.ID, product.ID).
		Count(&existing)
	if existing > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Sản phẩm đã có trong danh sách yêu thích", errors.New("duplicate wishlist item"))
	}

	item := model.WishlistItem{CustomerID: customer.ID, ProductID: product.ID}
	if err := database.DB.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func RemoveFromWishlist(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	productId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	result := database.DB.
		Where("customer_id = ? AND product_id = ?", customer.ID, productId).
		Delete(&model.WishlistItem{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("wishlist item not found"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"removed": true})
}
