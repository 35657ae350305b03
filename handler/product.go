package handler

import (
	"errors"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/helper"
	"farm2art/model"
	"farm2art/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetCategories(c *fiber.Ctx) error {
	var categories model.Categories
	if err := database.DB.Order("kind, name").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

// GetProducts danh sách công khai, chỉ hiện tin còn hoạt động
func GetProducts(c *fiber.Ctx) error {
	var filter model.FilterProduct
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.Product{}).
		Where("products.status = ?", constants.PRODUCT_ACTIVE)

	if filter.SearchKey != "" {
		query = query.Where("products.name ILIKE ? OR products.description ILIKE ?",
			"%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%")
	}
	if filter.CategoryID != nil {
		query = query.Where("products.category_id = ?", *filter.CategoryID)
	}
	if filter.SellerID != nil {
		query = query.Where("products.seller_id = ?", *filter.SellerID)
	}
	if filter.Kind != nil {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.kind = ?", *filter.Kind)
	}
	if filter.PriceMin != nil {
		query = query.Where("products.price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("products.price <= ?", *filter.PriceMax)
	}

	var totalCount int64
	query.Count(&totalCount)
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var products model.Products
	if err := query.
		Preload("Images").
		Preload("Category").
		Preload("Seller").
		Order("products.created_at desc").
		Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       products,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetProductBySlug(c *fiber.Ctx) error {
	slugParam := c.Params("slug")

	var product model.Product
	if err := database.DB.
		Preload("Images").
		Preload("Category").
		Preload("Seller").
		Where("slug = ?", slugParam).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Điểm đánh giá trung bình
	type ratingRow struct {
		Avg   float64
		Count int64
	}
	var rating ratingRow
	database.DB.Model(&model.Review{}).
		Select("COALESCE(AVG(rating),0) as avg, COUNT(*) as count").
		Where("product_id = ?", product.ID).
		Scan(&rating)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"product":     product,
		"avgRating":   rating.Avg,
		"reviewCount": rating.Count,
	})
}

func GetMyProducts(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	var products model.Products
	if err := database.DB.
		Preload("Images").
		Preload("Category").
		Where("seller_id = ?", customer.ID).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, products)
}

func CreateProduct(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	input, ok := c.Locals("CreateProduct").(model.CreateProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var category model.Category
	if err := database.DB.First(&category, input.CategoryID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Danh mục không tồn tại", err)
	}

	tx := database.DB.Begin()

	var product model.Product
	copier.Copy(&product, &input)
	product.SellerID = customer.ID
	product.Slug = helper.GenerateUniqueProductSlug(tx, input.Name)
	product.Status = constants.PRODUCT_ACTIVE

	if err := tx.Create(&product).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	for _, url := range input.ImageUrls {
		img := model.ProductImage{ProductID: product.ID, Url: url}
		if err := tx.Create(&img).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	database.DB.Preload("Images").Preload("Category").First(&product, product.ID)
	return utils.SuccessResponse(c, fiber.StatusCreated, product)
}

func EditProduct(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	productIdStr, _ := c.Locals("productId").(string)
	productId, err := strconv.Atoi(productIdStr)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	input, ok := c.Locals("EditProduct").(model.EditProductInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var product model.Product
	if err := database.DB.Where("id = ? AND seller_id = ?", productId, customer.ID).First(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Sản phẩm không tồn tại hoặc không thuộc gian hàng của bạn", err)
	}

	copier.CopyWithOption(&product, &input, copier.Option{IgnoreEmpty: true})

	if input.Name != nil && *input.Name != "" {
		product.Slug = helper.GenerateUniqueProductSlug(database.DB, *input.Name)
	}

	if err := database.DB.Save(&product).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, product)
}

func DeleteProduct(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	productId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	result := database.DB.Model(&model.Product{}).
		Where("id = ? AND seller_id = ?", productId, customer.ID).
		Update("status", constants.PRODUCT_HIDDEN)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("no product"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đã ẩn sản phẩm"})
}
