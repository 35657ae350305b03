package validate

import (
	"farm2art/constants"
	"farm2art/model"
	"farm2art/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateProduct() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateProductInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("CreateProduct", input)
		return c.Next()
	}
}

func EditProduct(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		productId := c.Params(key)
		if productId == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Thiếu productId",
			})
		}

		var input model.EditProductInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Price != nil && *input.Price <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Giá phải lớn hơn 0",
				"field": "price",
			})
		}
		if input.Quantity != nil && *input.Quantity < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Số lượng không được âm",
				"field": "quantity",
			})
		}
		if input.Status != nil && !utils.IsValidValueOfConstant(*input.Status,
			[]string{constants.PRODUCT_ACTIVE, constants.PRODUCT_HIDDEN, constants.PRODUCT_SOLD_OUT}) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Trạng thái không hợp lệ",
				"field": "status",
			})
		}

		c.Locals("productId", productId)
		c.Locals("EditProduct", input)
		return c.Next()
	}
}
