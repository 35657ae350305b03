package validate

import (
	"farm2art/model"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput

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

		if !isValidPhoneVN(input.Phone) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Số điện thoại không hợp lệ",
				"field": "phone",
			})
		}

		// Không cho trùng sản phẩm giữa các dòng
		seen := map[uint]bool{}
		for _, item := range input.Items {
			if seen[item.ProductID] {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Sản phẩm bị lặp trong đơn hàng",
					"field": "items",
				})
			}
			seen[item.ProductID] = true
		}

		c.Locals("CreateOrder", input)
		return c.Next()
	}
}

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePaymentInput

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

		c.Locals("CreatePayment", input)
		return c.Next()
	}
}
