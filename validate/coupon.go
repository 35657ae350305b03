package validate

import (
	"farm2art/model"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateCoupon() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCouponInput

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

		if !input.EndDate.After(input.StartDate) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Ngày kết thúc phải sau ngày bắt đầu",
				"field": "endDate",
			})
		}

		c.Locals("CreateCoupon", input)
		return c.Next()
	}
}

func EditCoupon(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		couponId := c.Params(key)
		if couponId == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Thiếu couponId",
			})
		}

		var input model.EditCouponInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.DiscountPercent != nil && (*input.DiscountPercent <= 0 || *input.DiscountPercent > 100) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Phần trăm giảm phải trong khoảng (0, 100]",
				"field": "discountPercent",
			})
		}

		c.Locals("couponId", couponId)
		c.Locals("EditCoupon", input)
		return c.Next()
	}
}
