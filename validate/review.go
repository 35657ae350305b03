package validate

import (
	"farm2art/model"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateReviewInput

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

		c.Locals("CreateReview", input)
		return c.Next()
	}
}

func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SendMessageInput

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

		c.Locals("SendMessage", input)
		return c.Next()
	}
}

func ChatbotAsk() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ChatbotAskInput

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

		c.Locals("ChatbotAsk", input)
		return c.Next()
	}
}
