package validate

import (
	"farm2art/constants"
	"farm2art/model"
	"farm2art/utils"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

func CreateAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAccountInput

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

		if !utils.IsValidValueOfConstant(input.Role, []string{constants.ROLE_ADMIN, constants.ROLE_STAFF}) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Role không hợp lệ",
				"field": "role",
			})
		}

		c.Locals("CreateAccount", input)
		return c.Next()
	}
}

func AdminChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.AdminChangePassword

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if len(input.NewPassword) < 6 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Mật khẩu mới phải ít nhất 6 ký tự",
				"field": "newPassword",
			})
		}
		if input.NewPassword != input.RepeatPassword {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Mật khẩu nhập lại không khớp",
				"field": "repeatPassword",
			})
		}

		c.Locals("AdminChangePassword", input)
		return c.Next()
	}
}

func ActiveAccount() fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountId := c.Params("accountId")
		if accountId == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Thiếu accountId",
			})
		}
		c.Locals("accountId", accountId)
		return c.Next()
	}
}
