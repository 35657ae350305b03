package handler

import (
	"errors"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/helper"
	"farm2art/model"
	"farm2art/utils"

	"github.com/gofiber/fiber/v2"
)

// ChatbotAsk trả lời tự động theo bảng từ khóa, không cần đăng nhập
func ChatbotAsk(c *fiber.Ctx) error {
	input, ok := c.Locals("ChatbotAsk").(model.ChatbotAskInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	bot := helper.NewChatbot(helper.DBKeywordStore{DB: database.DB})
	answer, err := bot.Reply(input.Message)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"answer": answer})
}
