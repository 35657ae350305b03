package handler

import (
	"errors"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/model"
	"farm2art/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// CreateNotification ghi thông báo cho khách, lỗi chỉ log chứ không chặn luồng gọi
func CreateNotification(customerID uint, title string, body string) {
	notification := model.Notification{
		CustomerID: customerID,
		Title:      title,
		Body:       body,
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		log.Println("Tạo thông báo thất bại:", err)
	}
}

func GetMyNotifications(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	var notifications model.Notifications
	if err := database.DB.
		Where("customer_id = ?", customer.ID).
		Order("created_at desc").
		Limit(50).
		Find(&notifications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, notifications)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	notificationId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	result := database.DB.Model(&model.Notification{}).
		Where("id = ? AND customer_id = ?", notificationId, customer.ID).
		Update("read", true)
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}
	if result.RowsAffected == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, errors.New("notification not found"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"read": true})
}
