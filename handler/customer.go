package handler

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/helper"
	"farm2art/model"
	"farm2art/utils"
	"fmt"
	"net/smtp"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/jordan-wright/email"
)

func RegisterCustomer(c *fiber.Ctx) error {
	customerInput, ok := c.Locals("RegisterCustomer").(model.RegisterCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	existing, err := helper.GetCustomerByEmail(customerInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.EMAIL_EXISTS, errors.New("duplicate email"))
	}

	hash, err := helper.HashPassword(customerInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	var newCustomer model.Customer
	copier.Copy(&newCustomer, &customerInput)
	newCustomer.Password = hash
	newCustomer.IsActive = true

	if err := database.DB.Create(&newCustomer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":       newCustomer.ID,
		"email":    newCustomer.Email,
		"username": newCustomer.UserName,
	})
}

func CustomerLogin(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)
	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}
	if loginInput.Email == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("email and password are required"))
	}

	customer, err := helper.GetCustomerByEmail(loginInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Email chưa được đăng ký", errors.New("email not exists"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_PASSWORD, errors.New("password does not match email"))
	}
	if !customer.IsActive {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokenClaim := model.TokenClaim{
		CustomerId: customer.ID,
		Username:   customer.UserName,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"customer": fiber.Map{
			"id":       customer.ID,
			"email":    customer.Email,
			"username": customer.UserName,
			"shopName": customer.ShopName,
		},
		"token": model.TokenData{AccessToken: token, RefreshToken: refreshToken},
	})
}

func RefreshCustomerToken(c *fiber.Ctx) error {
	return RefreshToken(c)
}

func GetCurrentCustomer(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func EditCurrentCustomer(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	customerInput, ok := c.Locals("EditCustomer").(model.EditCustomerInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	copier.CopyWithOption(customer, &customerInput, copier.Option{IgnoreEmpty: true})

	if err := database.DB.Save(customer).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, customer)
}

func ChangePasswordCustomer(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	input, ok := c.Locals("ChangePassword").(model.CustomerChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if !helper.CheckPasswordHash(input.CurrentPassword, customer.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Mật khẩu hiện tại không đúng", errors.New("wrong current password"))
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	if err := database.DB.Model(customer).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đổi mật khẩu thành công"})
}

func ForgotPassword(c *fiber.Ctx) error {
	db := database.DB
	EmailInput, ok := c.Locals("ForgotPassword").(model.ForgotPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	customer, err := helper.GetCustomerByEmail(EmailInput.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if customer == nil {
		// Không tiết lộ email có tồn tại hay không
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Nếu email tồn tại, liên kết khôi phục đã được gửi"})
	}

	// Tạo token khôi phục
	tokenBytes := make([]byte, 16)
	if _, err := rand.Read(tokenBytes); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không thể tạo token"})
	}
	token := hex.EncodeToString(tokenBytes)

	resetToken := model.PasswordResetToken{
		CustomerId: customer.ID,
		Token:      token,
		ExpiresAt:  time.Now().Add(1 * time.Hour), // Hết hạn sau 1 giờ
	}
	if err := db.Create(&resetToken).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không thể lưu token"})
	}

	// Gửi email với liên kết khôi phục
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_URL"), token)
	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{EmailInput.Email}
	e.Subject = "Khôi phục mật khẩu Farm2Art"
	e.Text = []byte(fmt.Sprintf("Nhấp vào liên kết để đặt lại mật khẩu: %s", resetLink))
	smtpAddr := fmt.Sprintf("%s:%s", os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"))
	if err := e.Send(smtpAddr, smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không thể gửi email"})
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Nếu email tồn tại, liên kết khôi phục đã được gửi"})
}

func ResetPassword(c *fiber.Ctx) error {
	db := database.DB
	ResetPassword, ok := c.Locals("ResetPassword").(model.ResetPasswordRequest)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var resetToken model.PasswordResetToken
	if err := db.Where("token = ? AND expires_at > ?", ResetPassword.Token, time.Now()).First(&resetToken).Error; err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token không hợp lệ hoặc đã hết hạn"})
	}

	var customer model.Customer
	if err := db.First(&customer, resetToken.CustomerId).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Không tìm thấy khách hàng"})
	}

	hash, err := helper.HashPassword(ResetPassword.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	customer.Password = hash
	if err := db.Save(&customer).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Không thể cập nhật mật khẩu"})
	}

	// token dùng một lần
	db.Delete(&resetToken)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đặt lại mật khẩu thành công"})
}

func GetCustomers(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var filter model.FilterCustomer
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.Customer{})

	if filter.SearchKey != "" {
		query = query.Where("email ILIKE ? OR user_name ILIKE ? OR shop_name ILIKE ?",
			"%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%", "%"+filter.SearchKey+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone = ?", filter.Phone)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}

	var totalCount int64
	query.Count(&totalCount)
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var customers model.Customers
	if err := query.Order("created_at desc").Find(&customers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       customers,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}
