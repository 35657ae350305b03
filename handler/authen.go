package handler

import (
	"errors"
	"farm2art/constants"
	"farm2art/helper"
	"farm2art/model"
	"farm2art/utils"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		UserName string `json:"username"`
		Password string `json:"password"`
	}

	loginInput := new(LoginInput)

	if err := c.BodyParser(loginInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, err)
	}

	if loginInput.UserName == "" || loginInput.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MISSING_LOGIN_INPUT, errors.New("username and password are required"))
	}

	accountModel, err := helper.GetUserByUsername(loginInput.UserName)

	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if accountModel == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.INVALID_USERNAME, errors.New("username not exists"))
	}

	if !helper.CheckPasswordHash(loginInput.Password, accountModel.Password) {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.INVALID_PASSWORD, errors.New("password does not match username"))
	}

	if !accountModel.Active {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.ACCOUNT_NOT_ACTIVE, errors.New("active false"))
	}

	tokenClaim := model.TokenClaim{
		AccountId: accountModel.ID,
		Username:  accountModel.Username,
	}
	token, err := helper.GenerateAccessToken(tokenClaim)

	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	refreshToken, err := helper.GenerateRefreshToken(tokenClaim)

	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// set access token vào HTTPOnly cookie
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false, // nếu deploy HTTPS thì true
		Path:     "/",
	})

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"username": accountModel.Username,
		"role":     accountModel.Role,
	})
}

func RefreshToken(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken == "" {
		type RefreshInput struct {
			RefreshToken string `json:"refreshToken"`
		}
		input := new(RefreshInput)
		if err := c.BodyParser(input); err == nil {
			refreshToken = input.RefreshToken
		}
	}
	if refreshToken == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Thiếu refresh token", errors.New("no refresh token"))
	}

	token, err := helper.ParseToken(refreshToken)
	if err != nil || !token.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token không hợp lệ", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Refresh token không hợp lệ", errors.New("bad claims"))
	}

	accountId, _ := claims["accountId"].(float64)
	customerId, _ := claims["customerId"].(float64)
	username, _ := claims["username"].(string)

	tokenClaim := model.TokenClaim{
		AccountId:  uint(accountId),
		CustomerId: uint(customerId),
		Username:   username,
	}

	newToken, err := helper.GenerateAccessToken(tokenClaim)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    newToken,
		HTTPOnly: true,
		SameSite: "None",
		Secure:   false,
		Path:     "/",
		Expires:  time.Now().Add(time.Minute * 60),
	})

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{AccessToken: newToken, RefreshToken: refreshToken})
}

func Me(c *fiber.Ctx) error {
	accountInfo, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if accountInfo.AccountId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Tài khoản không tồn tại", nil)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"accountId": accountInfo.AccountId,
		"username":  accountInfo.Username,
		"isAdmin":   isAdmin,
		"isStaff":   isStaff,
	})
}
