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
)

func GetAccounts(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var filter model.FilterAccount
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	query := db.Model(&model.Account{})

	if filter.SearchKey != "" {
		query = query.Where("username ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Role != nil {
		query = query.Where("role = ?", *filter.Role)
	}

	var totalCount int64
	query.Count(&totalCount)
	query = utils.ApplyPagination(query, filter.Limit, filter.Page)

	var accounts model.Accounts
	if err := query.Order("created_at desc").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Không trả password hash ra ngoài
	for i := range accounts {
		accounts[i].Password = ""
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       accounts,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateAccount(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	accountInput, ok := c.Locals("CreateAccount").(model.CreateAccountInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	existing, err := helper.GetUserByUsername(accountInput.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Tên đăng nhập đã tồn tại", errors.New("duplicate username"))
	}

	hash, err := helper.HashPassword(accountInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	var newAccount model.Account
	copier.Copy(&newAccount, &accountInput)
	newAccount.Password = hash
	newAccount.Active = true

	if err := database.DB.Create(&newAccount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	newAccount.Password = ""
	return utils.SuccessResponse(c, fiber.StatusCreated, newAccount)
}

func AdminChangePassword(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("AdminChangePassword").(model.AdminChangePassword)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var account model.Account
	if err := database.DB.First(&account, input.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	hash, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.CAN_NOT_HASH_PASSWORD, err)
	}

	if err := database.DB.Model(&account).Update("password", hash).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Đổi mật khẩu thành công"})
}

func ActiveAccount(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	accountIdStr, _ := c.Locals("accountId").(string)
	accountId, err := strconv.Atoi(accountIdStr)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	type ActiveInput struct {
		Active bool `json:"active"`
	}
	var input ActiveInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var account model.Account
	if err := database.DB.First(&account, accountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	if err := database.DB.Model(&account).Update("active", input.Active).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"active": input.Active})
}
