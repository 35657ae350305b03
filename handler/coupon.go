package handler

import (
	"errors"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/helper"
	"farm2art/model"
	"farm2art/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetCoupons(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	var coupons model.Coupons
	if err := database.DB.Order("created_at desc").Find(&coupons).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, coupons)
}

func CreateCoupon(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("CreateCoupon").(model.CreateCouponInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	var existing int64
	database.DB.Model(&model.Coupon{}).Where("code = ?", code).Count(&existing)
	if existing > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Mã giảm giá đã tồn tại", errors.New("duplicate coupon code"))
	}

	coupon := model.Coupon{
		Code:            code,
		Description:     input.Description,
		DiscountPercent: input.DiscountPercent,
		MaxDiscount:     input.MaxDiscount,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		MaxUsage:        input.MaxUsage,
		Active:          true,
	}
	if err := database.DB.Create(&coupon).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, coupon)
}

func EditCoupon(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	couponId, ok := c.Locals("couponId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("EditCoupon").(model.EditCouponInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var coupon model.Coupon
	if err := database.DB.First(&coupon, "id = ?", couponId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Description != nil {
		coupon.Description = *input.Description
	}
	if input.DiscountPercent != nil {
		coupon.DiscountPercent = *input.DiscountPercent
	}
	if input.MaxDiscount != nil {
		coupon.MaxDiscount = *input.MaxDiscount
	}
	if input.StartDate != nil {
		coupon.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		coupon.EndDate = *input.EndDate
	}
	if input.MaxUsage != nil {
		coupon.MaxUsage = *input.MaxUsage
	}
	if input.Active != nil {
		coupon.Active = *input.Active
	}

	if err := database.DB.Save(&coupon).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, coupon)
}

func DeleteCoupons(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input, ok := c.Locals("deleteIds").(model.ArrayId)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	result := database.DB.Where("id IN ?", input.IDs).Delete(&model.Coupon{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": result.RowsAffected})
}

// CheckCoupon cho khách xem trước mã còn dùng được không, không tăng lượt dùng
func CheckCoupon(c *fiber.Ctx) error {
	code := strings.ToUpper(strings.TrimSpace(c.Query("code")))
	if code == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("missing coupon code"))
	}

	var coupon model.Coupon
	if err := database.DB.First(&coupon, "code = ? AND active = ?", code, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Mã giảm giá không tồn tại", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	now := time.Now()
	if now.Before(coupon.StartDate) || now.After(coupon.EndDate) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Mã giảm giá đã hết hạn", errors.New("coupon expired"))
	}
	if coupon.MaxUsage > 0 && coupon.UsedCount >= coupon.MaxUsage {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Mã giảm giá đã hết lượt sử dụng", errors.New("coupon exhausted"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"code":            coupon.Code,
		"discountPercent": coupon.DiscountPercent,
		"maxDiscount":     coupon.MaxDiscount,
		"endDate":         coupon.EndDate,
	})
}
