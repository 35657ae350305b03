package helper

import (
	"errors"
	"math"
	"time"

	"farm2art/model"

	"gorm.io/gorm"
)

var (
	ErrCouponNotFound  = errors.New("mã giảm giá không tồn tại")
	ErrCouponExpired   = errors.New("mã giảm giá đã hết hạn")
	ErrCouponExhausted = errors.New("mã giảm giá đã hết lượt dùng")
)

// ApplyCoupon kiểm tra mã và trả về số tiền giảm cho tổng total.
// Lượt dùng được cộng bằng UPDATE có điều kiện để hai đơn cùng lúc
// không vượt quá MaxUsage.
func ApplyCoupon(tx *gorm.DB, code string, total float64) (*model.Coupon, float64, error) {
	var coupon model.Coupon
	if err := tx.Where("code = ? AND active = true", code).First(&coupon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrCouponNotFound
		}
		return nil, 0, err
	}

	now := time.Now()
	if now.Before(coupon.StartDate) || now.After(coupon.EndDate) {
		return nil, 0, ErrCouponExpired
	}

	if coupon.MaxUsage > 0 {
		result := tx.Model(&model.Coupon{}).
			Where("id = ? AND used_count < max_usage", coupon.ID).
			Update("used_count", gorm.Expr("used_count + 1"))
		if result.Error != nil {
			return nil, 0, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, 0, ErrCouponExhausted
		}
	} else {
		if err := tx.Model(&model.Coupon{}).
			Where("id = ?", coupon.ID).
			Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
			return nil, 0, err
		}
	}

	discount := total * coupon.DiscountPercent / 100
	if coupon.MaxDiscount > 0 && discount > coupon.MaxDiscount {
		discount = coupon.MaxDiscount
	}
	// tiền VND: làm tròn về đồng
	discount = math.Round(discount)
	if discount > total {
		discount = total
	}

	return &coupon, discount, nil
}
