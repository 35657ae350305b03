package model

import "time"

type Coupon struct {
	DTO
	Code            string    `gorm:"unique;not null" json:"code"`
	Description     string    `gorm:"type:text" json:"description"`
	DiscountPercent float64   `gorm:"type:decimal(5,2);not null" json:"discountPercent"` // 0..100
	MaxDiscount     float64   `gorm:"default:0" json:"maxDiscount"`                      // 0 = không giới hạn
	StartDate       time.Time `gorm:"not null" json:"startDate"`
	EndDate         time.Time `gorm:"not null" json:"endDate"`
	MaxUsage        int       `gorm:"default:0" json:"maxUsage"` // 0 = không giới hạn
	UsedCount       int       `gorm:"default:0" json:"usedCount"`
	Active          bool      `gorm:"default:true" json:"active"`
}

type Coupons []Coupon

type CreateCouponInput struct {
	Code            string    `validate:"required,min=3,max=30" json:"code"`
	Description     string    `json:"description"`
	DiscountPercent float64   `validate:"required,gt=0,lte=100" json:"discountPercent"`
	MaxDiscount     float64   `validate:"gte=0" json:"maxDiscount"`
	StartDate       time.Time `validate:"required" json:"startDate"`
	EndDate         time.Time `validate:"required" json:"endDate"`
	MaxUsage        int       `validate:"gte=0" json:"maxUsage"`
}

type EditCouponInput struct {
	Description     *string    `json:"description"`
	DiscountPercent *float64   `json:"discountPercent"`
	MaxDiscount     *float64   `json:"maxDiscount"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	MaxUsage        *int       `json:"maxUsage"`
	Active          *bool      `json:"active"`
}
