package handler

import (
	"errors"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/helper"
	"farm2art/model"
	"farm2art/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

func GetAdminStats(c *fiber.Ctx) error {
	_, isAdmin, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB

	type TopProduct struct {
		ProductID uint    `json:"productId"`
		Name      string  `json:"name"`
		Sold      int64   `json:"sold"`
		Revenue   float64 `json:"revenue"`
	}

	var stats struct {
		Customers int64 `json:"customers"`
		Products  int64 `json:"products"`
		Orders    int64 `json:"orders"`

		TodayRevenue  float64 `json:"todayRevenue"`
		TodayOrders   int64   `json:"todayOrders"`
		RevenueGrowth float64 `json:"revenueGrowth"` // %
		OrdersGrowth  float64 `json:"ordersGrowth"`  // %

		OrdersByStatus map[string]int64 `json:"ordersByStatus"`
		TopProducts    []TopProduct     `json:"topProducts"`
	}

	today := time.Now().In(time.Local)
	todayStart := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	todayEnd := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, today.Location())

	// === Tổng quan ===
	db.Model(&model.Customer{}).Count(&stats.Customers)
	db.Model(&model.Product{}).Count(&stats.Products)
	db.Model(&model.Order{}).Count(&stats.Orders)

	// Doanh thu hôm nay (chỉ tính đơn đã thanh toán)
	db.Raw(`
        SELECT COALESCE(SUM(total_amount), 0)
        FROM orders
        WHERE status = 'PAID'
          AND created_at BETWEEN ? AND ?
    `, todayStart, todayEnd).Scan(&stats.TodayRevenue)

	db.Model(&model.Order{}).
		Where("status = ? AND created_at BETWEEN ? AND ?", constants.ORDER_PAID, todayStart, todayEnd).
		Count(&stats.TodayOrders)

	// === Hôm qua ===
	yesterdayStart := todayStart.AddDate(0, 0, -1)
	yesterdayEnd := todayEnd.AddDate(0, 0, -1)

	var yesterdayRevenue float64
	var yesterdayOrders int64

	db.Raw(`
        SELECT COALESCE(SUM(total_amount), 0)
        FROM orders
        WHERE status = 'PAID'
          AND created_at BETWEEN ? AND ?
    `, yesterdayStart, yesterdayEnd).Scan(&yesterdayRevenue)

	db.Model(&model.Order{}).
		Where("status = ? AND created_at BETWEEN ? AND ?", constants.ORDER_PAID, yesterdayStart, yesterdayEnd).
		Count(&yesterdayOrders)

	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, yesterdayRevenue)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.TodayOrders), float64(yesterdayOrders))

	// === Đơn theo trạng thái ===
	var statusRows []struct {
		Status string
		Count  int64
	}
	db.Model(&model.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&statusRows)

	stats.OrdersByStatus = make(map[string]int64)
	for _, row := range statusRows {
		stats.OrdersByStatus[row.Status] = row.Count
	}

	// === Top 5 sản phẩm bán chạy ===
	db.Raw(`
        SELECT
            p.id AS product_id,
            p.name,
            COALESCE(SUM(oi.quantity), 0) AS sold,
            COALESCE(SUM(oi.quantity * oi.unit_price), 0) AS revenue
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        JOIN products p ON p.id = oi.product_id
        WHERE o.status = 'PAID'
        GROUP BY p.id, p.name
        ORDER BY revenue DESC
        LIMIT 5
    `).Scan(&stats.TopProducts)

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
