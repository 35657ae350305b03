package helper

import (
	"farm2art/constants"
	"farm2art/database"
	"farm2art/model"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

var scheduler *cron.Cron

func StartOrderExpiryScheduler() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// Chạy mỗi 5 phút
	_, err := scheduler.AddFunc("*/5 * * * *", expirePendingOrders)
	if err != nil {
		log.Printf("Lỗi khởi tạo scheduler: %v", err)
		return
	}

	scheduler.Start()
	log.Println("Scheduler hết hạn đơn hàng đã khởi động (mỗi 5 phút)")
}

func StopOrderExpiryScheduler() {
	if scheduler != nil {
		scheduler.Stop()
	}
}

func expirePendingOrders() {
	now := time.Now()
	result := database.DB.Model(&model.Order{}).
		Where("status = ? AND expires_at < ?", constants.ORDER_PENDING, now).
		Update("status", constants.ORDER_EXPIRED)

	if result.Error != nil {
		log.Printf("Lỗi quét đơn hết hạn: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã chuyển %d đơn quá hạn sang EXPIRED", result.RowsAffected)
	}
}
