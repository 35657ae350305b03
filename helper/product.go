package helper

import (
	"farm2art/constants"
	"farm2art/database"
	"farm2art/model"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var productScheduler gocron.Scheduler

// AutoUpdateProductStatus quét toàn bộ tin đăng mỗi ngày: hết hàng thì
// chuyển SOLD_OUT, nhập thêm hàng thì trả về ACTIVE
func AutoUpdateProductStatus() {
	log.Println("[CRON] AutoUpdateProductStatus triggered")

	db := database.DB

	result := db.Model(&model.Product{}).
		Where("quantity <= 0 AND status = ?", constants.PRODUCT_ACTIVE).
		Update("status", constants.PRODUCT_SOLD_OUT)
	if result.Error != nil {
		log.Printf("Lỗi quét sản phẩm hết hàng: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã chuyển %d sản phẩm sang SOLD_OUT", result.RowsAffected)
	}

	result = db.Model(&model.Product{}).
		Where("quantity > 0 AND status = ?", constants.PRODUCT_SOLD_OUT).
		Update("status", constants.PRODUCT_ACTIVE)
	if result.Error != nil {
		log.Printf("Lỗi mở lại sản phẩm còn hàng: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Đã mở lại %d sản phẩm còn hàng", result.RowsAffected)
	}
}

func StartProductStatusScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	productScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(AutoUpdateProductStatus),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ Product status scheduler started (00:05 ICT)")
}
