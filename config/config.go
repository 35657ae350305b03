package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Không tìm thấy file .env, dùng biến môi trường hệ thống...")
	}
}

// Config trả về giá trị biến môi trường theo key
func Config(key string) string {
	return os.Getenv(key)
}
