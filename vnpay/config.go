package vnpay

import (
	"errors"

	"farm2art/config"
)

// Config cấu hình merchant do VNPay cấp
type Config struct {
	TmnCode    string
	HashSecret string
	BaseURL    string
	ReturnURL  string
}

func LoadConfig() Config {
	return Config{
		TmnCode:    config.Config("VNP_TMNCODE"),
		HashSecret: config.Config("VNP_HASHSECRET"),
		BaseURL:    config.Config("VNP_URL"),
		ReturnURL:  config.Config("APP_URL") + "/vnpay/return",
	}
}

// Validate thiếu cấu hình là lỗi triển khai, không phải lỗi dữ liệu
func (c Config) Validate() error {
	if c.TmnCode == "" {
		return errors.New("vnpay: missing VNP_TMNCODE")
	}
	if c.HashSecret == "" {
		return errors.New("vnpay: missing VNP_HASHSECRET")
	}
	if c.BaseURL == "" {
		return errors.New("vnpay: missing VNP_URL")
	}
	if c.ReturnURL == "" {
		return errors.New("vnpay: missing return URL")
	}
	return nil
}
