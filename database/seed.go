package database

import (
	"farm2art/constants"
	"farm2art/model"
	"log"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456f2a"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456f2a"
	}
	accounts := []model.Account{
		{Username: "Administration", Password: HashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		// Tạo mới nếu không tồn tại
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed data for account:", account.Username, "error:", err)
		}
	}

	categories := []model.Category{
		{Name: "Rơm rạ & trấu", Kind: "BYPRODUCT"},
		{Name: "Vỏ trái cây & bã nông sản", Kind: "BYPRODUCT"},
		{Name: "Xơ dừa & mụn dừa", Kind: "BYPRODUCT"},
		{Name: "Phân hữu cơ & giá thể", Kind: "BYPRODUCT"},
		{Name: "Đồ trang trí tái chế", Kind: "RECYCLED_ART"},
		{Name: "Đồ gia dụng tái chế", Kind: "RECYCLED_ART"},
		{Name: "Tranh & thủ công mỹ nghệ", Kind: "RECYCLED_ART"},
	}
	for _, category := range categories {
		category.Slug = slug.Make(category.Name)
		if err := db.Where(model.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed data for category:", category.Name, "error:", err)
		}
	}

	// Bảng từ khóa cho bot hỗ trợ
	keywords := []model.ChatbotKeyword{
		{Keyword: "giao hàng", Answer: "Đơn hàng được giao trong 2-5 ngày tùy khu vực. Bạn có thể theo dõi trạng thái trong mục Đơn hàng của tôi.", Priority: 1},
		{Keyword: "vận chuyển", Answer: "Phí vận chuyển tính theo khối lượng và khoảng cách, hiển thị trước khi đặt hàng.", Priority: 1},
		{Keyword: "thanh toán", Answer: "Farm2Art hỗ trợ thanh toán qua VNPay hoặc thanh toán khi nhận hàng (COD).", Priority: 2},
		{Keyword: "vnpay", Answer: "Khi chọn VNPay, bạn sẽ được chuyển sang cổng thanh toán. Sau khi thanh toán xong hệ thống tự cập nhật đơn hàng.", Priority: 3},
		{Keyword: "hoàn tiền", Answer: "Đơn thanh toán thất bại sẽ không bị trừ tiền. Nếu đã trừ, VNPay hoàn lại trong 3-7 ngày làm việc.", Priority: 2},
		{Keyword: "hủy đơn", Answer: "Bạn có thể hủy đơn khi đơn còn ở trạng thái chờ thanh toán, trong mục Đơn hàng của tôi.", Priority: 1},
		{Keyword: "đăng bán", Answer: "Vào mục Gian hàng của tôi, chọn Đăng sản phẩm, điền thông tin và tải ảnh lên là xong.", Priority: 1},
		{Keyword: "phụ phẩm", Answer: "Phụ phẩm nông nghiệp gồm rơm rạ, trấu, vỏ trái cây, xơ dừa... được rao bán theo danh mục Phụ phẩm.", Priority: 0},
		{Keyword: "tái chế", Answer: "Danh mục Đồ tái chế gồm các sản phẩm thủ công làm từ vật liệu tái chế do chính người bán tạo ra.", Priority: 0},
	}
	for _, kw := range keywords {
		if err := db.Where(model.ChatbotKeyword{Keyword: kw.Keyword}).FirstOrCreate(&kw).Error; err != nil {
			log.Println("failed to seed data for chatbot keyword:", kw.Keyword, "error:", err)
		}
	}

	log.Println("Seed dữ liệu hoàn tất")
}
