package constants

// Roles
const (
	ROLE_ADMIN = "ADMIN"
	ROLE_STAFF = "STAFF"
)

// Order status
const (
	ORDER_PENDING   = "PENDING"
	ORDER_PAID      = "PAID"
	ORDER_CANCELLED = "CANCELLED"
	ORDER_EXPIRED   = "EXPIRED"
)

// Payment status
const (
	PAYMENT_PENDING = "PENDING"
	PAYMENT_PAID    = "PAID"
	PAYMENT_FAILED  = "FAILED"
)

// Product status
const (
	PRODUCT_ACTIVE   = "ACTIVE"
	PRODUCT_HIDDEN   = "HIDDEN"
	PRODUCT_SOLD_OUT = "SOLD_OUT"
)

// Mã phản hồi IPN cho VNPay (theo tài liệu cổng thanh toán)
const (
	IPN_CONFIRMED         = "00"
	IPN_ORDER_NOT_FOUND   = "01"
	IPN_ALREADY_CONFIRMED = "02"
	IPN_AMOUNT_MISMATCH   = "04"
	IPN_INVALID_SIGNATURE = "97"
	IPN_INTERNAL_ERROR    = "99"
)

// Messages
const (
	ERROR_INPUT                = "Dữ liệu đầu vào không hợp lệ"
	ERROR_INTERNAL_ERROR       = "Lỗi hệ thống"
	ERROR_PARSE_DATA_TO_LOCALS = "Không thể đọc dữ liệu đã xác thực"
	NOT_FOUND_RECORDS          = "Không tìm thấy dữ liệu"
	NOT_ADMIN                  = "Không có quyền quản trị"
	DATA_INPUT_IS_NOT_NUMBER   = "Tham số phải là số"
	MISSING_LOGIN_INPUT        = "Thiếu thông tin đăng nhập"
	INVALID_USERNAME           = "Tên đăng nhập không tồn tại"
	INVALID_PASSWORD           = "Mật khẩu không đúng"
	ACCOUNT_NOT_ACTIVE         = "Tài khoản đã bị khóa"
	CAN_NOT_HASH_PASSWORD      = "Không thể mã hóa mật khẩu"
	EMAIL_EXISTS               = "Email đã được đăng ký"
	REQUIRE_LOGIN              = "Vui lòng đăng nhập"
)

// Chatbot
const CHATBOT_FALLBACK = "Xin lỗi, mình chưa hiểu câu hỏi. Bạn có thể hỏi về sản phẩm, đơn hàng, thanh toán hoặc vận chuyển nhé!"
