package router

import (
	"farm2art/handler"
	"farm2art/middleware"
	"farm2art/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Patch("/:accountId/active", middleware.Protected(), validate.ActiveAccount(), handler.ActiveAccount)

	// Quản trị
	admin := v1.Group("/admin", logger.New())
	admin.Get("/statistic", middleware.Protected(), handler.GetAdminStats)
	admin.Get("/don-hang", middleware.Protected(), handler.GetOrders)
	admin.Get("/khach-hang", middleware.Protected(), handler.GetCustomers)

	coupon := v1.Group("/coupon", logger.New())
	coupon.Get("/check", handler.CheckCoupon)
	coupon.Get("/", middleware.Protected(), handler.GetCoupons)
	coupon.Post("/", middleware.Protected(), validate.CreateCoupon(), handler.CreateCoupon)
	coupon.Put("/:couponId", middleware.Protected(), validate.EditCoupon("couponId"), handler.EditCoupon)
	coupon.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCoupons)

	// Người dùng (khách hàng, người bán)
	khachhang := v1.Group("/khach-hang")
	khachhang.Post("/register", validate.RegisterCustomer(), handler.RegisterCustomer)
	khachhang.Post("/login", handler.CustomerLogin)
	khachhang.Post("/refresh-token", handler.RefreshCustomerToken)
	khachhang.Get("/me", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetCurrentCustomer)
	khachhang.Put("/me", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.EditCustomer(), handler.EditCurrentCustomer)
	khachhang.Post("/change-password", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.ChangePasswordCustomer(), handler.ChangePasswordCustomer)
	khachhang.Post("/forgot-password", validate.ForgotPassword(), handler.ForgotPassword)
	khachhang.Post("/reset-password", validate.ResetPassword(), handler.ResetPassword)

	danhmuc := v1.Group("/danh-muc")
	danhmuc.Get("/", handler.GetCategories)

	sanpham := v1.Group("/san-pham")
	sanpham.Get("/", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetProducts)
	sanpham.Get("/cua-toi", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetMyProducts)
	sanpham.Get("/:slug", handler.GetProductBySlug)
	sanpham.Get("/:productId/danh-gia", validate.GetById("productId"), handler.GetProductReviews)
	sanpham.Post("/", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.CreateProduct(), handler.CreateProduct)
	sanpham.Put("/:productId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.EditProduct("productId"), handler.EditProduct)
	sanpham.Delete("/:productId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("productId"), handler.DeleteProduct)
	sanpham.Post("/:productId/chat", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("productId"), handler.OpenConversation)

	danhgia := v1.Group("/danh-gia")
	danhgia.Post("/", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.CreateReview(), handler.CreateReview)

	yeuthich := v1.Group("/yeu-thich")
	yeuthich.Get("/", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetMyWishlist)
	yeuthich.Post("/:productId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("productId"), handler.AddToWishlist)
	yeuthich.Delete("/:productId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("productId"), handler.RemoveFromWishlist)

	donhang := v1.Group("/don-hang")
	donhang.Get("/", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetMyOrders)
	donhang.Post("/", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.CreateOrder(), handler.CreateOrder)
	donhang.Get("/:orderCode", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetOrderDetail)
	donhang.Post("/:publicCode/cancel", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.CancelOrderByUser)

	thongbao := v1.Group("/thong-bao")
	thongbao.Get("/", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetMyNotifications)
	thongbao.Patch("/:notificationId/read", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("notificationId"), handler.MarkNotificationRead)

	hoithoai := v1.Group("/hoi-thoai")
	hoithoai.Get("/", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GetMyConversations)
	hoithoai.Get("/:conversationId/tin-nhan", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("conversationId"), handler.GetMessages)
	hoithoai.Post("/:conversationId/tin-nhan", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("conversationId"), validate.SendMessage(), handler.SendMessage)
	hoithoai.Get("/ws/:id", websocket.New(handler.ChatWebSocket))

	chatbot := v1.Group("/chatbot")
	chatbot.Post("/ask", validate.ChatbotAsk(), handler.ChatbotAsk)

	v1.Post("/cloudinary-signature", middleware.OptionalJWT(), middleware.OptionalAuth(), handler.GenerateUploadSignature)
	v1.Delete("/product-image/:imageId", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.GetById("imageId"), handler.DeleteProductImage)

	// Thanh toán VNPay
	app.Post("/payments", middleware.OptionalJWT(), middleware.OptionalAuth(), validate.CreatePayment(), handler.CreatePayment)
	app.Get("/vnpay/return", handler.VNPayReturn) // Callback từ VNPay
	app.Get("/vnpay/ipn", handler.VNPayIPN)       // Server-to-Server
}
