package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"farm2art/config"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/model"
	"farm2art/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var (
	// Addr rỗng thì go-redis tự dùng localhost:6379
	redisClient = redis.NewClient(&redis.Options{Addr: config.Config("REDIS_ADDR")})

	chatClients = make(map[uint]map[*websocket.Conn]bool)
	chatMu      sync.Mutex
)

func conversationChannel(conversationId uint) string {
	return fmt.Sprintf("conversation:%d", conversationId)
}

// OpenConversation mở (hoặc lấy lại) hội thoại giữa người mua và người bán
// của một sản phẩm. Mỗi cặp khách + sản phẩm chỉ có một hội thoại.
func OpenConversation(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	productId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	var product model.Product
	if err := database.DB.First(&product, "id = ?", productId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if product.SellerID == customer.ID {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Không thể tự nhắn tin với chính mình", errors.New("self conversation"))
	}

	var conversation model.Conversation
	err := database.DB.
		Where("product_id = ? AND buyer_id = ?", product.ID, customer.ID).
		First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		conversation = model.Conversation{
			ProductID: product.ID,
			BuyerID:   customer.ID,
			SellerID:  product.SellerID,
		}
		err = database.DB.Create(&conversation).Error
	}
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, conversation)
}

func GetMyConversations(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	var conversations []model.Conversation
	if err := database.DB.
		Preload("Product").
		Preload("Buyer").
		Preload("Seller").
		Where("buyer_id = ? OR seller_id = ?", customer.ID, customer.ID).
		Order("updated_at desc").
		Find(&conversations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, conversations)
}

// loadConversationFor trả về hội thoại nếu khách là một trong hai phía
func loadConversationFor(conversationId int, customerId uint) (*model.Conversation, error) {
	var conversation model.Conversation
	if err := database.DB.First(&conversation, "id = ?", conversationId).Error; err != nil {
		return nil, err
	}
	if conversation.BuyerID != customerId && conversation.SellerID != customerId {
		return nil, gorm.ErrRecordNotFound
	}
	return &conversation, nil
}

func GetMessages(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	conversationId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	if _, err := loadConversationFor(conversationId, customer.ID); err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	var messages model.ChatMessages
	if err := database.DB.
		Where("conversation_id = ?", conversationId).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, messages)
}

func SendMessage(c *fiber.Ctx) error {
	customer, ok := c.Locals("customer").(*model.Customer)
	if !ok || customer == nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.REQUIRE_LOGIN, nil)
	}

	conversationId, ok := c.Locals("inputId").(int)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}
	input, ok := c.Locals("SendMessage").(model.SendMessageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA TO LOCALS FAIL"))
	}

	conversation, err := loadConversationFor(conversationId, customer.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND_RECORDS, err)
	}

	message := model.ChatMessage{
		ConversationID: conversation.ID,
		SenderID:       customer.ID,
		Content:        input.Content,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Đẩy tin realtime qua Redis cho các client đang mở WS
	if payload, err := json.Marshal(message); err == nil {
		redisClient.Publish(context.Background(), conversationChannel(conversation.ID), payload)
	}

	// Báo cho phía còn lại của hội thoại
	recipientID := conversation.SellerID
	if customer.ID == conversation.SellerID {
		recipientID = conversation.BuyerID
	}
	CreateNotification(recipientID, "Tin nhắn mới",
		fmt.Sprintf("Bạn có tin nhắn mới từ %s.", customer.UserName))

	return utils.SuccessResponse(c, fiber.StatusCreated, message)
}

// ChatWebSocket xử lý WS connection của một hội thoại
func ChatWebSocket(c *websocket.Conn) {
	conversationIdStr := c.Params("id")
	id64, _ := strconv.ParseUint(conversationIdStr, 10, 64)
	conversationId := uint(id64)

	// Khi WS disconnect → xoá client
	defer func() {
		chatMu.Lock()
		if chatClients[conversationId] != nil {
			delete(chatClients[conversationId], c)
		}
		chatMu.Unlock()
		c.Close()
	}()

	// Thêm client mới vào room
	chatMu.Lock()
	if chatClients[conversationId] == nil {
		chatClients[conversationId] = make(map[*websocket.Conn]bool)
	}
	chatClients[conversationId][c] = true
	chatMu.Unlock()

	// Gửi lịch sử tin nhắn lần đầu
	var history model.ChatMessages
	database.DB.
		Where("conversation_id = ?", conversationId).
		Order("created_at asc").
		Limit(100).
		Find(&history)
	c.WriteJSON(history)

	// Sub kênh Redis
	pubsub := redisClient.Subscribe(
		context.Background(),
		conversationChannel(conversationId),
	)
	defer pubsub.Close()

	// Lắng nghe message từ Redis
	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		chatMu.Lock()
		for conn := range chatClients[conversationId] {
			// Nếu client lỗi → xoá
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(chatClients[conversationId], conn)
			}
		}
		chatMu.Unlock()
	}
}
