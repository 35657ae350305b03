package model

type Conversation struct {
	DTO
	ProductID uint     `gorm:"not null;index:idx_conv_once,unique" json:"productId"`
	Product   Product  `gorm:"foreignKey:ProductID" json:"product"`
	BuyerID   uint     `gorm:"not null;index:idx_conv_once,unique" json:"buyerId"`
	Buyer     Customer `gorm:"foreignKey:BuyerID" json:"buyer"`
	SellerID  uint     `gorm:"not null" json:"sellerId"`
	Seller    Customer `gorm:"foreignKey:SellerID" json:"seller"`
}

type ChatMessage struct {
	DTO
	ConversationID uint   `gorm:"not null;index" json:"conversationId"`
	SenderID       uint   `gorm:"not null" json:"senderId"`
	Content        string `gorm:"type:text;not null" json:"content"`
}

type ChatMessages []ChatMessage

type SendMessageInput struct {
	Content string `validate:"required,max=4000" json:"content"`
}

// ChatbotKeyword một dòng trong bảng từ khóa của bot hỗ trợ
type ChatbotKeyword struct {
	DTO
	Keyword  string `gorm:"not null;index" json:"keyword"`
	Answer   string `gorm:"type:text;not null" json:"answer"`
	Priority int    `gorm:"default:0" json:"priority"`
}

type ChatbotAskInput struct {
	Message string `validate:"required,max=500" json:"message"`
}
