package helper

import (
	"strings"
	"unicode/utf8"

	"farm2art/constants"
	"farm2art/model"

	"gorm.io/gorm"
)

// KeywordStore nguồn bảng từ khóa cho bot, inject vào Chatbot để không
// dùng biến toàn cục
type KeywordStore interface {
	ListKeywords() ([]model.ChatbotKeyword, error)
}

type DBKeywordStore struct {
	DB *gorm.DB
}

func (s DBKeywordStore) ListKeywords() ([]model.ChatbotKeyword, error) {
	var keywords []model.ChatbotKeyword
	if err := s.DB.Find(&keywords).Error; err != nil {
		return nil, err
	}
	return keywords, nil
}

type Chatbot struct {
	store KeywordStore
}

func NewChatbot(store KeywordStore) *Chatbot {
	return &Chatbot{store: store}
}

// Reply chọn câu trả lời theo từ khóa khớp dài nhất trong tin nhắn.
// Cùng độ dài thì ưu tiên Priority cao hơn. Không khớp gì → câu fallback.
func (b *Chatbot) Reply(message string) (string, error) {
	keywords, err := b.store.ListKeywords()
	if err != nil {
		return "", err
	}

	normalized := strings.ToLower(strings.TrimSpace(message))

	var best *model.ChatbotKeyword
	bestLen := 0
	for i := range keywords {
		kw := strings.ToLower(keywords[i].Keyword)
		if kw == "" || !strings.Contains(normalized, kw) {
			continue
		}
		length := utf8.RuneCountInString(kw)
		if best == nil || length > bestLen ||
			(length == bestLen && keywords[i].Priority > best.Priority) {
			best = &keywords[i]
			bestLen = length
		}
	}

	if best == nil {
		return constants.CHATBOT_FALLBACK, nil
	}
	return best.Answer, nil
}
