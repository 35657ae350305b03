package helper

import (
	"testing"

	"farm2art/constants"
	"farm2art/model"
)

type fakeKeywordStore struct {
	keywords []model.ChatbotKeyword
}

func (s fakeKeywordStore) ListKeywords() ([]model.ChatbotKeyword, error) {
	return s.keywords, nil
}

func TestChatbotLongestMatchWins(t *testing.T) {
	bot := NewChatbot(fakeKeywordStore{keywords: []model.ChatbotKeyword{
		{Keyword: "hàng", Answer: "về hàng hóa"},
		{Keyword: "giao hàng", Answer: "về giao hàng"},
		{Keyword: "thanh toán", Answer: "về thanh toán"},
	}})

	reply, err := bot.Reply("Bao giờ giao hàng cho tôi?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "về giao hàng" {
		t.Fatalf("want longest keyword to win, got %q", reply)
	}
}

func TestChatbotTieBrokenByPriority(t *testing.T) {
	bot := NewChatbot(fakeKeywordStore{keywords: []model.ChatbotKeyword{
		{Keyword: "giao", Answer: "thấp", Priority: 0},
		{Keyword: "hoàn", Answer: "cao", Priority: 5},
	}})

	// "giao" và "hoàn" cùng 4 ký tự → priority quyết định
	reply, err := bot.Reply("giao rồi có hoàn được không")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "cao" {
		t.Fatalf("want priority tie-break, got %q", reply)
	}
}

func TestChatbotCaseInsensitive(t *testing.T) {
	bot := NewChatbot(fakeKeywordStore{keywords: []model.ChatbotKeyword{
		{Keyword: "VNPay", Answer: "ok"},
	}})

	reply, _ := bot.Reply("thanh toán qua vnpay thế nào")
	if reply != "ok" {
		t.Fatalf("matching must ignore case, got %q", reply)
	}
}

func TestChatbotFallback(t *testing.T) {
	bot := NewChatbot(fakeKeywordStore{keywords: []model.ChatbotKeyword{
		{Keyword: "giao hàng", Answer: "x"},
	}})

	reply, _ := bot.Reply("xin chào")
	if reply != constants.CHATBOT_FALLBACK {
		t.Fatalf("want fallback answer, got %q", reply)
	}
}
