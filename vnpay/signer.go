package vnpay

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// Sign HMAC-SHA512 trên data với secret, trả về hex thường
func Sign(secret, data string) string {
	h := hmac.New(sha512.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
