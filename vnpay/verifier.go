package vnpay

import "crypto/hmac"

// VerificationResult kết quả kiểm tra chữ ký callback. Phải kiểm tra OK
// trước khi dùng bất kỳ field nào khác.
type VerificationResult struct {
	OK           bool
	Reason       string
	ResponseCode string
	Message      string
	Params       map[string]string
}

// VerifyCallback tính lại chữ ký trên bộ tham số nhận được (đã bỏ
// vnp_SecureHash và vnp_SecureHashType) rồi so với chữ ký đính kèm.
// Chữ ký sai nghĩa là dữ liệu có thể đã bị giả mạo — không được tin
// bất kỳ field nào, kể cả mã kết quả.
func VerifyCallback(params map[string]string, secret string) VerificationResult {
	received, ok := params[SecureHashField]
	if !ok || received == "" {
		return VerificationResult{OK: false, Reason: "Missing signature"}
	}

	signable := make(map[string]string, len(params))
	for k, v := range params {
		if k == SecureHashField || k == SecureHashTypeField {
			continue
		}
		signable[k] = v
	}

	expected := Sign(secret, EncodeQuery(signable))
	if !hmac.Equal([]byte(expected), []byte(received)) {
		return VerificationResult{OK: false, Reason: "Invalid signature"}
	}

	return VerificationResult{
		OK:           true,
		ResponseCode: params[ResponseCodeField],
		Message:      params["vnp_Message"],
		Params:       params,
	}
}
