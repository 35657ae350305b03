package vnpay

import (
	"math"
	"net/url"
	"strings"
	"testing"
)

var testConfig = Config{
	TmnCode:    "FARM2ART",
	HashSecret: "test-secret-key",
	BaseURL:    "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
	ReturnURL:  "http://localhost:8002/vnpay/return",
}

func TestEncodeQuerySortedAndEscaped(t *testing.T) {
	params := map[string]string{
		"vnp_TxnRef":    "order123",
		"vnp_Amount":    "25000000",
		"vnp_OrderInfo": "Thanh toan don hang 123",
		"vnp_BankCode":  "",
	}

	got := EncodeQuery(params)
	want := "vnp_Amount=25000000&vnp_BankCode=&vnp_OrderInfo=Thanh%20toan%20don%20hang%20123&vnp_TxnRef=order123"
	if got != want {
		t.Fatalf("unexpected canonical query:\nwant %s\ngot  %s", want, got)
	}
}

func TestEncodeQueryDeterministic(t *testing.T) {
	a := map[string]string{"b": "2", "a": "1", "c": "3"}
	b := map[string]string{"c": "3", "a": "1", "b": "2"}
	if EncodeQuery(a) != EncodeQuery(b) {
		t.Fatal("encoding must not depend on insertion order")
	}
	if EncodeQuery(a) != "a=1&b=2&c=3" {
		t.Fatalf("unexpected encoding: %s", EncodeQuery(a))
	}
}

func TestSignKnownVector(t *testing.T) {
	// RFC 4231 test case 2 (HMAC-SHA-512)
	got := Sign("Jefe", "what do ya want for nothing?")
	want := "164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea2505549758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737"
	if got != want {
		t.Fatalf("unexpected digest:\nwant %s\ngot  %s", want, got)
	}
}

func TestBuildPaymentURLRoundTrip(t *testing.T) {
	rawURL, err := BuildPaymentURL(testConfig, PaymentRequest{
		TxnRef:    "PAY_20250101_042",
		Amount:    250000,
		OrderInfo: "Thanh toán đơn hàng ORD-1a2b3c4d",
		IPAddr:    "203.113.0.1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(rawURL, testConfig.BaseURL+"?") {
		t.Fatalf("url must target gateway base: %s", rawURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("built url does not parse: %v", err)
	}
	params := ValuesToParams(u.Query())

	result := VerifyCallback(params, testConfig.HashSecret)
	if !result.OK {
		t.Fatalf("round-trip verification failed: %s", result.Reason)
	}
	if params["vnp_Amount"] != "25000000" {
		t.Fatalf("unexpected vnp_Amount: %s", params["vnp_Amount"])
	}
	if params["vnp_Locale"] != "vn" || params["vnp_OrderType"] != "other" {
		t.Fatal("locale/orderType defaults missing")
	}
	if params["vnp_Version"] != Version || params["vnp_Command"] != Command || params["vnp_CurrCode"] != CurrCode {
		t.Fatal("fixed protocol constants missing")
	}
}

func TestTamperDetection(t *testing.T) {
	rawURL, err := BuildPaymentURL(testConfig, PaymentRequest{
		TxnRef:    "order123",
		Amount:    1500,
		OrderInfo: "test",
		IPAddr:    "127.0.0.1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u, _ := url.Parse(rawURL)
	params := ValuesToParams(u.Query())

	for key := range params {
		if key == SecureHashField {
			continue
		}
		tampered := make(map[string]string, len(params))
		for k, v := range params {
			tampered[k] = v
		}
		tampered[key] = params[key] + "x"

		if res := VerifyCallback(tampered, testConfig.HashSecret); res.OK {
			t.Fatalf("tampering %s went undetected", key)
		}
	}
}

func TestWrongSecretRejected(t *testing.T) {
	rawURL, _ := BuildPaymentURL(testConfig, PaymentRequest{
		TxnRef: "order123", Amount: 1000, OrderInfo: "x", IPAddr: "127.0.0.1",
	})
	u, _ := url.Parse(rawURL)
	params := ValuesToParams(u.Query())

	if res := VerifyCallback(params, "another-secret"); res.OK {
		t.Fatal("verification must fail under a different secret")
	}
}

func TestAmountRounding(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{1500.004, "150000"},
		{1500.0051, "150001"},
		{2500.75, "250075"},
		{250000, "25000000"},
	}
	for _, tc := range cases {
		rawURL, err := BuildPaymentURL(testConfig, PaymentRequest{
			TxnRef: "r", Amount: tc.amount, OrderInfo: "x", IPAddr: "127.0.0.1",
		})
		if err != nil {
			t.Fatalf("amount %v: unexpected error: %v", tc.amount, err)
		}
		u, _ := url.Parse(rawURL)
		if got := u.Query().Get("vnp_Amount"); got != tc.want {
			t.Fatalf("amount %v: want vnp_Amount=%s, got %s", tc.amount, tc.want, got)
		}
	}
}

func TestInvalidAmountRejected(t *testing.T) {
	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := BuildPaymentURL(testConfig, PaymentRequest{
			TxnRef: "r", Amount: amount, OrderInfo: "x", IPAddr: "127.0.0.1",
		})
		if err != ErrInvalidAmount {
			t.Fatalf("amount %v: want ErrInvalidAmount, got %v", amount, err)
		}
	}
}

func TestMissingSignature(t *testing.T) {
	res := VerifyCallback(map[string]string{
		"vnp_TxnRef":       "order123",
		"vnp_ResponseCode": "00",
	}, testConfig.HashSecret)
	if res.OK {
		t.Fatal("callback without vnp_SecureHash must not verify")
	}
	if res.Reason != "Missing signature" {
		t.Fatalf("unexpected reason: %s", res.Reason)
	}
}

// signedGatewayParams giả lập bộ tham số cổng trả về, đã ký đúng
func signedGatewayParams(t *testing.T, secret string, params map[string]string) map[string]string {
	t.Helper()
	out := make(map[string]string, len(params)+2)
	for k, v := range params {
		out[k] = v
	}
	out[SecureHashField] = Sign(secret, EncodeQuery(params))
	out[SecureHashTypeField] = "HMACSHA512"
	return out
}

func TestVerifyGatewayCallback(t *testing.T) {
	base := map[string]string{
		"vnp_TmnCode":       testConfig.TmnCode,
		"vnp_TxnRef":        "order123",
		"vnp_Amount":        "25000000",
		"vnp_BankCode":      "NCB",
		"vnp_TransactionNo": "14422574",
		"vnp_PayDate":       "20250101103000",
	}

	for _, code := range []string{"00", "24"} {
		params := map[string]string{"vnp_ResponseCode": code}
		for k, v := range base {
			params[k] = v
		}
		res := VerifyCallback(signedGatewayParams(t, testConfig.HashSecret, params), testConfig.HashSecret)
		if !res.OK {
			t.Fatalf("code %s: valid signature rejected: %s", code, res.Reason)
		}
		if res.ResponseCode != code {
			t.Fatalf("code %s: got responseCode %s", code, res.ResponseCode)
		}
	}
}
