package handler

import (
	"sync"
	"testing"

	"farm2art/constants"
	"farm2art/model"
	"farm2art/vnpay"
)

type fakeReconcileStore struct {
	mu       sync.Mutex
	payments map[string]*model.Payment
	paid     int
	failed   int
}

func newFakeStore(payments ...model.Payment) *fakeReconcileStore {
	s := &fakeReconcileStore{payments: map[string]*model.Payment{}}
	for i := range payments {
		p := payments[i]
		s.payments[p.PaymentCode] = &p
	}
	return s
}

func (s *fakeReconcileStore) FindPaymentByCode(code string) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.payments[code]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *fakeReconcileStore) MarkPaid(paymentID uint, info PaidInfo) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == paymentID && p.Status == constants.PAYMENT_PENDING {
			p.Status = constants.PAYMENT_PAID
			p.GatewayTxnNo = info.GatewayTxnNo
			p.ResponseCode = info.ResponseCode
			s.paid++
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeReconcileStore) MarkFailed(paymentID uint, responseCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.payments {
		if p.ID == paymentID && p.Status == constants.PAYMENT_PENDING {
			p.Status = constants.PAYMENT_FAILED
			p.ResponseCode = responseCode
			s.failed++
		}
	}
	return nil
}

const testSecret = "reconcile-test-secret"

// signedIPN bộ tham số IPN hợp lệ, đã ký đúng với testSecret
func signedIPN(t *testing.T, txnRef, amountMinor, responseCode string) vnpay.VerificationResult {
	t.Helper()
	params := map[string]string{
		"vnp_TxnRef":        txnRef,
		"vnp_Amount":        amountMinor,
		"vnp_ResponseCode":  responseCode,
		"vnp_TransactionNo": "14422574",
		"vnp_BankCode":      "NCB",
	}
	// ký trước, thêm chữ ký vào sau — chữ ký không nằm trong dữ liệu ký
	params[vnpay.SecureHashField] = vnpay.Sign(testSecret, vnpay.EncodeQuery(params))
	return vnpay.VerifyCallback(params, testSecret)
}

func pendingPayment() model.Payment {
	p := model.Payment{
		OrderID:     7,
		Amount:      250000,
		PaymentCode: "PAY-order123",
		Status:      constants.PAYMENT_PENDING,
		Method:      "VNPAY",
	}
	p.ID = 1
	return p
}

func TestReconcileMarksPaidOnce(t *testing.T) {
	store := newFakeStore(pendingPayment())
	result := signedIPN(t, "PAY-order123", "25000000", "00")
	if !result.OK {
		t.Fatalf("test setup: signature must verify, got %s", result.Reason)
	}

	resp, paid := Reconcile(store, result)
	if resp.RspCode != constants.IPN_CONFIRMED || !paid {
		t.Fatalf("first IPN must confirm, got %+v paid=%v", resp, paid)
	}

	// IPN trùng lặp → chỉ một lần có hiệu lực
	resp, paid = Reconcile(store, result)
	if resp.RspCode != constants.IPN_ALREADY_CONFIRMED || paid {
		t.Fatalf("duplicate IPN must answer already-confirmed, got %+v paid=%v", resp, paid)
	}
	if store.paid != 1 {
		t.Fatalf("order must transition to paid exactly once, got %d", store.paid)
	}
}

func TestReconcileConcurrentDuplicates(t *testing.T) {
	store := newFakeStore(pendingPayment())
	result := signedIPN(t, "PAY-order123", "25000000", "00")

	var wg sync.WaitGroup
	confirmed := make(chan bool, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, paid := Reconcile(store, result)
			confirmed <- paid
		}()
	}
	wg.Wait()
	close(confirmed)

	total := 0
	for paid := range confirmed {
		if paid {
			total++
		}
	}
	if total != 1 {
		t.Fatalf("exactly one concurrent IPN may apply, got %d", total)
	}
	if store.paid != 1 {
		t.Fatalf("store must record one transition, got %d", store.paid)
	}
}

func TestReconcileAmountMismatch(t *testing.T) {
	store := newFakeStore(pendingPayment())
	// chữ ký hợp lệ nhưng số tiền khai 1.000đ thay vì 250.000đ
	result := signedIPN(t, "PAY-order123", "100000", "00")

	resp, paid := Reconcile(store, result)
	if resp.RspCode != constants.IPN_AMOUNT_MISMATCH || paid {
		t.Fatalf("want amount-mismatch code, got %+v paid=%v", resp, paid)
	}
	if store.paid != 0 {
		t.Fatal("mismatched amount must never mark the order paid")
	}
}

func TestReconcileOrderNotFound(t *testing.T) {
	store := newFakeStore()
	result := signedIPN(t, "PAY-unknown", "25000000", "00")

	resp, paid := Reconcile(store, result)
	if resp.RspCode != constants.IPN_ORDER_NOT_FOUND || paid {
		t.Fatalf("want order-not-found code, got %+v paid=%v", resp, paid)
	}
}

func TestReconcileInvalidSignature(t *testing.T) {
	store := newFakeStore(pendingPayment())
	result := vnpay.VerifyCallback(map[string]string{
		"vnp_TxnRef":       "PAY-order123",
		"vnp_Amount":       "25000000",
		"vnp_ResponseCode": "00",
		"vnp_SecureHash":   "deadbeef",
	}, testSecret)

	resp, paid := Reconcile(store, result)
	if resp.RspCode != constants.IPN_INVALID_SIGNATURE || paid {
		t.Fatalf("want invalid-signature code, got %+v paid=%v", resp, paid)
	}
	if store.paid != 0 {
		t.Fatal("forged callback must never touch the order")
	}
}

func TestReconcileUserCancelledLeavesOrderPayable(t *testing.T) {
	store := newFakeStore(pendingPayment())
	// "24" = khách hủy giao dịch; chữ ký vẫn hợp lệ
	result := signedIPN(t, "PAY-order123", "25000000", "24")
	if !result.OK {
		t.Fatalf("signature must verify for code 24, got %s", result.Reason)
	}

	resp, paid := Reconcile(store, result)
	if resp.RspCode != constants.IPN_CONFIRMED || paid {
		t.Fatalf("failed attempt is still an acknowledged IPN, got %+v paid=%v", resp, paid)
	}
	if store.paid != 0 || store.failed != 1 {
		t.Fatalf("want 0 paid / 1 failed, got %d/%d", store.paid, store.failed)
	}
}
