package handler

import (
	"errors"
	"farm2art/constants"
	"farm2art/database"
	"farm2art/model"
	"farm2art/vnpay"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// ReconcileStore thao tác nguyên tử trên bản ghi thanh toán. MarkPaid
// phải là UPDATE có điều kiện trên trạng thái hiện tại: cổng có thể gửi
// IPN trùng lặp và chỉ đúng một lần được phép chuyển đơn sang PAID.
type ReconcileStore interface {
	FindPaymentByCode(code string) (*model.Payment, error)
	MarkPaid(paymentID uint, info PaidInfo) (bool, error)
	MarkFailed(paymentID uint, responseCode string) error
}

type PaidInfo struct {
	GatewayTxnNo string
	BankCode     string
	ResponseCode string
	PaidAt       time.Time
}

// Reconcile đối soát một callback ĐÃ qua bước xác minh chữ ký với đơn
// hàng trong DB. Luôn trả về mã phản hồi cho cổng: cổng dựa vào mã này
// để quyết định có gửi lại IPN hay không.
func Reconcile(store ReconcileStore, result vnpay.VerificationResult) (model.IPNResponse, bool) {
	if !result.OK {
		return model.IPNResponse{RspCode: constants.IPN_INVALID_SIGNATURE, Message: "Invalid signature"}, false
	}

	txnRef := result.Params["vnp_TxnRef"]

	payment, err := store.FindPaymentByCode(txnRef)
	if err != nil {
		return model.IPNResponse{RspCode: constants.IPN_INTERNAL_ERROR, Message: "Internal error"}, false
	}
	if payment == nil {
		return model.IPNResponse{RspCode: constants.IPN_ORDER_NOT_FOUND, Message: "Order not found"}, false
	}

	// vnp_Amount là đơn vị nhỏ (VND * 100)
	amountMinor, err := strconv.ParseInt(result.Params["vnp_Amount"], 10, 64)
	if err != nil || float64(amountMinor)/100 != payment.Amount {
		return model.IPNResponse{RspCode: constants.IPN_AMOUNT_MISMATCH, Message: "Invalid amount"}, false
	}

	if payment.Status != constants.PAYMENT_PENDING {
		return model.IPNResponse{RspCode: constants.IPN_ALREADY_CONFIRMED, Message: "Order already confirmed"}, false
	}

	if result.ResponseCode == vnpay.ResponseCodeSuccess {
		applied, err := store.MarkPaid(payment.ID, PaidInfo{
			GatewayTxnNo: result.Params["vnp_TransactionNo"],
			BankCode:     result.Params["vnp_BankCode"],
			ResponseCode: result.ResponseCode,
			PaidAt:       time.Now(),
		})
		if err != nil {
			return model.IPNResponse{RspCode: constants.IPN_INTERNAL_ERROR, Message: "Internal error"}, false
		}
		if !applied {
			// IPN song song đã xử lý trước
			return model.IPNResponse{RspCode: constants.IPN_ALREADY_CONFIRMED, Message: "Order already confirmed"}, false
		}
		return model.IPNResponse{RspCode: constants.IPN_CONFIRMED, Message: "Confirm Success"}, true
	}

	// Giao dịch không thành công: ghi nhận để đơn còn thanh toán lại được
	if err := store.MarkFailed(payment.ID, result.ResponseCode); err != nil {
		return model.IPNResponse{RspCode: constants.IPN_INTERNAL_ERROR, Message: "Internal error"}, false
	}
	return model.IPNResponse{RspCode: constants.IPN_CONFIRMED, Message: "Confirm Success"}, false
}

// gormReconcileStore bản ghi thật trong Postgres
type gormReconcileStore struct {
	db *gorm.DB
}

func NewReconcileStore(db *gorm.DB) ReconcileStore {
	return gormReconcileStore{db: db}
}

func (s gormReconcileStore) FindPaymentByCode(code string) (*model.Payment, error) {
	var payment model.Payment
	if err := s.db.Where("payment_code = ?", code).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &payment, nil
}

func (s gormReconcileStore) MarkPaid(paymentID uint, info PaidInfo) (bool, error) {
	applied := false
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Payment{}).
			Where("id = ? AND status = ?", paymentID, constants.PAYMENT_PENDING).
			Updates(map[string]interface{}{
				"status":         constants.PAYMENT_PAID,
				"gateway_txn_no": info.GatewayTxnNo,
				"bank_code":      info.BankCode,
				"response_code":  info.ResponseCode,
				"paid_at":        info.PaidAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil // đã có IPN khác xử lý
		}

		var payment model.Payment
		if err := tx.First(&payment, paymentID).Error; err != nil {
			return err
		}

		if err := tx.Model(&model.Order{}).
			Where("id = ?", payment.OrderID).
			Updates(map[string]interface{}{
				"status":         constants.ORDER_PAID,
				"payment_method": payment.Method,
				"paid_at":        info.PaidAt,
			}).Error; err != nil {
			return err
		}

		// Trừ kho theo từng dòng của đơn
		var items []model.OrderItem
		if err := tx.Where("order_id = ?", payment.OrderID).Find(&items).Error; err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Model(&model.Product{}).
				Where("id = ?", item.ProductID).
				Update("quantity", gorm.Expr("quantity - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		applied = true
		return nil
	})
	return applied, err
}

func (s gormReconcileStore) MarkFailed(paymentID uint, responseCode string) error {
	return s.db.Model(&model.Payment{}).
		Where("id = ? AND status = ?", paymentID, constants.PAYMENT_PENDING).
		Updates(map[string]interface{}{
			"status":        constants.PAYMENT_FAILED,
			"response_code": responseCode,
		}).Error
}

func defaultReconcileStore() ReconcileStore {
	return NewReconcileStore(database.DB)
}
