package domain

import "time"

// ReconciledRecord is the unified view produced per transaction by the
// reconciler: the transaction's own columns flattened, left-joined with
// at most one chargeback (nil fields when undisputed) and the matching
// order. It is a derived read-only view consumed by the metrics engine,
// never persisted.
type ReconciledRecord struct {
	TransactionID         string            `json:"transaction_transaction_id"`
	OrderID               string            `json:"transaction_order_id"`
	TransactionTime       time.Time         `json:"transaction_timestamp"`
	Amount                float64           `json:"transaction_amount"`
	Currency              string            `json:"transaction_currency"`
	Status                TransactionStatus `json:"transaction_status"`
	PaymentMethodType     PaymentMethodType `json:"transaction_payment_method.type"`
	PaymentMethodProvider string            `json:"transaction_payment_method.provider"`
	ErrorCode             *string           `json:"transaction_error_code,omitempty"`

	ChargebackDisputeDate    *time.Time        `json:"chargeback_dispute_date,omitempty"`
	ChargebackAmount         *float64          `json:"chargeback_amount,omitempty"`
	ChargebackReasonCode     *string           `json:"chargeback_reason_code,omitempty"`
	ChargebackStatus         *ChargebackStatus `json:"chargeback_status,omitempty"`
	ChargebackResolutionDate *time.Time        `json:"chargeback_resolution_date,omitempty"`

	OrderCustomerID    string        `json:"order_customer_id"`
	OrderTime          time.Time     `json:"order_timestamp"`
	OrderTotalAmount   float64       `json:"order_total_amount"`
	OrderCurrency      string        `json:"order_currency"`
	OrderPaymentStatus PaymentStatus `json:"order_payment_status"`
}

// Disputed reports whether a chargeback was joined to this transaction.
// Nullness of the dispute date is the signal, matching the downstream
// chargeback-rate definition.
func (r *ReconciledRecord) Disputed() bool {
	return r.ChargebackDisputeDate != nil
}
