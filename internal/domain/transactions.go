package domain

import "time"

// TransactionStatus is the processing outcome of a payment transaction.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusPending   TransactionStatus = "pending"
)

// PaymentMethodType identifies how a transaction was paid.
type PaymentMethodType string

const (
	PaymentMethodCreditCard PaymentMethodType = "credit_card"
	PaymentMethodDebitCard  PaymentMethodType = "debit_card"
	PaymentMethodWallet     PaymentMethodType = "wallet"
)

// PaymentMethod is a value object embedded in Transaction. It is
// flattened into top-level columns during reconciliation so downstream
// aggregations can group by it directly.
type PaymentMethod struct {
	Type     PaymentMethodType `json:"type" validate:"required,oneof=credit_card debit_card wallet"`
	Provider string            `json:"provider" validate:"required,min=2,max=40"`
}

// Transaction represents one payment attempt against an order.
type Transaction struct {
	TransactionID string            `json:"transaction_id" validate:"required,len=36"`
	OrderID       string            `json:"order_id" validate:"required,min=6,max=30"`
	Timestamp     string            `json:"timestamp" validate:"required,calendardate"`
	Amount        float64           `json:"amount" validate:"gt=0"`
	Currency      string            `json:"currency" validate:"required,oneof=USD EUR GBP INR AUD CAD"`
	Status        TransactionStatus `json:"status" validate:"required,oneof=completed failed pending"`
	PaymentMethod PaymentMethod     `json:"payment_method" validate:"required"`
	ErrorCode     *string           `json:"error_code,omitempty" validate:"omitempty,min=1,max=20"`

	// OccurredAt is set by the normalizer from Timestamp.
	OccurredAt time.Time `json:"-"`
}
