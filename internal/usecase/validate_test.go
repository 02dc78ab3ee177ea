package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-reconciliation/internal/domain"
)

const (
	testCustomerID    = "c0ffee00-aaaa-bbbb-cccc-000000000001"
	testTransactionID = "11111111-2222-3333-4444-555555555555"
)

func validOrderRecord() domain.RawRecord {
	return domain.RawRecord{
		"order_id":     "ORD000001",
		"customer_id":  testCustomerID,
		"timestamp":    "2024-03-01T10:00:00Z",
		"total_amount": 20.00,
		"currency":     "USD",
		"items": []any{
			map[string]any{"product_id": "PRD000001", "quantity": 2, "unit_price": 10.00},
		},
		"payment_status": "paid",
	}
}

func validTransactionRecord() domain.RawRecord {
	return domain.RawRecord{
		"transaction_id": testTransactionID,
		"order_id":       "ORD000001",
		"timestamp":      "2024-03-01T12:00:00Z",
		"amount":         20.00,
		"currency":       "USD",
		"status":         "completed",
		"payment_method": map[string]any{"type": "credit_card", "provider": "Visa"},
	}
}

func validChargebackRecord() domain.RawRecord {
	return domain.RawRecord{
		"transaction_id":  testTransactionID,
		"dispute_date":    "2024-03-05",
		"amount":          20.00,
		"reason_code":     "FRAUD",
		"status":          "open",
		"resolution_date": "2024-03-10",
	}
}

func TestValidator_Orders(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(domain.RawRecord)
		wantRule string
	}{
		{name: "valid order", mutate: func(domain.RawRecord) {}},
		{
			name:     "order id too short",
			mutate:   func(r domain.RawRecord) { r["order_id"] = "ORD1" },
			wantRule: "order_id=min(6)",
		},
		{
			name:     "customer id wrong length",
			mutate:   func(r domain.RawRecord) { r["customer_id"] = "short" },
			wantRule: "customer_id=len(36)",
		},
		{
			name:     "unknown currency",
			mutate:   func(r domain.RawRecord) { r["currency"] = "JPY" },
			wantRule: "currency=oneof(USD EUR GBP INR AUD CAD)",
		},
		{
			name:     "zero total amount",
			mutate:   func(r domain.RawRecord) { r["total_amount"] = 0.0 },
			wantRule: "total_amount=gt(0)",
		},
		{
			name:     "negative total amount",
			mutate:   func(r domain.RawRecord) { r["total_amount"] = -5.0 },
			wantRule: "total_amount=gt(0)",
		},
		{
			name:     "empty items",
			mutate:   func(r domain.RawRecord) { r["items"] = []any{} },
			wantRule: "items=min(1)",
		},
		{
			name: "zero item quantity",
			mutate: func(r domain.RawRecord) {
				r["items"] = []any{map[string]any{"product_id": "PRD000001", "quantity": 0, "unit_price": 10.00}}
			},
			wantRule: "quantity=gt(0)",
		},
		{
			name: "negative item unit price",
			mutate: func(r domain.RawRecord) {
				r["items"] = []any{map[string]any{"product_id": "PRD000001", "quantity": 2, "unit_price": -10.00}}
			},
			wantRule: "unit_price=gt(0)",
		},
		{
			name:     "unparseable timestamp",
			mutate:   func(r domain.RawRecord) { r["timestamp"] = "yesterday" },
			wantRule: "timestamp=calendardate",
		},
		{
			name:     "invalid payment status",
			mutate:   func(r domain.RawRecord) { r["payment_status"] = "settled" },
			wantRule: "payment_status=oneof(paid failed refunded)",
		},
		{
			name:     "total amount mismatch",
			mutate:   func(r domain.RawRecord) { r["total_amount"] = 19.99 },
			wantRule: "total_amount",
		},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validOrderRecord()
			tt.mutate(record)

			validated, err := v.Orders([]domain.RawRecord{record})
			if tt.wantRule == "" {
				require.NoError(t, err)
				require.Len(t, validated, 1)
				assert.Equal(t, "ORD000001", validated[0].OrderID)
				return
			}

			require.Error(t, err)
			assert.Nil(t, validated)

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, "order", verr.Entity)
			assert.Equal(t, tt.wantRule, verr.Rule)
		})
	}
}

func TestValidator_Orders_FailFast(t *testing.T) {
	v := NewValidator()

	bad := validOrderRecord()
	bad["order_id"] = "ORD000002"
	bad["currency"] = "XXX"

	validated, err := v.Orders([]domain.RawRecord{validOrderRecord(), bad})
	assert.Error(t, err)
	assert.Nil(t, validated, "no partial output on failure")

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "ORD000002", verr.Key)
}

func TestValidator_Transactions(t *testing.T) {
	v := NewValidator()
	orders, err := v.Orders([]domain.RawRecord{validOrderRecord()})
	require.NoError(t, err)

	t.Run("valid transaction", func(t *testing.T) {
		validated, err := v.Transactions([]domain.RawRecord{validTransactionRecord()}, orders)
		require.NoError(t, err)
		require.Len(t, validated, 1)
		assert.Equal(t, testTransactionID, validated[0].TransactionID)
		assert.Equal(t, domain.PaymentMethodCreditCard, validated[0].PaymentMethod.Type)
		assert.Nil(t, validated[0].ErrorCode)
	})

	t.Run("optional error code accepted when present", func(t *testing.T) {
		record := validTransactionRecord()
		record["error_code"] = "E42"
		validated, err := v.Transactions([]domain.RawRecord{record}, orders)
		require.NoError(t, err)
		require.NotNil(t, validated[0].ErrorCode)
		assert.Equal(t, "E42", *validated[0].ErrorCode)
	})

	t.Run("error code too long", func(t *testing.T) {
		record := validTransactionRecord()
		record["error_code"] = "E0123456789012345678901234567890"
		_, err := v.Transactions([]domain.RawRecord{record}, orders)
		assert.Error(t, err)
	})

	t.Run("invalid payment method type", func(t *testing.T) {
		record := validTransactionRecord()
		record["payment_method"] = map[string]any{"type": "cash", "provider": "Visa"}
		_, err := v.Transactions([]domain.RawRecord{record}, orders)
		require.Error(t, err)

		var verr *domain.ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, "transaction", verr.Entity)
	})

	t.Run("amount mismatch aborts before schema validation", func(t *testing.T) {
		record := validTransactionRecord()
		record["amount"] = 19.99
		// Also break a schema field: the consistency check must win.
		record["status"] = "unknown"

		_, err := v.Transactions([]domain.RawRecord{record}, orders)
		require.Error(t, err)

		var cerr *domain.ConsistencyError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, 1, cerr.Mismatches)
	})

	t.Run("unknown order id is a mismatch", func(t *testing.T) {
		record := validTransactionRecord()
		record["order_id"] = "ORD999999"

		_, err := v.Transactions([]domain.RawRecord{record}, orders)
		require.Error(t, err)

		var cerr *domain.ConsistencyError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, 1, cerr.Mismatches)
	})

	t.Run("mismatch count aggregates over the batch", func(t *testing.T) {
		bad1 := validTransactionRecord()
		bad1["amount"] = 19.99
		bad2 := validTransactionRecord()
		bad2["transaction_id"] = "99999999-2222-3333-4444-555555555555"
		bad2["order_id"] = "ORD999999"

		_, err := v.Transactions([]domain.RawRecord{validTransactionRecord(), bad1, bad2}, orders)
		require.Error(t, err)

		var cerr *domain.ConsistencyError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, 2, cerr.Mismatches)
	})
}

func TestValidator_Chargebacks(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(domain.RawRecord)
		wantErr bool
	}{
		{name: "valid chargeback", mutate: func(domain.RawRecord) {}},
		{
			name:   "equal dispute and resolution dates",
			mutate: func(r domain.RawRecord) { r["resolution_date"] = "2024-03-05" },
		},
		{
			name:    "dispute after resolution",
			mutate:  func(r domain.RawRecord) { r["resolution_date"] = "2024-03-01" },
			wantErr: true,
		},
		{
			name:    "transaction id wrong length",
			mutate:  func(r domain.RawRecord) { r["transaction_id"] = "TX1" },
			wantErr: true,
		},
		{
			name:    "empty reason code",
			mutate:  func(r domain.RawRecord) { r["reason_code"] = "" },
			wantErr: true,
		},
		{
			name:    "zero amount",
			mutate:  func(r domain.RawRecord) { r["amount"] = 0.0 },
			wantErr: true,
		},
		{
			name:    "invalid status",
			mutate:  func(r domain.RawRecord) { r["status"] = "pending" },
			wantErr: true,
		},
	}

	v := NewValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validChargebackRecord()
			tt.mutate(record)

			validated, err := v.Chargebacks([]domain.RawRecord{record})
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, validated)
			} else {
				require.NoError(t, err)
				assert.Len(t, validated, 1)
			}
		})
	}
}
