package usecase

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"payment-reconciliation/internal/domain"
)

// Reconciler produces the unified per-transaction view: every
// transaction left-joined with at most one chargeback (by
// transaction_id) and its order (by order_id). All transactions are
// preserved regardless of match outcome.
type Reconciler struct{}

// NewReconciler creates a new Reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Reconcile builds one ReconciledRecord per transaction. A duplicate
// chargeback for the same transaction is rejected rather than fanned
// out: silent row inflation would corrupt every downstream rate, and
// cleaning already deduplicated the source, so a duplicate here means
// upstream breakage.
func (r *Reconciler) Reconcile(transactions []domain.Transaction, orders []domain.Order, chargebacks []domain.Chargeback) ([]domain.ReconciledRecord, error) {
	chargebacksByTxn := make(map[string]domain.Chargeback, len(chargebacks))
	for _, cb := range chargebacks {
		if _, exists := chargebacksByTxn[cb.TransactionID]; exists {
			return nil, fmt.Errorf("duplicate chargeback for transaction %s", cb.TransactionID)
		}
		chargebacksByTxn[cb.TransactionID] = cb
	}

	ordersByID := make(map[string]domain.Order, len(orders))
	for _, order := range orders {
		ordersByID[order.OrderID] = order
	}

	records := make([]domain.ReconciledRecord, 0, len(transactions))
	for _, tx := range transactions {
		record := domain.ReconciledRecord{
			TransactionID:         tx.TransactionID,
			OrderID:               tx.OrderID,
			TransactionTime:       tx.OccurredAt,
			Amount:                tx.Amount,
			Currency:              tx.Currency,
			Status:                tx.Status,
			PaymentMethodType:     tx.PaymentMethod.Type,
			PaymentMethodProvider: tx.PaymentMethod.Provider,
			ErrorCode:             tx.ErrorCode,
		}

		if cb, ok := chargebacksByTxn[tx.TransactionID]; ok {
			record.ChargebackDisputeDate = &cb.DisputedAt
			record.ChargebackAmount = &cb.Amount
			record.ChargebackReasonCode = &cb.ReasonCode
			record.ChargebackStatus = &cb.Status
			record.ChargebackResolutionDate = &cb.ResolvedAt
		}

		if order, ok := ordersByID[tx.OrderID]; ok {
			record.OrderCustomerID = order.CustomerID
			record.OrderTime = order.OccurredAt
			record.OrderTotalAmount = order.TotalAmount
			record.OrderCurrency = order.Currency
			record.OrderPaymentStatus = order.PaymentStatus
		}

		records = append(records, record)
	}

	log.Info().Int("count", len(records)).Msg("matched the datasources data")
	return records, nil
}
