package usecase

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"payment-reconciliation/internal/domain"
)

// Normalizer coerces validated temporal fields from their string form to
// time.Time. Validation already asserted parseability, so a failure here
// indicates a validator/normalizer contract bug, not bad input.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Orders sets OccurredAt on every order.
func (n *Normalizer) Orders(orders []domain.Order) ([]domain.Order, error) {
	for i := range orders {
		t, err := domain.ParseTimestamp(orders[i].Timestamp)
		if err != nil {
			return nil, fmt.Errorf("normalizing order %s: timestamp %q unparseable after validation: %w", orders[i].OrderID, orders[i].Timestamp, err)
		}
		orders[i].OccurredAt = t
	}
	log.Info().Int("count", len(orders)).Msg("normalized orders data")
	return orders, nil
}

// Transactions sets OccurredAt on every transaction. The embedded
// payment method needs no conversion; its fields are flattened into the
// reconciled record during matching.
func (n *Normalizer) Transactions(transactions []domain.Transaction) ([]domain.Transaction, error) {
	for i := range transactions {
		t, err := domain.ParseTimestamp(transactions[i].Timestamp)
		if err != nil {
			return nil, fmt.Errorf("normalizing transaction %s: timestamp %q unparseable after validation: %w", transactions[i].TransactionID, transactions[i].Timestamp, err)
		}
		transactions[i].OccurredAt = t
	}
	log.Info().Int("count", len(transactions)).Msg("normalized transactions data")
	return transactions, nil
}

// Chargebacks sets DisputedAt and ResolvedAt on every chargeback.
func (n *Normalizer) Chargebacks(chargebacks []domain.Chargeback) ([]domain.Chargeback, error) {
	for i := range chargebacks {
		disputed, err := domain.ParseTimestamp(chargebacks[i].DisputeDate)
		if err != nil {
			return nil, fmt.Errorf("normalizing chargeback %s: dispute date %q unparseable after validation: %w", chargebacks[i].TransactionID, chargebacks[i].DisputeDate, err)
		}
		resolved, err := domain.ParseTimestamp(chargebacks[i].ResolutionDate)
		if err != nil {
			return nil, fmt.Errorf("normalizing chargeback %s: resolution date %q unparseable after validation: %w", chargebacks[i].TransactionID, chargebacks[i].ResolutionDate, err)
		}
		chargebacks[i].DisputedAt = disputed
		chargebacks[i].ResolvedAt = resolved
	}
	log.Info().Int("count", len(chargebacks)).Msg("normalized chargebacks data")
	return chargebacks, nil
}
