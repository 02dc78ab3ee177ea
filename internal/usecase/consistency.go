package usecase

import (
	"github.com/rs/zerolog/log"

	"payment-reconciliation/internal/domain"
)

// maxReportedMismatches caps how many offending transaction IDs are
// logged when the consistency check fails.
const maxReportedMismatches = 10

// checkAmountsMatch left-joins raw transactions to validated orders by
// order_id and compares each transaction amount to its order total
// under strict equality. A transaction referencing an unknown order is
// a mismatch. A non-zero mismatch count rejects the whole batch; only
// matching rows proceed to per-row schema validation.
func checkAmountsMatch(records []domain.RawRecord, orders []domain.Order) ([]domain.RawRecord, error) {
	totals := make(map[string]float64, len(orders))
	for _, order := range orders {
		totals[order.OrderID] = order.TotalAmount
	}

	matched := make([]domain.RawRecord, 0, len(records))
	mismatches := 0
	var offending []string

	for _, record := range records {
		orderID, _ := record["order_id"].(string)
		amount, isNumber := record["amount"].(float64)
		total, found := totals[orderID]

		if !isNumber || !found || amount != total {
			mismatches++
			if len(offending) < maxReportedMismatches {
				offending = append(offending, recordKey(record, "transaction_id"))
			}
			continue
		}
		matched = append(matched, record)
	}

	if mismatches > 0 {
		err := &domain.ConsistencyError{Mismatches: mismatches}
		log.Error().Int("mismatches", mismatches).Strs("transaction_ids", offending).Msg("transaction amounts do not match order totals")
		return nil, err
	}
	return matched, nil
}
