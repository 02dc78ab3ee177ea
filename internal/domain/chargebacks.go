package domain

import (
	"fmt"
	"time"
)

// ChargebackStatus is the dispute state of a chargeback.
type ChargebackStatus string

const (
	ChargebackStatusOpen     ChargebackStatus = "open"
	ChargebackStatusResolved ChargebackStatus = "resolved"
)

// Chargeback represents a dispute raised against a transaction. Not
// every transaction has one; the link to Transaction is by
// transaction_id and is optional.
type Chargeback struct {
	TransactionID  string           `json:"transaction_id" validate:"required,len=36"`
	DisputeDate    string           `json:"dispute_date" validate:"required,calendardate"`
	Amount         float64          `json:"amount" validate:"gt=0"`
	ReasonCode     string           `json:"reason_code" validate:"required,min=1,max=30"`
	Status         ChargebackStatus `json:"status" validate:"required,oneof=open resolved"`
	ResolutionDate string           `json:"resolution_date" validate:"required,calendardate"`

	// DisputedAt and ResolvedAt are set by the normalizer.
	DisputedAt time.Time `json:"-"`
	ResolvedAt time.Time `json:"-"`
}

// CheckDates verifies that the dispute date is chronologically earlier
// than or equal to the resolution date. Equal dates are accepted.
func (c *Chargeback) CheckDates() error {
	disputed, err := ParseTimestamp(c.DisputeDate)
	if err != nil {
		return &ValidationError{Entity: "chargeback", Key: c.TransactionID, Rule: "dispute_date", Detail: err.Error()}
	}
	resolved, err := ParseTimestamp(c.ResolutionDate)
	if err != nil {
		return &ValidationError{Entity: "chargeback", Key: c.TransactionID, Rule: "resolution_date", Detail: err.Error()}
	}

	if disputed.After(resolved) {
		return &ValidationError{
			Entity: "chargeback",
			Key:    c.TransactionID,
			Rule:   "dispute_before_resolution",
			Detail: fmt.Sprintf("dispute date %s must be earlier than or equal to resolution date %s", c.DisputeDate, c.ResolutionDate),
		}
	}
	return nil
}
