package domain

import "fmt"

// ValidationError reports a schema or cross-field rule failure for a
// single record. Any single ValidationError rejects the whole batch.
type ValidationError struct {
	Entity string
	Key    string
	Rule   string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s %s: rule %s: %s", e.Entity, e.Key, e.Rule, e.Detail)
}

// ConsistencyError reports the number of transactions whose amount does
// not match the total of their referenced order. The whole batch is
// rejected when the count is non-zero.
type ConsistencyError struct {
	Mismatches int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%d transactions amount fields do not match their order total amount", e.Mismatches)
}
