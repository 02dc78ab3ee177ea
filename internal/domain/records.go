package domain

import "time"

// RawRecord is one row of an extracted dataset before validation, keyed
// by source column name. Nested objects stay nested (e.g. an order's
// items, a transaction's payment_method).
type RawRecord map[string]any

// timestampLayouts are the accepted forms for every temporal field.
// Validation asserts parseability only; the normalizer converts.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a temporal field in any of the accepted layouts.
func ParseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
