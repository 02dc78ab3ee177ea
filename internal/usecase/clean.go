package usecase

import (
	"strings"

	"github.com/rs/zerolog/log"

	"payment-reconciliation/internal/domain"
)

// CleanDataset prepares a raw dataset for validation: rows containing a
// null value are dropped, the key field is trimmed of surrounding
// whitespace, and duplicate keys are removed keeping the first
// occurrence.
func CleanDataset(name, keyField string, records []domain.RawRecord) []domain.RawRecord {
	seen := make(map[string]bool, len(records))
	cleaned := make([]domain.RawRecord, 0, len(records))

	for _, record := range records {
		if hasNullValue(record) {
			continue
		}
		if key, ok := record[keyField].(string); ok {
			record[keyField] = strings.TrimSpace(key)
		}
		key, _ := record[keyField].(string)
		if seen[key] {
			continue
		}
		seen[key] = true
		cleaned = append(cleaned, record)
	}

	log.Info().Str("dataset", name).Int("kept", len(cleaned)).Int("dropped", len(records)-len(cleaned)).Msg("cleaned dataset")
	return cleaned
}

func hasNullValue(record domain.RawRecord) bool {
	for _, value := range record {
		if value == nil {
			return true
		}
		if nested, ok := value.(map[string]any); ok {
			if hasNullValue(nested) {
				return true
			}
		}
	}
	return false
}
