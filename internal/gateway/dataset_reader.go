package gateway

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"payment-reconciliation/internal/domain"
)

// FileDatasetRepository implements the DatasetRepository interface for
// the JSON and CSV data dumps.
type FileDatasetRepository struct{}

// NewFileDatasetRepository creates a new repository instance.
func NewFileDatasetRepository() *FileDatasetRepository {
	return &FileDatasetRepository{}
}

// GetOrders reads and decodes the orders JSON file.
func (r *FileDatasetRepository) GetOrders(ctx context.Context, path string) ([]domain.RawRecord, error) {
	records, err := readJSONRecords(path)
	if err != nil {
		return nil, fmt.Errorf("extracting orders from %s: %w", path, err)
	}
	log.Info().Int("count", len(records)).Str("path", path).Msg("extracted orders")
	return records, nil
}

// GetTransactions reads and decodes the transactions JSON file.
func (r *FileDatasetRepository) GetTransactions(ctx context.Context, path string) ([]domain.RawRecord, error) {
	records, err := readJSONRecords(path)
	if err != nil {
		return nil, fmt.Errorf("extracting transactions from %s: %w", path, err)
	}
	log.Info().Int("count", len(records)).Str("path", path).Msg("extracted transactions")
	return records, nil
}

// GetChargebacks reads and parses the chargebacks CSV file. The amount
// column is coerced to a number; everything else stays a string.
func (r *FileDatasetRepository) GetChargebacks(ctx context.Context, path string) ([]domain.RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open chargebacks file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var records []domain.RawRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		record := make(domain.RawRecord, len(header))
		for i, column := range header {
			if i >= len(row) {
				continue
			}
			if column == "amount" {
				amount, err := strconv.ParseFloat(row[i], 64)
				if err != nil {
					return nil, fmt.Errorf("could not parse amount '%s' in %s: %w", row[i], path, err)
				}
				record[column] = amount
				continue
			}
			record[column] = row[i]
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no data found in %s", path)
	}

	log.Info().Int("count", len(records)).Str("path", path).Msg("extracted chargebacks")
	return records, nil
}

func readJSONRecords(path string) ([]domain.RawRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var records []domain.RawRecord
	if err := json.NewDecoder(file).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no data found")
	}
	return records, nil
}
