package usecase

import (
	"context"

	"payment-reconciliation/internal/domain"
)

// DatasetRepository defines the interface for fetching the raw batch
// datasets. The usecase layer depends on this interface, not on a
// concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go DatasetRepository
type DatasetRepository interface {
	GetOrders(ctx context.Context, path string) ([]domain.RawRecord, error)
	GetTransactions(ctx context.Context, path string) ([]domain.RawRecord, error)
	GetChargebacks(ctx context.Context, path string) ([]domain.RawRecord, error)
}
