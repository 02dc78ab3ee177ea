package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"payment-reconciliation/internal/domain"
)

// Pipeline orchestrates the batch run: extract, clean, validate,
// normalize, reconcile, and derive metrics. Stages run strictly in
// sequence; each consumes the output of the previous one. Any violation
// anywhere aborts the whole run.
type Pipeline struct {
	repo       DatasetRepository
	validator  *Validator
	normalizer *Normalizer
	reconciler *Reconciler
	metrics    *MetricsEngine
}

// NewPipeline creates a new instance of the usecase. Rates in the
// metrics views are rounded to the given precision.
func NewPipeline(repo DatasetRepository, precision int) *Pipeline {
	return &Pipeline{
		repo:       repo,
		validator:  NewValidator(),
		normalizer: NewNormalizer(),
		reconciler: NewReconciler(),
		metrics:    NewMetricsEngine(precision),
	}
}

// Run executes the full pipeline over the three dataset files and
// returns the metrics bundle.
func (p *Pipeline) Run(ctx context.Context, ordersPath, transactionsPath, chargebacksPath string) (*domain.MetricsBundle, error) {
	// Step 1: Extraction
	log.Info().Msg("starting extraction of the data from the data sources")
	rawOrders, err := p.repo.GetOrders(ctx, ordersPath)
	if err != nil {
		return nil, fmt.Errorf("could not get orders: %w", err)
	}
	rawTransactions, err := p.repo.GetTransactions(ctx, transactionsPath)
	if err != nil {
		return nil, fmt.Errorf("could not get transactions: %w", err)
	}
	rawChargebacks, err := p.repo.GetChargebacks(ctx, chargebacksPath)
	if err != nil {
		return nil, fmt.Errorf("could not get chargebacks: %w", err)
	}

	// Step 2: Cleaning
	rawOrders = CleanDataset("orders", "order_id", rawOrders)
	rawTransactions = CleanDataset("transactions", "transaction_id", rawTransactions)
	rawChargebacks = CleanDataset("chargebacks", "transaction_id", rawChargebacks)

	// Step 3: Validation (transactions include the cross-entity
	// amount-consistency check against the validated orders)
	orders, err := p.validator.Orders(rawOrders)
	if err != nil {
		return nil, fmt.Errorf("order validation failed: %w", err)
	}
	transactions, err := p.validator.Transactions(rawTransactions, orders)
	if err != nil {
		return nil, fmt.Errorf("transaction validation failed: %w", err)
	}
	chargebacks, err := p.validator.Chargebacks(rawChargebacks)
	if err != nil {
		return nil, fmt.Errorf("chargeback validation failed: %w", err)
	}

	// Step 4: Normalization and reconciliation
	orders, err = p.normalizer.Orders(orders)
	if err != nil {
		return nil, err
	}
	transactions, err = p.normalizer.Transactions(transactions)
	if err != nil {
		return nil, err
	}
	chargebacks, err = p.normalizer.Chargebacks(chargebacks)
	if err != nil {
		return nil, err
	}
	reconciled, err := p.reconciler.Reconcile(transactions, orders, chargebacks)
	if err != nil {
		return nil, fmt.Errorf("reconciliation failed: %w", err)
	}

	// Step 5: Metrics
	return p.metrics.Calculate(reconciled, transactions, chargebacks), nil
}
