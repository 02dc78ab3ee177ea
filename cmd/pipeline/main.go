package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"payment-reconciliation/internal/config"
	"payment-reconciliation/internal/gateway"
	"payment-reconciliation/internal/render"
	"payment-reconciliation/internal/usecase"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With().Timestamp().Logger()

	cfg := config.Load()

	// --- Dependency Injection (Wiring the application) ---
	// Done manually, which is clear and simple for a pipeline this size.

	// 1. Create the repository (the outermost layer)
	repo := gateway.NewFileDatasetRepository()

	// 2. Create the usecase and inject the repository (the core logic layer)
	pipeline := usecase.NewPipeline(repo, cfg.Precision)

	// --- Execute the pipeline ---
	log.Info().Msg("starting the data pipeline")
	start := time.Now()

	metrics, err := pipeline.Run(context.Background(), cfg.OrdersPath, cfg.TransactionsPath, cfg.ChargebacksPath)
	if err != nil {
		log.Error().Err(err).Msg("error in data pipeline")
		os.Exit(1)
	}

	// --- Present the output ---
	render.PrintAnalysis(os.Stdout, metrics)

	log.Info().Dur("elapsed", time.Since(start)).Msg("data pipeline completed successfully")
}
