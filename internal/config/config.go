package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultPrecision = 2

// Config carries the settings the pipeline reads from the environment.
type Config struct {
	OrdersPath       string
	TransactionsPath string
	ChargebacksPath  string
	Precision        int
}

// Load reads configuration from the environment, after loading a .env
// file when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		OrdersPath:       getEnv("ORDERS_FILE_PATH", "data/orders.json"),
		TransactionsPath: getEnv("TRANSACTIONS_FILE_PATH", "data/transactions.json"),
		ChargebacksPath:  getEnv("CHARGEBACKS_FILE_PATH", "data/chargebacks.csv"),
		Precision:        getEnvInt("PRECISION_LIMIT", defaultPrecision),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
