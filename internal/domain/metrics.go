package domain

// DailyMetric aggregates completed transactions for one calendar day.
type DailyMetric struct {
	Day    string  `json:"day"` // dd-mm-yyyy
	Volume int     `json:"volume"`
	Value  float64 `json:"value"`
}

// ChargebackRateMetric is the chargeback rate for one payment method type.
type ChargebackRateMetric struct {
	PaymentMethodType PaymentMethodType `json:"payment_method_type"`
	TotalTransactions int               `json:"total_transactions"`
	TotalChargebacks  int               `json:"total_chargebacks"`
	ChargebackRate    float64           `json:"chargeback_rate"`
}

// CurrencyAmount pairs a rounded amount sum with its currency.
type CurrencyAmount struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

// FailedTransactionMetric summarizes failed transactions for one
// payment method type across all currencies. Amounts is the per-currency
// breakdown rendered as a fixed-width-wrapped string for display.
type FailedTransactionMetric struct {
	PaymentMethodType      PaymentMethodType `json:"payment_method_type"`
	Amounts                string            `json:"amounts"`
	FailedTransactionCount int               `json:"failed_transaction_count"`
}

// PaymentMethodPerformance holds counts, amounts and rates for one
// payment method type.
type PaymentMethodPerformance struct {
	PaymentMethodType     PaymentMethodType `json:"payment_method_type"`
	TotalTransactions     int               `json:"total_transactions"`
	CompletedTransactions int               `json:"completed_transactions"`
	FailedTransactions    int               `json:"failed_transactions"`
	DisputedTransactions  int               `json:"disputed_transactions"`
	TotalAmount           float64           `json:"total_amount"`
	AverageAmount         float64           `json:"average_amount"`
	SuccessRate           float64           `json:"success_rate"`
	FailureRate           float64           `json:"failure_rate"`
	DisputeRate           float64           `json:"dispute_rate"`
}

// MetricsBundle is the full output of the metrics engine, consumed by
// the presentation layer.
type MetricsBundle struct {
	DailyTransactions         []DailyMetric              `json:"daily_transactions"`
	ChargebackRate            []ChargebackRateMetric     `json:"chargeback_rate"`
	FailedTransactionAnalysis []FailedTransactionMetric  `json:"failed_transaction_analysis"`
	PaymentMethodPerformance  []PaymentMethodPerformance `json:"payment_method_performance"`
	PaymentSuccessRate        string                     `json:"payment_success_rate"`
}
