package usecase

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"payment-reconciliation/internal/domain"
)

const (
	dailyMetricLayout = "02-01-2006"
	amountsWrapWidth  = 40
)

// MetricsEngine derives the five aggregate reporting views from the
// validated and reconciled tables. All aggregations are read-only and
// independent of each other.
type MetricsEngine struct {
	precision int32
}

// NewMetricsEngine creates an engine rounding rates to the given number
// of decimal places.
func NewMetricsEngine(precision int) *MetricsEngine {
	return &MetricsEngine{precision: int32(precision)}
}

// Calculate computes the full metrics bundle.
func (m *MetricsEngine) Calculate(reconciled []domain.ReconciledRecord, transactions []domain.Transaction, chargebacks []domain.Chargeback) *domain.MetricsBundle {
	log.Info().Msg("calculating the business metrics")

	bundle := &domain.MetricsBundle{
		DailyTransactions:         m.DailyMetrics(transactions),
		ChargebackRate:            m.ChargebackRates(reconciled),
		FailedTransactionAnalysis: m.FailedTransactionAnalysis(transactions),
		PaymentMethodPerformance:  m.PaymentMethodPerformance(transactions, chargebacks),
		PaymentSuccessRate:        m.PaymentSuccessRate(transactions),
	}

	log.Info().Msg("calculated the business metrics")
	return bundle
}

// PaymentSuccessRate is completed/total as a two-decimal percentage
// string. An empty transaction set yields "0.00%".
func (m *MetricsEngine) PaymentSuccessRate(transactions []domain.Transaction) string {
	completed := 0
	for _, tx := range transactions {
		if tx.Status == domain.TransactionStatusCompleted {
			completed++
		}
	}

	rate := 0.0
	if len(transactions) > 0 {
		rate = float64(completed) * 100 / float64(len(transactions))
	}
	return fmt.Sprintf("%.2f%%", rate)
}

// DailyMetrics groups completed transactions by calendar day and
// aggregates volume and amount value per day, ascending by day.
func (m *MetricsEngine) DailyMetrics(transactions []domain.Transaction) []domain.DailyMetric {
	type bucket struct {
		volume int
		value  float64
	}
	buckets := make(map[string]*bucket)

	for _, tx := range transactions {
		if tx.Status != domain.TransactionStatusCompleted {
			continue
		}
		day := tx.OccurredAt.Format(dailyMetricLayout)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.volume++
		b.value += tx.Amount
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool {
		a, _ := domain.ParseTimestamp(chronoKey(days[i]))
		b, _ := domain.ParseTimestamp(chronoKey(days[j]))
		return a.Before(b)
	})

	metrics := make([]domain.DailyMetric, 0, len(days))
	for _, day := range days {
		metrics = append(metrics, domain.DailyMetric{
			Day:    day,
			Volume: buckets[day].volume,
			Value:  buckets[day].value,
		})
	}
	return metrics
}

// ChargebackRates groups the reconciled dataset by payment method type
// and computes the share of disputed transactions per group.
func (m *MetricsEngine) ChargebackRates(reconciled []domain.ReconciledRecord) []domain.ChargebackRateMetric {
	type bucket struct {
		total    int
		disputed int
	}
	buckets := make(map[domain.PaymentMethodType]*bucket)

	for _, record := range reconciled {
		b, ok := buckets[record.PaymentMethodType]
		if !ok {
			b = &bucket{}
			buckets[record.PaymentMethodType] = b
		}
		b.total++
		if record.Disputed() {
			b.disputed++
		}
	}

	metrics := make([]domain.ChargebackRateMetric, 0, len(buckets))
	for _, methodType := range sortedMethodTypes(buckets) {
		b := buckets[methodType]
		metrics = append(metrics, domain.ChargebackRateMetric{
			PaymentMethodType: methodType,
			TotalTransactions: b.total,
			TotalChargebacks:  b.disputed,
			ChargebackRate:    m.round(float64(b.disputed) / float64(b.total) * 100),
		})
	}
	return metrics
}

// FailedTransactionAnalysis restricts to failed transactions, sums
// amounts per (payment method type, currency), then regroups by type
// alone with the per-currency sums rendered as a wrapped string.
func (m *MetricsEngine) FailedTransactionAnalysis(transactions []domain.Transaction) []domain.FailedTransactionMetric {
	type currencyBucket struct {
		count int
		value float64
	}
	buckets := make(map[domain.PaymentMethodType]map[string]*currencyBucket)

	for _, tx := range transactions {
		if tx.Status != domain.TransactionStatusFailed {
			continue
		}
		methodType := tx.PaymentMethod.Type
		if buckets[methodType] == nil {
			buckets[methodType] = make(map[string]*currencyBucket)
		}
		b, ok := buckets[methodType][tx.Currency]
		if !ok {
			b = &currencyBucket{}
			buckets[methodType][tx.Currency] = b
		}
		b.count++
		b.value += tx.Amount
	}

	metrics := make([]domain.FailedTransactionMetric, 0, len(buckets))
	for _, methodType := range sortedMethodTypes(buckets) {
		currencies := make([]string, 0, len(buckets[methodType]))
		for currency := range buckets[methodType] {
			currencies = append(currencies, currency)
		}
		sort.Strings(currencies)

		var amounts []domain.CurrencyAmount
		failedCount := 0
		for _, currency := range currencies {
			b := buckets[methodType][currency]
			amounts = append(amounts, domain.CurrencyAmount{
				Value:    m.round(b.value),
				Currency: currency,
			})
			failedCount += b.count
		}

		metrics = append(metrics, domain.FailedTransactionMetric{
			PaymentMethodType:      methodType,
			Amounts:                wrapText(formatAmounts(amounts), amountsWrapWidth),
			FailedTransactionCount: failedCount,
		})
	}
	return metrics
}

// PaymentMethodPerformance aggregates counts, amounts and rates per
// payment method type over all transactions. Disputed means the
// transaction appears in the chargebacks dataset. Each rate is the
// ratio rounded to the configured precision and then scaled by 100;
// the rounding must happen before scaling.
func (m *MetricsEngine) PaymentMethodPerformance(transactions []domain.Transaction, chargebacks []domain.Chargeback) []domain.PaymentMethodPerformance {
	disputedTxns := make(map[string]bool, len(chargebacks))
	for _, cb := range chargebacks {
		disputedTxns[cb.TransactionID] = true
	}

	type bucket struct {
		total     int
		completed int
		failed    int
		disputed  int
		amount    float64
	}
	buckets := make(map[domain.PaymentMethodType]*bucket)

	for _, tx := range transactions {
		b, ok := buckets[tx.PaymentMethod.Type]
		if !ok {
			b = &bucket{}
			buckets[tx.PaymentMethod.Type] = b
		}
		b.total++
		switch tx.Status {
		case domain.TransactionStatusCompleted:
			b.completed++
		case domain.TransactionStatusFailed:
			b.failed++
		}
		if disputedTxns[tx.TransactionID] {
			b.disputed++
		}
		b.amount += tx.Amount
	}

	metrics := make([]domain.PaymentMethodPerformance, 0, len(buckets))
	for _, methodType := range sortedMethodTypes(buckets) {
		b := buckets[methodType]
		metrics = append(metrics, domain.PaymentMethodPerformance{
			PaymentMethodType:     methodType,
			TotalTransactions:     b.total,
			CompletedTransactions: b.completed,
			FailedTransactions:    b.failed,
			DisputedTransactions:  b.disputed,
			TotalAmount:           b.amount,
			AverageAmount:         b.amount / float64(b.total),
			SuccessRate:           m.round(float64(b.completed)/float64(b.total)) * 100,
			FailureRate:           m.round(float64(b.failed)/float64(b.total)) * 100,
			DisputeRate:           m.round(float64(b.disputed)/float64(b.total)) * 100,
		})
	}
	return metrics
}

func (m *MetricsEngine) round(v float64) float64 {
	rounded, _ := decimal.NewFromFloat(v).Round(m.precision).Float64()
	return rounded
}

// sortedMethodTypes returns the group keys in lexical order so output
// is deterministic run to run.
func sortedMethodTypes[V any](buckets map[domain.PaymentMethodType]V) []domain.PaymentMethodType {
	keys := make([]domain.PaymentMethodType, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// chronoKey converts a dd-mm-yyyy day label back to yyyy-mm-dd for
// chronological comparison.
func chronoKey(day string) string {
	parts := strings.Split(day, "-")
	if len(parts) != 3 {
		return day
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

func formatAmounts(amounts []domain.CurrencyAmount) string {
	parts := make([]string, 0, len(amounts))
	for _, a := range amounts {
		parts = append(parts, fmt.Sprintf("{value: %s, currency: %s}", strconv.FormatFloat(a.Value, 'f', -1, 64), a.Currency))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// wrapText greedily wraps s on spaces to the given width for fixed-width
// table display.
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return s
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
