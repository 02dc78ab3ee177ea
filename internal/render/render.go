// Package render prints the metrics bundle as grid tables. It carries
// no decision logic; every number is computed upstream.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"payment-reconciliation/internal/domain"
)

// PrintAnalysis writes every metrics view to w in a fixed order.
func PrintAnalysis(w io.Writer, metrics *domain.MetricsBundle) {
	fmt.Fprintln(w, "Daily Transaction Metrics:")
	printDailyTransactions(w, metrics.DailyTransactions)

	fmt.Fprintln(w, "\nChargeback Rate by Payment Method:")
	printChargebackRates(w, metrics.ChargebackRate)

	fmt.Fprintln(w, "\nFailed Transaction Analysis:")
	printFailedAnalysis(w, metrics.FailedTransactionAnalysis)

	fmt.Fprintln(w, "\nPayment method performance:")
	printPerformance(w, metrics.PaymentMethodPerformance)

	fmt.Fprintf(w, "\nPayment Success Rate: %s\n", metrics.PaymentSuccessRate)
}

func printDailyTransactions(w io.Writer, rows []domain.DailyMetric) {
	table := newTable(w, []string{"day", "volume", "value"})
	for _, row := range rows {
		table.Append([]string{row.Day, strconv.Itoa(row.Volume), formatFloat(row.Value)})
	}
	table.Render()
}

func printChargebackRates(w io.Writer, rows []domain.ChargebackRateMetric) {
	table := newTable(w, []string{"payment method", "total transactions", "total chargebacks", "chargeback rate"})
	for _, row := range rows {
		table.Append([]string{
			string(row.PaymentMethodType),
			strconv.Itoa(row.TotalTransactions),
			strconv.Itoa(row.TotalChargebacks),
			formatFloat(row.ChargebackRate),
		})
	}
	table.Render()
}

func printFailedAnalysis(w io.Writer, rows []domain.FailedTransactionMetric) {
	table := newTable(w, []string{"payment method", "amounts", "failed transaction count"})
	for _, row := range rows {
		table.Append([]string{string(row.PaymentMethodType), row.Amounts, strconv.Itoa(row.FailedTransactionCount)})
	}
	table.Render()
}

func printPerformance(w io.Writer, rows []domain.PaymentMethodPerformance) {
	table := newTable(w, []string{
		"payment method", "total", "completed", "failed", "disputed",
		"total amount", "average amount", "success rate", "failure rate", "dispute rate",
	})
	for _, row := range rows {
		table.Append([]string{
			string(row.PaymentMethodType),
			strconv.Itoa(row.TotalTransactions),
			strconv.Itoa(row.CompletedTransactions),
			strconv.Itoa(row.FailedTransactions),
			strconv.Itoa(row.DisputedTransactions),
			formatFloat(row.TotalAmount),
			formatFloat(row.AverageAmount),
			formatFloat(row.SuccessRate),
			formatFloat(row.FailureRate),
			formatFloat(row.DisputeRate),
		})
	}
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetRowLine(true)
	return table
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
