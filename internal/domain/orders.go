package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the settlement state of an order.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// itemSumPrecision is the number of decimal places the item sum is
// rounded to before comparing against the order total.
const itemSumPrecision = 6

// Item is a single order line. It has no identity outside its order.
type Item struct {
	ProductID string  `json:"product_id" validate:"required,min=6,max=30"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unit_price" validate:"gt=0"`
}

// Order represents a customer order from the orders JSON dump.
type Order struct {
	OrderID       string        `json:"order_id" validate:"required,min=6,max=30"`
	CustomerID    string        `json:"customer_id" validate:"required,len=36"`
	Timestamp     string        `json:"timestamp" validate:"required,calendardate"`
	TotalAmount   float64       `json:"total_amount" validate:"gt=0"`
	Currency      string        `json:"currency" validate:"required,oneof=USD EUR GBP INR AUD CAD"`
	Items         []Item        `json:"items" validate:"required,min=1,dive"`
	PaymentStatus PaymentStatus `json:"payment_status" validate:"required,oneof=paid failed refunded"`

	// OccurredAt is set by the normalizer from Timestamp.
	OccurredAt time.Time `json:"-"`
}

// CheckTotals verifies that the order total equals the sum of its item
// amounts once the sum is rounded to six decimal places.
func (o *Order) CheckTotals() error {
	sum := decimal.Zero
	for _, item := range o.Items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	sum = sum.Round(itemSumPrecision)

	if !sum.Equal(decimal.NewFromFloat(o.TotalAmount)) {
		return &ValidationError{
			Entity: "order",
			Key:    o.OrderID,
			Rule:   "total_amount",
			Detail: fmt.Sprintf("total amount %v does not match sum of item amounts %v", o.TotalAmount, sum),
		}
	}
	return nil
}
