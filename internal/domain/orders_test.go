package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder_CheckTotals(t *testing.T) {
	tests := []struct {
		name    string
		order   Order
		wantErr bool
	}{
		{
			name: "total matches item sum",
			order: Order{
				OrderID:     "ORD000001",
				TotalAmount: 20.00,
				Items: []Item{
					{ProductID: "PRD000001", Quantity: 2, UnitPrice: 10.00},
				},
			},
			wantErr: false,
		},
		{
			name: "total matches sum across multiple items",
			order: Order{
				OrderID:     "ORD000002",
				TotalAmount: 35.50,
				Items: []Item{
					{ProductID: "PRD000001", Quantity: 1, UnitPrice: 10.00},
					{ProductID: "PRD000002", Quantity: 3, UnitPrice: 8.50},
				},
			},
			wantErr: false,
		},
		{
			name: "float artifacts are absorbed by six-decimal rounding",
			order: Order{
				OrderID:     "ORD000003",
				TotalAmount: 0.30,
				Items: []Item{
					{ProductID: "PRD000001", Quantity: 3, UnitPrice: 0.10},
				},
			},
			wantErr: false,
		},
		{
			name: "deviation below rounding threshold is accepted",
			order: Order{
				OrderID:     "ORD000004",
				TotalAmount: 1.00,
				Items: []Item{
					{ProductID: "PRD000001", Quantity: 1, UnitPrice: 1.00000004},
				},
			},
			wantErr: false,
		},
		{
			name: "total does not match item sum",
			order: Order{
				OrderID:     "ORD000005",
				TotalAmount: 20.01,
				Items: []Item{
					{ProductID: "PRD000001", Quantity: 2, UnitPrice: 10.00},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.CheckTotals()
			if tt.wantErr {
				assert.Error(t, err)

				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
				assert.Equal(t, "order", verr.Entity)
				assert.Equal(t, tt.order.OrderID, verr.Key)
				assert.Equal(t, "total_amount", verr.Rule)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
