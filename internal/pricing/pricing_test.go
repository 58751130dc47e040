package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuote(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     float64
		wantShipping float64
		wantTax      float64
		wantTotal    float64
	}{
		{
			name:         "Single item below threshold",
			subtotal:     49.99,
			wantShipping: 5.99,
			wantTax:      4.00, // 49.99 * 0.08 = 3.9992, rounded up
			wantTotal:    59.98,
		},
		{
			name:         "Exactly at threshold still pays shipping",
			subtotal:     50.00,
			wantShipping: 5.99,
			wantTax:      4.00,
			wantTotal:    59.99,
		},
		{
			name:         "Just above threshold ships free",
			subtotal:     50.01,
			wantShipping: 0,
			wantTax:      4.00,
			wantTotal:    54.01,
		},
		{
			name:         "Larger cart",
			subtotal:     104.97,
			wantShipping: 0,
			wantTax:      8.40,
			wantTotal:    113.37,
		},
		{
			name:         "Cheap single item",
			subtotal:     19.99,
			wantShipping: 5.99,
			wantTax:      1.60,
			wantTotal:    27.58,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := NewQuote(tt.subtotal)
			assert.InDelta(t, tt.subtotal, quote.Subtotal, 0.001)
			assert.InDelta(t, tt.wantShipping, quote.Shipping, 0.001)
			assert.InDelta(t, tt.wantTax, quote.Tax, 0.001)
			assert.InDelta(t, tt.wantTotal, quote.Total, 0.001)
		})
	}
}

func TestQuoteConsistency(t *testing.T) {
	for _, subtotal := range []float64{0.01, 12.34, 49.99, 50.00, 50.01, 99.99, 123.45} {
		quote := NewQuote(subtotal)
		assert.InDelta(t, quote.Subtotal+quote.Shipping+quote.Tax, quote.Total, 0.005,
			"total must equal subtotal + shipping + tax for %v", subtotal)
	}
}

func TestRound(t *testing.T) {
	assert.InDelta(t, 4.00, Round(3.9992), 0.0001)
	assert.InDelta(t, 1.60, Round(1.5992), 0.0001)
	assert.InDelta(t, 0.00, Round(0.004), 0.0001)
	assert.InDelta(t, 0.01, Round(0.005), 0.0001)
}

func TestAmountToFreeShipping(t *testing.T) {
	assert.InDelta(t, 25.01, AmountToFreeShipping(24.99), 0.001)
	assert.InDelta(t, 0, AmountToFreeShipping(50.01), 0.001)
	assert.InDelta(t, 0, AmountToFreeShipping(120), 0.001)
}
