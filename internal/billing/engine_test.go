package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetadmin/internal/domain/entity"
)

func TestComputeLine_Breakdown(t *testing.T) {
	line := ComputeLine(LineInputFromFloats(2, 50, 8, 10))

	assert.True(t, line.Base.Equal(decimal.NewFromInt(100)), "base = %s", line.Base)
	assert.True(t, line.Discount.Equal(decimal.NewFromInt(10)), "discount = %s", line.Discount)
	assert.True(t, line.Net.Equal(decimal.NewFromInt(90)), "net = %s", line.Net)
	assert.True(t, line.Tax.Equal(decimal.RequireFromString("7.2")), "tax = %s", line.Tax)
	assert.Equal(t, "97.20", line.LineTotal.StringFixed(2))
}

func TestComputeLine_ZeroRates(t *testing.T) {
	line := ComputeLine(LineInputFromFloats(3, 19.99, 0, 0))

	assert.True(t, line.Discount.IsZero())
	assert.True(t, line.Tax.IsZero())
	assert.Equal(t, "59.97", line.LineTotal.StringFixed(2))
}

func TestComputeLine_RoundsHalfUp(t *testing.T) {
	// 3 * 0.335 = 1.005, which must round up, not bankers-round down.
	line := ComputeLine(LineInputFromFloats(3, 0.335, 0, 0))

	assert.Equal(t, "1.01", line.LineTotal.StringFixed(2))
}

func TestComputeLine_FractionalQuantity(t *testing.T) {
	// 1.5 units at 33.30 with 5% tax: net 49.95, tax 2.4975, total 52.45.
	line := ComputeLine(LineInputFromFloats(1.5, 33.30, 5, 0))

	assert.Equal(t, "52.45", line.LineTotal.StringFixed(2))
}

func TestLineTotal_MatchesComputeLine(t *testing.T) {
	assert.InDelta(t, 97.20, LineTotal(2, 50, 8, 10), 1e-9)
	assert.InDelta(t, 0, LineTotal(1, 0, 20, 50), 1e-9)
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.TaxAmount.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
}

func TestComputeTotals_AggregatesUnroundedLines(t *testing.T) {
	items := []entity.InvoiceItem{
		{Quantity: 2, UnitPrice: 50, TaxRate: 8, DiscountPercent: 10},
		{Quantity: 1, UnitPrice: 19.99, TaxRate: 8, DiscountPercent: 0},
	}

	totals := ComputeTotals(items)

	// nets: 90 + 19.99; taxes: 7.2 + 1.5992 -> rounded per aggregate.
	assert.Equal(t, "109.99", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "10.00", totals.DiscountAmount.StringFixed(2))
	assert.Equal(t, "8.80", totals.TaxAmount.StringFixed(2))
	assert.Equal(t, "118.79", totals.GrandTotal.StringFixed(2))
}

func TestComputeTotals_GrandTotalFromRoundedParts(t *testing.T) {
	// Aggregates are rounded before the grand total is formed, so the
	// invoice face amount always equals subtotal + tax as displayed.
	items := []entity.InvoiceItem{
		{Quantity: 1, UnitPrice: 10.004, TaxRate: 0, DiscountPercent: 0},
		{Quantity: 1, UnitPrice: 10.004, TaxRate: 0, DiscountPercent: 0},
	}

	totals := ComputeTotals(items)

	require.Equal(t, "20.01", totals.Subtotal.StringFixed(2))
	assert.True(t, totals.GrandTotal.Equal(totals.Subtotal.Add(totals.TaxAmount)))
}

func TestComputeTotals_Floats(t *testing.T) {
	items := []entity.InvoiceItem{
		{Quantity: 2, UnitPrice: 50, TaxRate: 8, DiscountPercent: 10},
	}

	subtotal, discount, tax, grand := ComputeTotals(items).Floats()

	assert.InDelta(t, 90.0, subtotal, 1e-9)
	assert.InDelta(t, 10.0, discount, 1e-9)
	assert.InDelta(t, 7.2, tax, 1e-9)
	assert.InDelta(t, 97.2, grand, 1e-9)
}
