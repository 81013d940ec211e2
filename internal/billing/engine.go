// Package billing derives invoice money figures from line items. Every
// computation is pure and runs over decimals so the displayed totals always
// equal the sum of the edited rows, regardless of how often they are
// recomputed.
package billing

import (
	"github.com/shopspring/decimal"

	"vetadmin/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// LineInput are the four user-editable fields of an invoice row. Callers
// validate ranges (quantity > 0, percentages within [0,100]) before calling
// in; the engine itself does not re-validate.
type LineInput struct {
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	TaxRate         decimal.Decimal
	DiscountPercent decimal.Decimal
}

// LineInputFromFloats builds a LineInput from wire-format numbers.
func LineInputFromFloats(quantity, unitPrice, taxRate, discountPercent float64) LineInput {
	return LineInput{
		Quantity:        decimal.NewFromFloat(quantity),
		UnitPrice:       decimal.NewFromFloat(unitPrice),
		TaxRate:         decimal.NewFromFloat(taxRate),
		DiscountPercent: decimal.NewFromFloat(discountPercent),
	}
}

// LineInputFromItem lifts a persisted invoice item into engine inputs.
func LineInputFromItem(item entity.InvoiceItem) LineInput {
	return LineInputFromFloats(item.Quantity, item.UnitPrice, item.TaxRate, item.DiscountPercent)
}

// LineBreakdown is the per-row money decomposition. Base, Discount, Net and
// Tax keep full precision; LineTotal is rounded to currency precision.
type LineBreakdown struct {
	Base      decimal.Decimal
	Discount  decimal.Decimal
	Net       decimal.Decimal
	Tax       decimal.Decimal
	LineTotal decimal.Decimal
}

// ComputeLine derives one row's figures:
//
//	base     = quantity * unitPrice
//	discount = base * discountPercent/100
//	net      = base - discount
//	tax      = net * taxRate/100
//	total    = round2(net + tax)
func ComputeLine(in LineInput) LineBreakdown {
	base := in.Quantity.Mul(in.UnitPrice)
	discount := base.Mul(in.DiscountPercent).Div(hundred)
	net := base.Sub(discount)
	tax := net.Mul(in.TaxRate).Div(hundred)

	return LineBreakdown{
		Base:      base,
		Discount:  discount,
		Net:       net,
		Tax:       tax,
		LineTotal: round2(net.Add(tax)),
	}
}

// LineTotal is the wire-format convenience over ComputeLine, used when
// attaching the client-computed total to create/update requests.
func LineTotal(quantity, unitPrice, taxRate, discountPercent float64) float64 {
	total, _ := ComputeLine(LineInputFromFloats(quantity, unitPrice, taxRate, discountPercent)).LineTotal.Float64()

	return total
}

// Totals is the invoice-level summary: subtotal is the post-discount
// pre-tax sum, grand total is subtotal plus tax.
type Totals struct {
	Subtotal       decimal.Decimal
	DiscountAmount decimal.Decimal
	TaxAmount      decimal.Decimal
	GrandTotal     decimal.Decimal
}

// ComputeTotals recomputes the summary in full from the persisted line
// items. It is never patched incrementally; an empty list yields all zeros.
func ComputeTotals(items []entity.InvoiceItem) Totals {
	subtotal := decimal.Zero
	discount := decimal.Zero
	tax := decimal.Zero

	for _, item := range items {
		line := ComputeLine(LineInputFromItem(item))
		subtotal = subtotal.Add(line.Net)
		discount = discount.Add(line.Discount)
		tax = tax.Add(line.Tax)
	}

	subtotal = round2(subtotal)
	discount = round2(discount)
	tax = round2(tax)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		GrandTotal:     round2(subtotal.Add(tax)),
	}
}

// Floats returns the summary in wire format.
func (t Totals) Floats() (subtotal, discountAmount, taxAmount, grandTotal float64) {
	subtotal, _ = t.Subtotal.Float64()
	discountAmount, _ = t.DiscountAmount.Float64()
	taxAmount, _ = t.TaxAmount.Float64()
	grandTotal, _ = t.GrandTotal.Float64()

	return subtotal, discountAmount, taxAmount, grandTotal
}

// round2 rounds half-up to two decimal places, matching currency
// minor-unit display. Inputs are never negative, so round-half-away-from-
// zero and round-half-up coincide.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
