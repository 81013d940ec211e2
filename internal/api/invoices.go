package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/billing"
	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// Invoices is the invoice resource client. Monetary summary fields are
// never edited by hand: SyncTotals recomputes them from the line items
// through the billing package.
type Invoices struct {
	gw *gateway.Gateway
}

// NewInvoices is the constructor for Invoices.
func NewInvoices(gw *gateway.Gateway) *Invoices {
	return &Invoices{gw: gw}
}

// List returns one page of invoices.
func (c *Invoices) List(ctx context.Context, page, size int) (*entity.Page[entity.Invoice], error) {
	var out entity.Page[entity.Invoice]
	if err := c.gw.Get(ctx, "invoices", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single invoice.
func (c *Invoices) Get(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var out entity.Invoice
	if err := c.gw.Get(ctx, "invoices/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByOwner returns an owner's invoices.
func (c *Invoices) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Invoice, error) {
	var out []entity.Invoice
	if err := c.gw.Get(ctx, "invoices/by-owner/"+ownerID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ByStatus returns the invoices in one settlement state.
func (c *Invoices) ByStatus(ctx context.Context, status entity.InvoiceStatus) ([]entity.Invoice, error) {
	var out []entity.Invoice
	if err := c.gw.Get(ctx, "invoices/by-status/"+string(status), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create opens an invoice, usually as a draft with no items yet.
func (c *Invoices) Create(ctx context.Context, req entity.CreateInvoiceRequest) (*entity.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Invoice
	if err := c.gw.Post(ctx, "invoices", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes an invoice.
func (c *Invoices) Update(ctx context.Context, id uuid.UUID, req entity.UpdateInvoiceRequest) (*entity.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.Invoice
	if err := c.gw.Put(ctx, "invoices/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes an invoice.
func (c *Invoices) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "invoices/"+id.String())
}

// SyncTotals recomputes an invoice's summary fields from its current
// line items and writes them back. Call it after any item mutation.
func (c *Invoices) SyncTotals(ctx context.Context, items *InvoiceItems, invoiceID uuid.UUID) (*entity.Invoice, error) {
	lines, err := items.ByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	totals := billing.ComputeTotals(lines)
	subtotal, discount, tax, grand := totals.Floats()

	return c.Update(ctx, invoiceID, entity.UpdateInvoiceRequest{
		Subtotal:       &subtotal,
		DiscountAmount: &discount,
		TaxAmount:      &tax,
		Total:          &grand,
	})
}

// InvoiceItems is the invoice line-item client. It owns the pricing
// math for a line: percent inputs are clamped to [0, 100] and the line
// total is always recomputed before anything is sent.
type InvoiceItems struct {
	gw *gateway.Gateway
}

// NewInvoiceItems is the constructor for InvoiceItems.
func NewInvoiceItems(gw *gateway.Gateway) *InvoiceItems {
	return &InvoiceItems{gw: gw}
}

// Get returns a single line item.
func (c *InvoiceItems) Get(ctx context.Context, id uuid.UUID) (*entity.InvoiceItem, error) {
	var out entity.InvoiceItem
	if err := c.gw.Get(ctx, "invoice-items/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByInvoice returns an invoice's line items in sort order.
func (c *InvoiceItems) ByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error) {
	var out []entity.InvoiceItem
	if err := c.gw.Get(ctx, "invoice-items/by-invoice/"+invoiceID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create adds a line item. The request's LineTotal is overwritten with
// the locally computed value.
func (c *InvoiceItems) Create(ctx context.Context, req entity.CreateInvoiceItemRequest) (*entity.InvoiceItem, error) {
	req.TaxRate = clampPercent(req.TaxRate)
	req.DiscountPercent = clampPercent(req.DiscountPercent)
	req.LineTotal = billing.LineTotal(req.Quantity, req.UnitPrice, req.TaxRate, req.DiscountPercent)

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.InvoiceItem
	if err := c.gw.Post(ctx, "invoice-items", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a line item. When any pricing input changes, the
// current item is fetched so the line total can be recomputed from the
// merged inputs.
func (c *InvoiceItems) Update(ctx context.Context, id uuid.UUID, req entity.UpdateInvoiceItemRequest) (*entity.InvoiceItem, error) {
	if req.TaxRate != nil {
		clamped := clampPercent(*req.TaxRate)
		req.TaxRate = &clamped
	}
	if req.DiscountPercent != nil {
		clamped := clampPercent(*req.DiscountPercent)
		req.DiscountPercent = &clamped
	}

	if req.Quantity != nil || req.UnitPrice != nil || req.TaxRate != nil || req.DiscountPercent != nil {
		current, err := c.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		quantity := orCurrent(req.Quantity, current.Quantity)
		unitPrice := orCurrent(req.UnitPrice, current.UnitPrice)
		taxRate := orCurrent(req.TaxRate, current.TaxRate)
		discount := orCurrent(req.DiscountPercent, current.DiscountPercent)

		lineTotal := billing.LineTotal(quantity, unitPrice, taxRate, discount)
		req.LineTotal = &lineTotal
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.InvoiceItem
	if err := c.gw.Put(ctx, "invoice-items/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a line item.
func (c *InvoiceItems) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "invoice-items/"+id.String())
}

func orCurrent(updated *float64, current float64) float64 {
	if updated != nil {
		return *updated
	}

	return current
}
