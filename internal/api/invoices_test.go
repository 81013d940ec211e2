package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetadmin/config"
	"vetadmin/internal/domain/entity"
	domainerrors "vetadmin/internal/domain/errors"
	"vetadmin/internal/errors"
	"vetadmin/internal/gateway"
	"vetadmin/internal/infra/credfile"
	"vetadmin/internal/session"
)

func newTestGateway(t *testing.T, handler http.Handler) *gateway.Gateway {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.API.BaseURL = server.URL
	cfg.API.Timeout = 5 * time.Second

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sess := session.NewManager(credfile.NewAtPath(filepath.Join(t.TempDir(), "credentials.json")), logger)
	require.NoError(t, sess.Establish(entity.User{Email: "vet@clinic.example"}, "access-1", "refresh-1", "clinic-1"))

	return gateway.New(cfg, sess, logger)
}

func TestInvoices_ByStatusUsesPathSegment(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /invoices/by-status/PAID", func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_ = json.NewEncoder(w).Encode([]entity.Invoice{{ID: uuid.New(), Status: entity.InvoicePaid}})
	})

	invoices := NewInvoices(newTestGateway(t, mux))

	found, err := invoices.ByStatus(context.Background(), entity.InvoicePaid)
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.Equal(t, entity.InvoicePaid, found[0].Status)
}

func TestInvoiceItems_CreateComputesLineTotal(t *testing.T) {
	var received entity.CreateInvoiceItemRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /invoice-items", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(entity.InvoiceItem{
			ID:        uuid.New(),
			LineTotal: received.LineTotal,
		})
	})

	items := NewInvoiceItems(newTestGateway(t, mux))

	created, err := items.Create(context.Background(), entity.CreateInvoiceItemRequest{
		InvoiceID:       uuid.New(),
		Description:     "Consultation",
		Quantity:        2,
		UnitPrice:       50,
		TaxRate:         8,
		DiscountPercent: 10,
		LineTotal:       999, // caller-supplied value must be overwritten
	})
	require.NoError(t, err)

	assert.InDelta(t, 97.20, received.LineTotal, 1e-9)
	assert.InDelta(t, 97.20, created.LineTotal, 1e-9)
}

func TestInvoiceItems_CreateClampsPercentInputs(t *testing.T) {
	var received entity.CreateInvoiceItemRequest
	mux := http.NewServeMux()
	mux.HandleFunc("POST /invoice-items", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(entity.InvoiceItem{ID: uuid.New()})
	})

	items := NewInvoiceItems(newTestGateway(t, mux))

	_, err := items.Create(context.Background(), entity.CreateInvoiceItemRequest{
		InvoiceID:       uuid.New(),
		Description:     "Consultation",
		Quantity:        1,
		UnitPrice:       100,
		TaxRate:         150,
		DiscountPercent: -20,
	})
	require.NoError(t, err)

	assert.InDelta(t, 100, received.TaxRate, 1e-9)
	assert.InDelta(t, 0, received.DiscountPercent, 1e-9)
	// 100 net, clamped 100% tax doubles it.
	assert.InDelta(t, 200, received.LineTotal, 1e-9)
}

func TestInvoiceItems_CreateRejectsZeroQuantity(t *testing.T) {
	items := NewInvoiceItems(newTestGateway(t, http.NewServeMux()))

	_, err := items.Create(context.Background(), entity.CreateInvoiceItemRequest{
		InvoiceID:   uuid.New(),
		Description: "Consultation",
		Quantity:    0,
		UnitPrice:   50,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestInvoiceItems_UpdateMergesCurrentInputs(t *testing.T) {
	itemID := uuid.New()
	current := entity.InvoiceItem{
		ID:              itemID,
		Quantity:        2,
		UnitPrice:       50,
		TaxRate:         8,
		DiscountPercent: 10,
		LineTotal:       97.20,
	}

	var received entity.UpdateInvoiceItemRequest
	mux := http.NewServeMux()
	mux.HandleFunc("GET /invoice-items/"+itemID.String(), func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(current)
	})
	mux.HandleFunc("PUT /invoice-items/"+itemID.String(), func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(current)
	})

	items := NewInvoiceItems(newTestGateway(t, mux))

	newQuantity := 3.0
	_, err := items.Update(context.Background(), itemID, entity.UpdateInvoiceItemRequest{
		Quantity: &newQuantity,
	})
	require.NoError(t, err)

	// 3 * 50 = 150, minus 10% = 135, plus 8% tax = 145.80.
	require.NotNil(t, received.LineTotal)
	assert.InDelta(t, 145.80, *received.LineTotal, 1e-9)
}

func TestInvoiceItems_UpdateWithoutPricingSkipsFetch(t *testing.T) {
	itemID := uuid.New()

	var fetched bool
	var received entity.UpdateInvoiceItemRequest
	mux := http.NewServeMux()
	mux.HandleFunc("GET /invoice-items/"+itemID.String(), func(w http.ResponseWriter, r *http.Request) {
		fetched = true
		_ = json.NewEncoder(w).Encode(entity.InvoiceItem{ID: itemID})
	})
	mux.HandleFunc("PUT /invoice-items/"+itemID.String(), func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(entity.InvoiceItem{ID: itemID})
	})

	items := NewInvoiceItems(newTestGateway(t, mux))

	description := "Updated description"
	_, err := items.Update(context.Background(), itemID, entity.UpdateInvoiceItemRequest{
		Description: &description,
	})
	require.NoError(t, err)

	assert.False(t, fetched)
	assert.Nil(t, received.LineTotal)
}

func TestInvoices_SyncTotalsWritesAggregates(t *testing.T) {
	invoiceID := uuid.New()
	lines := []entity.InvoiceItem{
		{Quantity: 2, UnitPrice: 50, TaxRate: 8, DiscountPercent: 10},
		{Quantity: 1, UnitPrice: 19.99, TaxRate: 8},
	}

	var received entity.UpdateInvoiceRequest
	mux := http.NewServeMux()
	mux.HandleFunc("GET /invoice-items/by-invoice/"+invoiceID.String(), func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(lines)
	})
	mux.HandleFunc("PUT /invoices/"+invoiceID.String(), func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_ = json.NewEncoder(w).Encode(entity.Invoice{ID: invoiceID})
	})

	gw := newTestGateway(t, mux)
	invoices := NewInvoices(gw)
	items := NewInvoiceItems(gw)

	_, err := invoices.SyncTotals(context.Background(), items, invoiceID)
	require.NoError(t, err)

	require.NotNil(t, received.Subtotal)
	require.NotNil(t, received.DiscountAmount)
	require.NotNil(t, received.TaxAmount)
	require.NotNil(t, received.Total)
	assert.InDelta(t, 109.99, *received.Subtotal, 1e-9)
	assert.InDelta(t, 10.00, *received.DiscountAmount, 1e-9)
	assert.InDelta(t, 8.80, *received.TaxAmount, 1e-9)
	assert.InDelta(t, 118.79, *received.Total, 1e-9)
}
