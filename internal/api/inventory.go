package api

import (
	"context"

	"github.com/google/uuid"

	"vetadmin/internal/domain/entity"
	"vetadmin/internal/gateway"
)

// InventoryItems is the inventory stock-item client.
type InventoryItems struct {
	gw *gateway.Gateway
}

// NewInventoryItems is the constructor for InventoryItems.
func NewInventoryItems(gw *gateway.Gateway) *InventoryItems {
	return &InventoryItems{gw: gw}
}

// List returns one page of inventory items.
func (c *InventoryItems) List(ctx context.Context, page, size int) (*entity.Page[entity.InventoryItem], error) {
	var out entity.Page[entity.InventoryItem]
	if err := c.gw.Get(ctx, "inventory-items", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single inventory item.
func (c *InventoryItems) Get(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var out entity.InventoryItem
	if err := c.gw.Get(ctx, "inventory-items/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByCategory returns the items in one inventory category.
func (c *InventoryItems) ByCategory(ctx context.Context, category entity.InventoryCategory) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	if err := c.gw.Get(ctx, "inventory-items/by-category/"+string(category), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create adds a stock item.
func (c *InventoryItems) Create(ctx context.Context, req entity.CreateInventoryItemRequest) (*entity.InventoryItem, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.InventoryItem
	if err := c.gw.Post(ctx, "inventory-items", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a stock item.
func (c *InventoryItems) Update(ctx context.Context, id uuid.UUID, req entity.UpdateInventoryItemRequest) (*entity.InventoryItem, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.InventoryItem
	if err := c.gw.Put(ctx, "inventory-items/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a stock item.
func (c *InventoryItems) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "inventory-items/"+id.String())
}

// InventoryTransactions is the stock movement client. Every stock
// change is recorded as a transaction rather than edited in place.
type InventoryTransactions struct {
	gw *gateway.Gateway
}

// NewInventoryTransactions is the constructor for InventoryTransactions.
func NewInventoryTransactions(gw *gateway.Gateway) *InventoryTransactions {
	return &InventoryTransactions{gw: gw}
}

// List returns one page of transactions.
func (c *InventoryTransactions) List(ctx context.Context, page, size int) (*entity.Page[entity.InventoryTransaction], error) {
	var out entity.Page[entity.InventoryTransaction]
	if err := c.gw.Get(ctx, "inventory-transactions", gateway.PageQuery(page, size), &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Get returns a single transaction.
func (c *InventoryTransactions) Get(ctx context.Context, id uuid.UUID) (*entity.InventoryTransaction, error) {
	var out entity.InventoryTransaction
	if err := c.gw.Get(ctx, "inventory-transactions/"+id.String(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ByItem returns one item's movement history.
func (c *InventoryTransactions) ByItem(ctx context.Context, itemID uuid.UUID) ([]entity.InventoryTransaction, error) {
	var out []entity.InventoryTransaction
	if err := c.gw.Get(ctx, "inventory-transactions/by-item/"+itemID.String(), nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Create records a stock movement.
func (c *InventoryTransactions) Create(ctx context.Context, req entity.CreateInventoryTransactionRequest) (*entity.InventoryTransaction, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.InventoryTransaction
	if err := c.gw.Post(ctx, "inventory-transactions", req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Update changes a transaction record.
func (c *InventoryTransactions) Update(ctx context.Context, id uuid.UUID, req entity.UpdateInventoryTransactionRequest) (*entity.InventoryTransaction, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var out entity.InventoryTransaction
	if err := c.gw.Put(ctx, "inventory-transactions/"+id.String(), req, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Delete removes a transaction record.
func (c *InventoryTransactions) Delete(ctx context.Context, id uuid.UUID) error {
	return c.gw.Delete(ctx, "inventory-transactions/"+id.String())
}
