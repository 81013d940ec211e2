package entity

import (
	"time"

	"github.com/google/uuid"
)

// InventoryCategory groups stock items.
type InventoryCategory string

const (
	InventoryMedication InventoryCategory = "MEDICATION"
	InventorySupply     InventoryCategory = "SUPPLY"
	InventoryEquipment  InventoryCategory = "EQUIPMENT"
)

// InventoryTransactionType classifies stock movements.
type InventoryTransactionType string

const (
	InventoryIn         InventoryTransactionType = "IN"
	InventoryOut        InventoryTransactionType = "OUT"
	InventoryAdjustment InventoryTransactionType = "ADJUSTMENT"
	InventoryExpired    InventoryTransactionType = "EXPIRED"
)

// InventoryItem is a stocked article at one clinic location.
type InventoryItem struct {
	ID             uuid.UUID         `json:"id"`
	LocationID     uuid.UUID         `json:"locationId"`
	LocationName   string            `json:"locationName"`
	Name           string            `json:"name"`
	SKU            string            `json:"sku"`
	Category       InventoryCategory `json:"category"`
	QuantityOnHand float64           `json:"quantityOnHand"`
	Unit           string            `json:"unit"`
	ReorderLevel   float64           `json:"reorderLevel"`
	CostPrice      float64           `json:"costPrice"`
	SellPrice      float64           `json:"sellPrice"`
	ExpiryDate     *time.Time        `json:"expiryDate"`
	Active         bool              `json:"active"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}

// NeedsReorder reports whether the on-hand quantity fell to the reorder level.
func (i InventoryItem) NeedsReorder() bool {
	return i.QuantityOnHand <= i.ReorderLevel
}

type CreateInventoryItemRequest struct {
	LocationID     *uuid.UUID        `json:"locationId,omitempty"`
	Name           string            `json:"name" validate:"required"`
	SKU            string            `json:"sku,omitempty"`
	Category       InventoryCategory `json:"category" validate:"required,oneof=MEDICATION SUPPLY EQUIPMENT"`
	QuantityOnHand *float64          `json:"quantityOnHand,omitempty" validate:"omitempty,gte=0"`
	Unit           string            `json:"unit,omitempty"`
	ReorderLevel   *float64          `json:"reorderLevel,omitempty" validate:"omitempty,gte=0"`
	CostPrice      *float64          `json:"costPrice,omitempty" validate:"omitempty,gte=0"`
	SellPrice      *float64          `json:"sellPrice,omitempty" validate:"omitempty,gte=0"`
	ExpiryDate     *time.Time        `json:"expiryDate,omitempty"`
	Active         *bool             `json:"active,omitempty"`
}

type UpdateInventoryItemRequest struct {
	LocationID     *uuid.UUID         `json:"locationId,omitempty"`
	Name           *string            `json:"name,omitempty"`
	SKU            *string            `json:"sku,omitempty"`
	Category       *InventoryCategory `json:"category,omitempty" validate:"omitempty,oneof=MEDICATION SUPPLY EQUIPMENT"`
	QuantityOnHand *float64           `json:"quantityOnHand,omitempty" validate:"omitempty,gte=0"`
	Unit           *string            `json:"unit,omitempty"`
	ReorderLevel   *float64           `json:"reorderLevel,omitempty" validate:"omitempty,gte=0"`
	CostPrice      *float64           `json:"costPrice,omitempty" validate:"omitempty,gte=0"`
	SellPrice      *float64           `json:"sellPrice,omitempty" validate:"omitempty,gte=0"`
	ExpiryDate     *time.Time         `json:"expiryDate,omitempty"`
	Active         *bool              `json:"active,omitempty"`
}

// InventoryTransaction is one stock movement against an item.
type InventoryTransaction struct {
	ID                uuid.UUID                `json:"id"`
	InventoryItemID   uuid.UUID                `json:"inventoryItemId"`
	InventoryItemName string                   `json:"inventoryItemName"`
	Type              InventoryTransactionType `json:"type"`
	Quantity          float64                  `json:"quantity"`
	ReferenceType     string                   `json:"referenceType"`
	ReferenceID       *uuid.UUID               `json:"referenceId"`
	PerformedBy       *uuid.UUID               `json:"performedBy"`
	PerformedByName   string                   `json:"performedByName"`
	Note              string                   `json:"note"`
	CreatedAt         time.Time                `json:"createdAt"`
	UpdatedAt         time.Time                `json:"updatedAt"`
}

type CreateInventoryTransactionRequest struct {
	InventoryItemID uuid.UUID                `json:"inventoryItemId" validate:"required"`
	Type            InventoryTransactionType `json:"type" validate:"required,oneof=IN OUT ADJUSTMENT EXPIRED"`
	Quantity        float64                  `json:"quantity" validate:"required,gt=0"`
	ReferenceType   string                   `json:"referenceType,omitempty"`
	ReferenceID     *uuid.UUID               `json:"referenceId,omitempty"`
	PerformedBy     *uuid.UUID               `json:"performedBy,omitempty"`
	Note            string                   `json:"note,omitempty"`
}

type UpdateInventoryTransactionRequest struct {
	InventoryItemID *uuid.UUID                `json:"inventoryItemId,omitempty"`
	Type            *InventoryTransactionType `json:"type,omitempty" validate:"omitempty,oneof=IN OUT ADJUSTMENT EXPIRED"`
	Quantity        *float64                  `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	ReferenceType   *string                   `json:"referenceType,omitempty"`
	ReferenceID     *uuid.UUID                `json:"referenceId,omitempty"`
	PerformedBy     *uuid.UUID                `json:"performedBy,omitempty"`
	Note            *string                   `json:"note,omitempty"`
}
