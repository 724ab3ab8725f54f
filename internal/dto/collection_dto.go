package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateCollectionRequest struct {
	SupplierID uint            `json:"supplierId" validate:"required"`
	Status     *string         `json:"status"     validate:"omitempty,oneof=Scheduled Confirmed Collected"`
	DateTime   time.Time       `json:"dateTime"   validate:"required"`
	Location   string          `json:"location"   validate:"required,min=1"`
	ProductID  uint            `json:"productId"  validate:"required"`
	Weight     decimal.Decimal `json:"weight"     validate:"required,gt=0"`
	Value      decimal.Decimal `json:"value"      validate:"required,gt=0"`
}

type UpdateCollectionRequest struct {
	SupplierID *uint            `json:"supplierId"`
	Status     *string          `json:"status"   validate:"omitempty,oneof=Scheduled Confirmed Collected"`
	DateTime   *time.Time       `json:"dateTime"`
	Location   *string          `json:"location" validate:"omitempty,min=1"`
	ProductID  *uint            `json:"productId"`
	Weight     *decimal.Decimal `json:"weight"   validate:"omitempty,gt=0"`
	Value      *decimal.Decimal `json:"value"    validate:"omitempty,gt=0"`
}

func (r UpdateCollectionRequest) Empty() bool {
	return r.SupplierID == nil && r.Status == nil && r.DateTime == nil &&
		r.Location == nil && r.ProductID == nil && r.Weight == nil && r.Value == nil
}

type UpdateCollectionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Scheduled Confirmed Collected"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// SupplierSummary is the nested supplier selection on collection responses.
// Phone and address are only populated on single-row and by-date fetches.
type SupplierSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// ProductSummary is the nested product selection on collection and sale
// responses. Description is only populated on single-row fetches.
type ProductSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Unit        string `json:"unit"`
	Description string `json:"description,omitempty"`
}

type CollectionResponse struct {
	ID         uint             `json:"id"`
	SupplierID uint             `json:"supplierId"`
	Status     string           `json:"status"`
	DateTime   time.Time        `json:"dateTime"`
	Location   string           `json:"location"`
	ProductID  uint             `json:"productId"`
	Weight     decimal.Decimal  `json:"weight"`
	Value      decimal.Decimal  `json:"value"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
	Supplier   *SupplierSummary `json:"supplier,omitempty"`
	Product    *ProductSummary  `json:"product,omitempty"`
}
