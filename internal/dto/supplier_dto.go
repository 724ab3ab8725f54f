package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateSupplierRequest struct {
	Name         string `json:"name"         validate:"required,min=1"`
	TaxID        string `json:"taxId"        validate:"required,min=11"`
	Phone        string `json:"phone"        validate:"required,min=10"`
	Address      string `json:"address"      validate:"required,min=1"`
	Email        string `json:"email"        validate:"required,email"`
	SupplierType string `json:"supplierType" validate:"required,oneof=Collector Agent Company"`
	MaterialType string `json:"materialType" validate:"required,min=1"`
}

// UpdateSupplierRequest applies only the fields that are set.
type UpdateSupplierRequest struct {
	Name         *string `json:"name"         validate:"omitempty,min=1"`
	TaxID        *string `json:"taxId"        validate:"omitempty,min=11"`
	Phone        *string `json:"phone"        validate:"omitempty,min=10"`
	Address      *string `json:"address"      validate:"omitempty,min=1"`
	Email        *string `json:"email"        validate:"omitempty,email"`
	SupplierType *string `json:"supplierType" validate:"omitempty,oneof=Collector Agent Company"`
	MaterialType *string `json:"materialType" validate:"omitempty,min=1"`
}

// Empty reports whether no recognized field is set.
func (r UpdateSupplierRequest) Empty() bool {
	return r.Name == nil && r.TaxID == nil && r.Phone == nil && r.Address == nil &&
		r.Email == nil && r.SupplierType == nil && r.MaterialType == nil
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SupplierResponse struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	TaxID        string    `json:"taxId"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	Email        string    `json:"email"`
	SupplierType string    `json:"supplierType"`
	MaterialType string    `json:"materialType"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
