package dto

import "time"

type CreateProductTypeRequest struct {
	Name        string `json:"name"        validate:"required,min=1"`
	Description string `json:"description" validate:"required,min=1"`
	Unit        string `json:"unit"        validate:"required,oneof=g kg"`
}

type UpdateProductTypeRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Unit        *string `json:"unit"        validate:"omitempty,oneof=g kg"`
}

func (r UpdateProductTypeRequest) Empty() bool {
	return r.Name == nil && r.Description == nil && r.Unit == nil
}

type ProductTypeResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Unit        string    `json:"unit"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
