package dto

import "time"

type CreateClientRequest struct {
	Name    string `json:"name"    validate:"required,min=1"`
	TaxID   string `json:"taxId"   validate:"required,min=11"`
	Phone   string `json:"phone"   validate:"required,min=10"`
	Address string `json:"address" validate:"required,min=1"`
	Email   string `json:"email"   validate:"required,email"`
}

type UpdateClientRequest struct {
	Name    *string `json:"name"    validate:"omitempty,min=1"`
	TaxID   *string `json:"taxId"   validate:"omitempty,min=11"`
	Phone   *string `json:"phone"   validate:"omitempty,min=10"`
	Address *string `json:"address" validate:"omitempty,min=1"`
	Email   *string `json:"email"   validate:"omitempty,email"`
}

func (r UpdateClientRequest) Empty() bool {
	return r.Name == nil && r.TaxID == nil && r.Phone == nil &&
		r.Address == nil && r.Email == nil
}

type ClientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"taxId"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
