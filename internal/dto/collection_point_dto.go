package dto

import "time"

type CreateCollectionPointRequest struct {
	Name        string `json:"name"        validate:"required,min=1"`
	Responsible string `json:"responsible" validate:"required,min=1"`
	Address     string `json:"address"     validate:"required,min=1"`
	Phone       string `json:"phone"       validate:"required,min=10"`
	Email       string `json:"email"       validate:"required,email"`
}

type UpdateCollectionPointRequest struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Responsible *string `json:"responsible" validate:"omitempty,min=1"`
	Address     *string `json:"address"     validate:"omitempty,min=1"`
	Phone       *string `json:"phone"       validate:"omitempty,min=10"`
	Email       *string `json:"email"       validate:"omitempty,email"`
}

func (r UpdateCollectionPointRequest) Empty() bool {
	return r.Name == nil && r.Responsible == nil && r.Address == nil &&
		r.Phone == nil && r.Email == nil
}

type CollectionPointResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Responsible string    `json:"responsible"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
