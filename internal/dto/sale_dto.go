package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateSaleRequest struct {
	ClientID  uint            `json:"clientId"  validate:"required"`
	ProductID uint            `json:"productId" validate:"required"`
	DateTime  time.Time       `json:"dateTime"  validate:"required"`
	Weight    decimal.Decimal `json:"weight"    validate:"required,gt=0"`
	Value     decimal.Decimal `json:"value"     validate:"required,gt=0"`
}

type UpdateSaleRequest struct {
	ClientID  *uint            `json:"clientId"`
	ProductID *uint            `json:"productId"`
	DateTime  *time.Time       `json:"dateTime"`
	Weight    *decimal.Decimal `json:"weight" validate:"omitempty,gt=0"`
	Value     *decimal.Decimal `json:"value"  validate:"omitempty,gt=0"`
}

func (r UpdateSaleRequest) Empty() bool {
	return r.ClientID == nil && r.ProductID == nil && r.DateTime == nil &&
		r.Weight == nil && r.Value == nil
}

// ClientSummary is the nested client selection on sale responses.
type ClientSummary struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type SaleResponse struct {
	ID        uint            `json:"id"`
	ClientID  uint            `json:"clientId"`
	ProductID uint            `json:"productId"`
	DateTime  time.Time       `json:"dateTime"`
	Weight    decimal.Decimal `json:"weight"`
	Value     decimal.Decimal `json:"value"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	Client    *ClientSummary  `json:"client,omitempty"`
	Product   *ProductSummary `json:"product,omitempty"`
}
