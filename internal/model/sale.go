package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale is a completed transfer of processed material to a client.
// Weight is stored in the product's own unit.
type Sale struct {
	ID        uint            `gorm:"primaryKey"`
	ClientID  uint            `gorm:"index;not null"`
	ProductID uint            `gorm:"index;not null"`
	DateTime  time.Time       `gorm:"index;not null"`
	Weight    decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Value     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Client  *Client      `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
	Product *ProductType `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

func (Sale) TableName() string { return "sales" }
