package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Collection statuses. Any value may overwrite any other — no ordering
// is enforced between them.
const (
	StatusScheduled = "Scheduled"
	StatusConfirmed = "Confirmed"
	StatusCollected = "Collected"
)

// Collection is a scheduled, confirmed or completed pickup of material
// from a supplier. Weight is stored in the product's own unit.
type Collection struct {
	ID         uint            `gorm:"primaryKey"`
	SupplierID uint            `gorm:"index;not null"`
	ProductID  uint            `gorm:"index;not null"`
	Status     string          `gorm:"not null;default:'Scheduled'"`
	DateTime   time.Time       `gorm:"index;not null"`
	Location   string          `gorm:"not null"`
	Weight     decimal.Decimal `gorm:"type:decimal(12,3);not null"`
	Value      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Supplier *Supplier    `gorm:"foreignKey:SupplierID;constraint:OnDelete:RESTRICT"`
	Product  *ProductType `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

func (Collection) TableName() string { return "collections" }
