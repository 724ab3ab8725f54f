package model

import "time"

// Measurement units for product types.
const (
	UnitGram     = "g"
	UnitKilogram = "kg"
)

// ProductType is a material category measured in grams or kilograms.
type ProductType struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"not null"`
	Unit        string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductType) TableName() string { return "product_types" }
