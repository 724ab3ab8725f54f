package model

import "time"

// Supplier types accepted by the API.
const (
	SupplierTypeCollector = "Collector"
	SupplierTypeAgent     = "Agent"
	SupplierTypeCompany   = "Company"
)

// Supplier represents an individual or company providing recyclable material.
type Supplier struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	TaxID        string `gorm:"column:tax_id;uniqueIndex;not null"`
	Phone        string `gorm:"not null"`
	Address      string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	SupplierType string `gorm:"not null"`
	MaterialType string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Collections []Collection `gorm:"foreignKey:SupplierID"`
}

func (Supplier) TableName() string { return "suppliers" }
