package model

import "time"

// Client represents a buyer of processed material.
type Client struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	TaxID     string `gorm:"column:tax_id;uniqueIndex;not null"`
	Phone     string `gorm:"not null"`
	Address   string `gorm:"not null"`
	Email     string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Sales []Sale `gorm:"foreignKey:ClientID"`
}

func (Client) TableName() string { return "clients" }
