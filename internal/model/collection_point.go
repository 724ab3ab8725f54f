package model

import "time"

// CollectionPoint is a physical site where material is received.
// It is informational only — collections and sales do not reference it.
type CollectionPoint struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Responsible string `gorm:"not null"`
	Address     string `gorm:"not null"`
	Phone       string `gorm:"not null"`
	Email       string `gorm:"uniqueIndex;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CollectionPoint) TableName() string { return "collection_points" }
