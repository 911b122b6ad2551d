package models

import "time"

// Property represents a real estate listing
type Property struct {
	ID            uint       `gorm:"primaryKey"`
	Title         string     `gorm:"not null"`
	ListingNumber *string    `gorm:"size:13;uniqueIndex"`
	ListingDate   *time.Time `gorm:"type:date"`
}
