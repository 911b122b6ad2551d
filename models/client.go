package models

import "time"

// Client represents a buyer or renter registered with the agency
type Client struct {
	ID               uint       `gorm:"primaryKey"`
	Name             string     `gorm:"not null"`
	Email            *string    `gorm:"size:255;uniqueIndex"`
	RegistrationDate *time.Time `gorm:"type:date"`
}
