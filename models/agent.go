package models

import "time"

// Agent represents an agent handling property listings
type Agent struct {
	ID        uint       `gorm:"primaryKey"`
	Name      string     `gorm:"not null"`
	BirthDate *time.Time `gorm:"type:date"`
}
