package models

import "time"

// PropertyClient records a transaction between a client and a property.
// The transaction date is part of the key, so the same pair may transact
// again on a different date.
type PropertyClient struct {
	PropertyID      uint      `gorm:"primaryKey;autoIncrement:false"`
	ClientID        uint      `gorm:"primaryKey;autoIncrement:false"`
	TransactionDate time.Time `gorm:"primaryKey;type:date"`
	Property        *Property `gorm:"foreignKey:PropertyID"`
	Client          *Client   `gorm:"foreignKey:ClientID"`
}
