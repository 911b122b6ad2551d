package store

import (
	"context"
	"time"

	"gorm.io/gorm"

	"realestate-schema/models"
)

// TransactionStore provides data access for property-client transactions.
type TransactionStore struct {
	db *gorm.DB
}

// Record inserts a transaction between a property and a client on the given
// date. Both rows must already exist; the same pair may transact again on a
// different date.
func (s *TransactionStore) Record(ctx context.Context, propertyID, clientID uint, date time.Time) error {
	transaction := models.PropertyClient{
		PropertyID:      propertyID,
		ClientID:        clientID,
		TransactionDate: date,
	}
	return translate(s.db.WithContext(ctx).Create(&transaction).Error)
}

// Remove deletes one transaction. The property and client rows are untouched.
func (s *TransactionStore) Remove(ctx context.Context, propertyID, clientID uint, date time.Time) error {
	result := s.db.WithContext(ctx).
		Where("property_id = ? AND client_id = ? AND transaction_date = ?", propertyID, clientID, date).
		Delete(&models.PropertyClient{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *TransactionStore) ForProperty(ctx context.Context, propertyID uint) ([]models.PropertyClient, error) {
	var transactions []models.PropertyClient
	err := s.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("transaction_date").
		Find(&transactions).Error
	if err != nil {
		return nil, translate(err)
	}
	return transactions, nil
}

func (s *TransactionStore) ForClient(ctx context.Context, clientID uint) ([]models.PropertyClient, error) {
	var transactions []models.PropertyClient
	err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("transaction_date").
		Find(&transactions).Error
	if err != nil {
		return nil, translate(err)
	}
	return transactions, nil
}

func (s *TransactionStore) CountForProperty(ctx context.Context, propertyID uint) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.PropertyClient{}).
		Where("property_id = ?", propertyID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}
