package store

import (
	"context"

	"gorm.io/gorm"

	"realestate-schema/models"
)

// ClientStore provides data access for clients.
type ClientStore struct {
	db *gorm.DB
}

func (s *ClientStore) Create(ctx context.Context, client *models.Client) error {
	return translate(s.db.WithContext(ctx).Create(client).Error)
}

func (s *ClientStore) GetByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (s *ClientStore) GetByEmail(ctx context.Context, email string) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&client).Error
	if err != nil {
		return nil, translate(err)
	}
	return &client, nil
}

func (s *ClientStore) List(ctx context.Context) ([]models.Client, error) {
	var clients []models.Client
	if err := s.db.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, translate(err)
	}
	return clients, nil
}

// Delete removes a client. It fails with ErrForeignKey while transactions
// still reference it.
func (s *ClientStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Client{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
