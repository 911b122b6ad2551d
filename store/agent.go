package store

import (
	"context"

	"gorm.io/gorm"

	"realestate-schema/models"
)

// AgentStore provides data access for agents.
type AgentStore struct {
	db *gorm.DB
}

func (s *AgentStore) Create(ctx context.Context, agent *models.Agent) error {
	return translate(s.db.WithContext(ctx).Create(agent).Error)
}

func (s *AgentStore) GetByID(ctx context.Context, id uint) (*models.Agent, error) {
	var agent models.Agent
	if err := s.db.WithContext(ctx).First(&agent, id).Error; err != nil {
		return nil, translate(err)
	}
	return &agent, nil
}

func (s *AgentStore) List(ctx context.Context) ([]models.Agent, error) {
	var agents []models.Agent
	if err := s.db.WithContext(ctx).Order("id").Find(&agents).Error; err != nil {
		return nil, translate(err)
	}
	return agents, nil
}

// Delete removes an agent. It fails with ErrForeignKey while property
// assignments still reference it.
func (s *AgentStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Agent{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Properties returns the properties an agent is assigned to.
func (s *AgentStore) Properties(ctx context.Context, agentID uint) ([]models.Property, error) {
	var properties []models.Property
	err := s.db.WithContext(ctx).
		Joins("JOIN property_agents ON property_agents.property_id = properties.id").
		Where("property_agents.agent_id = ?", agentID).
		Order("properties.id").
		Find(&properties).Error
	if err != nil {
		return nil, translate(err)
	}
	return properties, nil
}
