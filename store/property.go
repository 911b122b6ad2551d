package store

import (
	"context"

	"gorm.io/gorm"

	"realestate-schema/models"
)

// PropertyStore provides data access for properties and their agent
// assignments.
type PropertyStore struct {
	db *gorm.DB
}

func (s *PropertyStore) Create(ctx context.Context, property *models.Property) error {
	return translate(s.db.WithContext(ctx).Create(property).Error)
}

func (s *PropertyStore) GetByID(ctx context.Context, id uint) (*models.Property, error) {
	var property models.Property
	if err := s.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, translate(err)
	}
	return &property, nil
}

func (s *PropertyStore) GetByListingNumber(ctx context.Context, listingNumber string) (*models.Property, error) {
	var property models.Property
	err := s.db.WithContext(ctx).Where("listing_number = ?", listingNumber).First(&property).Error
	if err != nil {
		return nil, translate(err)
	}
	return &property, nil
}

func (s *PropertyStore) List(ctx context.Context) ([]models.Property, error) {
	var properties []models.Property
	if err := s.db.WithContext(ctx).Order("id").Find(&properties).Error; err != nil {
		return nil, translate(err)
	}
	return properties, nil
}

// ListUnassigned returns properties with no agent assigned.
func (s *PropertyStore) ListUnassigned(ctx context.Context) ([]models.Property, error) {
	sub := s.db.Model(&models.PropertyAgent{}).Select("property_id")

	var properties []models.Property
	err := s.db.WithContext(ctx).
		Where("id NOT IN (?)", sub).
		Order("id").
		Find(&properties).Error
	if err != nil {
		return nil, translate(err)
	}
	return properties, nil
}

// PropertyWithAgents pairs a property with its assigned agents.
type PropertyWithAgents struct {
	models.Property
	Agents []models.Agent
}

// ListWithAgents returns every property together with its assigned agents.
// Properties without an assignment are included with an empty agent list.
func (s *PropertyStore) ListWithAgents(ctx context.Context) ([]PropertyWithAgents, error) {
	properties, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var assignments []models.PropertyAgent
	err = s.db.WithContext(ctx).
		Preload("Agent").
		Order("property_id, agent_id").
		Find(&assignments).Error
	if err != nil {
		return nil, translate(err)
	}

	agentsByProperty := make(map[uint][]models.Agent)
	for _, assignment := range assignments {
		if assignment.Agent != nil {
			agentsByProperty[assignment.PropertyID] = append(agentsByProperty[assignment.PropertyID], *assignment.Agent)
		}
	}

	listings := make([]PropertyWithAgents, 0, len(properties))
	for _, property := range properties {
		listings = append(listings, PropertyWithAgents{
			Property: property,
			Agents:   agentsByProperty[property.ID],
		})
	}
	return listings, nil
}

// UpdateTitle renames a property, leaving every other column untouched.
func (s *PropertyStore) UpdateTitle(ctx context.Context, id uint, title string) error {
	result := s.db.WithContext(ctx).
		Model(&models.Property{}).
		Where("id = ?", id).
		Update("title", title)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PropertyStore) Update(ctx context.Context, property *models.Property) error {
	return translate(s.db.WithContext(ctx).Save(property).Error)
}

// Delete removes a property. It fails with ErrForeignKey while agent
// assignments or client transactions still reference it.
func (s *PropertyStore) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Property{}, id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AssignAgent links an agent to a property. Both rows must already exist.
func (s *PropertyStore) AssignAgent(ctx context.Context, propertyID, agentID uint) error {
	assignment := models.PropertyAgent{PropertyID: propertyID, AgentID: agentID}
	return translate(s.db.WithContext(ctx).Create(&assignment).Error)
}

func (s *PropertyStore) UnassignAgent(ctx context.Context, propertyID, agentID uint) error {
	result := s.db.WithContext(ctx).
		Where("property_id = ? AND agent_id = ?", propertyID, agentID).
		Delete(&models.PropertyAgent{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Agents returns the agents assigned to a property.
func (s *PropertyStore) Agents(ctx context.Context, propertyID uint) ([]models.Agent, error) {
	var agents []models.Agent
	err := s.db.WithContext(ctx).
		Joins("JOIN property_agents ON property_agents.agent_id = agents.id").
		Where("property_agents.property_id = ?", propertyID).
		Order("agents.id").
		Find(&agents).Error
	if err != nil {
		return nil, translate(err)
	}
	return agents, nil
}
