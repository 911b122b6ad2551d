package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate-schema/models"
	"realestate-schema/store"
)

func TestPropertyCreateAndGet(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	property := models.Property{
		ID:            1,
		Title:         "Luxury Apartment",
		ListingNumber: stringPtr("LN12345678901"),
		ListingDate:   datePtr(2024, time.January, 15),
	}
	require.NoError(t, s.Properties().Create(ctx, &property))

	got, err := s.Properties().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Luxury Apartment", got.Title)
	require.NotNil(t, got.ListingNumber)
	assert.Equal(t, "LN12345678901", *got.ListingNumber)

	byListing, err := s.Properties().GetByListingNumber(ctx, "LN12345678901")
	require.NoError(t, err)
	assert.Equal(t, uint(1), byListing.ID)

	_, err = s.Properties().GetByID(ctx, 99)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestPropertyUpdateTitle(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	property := models.Property{ID: 1, Title: "Downtown Apartment", ListingNumber: stringPtr("LN12345678901")}
	require.NoError(t, s.Properties().Create(ctx, &property))

	require.NoError(t, s.Properties().UpdateTitle(ctx, 1, "Downtown Apartment (Renovated)"))

	got, err := s.Properties().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Downtown Apartment (Renovated)", got.Title)
	require.NotNil(t, got.ListingNumber)
	assert.Equal(t, "LN12345678901", *got.ListingNumber)

	err = s.Properties().UpdateTitle(ctx, 99, "No Such Property")
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestPropertyDuplicateListingNumber(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Properties().Create(ctx, &models.Property{ID: 1, Title: "Luxury Apartment", ListingNumber: stringPtr("LN12345678901")}))

	err := s.Properties().Create(ctx, &models.Property{ID: 2, Title: "Copycat", ListingNumber: stringPtr("LN12345678901")})
	assert.True(t, errors.Is(err, store.ErrDuplicate))
}

func TestAssignAgent(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Properties().Create(ctx, &models.Property{ID: 1, Title: "Luxury Apartment"}))
	require.NoError(t, s.Agents().Create(ctx, &models.Agent{ID: 1, Name: "John Doe", BirthDate: datePtr(1985, time.August, 24)}))

	require.NoError(t, s.Properties().AssignAgent(ctx, 1, 1))

	err := s.Properties().AssignAgent(ctx, 1, 99)
	assert.True(t, errors.Is(err, store.ErrForeignKey))

	agents, err := s.Properties().Agents(ctx, 1)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "John Doe", agents[0].Name)

	properties, err := s.Agents().Properties(ctx, 1)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "Luxury Apartment", properties[0].Title)
}

func TestListWithAgents(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Properties().Create(ctx, &models.Property{ID: 1, Title: "Luxury Apartment"}))
	require.NoError(t, s.Properties().Create(ctx, &models.Property{ID: 2, Title: "Cozy Cottage"}))
	require.NoError(t, s.Agents().Create(ctx, &models.Agent{ID: 1, Name: "John Doe"}))
	require.NoError(t, s.Agents().Create(ctx, &models.Agent{ID: 2, Name: "Jane Smith"}))
	require.NoError(t, s.Properties().AssignAgent(ctx, 1, 1))
	require.NoError(t, s.Properties().AssignAgent(ctx, 1, 2))

	listings, err := s.Properties().ListWithAgents(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)

	assert.Equal(t, "Luxury Apartment", listings[0].Title)
	require.Len(t, listings[0].Agents, 2)
	assert.Equal(t, "John Doe", listings[0].Agents[0].Name)
	assert.Equal(t, "Jane Smith", listings[0].Agents[1].Name)

	assert.Equal(t, "Cozy Cottage", listings[1].Title)
	assert.Empty(t, listings[1].Agents)
}

func TestListUnassigned(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Properties().Create(ctx, &models.Property{ID: 1, Title: "Assigned"}))
	require.NoError(t, s.Properties().Create(ctx, &models.Property{ID: 2, Title: "Unassigned"}))
	require.NoError(t, s.Agents().Create(ctx, &models.Agent{ID: 1, Name: "John Doe"}))
	require.NoError(t, s.Properties().AssignAgent(ctx, 1, 1))

	unassigned, err := s.Properties().ListUnassigned(ctx)
	require.NoError(t, err)
	require.Len(t, unassigned, 1)
	assert.Equal(t, uint(2), unassigned[0].ID)
}

func TestDeleteReferencedProperty(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Properties().Create(ctx, &models.Property{ID: 1, Title: "Luxury Apartment"}))
	require.NoError(t, s.Agents().Create(ctx, &models.Agent{ID: 1, Name: "John Doe"}))
	require.NoError(t, s.Properties().AssignAgent(ctx, 1, 1))

	err := s.Properties().Delete(ctx, 1)
	assert.True(t, errors.Is(err, store.ErrForeignKey))

	require.NoError(t, s.Properties().UnassignAgent(ctx, 1, 1))
	require.NoError(t, s.Properties().Delete(ctx, 1))

	_, err = s.Properties().GetByID(ctx, 1)
	assert.True(t, errors.Is(err, store.ErrNotFound))
}

func TestDeleteReferencedAgent(t *testing.T) {
	s, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Properties().Create(ctx, &models.Property{ID: 1, Title: "Luxury Apartment"}))
	require.NoError(t, s.Agents().Create(ctx, &models.Agent{ID: 1, Name: "John Doe"}))
	require.NoError(t, s.Properties().AssignAgent(ctx, 1, 1))

	err := s.Agents().Delete(ctx, 1)
	assert.True(t, errors.Is(err, store.ErrForeignKey))

	require.NoError(t, s.Properties().UnassignAgent(ctx, 1, 1))
	require.NoError(t, s.Agents().Delete(ctx, 1))
}
