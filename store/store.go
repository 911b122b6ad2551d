package store

import (
	"context"

	"gorm.io/gorm"

	"realestate-schema/models"
)

// Store bundles the per-entity stores over a single gorm connection.
// Open the connection with TranslateError enabled so constraint failures
// map onto the sentinel errors in errors.go.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Properties() *PropertyStore {
	return &PropertyStore{db: s.db}
}

func (s *Store) Agents() *AgentStore {
	return &AgentStore{db: s.db}
}

func (s *Store) Clients() *ClientStore {
	return &ClientStore{db: s.db}
}

func (s *Store) Transactions() *TransactionStore {
	return &TransactionStore{db: s.db}
}

// WithTx runs fn inside a database transaction. If fn returns an error the
// transaction is rolled back and none of its writes are visible.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// CreateListing inserts a property and assigns it to an agent atomically.
// If the agent does not exist the property insert is rolled back too.
func (s *Store) CreateListing(ctx context.Context, property *models.Property, agentID uint) error {
	return s.WithTx(ctx, func(tx *Store) error {
		if err := tx.Properties().Create(ctx, property); err != nil {
			return err
		}
		return tx.Properties().AssignAgent(ctx, property.ID, agentID)
	})
}
