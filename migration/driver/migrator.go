package driver

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"realestate-schema/migration"
)

// ErrNoAppliedMigrations is returned by Down when the version table is empty.
var ErrNoAppliedMigrations = errors.New("no applied migrations")

// Migrator handles the execution of migrations
type Migrator struct {
	db         *gorm.DB
	migrations []*migration.Migration
}

// NewMigrator creates a Migrator over the globally registered migrations
func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{
		db:         db,
		migrations: migration.GetRegisteredMigrations(),
	}
}

// Register adds a migration to the migrator
func (m *Migrator) Register(migration *migration.Migration) {
	m.migrations = append(m.migrations, migration)
}

// ensureVersionTable creates the version tracking table if it doesn't exist
func (m *Migrator) ensureVersionTable() error {
	return m.db.AutoMigrate(&migration.MigrationRecord{})
}

// GetAppliedVersions returns a map of applied migration versions
func (m *Migrator) GetAppliedVersions() (map[string]bool, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, err
	}

	var records []migration.MigrationRecord
	if err := m.db.Find(&records).Error; err != nil {
		return nil, err
	}

	versions := make(map[string]bool)
	for _, record := range records {
		versions[record.Version] = true
	}
	return versions, nil
}

// Pending returns migrations that have not been applied yet
func (m *Migrator) Pending() ([]*migration.Migration, error) {
	applied, err := m.GetAppliedVersions()
	if err != nil {
		return nil, err
	}

	var pending []*migration.Migration
	for _, mr := range m.migrations {
		if !applied[mr.Version] {
			pending = append(pending, mr)
		}
	}
	return pending, nil
}

// Up applies all pending migrations, each in its own transaction
func (m *Migrator) Up() error {
	applied, err := m.GetAppliedVersions()
	if err != nil {
		return err
	}

	for _, mr := range m.migrations {
		if applied[mr.Version] {
			continue
		}

		err := m.db.Transaction(func(tx *gorm.DB) error {
			if err := mr.Up(tx); err != nil {
				return err
			}

			record := migration.MigrationRecord{
				Version:   mr.Version,
				Name:      mr.Name,
				AppliedAt: time.Now(),
			}
			return tx.Create(&record).Error
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Down rolls back the last applied migration and returns its record.
func (m *Migrator) Down() (*migration.MigrationRecord, error) {
	if err := m.ensureVersionTable(); err != nil {
		return nil, err
	}

	var lastRecord migration.MigrationRecord
	if err := m.db.Order("applied_at DESC").First(&lastRecord).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoAppliedMigrations
		}
		return nil, err
	}

	var targetMigration *migration.Migration
	for _, mr := range m.migrations {
		if mr.Version == lastRecord.Version {
			targetMigration = mr
			break
		}
	}

	if targetMigration == nil {
		return nil, fmt.Errorf("migration for version %s is not registered", lastRecord.Version)
	}

	err := m.db.Transaction(func(tx *gorm.DB) error {
		if err := targetMigration.Down(tx); err != nil {
			return err
		}
		return tx.Delete(&lastRecord).Error
	})
	if err != nil {
		return nil, err
	}
	return &lastRecord, nil
}
