package migrations

import (
	"time"

	"gorm.io/gorm"

	"realestate-schema/migration"
	"realestate-schema/models"
)

func init() {
	migration.RegisterMigration(&migration.Migration{
		Version:   "20240115090000",
		Name:      "create_core_tables",
		CreatedAt: time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC),
		Up: func(db *gorm.DB) error {
			// Base tables first so the junction tables can reference them.
			return db.AutoMigrate(
				&models.Property{},
				&models.Agent{},
				&models.Client{},
				&models.PropertyAgent{},
				&models.PropertyClient{},
			)
		},
		Down: func(db *gorm.DB) error {
			for _, model := range []interface{}{
				&models.PropertyClient{},
				&models.PropertyAgent{},
				&models.Client{},
				&models.Agent{},
				&models.Property{},
			} {
				if err := db.Migrator().DropTable(model); err != nil {
					return err
				}
			}
			return nil
		},
	})
}
