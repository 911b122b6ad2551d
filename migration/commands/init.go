package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestate-schema/migration"
)

func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize migration tracking table in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}

			if err := db.AutoMigrate(&migration.MigrationRecord{}); err != nil {
				return fmt.Errorf("failed to create migration_records table: %v", err)
			}

			fmt.Println("Migration system initialized successfully")
			return nil
		},
	}
}
