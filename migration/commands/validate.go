package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestate-schema/migration"
)

func ValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate that every registered model has a table in the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := migration.ValidateRegistry(); err != nil {
				return err
			}

			db, err := getDB()
			if err != nil {
				return err
			}

			var missing []string
			for name, model := range migration.GlobalModelRegistry.GetModels() {
				if !db.Migrator().HasTable(model) {
					missing = append(missing, name)
				}
			}

			if len(missing) > 0 {
				return fmt.Errorf("missing tables for models: %v", missing)
			}

			fmt.Println("All model tables exist")
			return nil
		},
	}
}
