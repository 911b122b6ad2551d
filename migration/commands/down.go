package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"realestate-schema/migration/driver"
)

func DownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Revert the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}

			record, err := driver.NewMigrator(db).Down()
			if err != nil {
				if errors.Is(err, driver.ErrNoAppliedMigrations) {
					return fmt.Errorf("no migrations to revert")
				}
				return fmt.Errorf("failed to revert migration: %v", err)
			}

			fmt.Printf("Successfully reverted migration: %s\n", record.Name)
			return nil
		},
	}
}
