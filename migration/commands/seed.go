package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestate-schema/store"
)

func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the illustrative dataset into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}

			if err := store.Seed(cmd.Context(), db); err != nil {
				return fmt.Errorf("failed to seed database: %v", err)
			}

			fmt.Println("Database seeded successfully")
			return nil
		},
	}
}
