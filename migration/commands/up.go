package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestate-schema/migration/driver"
)

func UpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			db, err := getDB()
			if err != nil {
				return err
			}

			migrator := driver.NewMigrator(db)

			pending, err := migrator.Pending()
			if err != nil {
				return fmt.Errorf("failed to get pending migrations: %v", err)
			}

			if len(pending) == 0 {
				fmt.Println("No pending migrations.")
				return nil
			}

			if dryRun {
				fmt.Println("Pending migrations:")
				for _, m := range pending {
					fmt.Printf("- %s (%s)\n", m.Name, m.Version)
				}
				return nil
			}

			if err := migrator.Up(); err != nil {
				return fmt.Errorf("failed to apply migrations: %v", err)
			}

			for _, m := range pending {
				fmt.Printf("Successfully applied migration: %s\n", m.Name)
			}

			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Show pending migrations without executing them")

	return cmd
}
