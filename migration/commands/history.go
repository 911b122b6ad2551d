package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestate-schema/migration"
)

func HistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show applied migrations in order of application",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := getDB()
			if err != nil {
				return err
			}

			var records []migration.MigrationRecord
			if err := db.Order("applied_at").Find(&records).Error; err != nil {
				return fmt.Errorf("failed to get applied migrations: %v", err)
			}

			if len(records) == 0 {
				fmt.Println("No migrations applied.")
				return nil
			}

			fmt.Printf("%-16s  %-30s  %-20s\n", "Version", "Name", "Applied At")
			for _, record := range records {
				fmt.Printf("%-16s  %-30s  %-20s\n", record.Version, record.Name, record.AppliedAt.Format("2006-01-02 15:04:05"))
			}

			return nil
		},
	}
}
