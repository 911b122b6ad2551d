package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"realestate-schema/store"
)

func GrantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant [role]",
		Short: "Grant a role read-only access to a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			role := args[0]
			table, _ := cmd.Flags().GetString("table")

			db, err := getDB()
			if err != nil {
				return err
			}

			if err := store.GrantReadOnly(cmd.Context(), db, table, role); err != nil {
				return err
			}

			fmt.Printf("Granted SELECT on %s to %s\n", table, role)
			return nil
		},
	}

	cmd.Flags().String("table", "properties", "Table to grant read access on")

	return cmd
}
