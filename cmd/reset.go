package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the quiz history database",
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return errors.New("refusing to delete history without --yes")
		}
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		removed := 0
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			err := os.Remove(p)
			switch {
			case err == nil:
				removed++
			case !errors.Is(err, os.ErrNotExist):
				return fmt.Errorf("remove %s: %w", p, err)
			}
		}
		if removed == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "No history at %s\n", dbPath)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted history at %s\n", dbPath)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
