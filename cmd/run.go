package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/mcquiz/internal/app"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz right away, skipping the home screen",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}

func init() {
	addFilterFlags(playCmd)
	playCmd.Flags().String("dir", ".", "Directory exports are written to")
	rootCmd.Flags().String("dir", ".", "Directory exports are written to")
}

// runApp loads the bank, opens the history store, and launches the TUI.
// A store that cannot be opened disables history instead of failing.
func runApp(cmd *cobra.Command, direct bool) error {
	b, err := resolveBank(cmd)
	if err != nil {
		return err
	}
	f, err := filterFromFlags(cmd, b)
	if err != nil {
		return err
	}
	dir, _ := cmd.Flags().GetString("dir")

	opts := app.Options{
		Bank:      b,
		ExportDir: dir,
		Filter:    f,
		Direct:    direct,
	}

	st, err := openStore(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		fmt.Fprintln(os.Stderr, "History will not be recorded.")
	} else {
		defer st.Close()
		opts.Events = st.EventRepo()
	}

	return app.Run(opts)
}
