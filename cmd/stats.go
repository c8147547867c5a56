package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/mcquiz/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show answer accuracy per skill",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		acc, err := s.EventRepo().SkillAccuracy(context.Background())
		if err != nil {
			return fmt.Errorf("query accuracy: %w", err)
		}
		printStats(cmd.OutOrStdout(), acc)
		return nil
	},
}

func printStats(w io.Writer, acc []store.SkillAccuracy) {
	if len(acc) == 0 {
		fmt.Fprintln(w, "No answers recorded yet.")
		return
	}

	fmt.Fprintf(w, "%-18s  %8s  %8s  %8s\n", "Skill", "Answered", "Correct", "Accuracy")
	fmt.Fprintln(w, strings.Repeat("─", 50))

	var total store.SkillAccuracy
	for _, a := range acc {
		fmt.Fprintf(w, "%-18s  %8d  %8d  %7.0f%%\n", a.Skill, a.Answered, a.Correct, a.Accuracy()*100)
		total.Answered += a.Answered
		total.Correct += a.Correct
	}
	fmt.Fprintln(w, strings.Repeat("─", 50))
	fmt.Fprintf(w, "%-18s  %8d  %8d  %7.0f%%\n", "Total", total.Answered, total.Correct, total.Accuracy()*100)
}
