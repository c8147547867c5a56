package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/mcquiz/internal/store"
	"github.com/spf13/cobra"
)

const shortIDLen = 8

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past quiz sessions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent quiz sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		sessions, err := s.EventRepo().QuerySessions(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		printSessions(cmd.OutOrStdout(), sessions)
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the answers of one session (id or unique prefix)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()
		sessions, err := repo.QuerySessions(ctx, store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		sess, err := findSession(sessions, args[0])
		if err != nil {
			return err
		}
		answers, err := repo.SessionAnswers(ctx, sess.SessionID)
		if err != nil {
			return fmt.Errorf("query answers: %w", err)
		}
		printSession(cmd.OutOrStdout(), sess, answers)
		return nil
	},
}

var historyExportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "List recent exports",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		exports, err := s.EventRepo().QueryExports(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query exports: %w", err)
		}

		w := cmd.OutOrStdout()
		if len(exports) == 0 {
			fmt.Fprintln(w, "No exports found.")
			return nil
		}
		fmt.Fprintf(w, "%-19s  %-6s  %5s  %s\n", "Timestamp", "Format", "Rows", "Path")
		fmt.Fprintln(w, strings.Repeat("─", 80))
		for _, e := range exports {
			fmt.Fprintf(w, "%-19s  %-6s  %5d  %s\n",
				e.Timestamp.Local().Format("2006-01-02 15:04:05"), e.Format, e.Rows, e.Path)
		}
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "Maximum number of sessions to show")
	historyExportsCmd.Flags().Int("limit", 20, "Maximum number of exports to show")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
	historyCmd.AddCommand(historyExportsCmd)
}

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// findSession returns the session whose id equals or starts with prefix.
func findSession(sessions []store.SessionRecord, prefix string) (store.SessionRecord, error) {
	var matches []store.SessionRecord
	for _, s := range sessions {
		if s.SessionID == prefix {
			return s, nil
		}
		if strings.HasPrefix(s.SessionID, prefix) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return store.SessionRecord{}, fmt.Errorf("session %q not found", prefix)
	case 1:
		return matches[0], nil
	}
	return store.SessionRecord{}, fmt.Errorf("session prefix %q is ambiguous (%d matches)", prefix, len(matches))
}

func printSessions(w io.Writer, sessions []store.SessionRecord) {
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions found.")
		return
	}

	fmt.Fprintf(w, "%-8s  %-16s  %-18s  %-12s  %6s  %7s  %6s  %s\n",
		"ID", "Started", "Skill", "Difficulty", "Score", "Acc", "Time", "Exp")
	fmt.Fprintln(w, strings.Repeat("─", 96))

	for _, s := range sessions {
		acc := "-"
		if s.Answered > 0 {
			acc = fmt.Sprintf("%.0f%%", float64(s.CorrectAnswers)/float64(s.Answered)*100)
		}
		fmt.Fprintf(w, "%-8s  %-16s  %-18s  %-12s  %6s  %7s  %6s  %d\n",
			shortID(s.SessionID),
			s.Timestamp.Local().Format("2006-01-02 15:04"),
			s.Skill,
			s.Difficulty,
			fmt.Sprintf("%d/%d", s.CorrectAnswers, s.QuestionsServed),
			acc,
			fmt.Sprintf("%d:%02d", s.DurationSecs/60, s.DurationSecs%60),
			s.Exports,
		)
	}
}

func printSession(w io.Writer, s store.SessionRecord, answers []store.AnswerRecord) {
	sep := strings.Repeat("─", 60)

	fmt.Fprintf(w, "Session:   %s\n", s.SessionID)
	fmt.Fprintf(w, "Ended:     %s\n", s.Timestamp.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Filter:    %s / %s / %d\n", s.Skill, s.Difficulty, s.Count)
	fmt.Fprintf(w, "Score:     %d correct of %d served (%d answered)\n", s.CorrectAnswers, s.QuestionsServed, s.Answered)
	fmt.Fprintf(w, "Duration:  %d:%02d\n", s.DurationSecs/60, s.DurationSecs%60)
	fmt.Fprintf(w, "Exports:   %d\n", s.Exports)

	fmt.Fprintf(w, "\n%s\nAnswers\n%s\n", sep, sep)
	if len(answers) == 0 {
		fmt.Fprintln(w, "(none)")
		return
	}
	for _, a := range answers {
		mark := "✓"
		if !a.Correct {
			mark = "✗"
		}
		fmt.Fprintf(w, "%s Q%-3d [%s] %s\n", mark, a.QuestionIndex+1, a.Skill, a.QuestionText)
		fmt.Fprintf(w, "        chose: %s\n", a.SelectedAnswer)
		if !a.Correct {
			fmt.Fprintf(w, "        answer: %s\n", a.CorrectAnswer)
		}
	}
}
