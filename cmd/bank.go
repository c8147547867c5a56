package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/quiz"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Browse the question bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions (optionally filtered by skill or difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := resolveBank(cmd)
		if err != nil {
			return err
		}
		skill, _ := cmd.Flags().GetString("skill")
		difficulty, _ := cmd.Flags().GetString("difficulty")

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-18s  %-12s  %-50s  %s\n", "Skill", "Difficulty", "Question", "Answer")
		fmt.Fprintln(w, strings.Repeat("─", 110))

		n := 0
		for _, q := range b.All() {
			if skill != "" && skill != quiz.AllSkills && q.Skill != skill {
				continue
			}
			if difficulty != "" && q.Difficulty != difficulty {
				continue
			}
			fmt.Fprintf(w, "%-18s  %-12s  %-50s  %s\n", q.Skill, q.Difficulty, truncate(q.Question, 50), q.Correct)
			n++
		}
		if n == 0 {
			return fmt.Errorf("no questions found for skill %q difficulty %q", skill, difficulty)
		}

		fmt.Fprintf(w, "\n%d questions\n", n)
		return nil
	},
}

var bankSkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "Show question counts per skill and difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := resolveBank(cmd)
		if err != nil {
			return err
		}
		difficulties := bank.Difficulties(b)

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-18s", "Skill")
		for _, d := range difficulties {
			fmt.Fprintf(w, "  %12s", d)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, strings.Repeat("─", 18+14*len(difficulties)))

		for _, s := range bank.Skills(b) {
			fmt.Fprintf(w, "%-18s", s)
			for _, d := range difficulties {
				fmt.Fprintf(w, "  %12d", bank.Count(b, s, d))
			}
			fmt.Fprintln(w)
		}
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a YAML or JSON bank file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions, %d skills\n",
			args[0], bank.Count(b, "", ""), len(bank.Skills(b)))
		return nil
	},
}

func init() {
	bankListCmd.Flags().String("skill", "", "Filter by skill")
	bankListCmd.Flags().String("difficulty", "", "Filter by difficulty")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankSkillsCmd)
	bankCmd.AddCommand(bankValidateCmd)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
