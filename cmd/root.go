package cmd

import (
	"fmt"
	"os"
	"slices"

	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/quiz"
	"github.com/abhisek/mcquiz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mcquiz",
	Short: "CSS multiple-choice quiz",
	Long:  "mcquiz samples CSS multiple-choice questions by skill and difficulty, scores your answers, and exports the sample to Excel.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite history database (overrides MCQUIZ_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a YAML or JSON question bank (overrides MCQUIZ_BANK env var)")
	addFilterFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MCQUIZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveBank loads the bank named by --bank or MCQUIZ_BANK, falling back
// to the built-in one.
func resolveBank(cmd *cobra.Command) (bank.Bank, error) {
	p, _ := cmd.Flags().GetString("bank")
	if p == "" {
		p = os.Getenv("MCQUIZ_BANK")
	}
	b, err := bank.Resolve(p)
	if err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	return b, nil
}

// openStore resolves the database path and opens the history store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("skill", quiz.AllSkills, "Skill to draw questions from")
	cmd.Flags().String("difficulty", bank.DifficultyBeginner, "Difficulty to draw questions from")
	cmd.Flags().Int("count", quiz.DefaultCount, fmt.Sprintf("Number of questions, one of %v", quiz.AllowedCounts))
}

// filterFromFlags builds the starting filter from --skill, --difficulty
// and --count, checking labels against b.
func filterFromFlags(cmd *cobra.Command, b bank.Bank) (quiz.Filter, error) {
	skill, _ := cmd.Flags().GetString("skill")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	count, _ := cmd.Flags().GetInt("count")

	if skill != quiz.AllSkills && !slices.Contains(bank.Skills(b), skill) {
		return quiz.Filter{}, fmt.Errorf("unknown skill %q: must be %s or one of %v", skill, quiz.AllSkills, bank.Skills(b))
	}
	if cmd.Flags().Changed("difficulty") && !slices.Contains(bank.Difficulties(b), difficulty) {
		return quiz.Filter{}, fmt.Errorf("unknown difficulty %q: must be one of %v", difficulty, bank.Difficulties(b))
	}
	if err := quiz.ValidateCount(count); err != nil {
		return quiz.Filter{}, err
	}
	return quiz.Filter{Skill: skill, Difficulty: difficulty, Count: count}, nil
}
