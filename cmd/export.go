package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/export"
	"github.com/abhisek/mcquiz/internal/quiz"
	"github.com/abhisek/mcquiz/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Sample questions and write them to an Excel or CSV file",
	Long: `Sample questions with the given filter and write them to a file without
starting the TUI. The file name defaults to MCQ_<skill>_<count>.xlsx; a name
ending in .csv writes CSV instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := resolveBank(cmd)
		if err != nil {
			return err
		}
		f, err := filterFromFlags(cmd, b)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		dir, _ := cmd.Flags().GetString("dir")

		var events store.EventRepo
		st, err := openStore(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		} else {
			defer st.Close()
			events = st.EventRepo()
		}

		return runExport(cmd.Context(), cmd.OutOrStdout(), exportRequest{
			Bank:   b,
			Filter: f,
			Dir:    dir,
			Name:   out,
			Events: events,
		})
	},
}

func init() {
	addFilterFlags(exportCmd)
	exportCmd.Flags().StringP("out", "o", "", "Output file name (default MCQ_<skill>_<count>.xlsx)")
	exportCmd.Flags().String("dir", ".", "Directory to write the file to")
}

type exportRequest struct {
	Bank   bank.Bank
	Filter quiz.Filter
	Dir    string
	Name   string
	Events store.EventRepo // optional
	Rand   quiz.RandSource // optional
}

// runExport draws one sample and writes it through the sink matching the
// file name. The export is recorded in history when Events is set.
func runExport(ctx context.Context, w io.Writer, req exportRequest) error {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := []quiz.Option{quiz.WithFilter(req.Filter)}
	if req.Rand != nil {
		opts = append(opts, quiz.WithRandSource(req.Rand))
	}
	sess := quiz.NewSession(req.Bank, opts...)
	sampled := sess.SetFilter()

	name := req.Name
	if name == "" {
		name = sess.FileNameHint()
	}

	path, err := export.ForFile(req.Dir, name).Export(ctx, name, sess.ExportSnapshot())
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if req.Events != nil {
		err := req.Events.AppendExportEvent(ctx, store.ExportEventData{
			SessionID: uuid.NewString(),
			Path:      path,
			Format:    strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
			Rows:      len(sampled),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	if len(sampled) < req.Filter.Count {
		fmt.Fprintf(w, "Only %d questions match %s/%s.\n", len(sampled), req.Filter.Skill, req.Filter.Difficulty)
	}
	fmt.Fprintf(w, "Exported %d questions to %s\n", len(sampled), path)
	return nil
}
