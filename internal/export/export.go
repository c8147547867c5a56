// Package export writes quiz export snapshots to tabular files.
package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet that holds the exported questions.
const SheetName = "MCQs"

// ErrNoRows is returned when asked to export an empty row set.
var ErrNoRows = errors.New("nothing to export")

// Sink turns a row sequence into a file.
type Sink interface {
	// Export writes rows under name and returns the path written.
	Export(ctx context.Context, name string, rows [][]string) (string, error)
}

// ForFile returns the sink matching name's extension. ".csv" selects
// CSVSink, anything else XLSXSink, which swaps an unknown extension for
// ".xlsx". Files are written under dir.
func ForFile(dir, name string) Sink {
	if strings.EqualFold(filepath.Ext(name), ".csv") {
		return &CSVSink{Dir: dir}
	}
	return &XLSXSink{Dir: dir}
}

// XLSXSink writes a workbook with a single MCQs sheet.
type XLSXSink struct {
	Dir string
}

func (s *XLSXSink) Export(ctx context.Context, name string, rows [][]string) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := targetPath(s.Dir, name, ".xlsx")
	if err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return "", fmt.Errorf("name sheet: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", fmt.Errorf("row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return "", fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return "", fmt.Errorf("style header: %w", err)
	}
	last, err := excelize.ColumnNumberToName(len(rows[0]))
	if err != nil {
		return "", fmt.Errorf("header width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", last, 24); err != nil {
		return "", fmt.Errorf("set column width: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

// CSVSink writes rows as comma-separated values.
type CSVSink struct {
	Dir string
}

func (s *CSVSink) Export(ctx context.Context, name string, rows [][]string) (string, error) {
	if len(rows) == 0 {
		return "", ErrNoRows
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	path, err := targetPath(s.Dir, name, ".csv")
	if err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		f.Close()
		return "", fmt.Errorf("write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// targetPath joins dir and name, forcing name to end in ext, and creates
// dir if needed. A missing extension is appended and a different one is
// replaced, so the file name always matches the format written.
func targetPath(dir, name, ext string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.New("export file name is empty")
	}
	if cur := filepath.Ext(name); !strings.EqualFold(cur, ext) {
		name = strings.TrimSuffix(name, cur) + ext
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	return filepath.Join(dir, name), nil
}
