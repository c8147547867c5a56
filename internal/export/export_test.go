package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testRows() [][]string {
	return [][]string{
		{"Skill Name", "Difficulty Level", "Question", "Option 1", "Option 2", "Option 3", "Option 4", "Correct Answer"},
		{"Grid", "Beginner", "Which declaration creates a grid container?", "display: grid", "grid: on", "display: table", "layout: grid", "display: grid"},
		{"Selectors", "Advanced", "Quote \"this\", ok?", "a", "b", "c", "d", "c"},
	}
}

func TestXLSXSinkRoundTrip(t *testing.T) {
	dir := t.TempDir()
	sink := &XLSXSink{Dir: dir}

	path, err := sink.Export(context.Background(), "MCQ_All_10.xlsx", testRows())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "MCQ_All_10.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Equal(t, testRows(), rows)
}

func TestXLSXSinkHeaderOnly(t *testing.T) {
	sink := &XLSXSink{Dir: t.TempDir()}
	path, err := sink.Export(context.Background(), "empty", testRows()[:1])
	require.NoError(t, err)
	assert.Equal(t, ".xlsx", filepath.Ext(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestCSVSinkRoundTrip(t *testing.T) {
	sink := &CSVSink{Dir: t.TempDir()}
	path, err := sink.Export(context.Background(), "out.csv", testRows())
	require.NoError(t, err)

	fh, err := os.Open(path)
	require.NoError(t, err)
	defer fh.Close()
	got, err := csv.NewReader(fh).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, testRows(), got)
}

func TestSinkRejectsEmptyInput(t *testing.T) {
	for _, sink := range []Sink{&XLSXSink{Dir: t.TempDir()}, &CSVSink{Dir: t.TempDir()}} {
		_, err := sink.Export(context.Background(), "x", nil)
		assert.ErrorIs(t, err, ErrNoRows)

		_, err = sink.Export(context.Background(), "  ", testRows())
		assert.Error(t, err)
	}
}

func TestSinkHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dir := t.TempDir()
	_, err := (&XLSXSink{Dir: dir}).Export(ctx, "x.xlsx", testRows())
	assert.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &CSVSink{}, ForFile("d", "a.CSV"))
	assert.IsType(t, &XLSXSink{}, ForFile("d", "a.xlsx"))
	assert.IsType(t, &XLSXSink{}, ForFile("d", "a"))
	assert.IsType(t, &XLSXSink{}, ForFile("d", "a.txt"))
}

func TestUnknownExtensionIsReplaced(t *testing.T) {
	dir := t.TempDir()
	path, err := ForFile(dir, "quiz.txt").Export(context.Background(), "quiz.txt", testRows())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quiz.xlsx"), path)
	assert.NoFileExists(t, filepath.Join(dir, "quiz.txt"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	path, err = (&CSVSink{Dir: dir}).Export(context.Background(), "quiz.xlsx", testRows())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "quiz.csv"), path)
}

func TestXLSXSinkSetsColumnWidth(t *testing.T) {
	path, err := (&XLSXSink{Dir: t.TempDir()}).Export(context.Background(), "w", testRows())
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	for _, col := range []string{"A", "H"} {
		width, err := f.GetColWidth(SheetName, col)
		require.NoError(t, err)
		assert.InDelta(t, 24, width, 0.01, "column %s", col)
	}
}

func TestSinkCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	path, err := (&CSVSink{Dir: dir}).Export(context.Background(), "a", testRows())
	require.NoError(t, err)
	assert.FileExists(t, path)
}
