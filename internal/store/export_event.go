package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendExportEvent(ctx context.Context, data ExportEventData) error {
	err := r.insert(ctx, tableExportEvents,
		[]string{"session_id", "path", "format", "row_count"},
		[]any{data.SessionID, data.Path, data.Format, data.Rows},
	)
	if err != nil {
		return fmt.Errorf("save export event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryExports(ctx context.Context, opts QueryOpts) ([]ExportRecord, error) {
	sel := builder().Select("session_id", "path", "format", "row_count", "sequence", "timestamp").
		From(entsql.Table(tableExportEvents))
	applyOpts(sel, opts)

	var records []ExportRecord
	err := r.query(ctx, sel, func(rows entsql.ColumnScanner) error {
		var rec ExportRecord
		if err := rows.Scan(&rec.SessionID, &rec.Path, &rec.Format, &rec.Rows,
			&rec.Sequence, &rec.Timestamp); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query export events: %w", err)
	}
	return records, nil
}
