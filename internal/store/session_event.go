package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if data.SessionID == "" {
		return fmt.Errorf("save session event: empty session id")
	}
	if data.Action != ActionStart && data.Action != ActionEnd {
		return fmt.Errorf("save session event: unknown action %q", data.Action)
	}

	err := r.insert(ctx, tableSessionEvents,
		[]string{"session_id", "action", "skill", "difficulty", "question_count",
			"questions_served", "answered", "correct_answers", "duration_secs"},
		[]any{data.SessionID, data.Action, data.Skill, data.Difficulty, data.Count,
			data.QuestionsServed, data.Answered, data.CorrectAnswers, data.DurationSecs},
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	sel := builder().Select(
		"session_id", "sequence", "timestamp", "skill", "difficulty", "question_count",
		"questions_served", "answered", "correct_answers", "duration_secs",
	).From(entsql.Table(tableSessionEvents)).
		Where(entsql.EQ("action", ActionEnd))
	applyOpts(sel, opts)

	var records []SessionRecord
	err := r.query(ctx, sel, func(rows entsql.ColumnScanner) error {
		var rec SessionRecord
		if err := rows.Scan(&rec.SessionID, &rec.Sequence, &rec.Timestamp, &rec.Skill,
			&rec.Difficulty, &rec.Count, &rec.QuestionsServed, &rec.Answered,
			&rec.CorrectAnswers, &rec.DurationSecs); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query session summaries: %w", err)
	}

	for i := range records {
		n, err := r.exportCount(ctx, records[i].SessionID)
		if err != nil {
			return nil, fmt.Errorf("query session summaries: %w", err)
		}
		records[i].Exports = n
	}
	return records, nil
}

func (r *eventRepo) exportCount(ctx context.Context, sessionID string) (int, error) {
	sel := builder().Select(entsql.Count("*")).
		From(entsql.Table(tableExportEvents)).
		Where(entsql.EQ("session_id", sessionID))

	var n int
	err := r.query(ctx, sel, func(rows entsql.ColumnScanner) error {
		return rows.Scan(&n)
	})
	return n, err
}
