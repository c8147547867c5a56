package store

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	err := r.insert(ctx, tableAnswerEvents,
		[]string{"session_id", "question_index", "skill", "difficulty",
			"question_text", "correct_answer", "selected_answer", "correct"},
		[]any{data.SessionID, data.QuestionIndex, data.Skill, data.Difficulty,
			data.QuestionText, data.CorrectAnswer, data.SelectedAnswer, data.Correct},
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

// latestAnswers keeps only the most recent event per question of a session.
// Changing an answer appends a new event, so earlier ones are superseded.
func latestAnswers() *entsql.Predicate {
	return entsql.In("sequence",
		builder().Select(entsql.Max("sequence")).
			From(entsql.Table(tableAnswerEvents)).
			GroupBy("session_id", "question_index"),
	)
}

func (r *eventRepo) SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error) {
	sel := builder().Select(
		"session_id", "question_index", "skill", "difficulty", "question_text",
		"correct_answer", "selected_answer", "correct", "sequence", "timestamp",
	).From(entsql.Table(tableAnswerEvents)).
		Where(entsql.EQ("session_id", sessionID)).
		Where(latestAnswers()).
		OrderBy("sequence")

	var records []AnswerRecord
	err := r.query(ctx, sel, func(rows entsql.ColumnScanner) error {
		var rec AnswerRecord
		if err := rows.Scan(&rec.SessionID, &rec.QuestionIndex, &rec.Skill, &rec.Difficulty,
			&rec.QuestionText, &rec.CorrectAnswer, &rec.SelectedAnswer, &rec.Correct,
			&rec.Sequence, &rec.Timestamp); err != nil {
			return err
		}
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query session answers: %w", err)
	}
	return records, nil
}

func (r *eventRepo) SkillAccuracy(ctx context.Context) ([]SkillAccuracy, error) {
	sel := builder().Select("skill", entsql.Count("*"), entsql.Sum("correct")).
		From(entsql.Table(tableAnswerEvents)).
		Where(latestAnswers()).
		GroupBy("skill").
		OrderBy("skill")

	var out []SkillAccuracy
	err := r.query(ctx, sel, func(rows entsql.ColumnScanner) error {
		var (
			acc     SkillAccuracy
			correct sql.NullInt64
		)
		if err := rows.Scan(&acc.Skill, &acc.Answered, &correct); err != nil {
			return err
		}
		acc.Correct = int(correct.Int64)
		out = append(out, acc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query skill accuracy: %w", err)
	}
	return out, nil
}
