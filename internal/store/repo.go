package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Session lifecycle actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// SessionEventData captures a session start or end.
type SessionEventData struct {
	SessionID  string
	Action     string
	Skill      string
	Difficulty string
	Count      int

	// Set on end only.
	QuestionsServed int
	Answered        int
	CorrectAnswers  int
	DurationSecs    int
}

// SessionRecord is a finished session as listed by history.
type SessionRecord struct {
	SessionID       string
	Sequence        int64
	Timestamp       time.Time
	Skill           string
	Difficulty      string
	Count           int
	QuestionsServed int
	Answered        int
	CorrectAnswers  int
	DurationSecs    int
	Exports         int
}

// AnswerEventData captures one submitted answer.
type AnswerEventData struct {
	SessionID      string
	QuestionIndex  int
	Skill          string
	Difficulty     string
	QuestionText   string
	CorrectAnswer  string
	SelectedAnswer string
	Correct        bool
}

// AnswerRecord is a stored answer event.
type AnswerRecord struct {
	AnswerEventData
	Sequence  int64
	Timestamp time.Time
}

// ExportEventData captures a written export file.
type ExportEventData struct {
	SessionID string
	Path      string
	Format    string
	Rows      int
}

// ExportRecord is a stored export event.
type ExportRecord struct {
	ExportEventData
	Sequence  int64
	Timestamp time.Time
}

// SkillAccuracy aggregates every recorded answer for one skill.
type SkillAccuracy struct {
	Skill    string
	Answered int
	Correct  int
}

// Accuracy returns Correct / Answered, or 0 when nothing was answered.
func (a SkillAccuracy) Accuracy() float64 {
	if a.Answered == 0 {
		return 0
	}
	return float64(a.Correct) / float64(a.Answered)
}

// EventRepo provides append and query access to quiz activity events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records a submitted answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendExportEvent records a written export file.
	AppendExportEvent(ctx context.Context, data ExportEventData) error

	// QuerySessions returns finished sessions, newest first.
	QuerySessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error)

	// SessionAnswers returns the answers of one session in submission order.
	SessionAnswers(ctx context.Context, sessionID string) ([]AnswerRecord, error)

	// QueryExports returns export events, newest first.
	QueryExports(ctx context.Context, opts QueryOpts) ([]ExportRecord, error)

	// SkillAccuracy aggregates answers per skill, sorted by skill.
	SkillAccuracy(ctx context.Context) ([]SkillAccuracy, error)
}
