package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// Every event table starts with id, sequence and timestamp so the shared
// query helpers can page and order across types.
func eventColumns(extra ...*schema.Column) []*schema.Column {
	return append([]*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
	}, extra...)
}

func eventTable(name string, cols []*schema.Column, indexed ...int) *schema.Table {
	t := &schema.Table{
		Name:       name,
		Columns:    cols,
		PrimaryKey: []*schema.Column{cols[0]},
		Indexes: []*schema.Index{
			{Name: name + "_timestamp", Columns: []*schema.Column{cols[2]}},
		},
	}
	for _, i := range indexed {
		t.Indexes = append(t.Indexes, &schema.Index{
			Name:    name + "_" + cols[i].Name,
			Columns: []*schema.Column{cols[i]},
		})
	}
	return t
}

const (
	tableSessionEvents = "session_events"
	tableAnswerEvents  = "answer_events"
	tableExportEvents  = "export_events"
)

var (
	sessionEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "action", Type: field.TypeString},
		&schema.Column{Name: "skill", Type: field.TypeString},
		&schema.Column{Name: "difficulty", Type: field.TypeString},
		&schema.Column{Name: "question_count", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "questions_served", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "answered", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	)
	sessionEventsTable = eventTable(tableSessionEvents, sessionEventsColumns, 3, 4)

	answerEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "question_index", Type: field.TypeInt},
		&schema.Column{Name: "skill", Type: field.TypeString},
		&schema.Column{Name: "difficulty", Type: field.TypeString},
		&schema.Column{Name: "question_text", Type: field.TypeString},
		&schema.Column{Name: "correct_answer", Type: field.TypeString},
		&schema.Column{Name: "selected_answer", Type: field.TypeString},
		&schema.Column{Name: "correct", Type: field.TypeBool},
	)
	answerEventsTable = eventTable(tableAnswerEvents, answerEventsColumns, 3, 5)

	exportEventsColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "path", Type: field.TypeString},
		&schema.Column{Name: "format", Type: field.TypeString},
		&schema.Column{Name: "row_count", Type: field.TypeInt},
	)
	exportEventsTable = eventTable(tableExportEvents, exportEventsColumns, 3)

	tables = []*schema.Table{
		sessionEventsTable,
		answerEventsTable,
		exportEventsTable,
	}
)
