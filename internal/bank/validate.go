package bank

import (
	"fmt"
	"strings"
)

// Issue is a single problem found in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports every issue found while validating a bank.
type ValidationError struct {
	Issues []Issue
}

func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (c *issueCollector) add(field, message string) {
	c.issues = append(c.issues, Issue{Field: field, Message: message})
}

func (c *issueCollector) result() error {
	if len(c.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: c.issues}
}

// Normalize trims surrounding whitespace from every field and checks the
// record invariants: non-empty labels and prompt, exactly OptionCount
// distinct options, and a correct answer that is one of the options.
func Normalize(questions []Question) ([]Question, error) {
	c := &issueCollector{}
	out := make([]Question, len(questions))

	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)

		q.Skill = strings.TrimSpace(q.Skill)
		q.Difficulty = strings.TrimSpace(q.Difficulty)
		q.Question = strings.TrimSpace(q.Question)
		q.Correct = strings.TrimSpace(q.Correct)

		if q.Skill == "" {
			c.add(prefix+".skill", "is required")
		}
		if q.Difficulty == "" {
			c.add(prefix+".difficulty", "is required")
		}
		if q.Question == "" {
			c.add(prefix+".question", "is required")
		}

		opts := make([]string, len(q.Options))
		seen := make(map[string]bool, len(q.Options))
		for j, o := range q.Options {
			o = strings.TrimSpace(o)
			opts[j] = o
			switch {
			case o == "":
				c.add(fmt.Sprintf("%s.options[%d]", prefix, j), "is required")
			case seen[o]:
				c.add(fmt.Sprintf("%s.options[%d]", prefix, j), fmt.Sprintf("duplicate option %q", o))
			}
			seen[o] = true
		}
		q.Options = opts
		if len(opts) != OptionCount {
			c.add(prefix+".options", fmt.Sprintf("must have exactly %d entries, got %d", OptionCount, len(opts)))
		}

		if q.Correct == "" {
			c.add(prefix+".correct", "is required")
		} else if !seen[q.Correct] {
			c.add(prefix+".correct", fmt.Sprintf("%q is not one of the options", q.Correct))
		}

		out[i] = q
	}

	if err := c.result(); err != nil {
		return nil, err
	}
	return out, nil
}
