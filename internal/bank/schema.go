package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://mcquiz/bank.json"

// bankSchema describes the on-disk bank document. Cross-field rules (the
// correct answer must be one of the options) are checked by Normalize.
const bankSchema = `{
  "type": "object",
  "required": ["questions"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "integer", "enum": [1]},
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["skill", "difficulty", "question", "options", "correct"],
        "additionalProperties": false,
        "properties": {
          "skill": {"type": "string", "minLength": 1},
          "difficulty": {"type": "string", "minLength": 1},
          "question": {"type": "string", "minLength": 1},
          "options": {
            "type": "array",
            "items": {"type": "string", "minLength": 1},
            "minItems": 4,
            "maxItems": 4,
            "uniqueItems": true
          },
          "correct": {"type": "string", "minLength": 1}
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// compiledSchema compiles bankSchema once per process.
func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded bank document against bankSchema. doc
// may come from either the YAML or the JSON decoder; it is round-tripped
// through encoding/json so the validator sees plain JSON values.
func validateDocument(doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("validate bank: %w", err)
	}
	return nil
}
