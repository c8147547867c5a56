package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a bank file.
type document struct {
	Version   int        `json:"version" yaml:"version"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Load reads a bank file. Files ending in .json are parsed as JSON,
// everything else as YAML.
func Load(path string) (Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}
	questions, err := Parse(data, strings.ToLower(filepath.Ext(path)) == ".json")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return New(questions), nil
}

// Parse decodes, schema-checks and normalizes a bank document.
func Parse(data []byte, isJSON bool) ([]Question, error) {
	var raw any
	if isJSON {
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc document
	if isJSON {
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse json: %w", err)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	}

	return Normalize(doc.Questions)
}

// Resolve returns the bank at path, or the built-in bank when path is empty.
func Resolve(path string) (Bank, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
