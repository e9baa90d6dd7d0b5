package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON schema for a question bank document. The answer
// index range check is cross-field and stays in Question.Validate.
var bankSchema = map[string]any{
	"type": "object",
	"additionalProperties": map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 2,
				},
				"answer": map[string]any{
					"type":    "integer",
					"minimum": 0,
				},
			},
			"required":             []any{"question", "options", "answer"},
			"additionalProperties": false,
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		defBytes, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-bank.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// ValidateStrict checks a raw bank document against the schema and the
// cross-field answer range invariant. Unlike Load, any malformed question
// record fails the whole document.
func ValidateStrict(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return &MalformedError{Reason: "not valid JSON", Err: err}
	}

	schema, err := compiled()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return &MalformedError{Reason: "schema validation failed", Err: err}
	}

	b, warnings, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if len(warnings) > 0 {
		return &MalformedError{Reason: warnings[0]}
	}
	for _, cat := range b.Categories() {
		for i, q := range b.Questions(cat) {
			if err := q.Validate(); err != nil {
				return &MalformedError{
					Reason: fmt.Sprintf("category %q question %d: %v", cat, i+1, err),
				}
			}
		}
	}
	return nil
}
