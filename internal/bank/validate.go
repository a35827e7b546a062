package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchema is the JSON schema every bank document must satisfy.
// Multiple choice questions require options + correct_answer; text
// questions require model_answer. A document failing any part is
// rejected wholesale; partial acceptance is not permitted.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"metadata": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"source": map[string]any{"type": "string"},
			},
		},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":       map[string]any{"type": "string"},
					"question": map[string]any{"type": "string"},
					"type": map[string]any{
						"enum": []any{"multiple_choice", "text"},
					},
					"options": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"correct_answer": map[string]any{"type": "integer"},
					"model_answer":   map[string]any{"type": "string"},
					"keywords": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"explanation":      map[string]any{"type": "string"},
					"source_reference": map[string]any{"type": "string"},
					"topics": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"difficulty": map[string]any{"type": "string"},
				},
				"required": []any{"question"},
				"allOf": []any{
					map[string]any{
						"if": map[string]any{
							"properties": map[string]any{
								"type": map[string]any{"const": "multiple_choice"},
							},
							"required": []any{"type"},
						},
						"then": map[string]any{
							"required": []any{"options", "correct_answer"},
						},
					},
					map[string]any{
						"if": map[string]any{
							"properties": map[string]any{
								"type": map[string]any{"const": "text"},
							},
							"required": []any{"type"},
						},
						"then": map[string]any{
							"required": []any{"model_answer"},
						},
					},
				},
			},
		},
	},
	"required": []any{"questions"},
}

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

// compiledBankSchema compiles the bank schema once and caches it.
func compiledBankSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://question-bank.json", bankSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile("schema://question-bank.json")
	})
	return compiled, compileErr
}

// ValidateBank checks a raw bank document against the schema.
// Returns a descriptive error when the document is malformed; the
// caller must then reject the whole file.
func ValidateBank(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledBankSchema()
	if err != nil {
		return fmt.Errorf("compile bank schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("invalid question file format: %w", err)
	}
	return nil
}
