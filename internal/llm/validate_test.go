package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-reply",
	Description: "test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "integer"},
		},
		"required":             []any{"answer"},
		"additionalProperties": false,
	},
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponseConforming(t *testing.T) {
	raw := json.RawMessage(`{"answer":"42","score":1}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("conforming payload rejected: %v", err)
	}
}

func TestValidateResponseMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"score":1}`)
	err := validateResponse(testSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if string(inv.Content) != string(raw) {
		t.Error("original content should be attached to the error")
	}
}

func TestValidateResponseWrongType(t *testing.T) {
	raw := json.RawMessage(`{"answer":"ok","score":"high"}`)
	var inv *ErrInvalidResponse
	if err := validateResponse(testSchema, raw); !errors.As(err, &inv) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseMalformedJSON(t *testing.T) {
	var inv *ErrInvalidResponse
	if err := validateResponse(testSchema, json.RawMessage(`{`)); !errors.As(err, &inv) {
		t.Errorf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestCompiledSchemaIsCached(t *testing.T) {
	schema := &Schema{
		Name:       "cache-check",
		Definition: map[string]any{"type": "object"},
	}

	first, err := compileSchema(schema)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	second, err := compileSchema(schema)
	if err != nil {
		t.Fatalf("compile (cached): %v", err)
	}
	if first != second {
		t.Error("expected the cached compiled schema on the second call")
	}
}
