package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func narrativeSchema() *Schema {
	return &Schema{
		Name: "test-narrative",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"narrative": map[string]any{"type": "string"},
			},
			"required": []any{"narrative"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"narrative": "well done"}`)
	if err := validateResponse(narrativeSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{"other": 1}`)
	err := validateResponse(narrativeSchema(), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json`)
	err := validateResponse(narrativeSchema(), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_NilSchemaAcceptsAnything(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`plain text, not json`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
