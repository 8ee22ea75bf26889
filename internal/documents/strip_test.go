package documents

import (
	"encoding/json"
	"testing"
)

func TestStripNils_RemovesNilEntriesRecursively(t *testing.T) {
	in := map[string]any{
		"fileName": "report.pdf",
		"formInputData": map[string]any{
			"location": "Austin",
			"timeline": nil,
			"nested": map[string]any{
				"keep": "yes",
				"drop": nil,
			},
		},
		"geminiResponse": nil,
		"phases":         []any{"tear-off", nil, "install"},
	}

	out, ok := StripNils(in).(map[string]any)
	if !ok {
		t.Fatalf("expected map result")
	}
	if _, exists := out["geminiResponse"]; exists {
		t.Fatalf("expected nil top-level entry removed")
	}
	form := out["formInputData"].(map[string]any)
	if _, exists := form["timeline"]; exists {
		t.Fatalf("expected nil nested entry removed")
	}
	nested := form["nested"].(map[string]any)
	if _, exists := nested["drop"]; exists {
		t.Fatalf("expected deep nil removed")
	}
	if nested["keep"] != "yes" {
		t.Fatalf("expected surviving value intact")
	}
	phases := out["phases"].([]any)
	if len(phases) != 2 {
		t.Fatalf("expected nil slice element removed, got %v", phases)
	}
}

func TestStripNils_PreservesExplicitNullInRawMessage(t *testing.T) {
	in := map[string]any{
		"geminiResponse": json.RawMessage(`{"summary":null}`),
	}

	out := StripNils(in).(map[string]any)
	raw, ok := out["geminiResponse"].(json.RawMessage)
	if !ok {
		t.Fatalf("expected raw message preserved")
	}
	if string(raw) != `{"summary":null}` {
		t.Fatalf("expected null untouched inside raw bytes, got %s", raw)
	}
}

func TestStripNils_ScalarsPassThrough(t *testing.T) {
	if StripNils("x") != "x" {
		t.Fatalf("expected string passthrough")
	}
	if StripNils(42) != 42 {
		t.Fatalf("expected int passthrough")
	}
}
