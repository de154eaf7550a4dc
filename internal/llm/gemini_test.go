package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":          map[string]any{"type": "string"},
			"relevanceScore": map[string]any{"type": "integer"},
			"kind":           map[string]any{"type": "string", "enum": []any{"lesson", "exercise", "tip"}},
			"actions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"title", "relevanceScore"},
	}

	schema := toGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["title"].Type != "STRING" {
		t.Errorf("title type = %s", schema.Properties["title"].Type)
	}
	if schema.Properties["relevanceScore"].Type != "INTEGER" {
		t.Errorf("relevanceScore type = %s", schema.Properties["relevanceScore"].Type)
	}
	if len(schema.Properties["kind"].Enum) != 3 {
		t.Errorf("kind enum = %d values", len(schema.Properties["kind"].Enum))
	}
	if schema.Properties["actions"].Type != "ARRAY" || schema.Properties["actions"].Items.Type != "STRING" {
		t.Errorf("actions = %+v", schema.Properties["actions"])
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %d fields", len(schema.Required))
	}
}
