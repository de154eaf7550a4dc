package advisor

import "github.com/rsarma/maestro/internal/llm"

// batchSchema constrains the model to a suggestion batch the engine
// can consume directly.
var batchSchema = &llm.Schema{
	Name:        "suggestion-batch",
	Description: "A batch of contextual learning suggestions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"suggestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"kind": map[string]any{
							"type": "string",
							"enum": []any{"lesson", "exercise", "resource", "tip"},
						},
						"title":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"relevanceScore": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 100,
						},
						"reason":      map[string]any{"type": "string"},
						"lessonId":    map[string]any{"type": "string"},
						"exerciseId":  map[string]any{"type": "string"},
						"resourceUrl": map[string]any{"type": "string"},
					},
					"required": []any{"kind", "title", "description", "relevanceScore", "reason"},
				},
			},
		},
		"required": []any{"suggestions"},
	},
}
