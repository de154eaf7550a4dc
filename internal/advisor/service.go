// Package advisor sources dynamic learning suggestions from an LLM.
// It implements recommend.SeedSource; its failures are absorbed by the
// recommendation engine, which keeps its static seeds.
package advisor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rsarma/maestro/internal/curriculum"
	"github.com/rsarma/maestro/internal/llm"
	"github.com/rsarma/maestro/internal/recommend"
)

const (
	maxResponseTokens = 1024
	temperature       = 0.7
)

// Service asks a language model for context-aware suggestions.
type Service struct {
	provider  llm.Provider
	available func() []curriculum.Item
}

// New creates a Service. available reports the sessions the user can
// currently start; it is consulted per request.
func New(provider llm.Provider, available func() []curriculum.Item) *Service {
	return &Service{provider: provider, available: available}
}

// batchPayload mirrors the structured output schema.
type batchPayload struct {
	Suggestions []struct {
		Kind           string `json:"kind"`
		Title          string `json:"title"`
		Description    string `json:"description"`
		RelevanceScore int    `json:"relevanceScore"`
		Reason         string `json:"reason"`
		LessonID       string `json:"lessonId"`
		ExerciseID     string `json:"exerciseId"`
		ResourceURL    string `json:"resourceUrl"`
	} `json:"suggestions"`
}

// Suggestions implements recommend.SeedSource.
func (s *Service) Suggestions(ctx context.Context, snap recommend.Snapshot) ([]recommend.Suggestion, error) {
	var available []curriculum.Item
	if s.available != nil {
		available = s.available()
	}

	ctx = llm.WithPurpose(ctx, "recommendations")
	resp, err := s.provider.Complete(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(snap, available),
		Schema:      batchSchema,
		MaxTokens:   maxResponseTokens,
		Temperature: temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("advisor completion: %w", err)
	}

	var payload batchPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("decode advisor response: %w", err)
	}

	out := make([]recommend.Suggestion, 0, len(payload.Suggestions))
	for _, raw := range payload.Suggestions {
		kind, ok := parseKind(raw.Kind)
		if !ok {
			continue
		}
		out = append(out, recommend.Suggestion{
			Kind:           kind,
			Title:          raw.Title,
			Description:    raw.Description,
			RelevanceScore: clampScore(raw.RelevanceScore),
			Reason:         raw.Reason,
			LessonID:       raw.LessonID,
			ExerciseID:     raw.ExerciseID,
			ResourceURL:    raw.ResourceURL,
		})
	}
	return out, nil
}

func parseKind(s string) (recommend.Kind, bool) {
	switch recommend.Kind(s) {
	case recommend.KindLesson, recommend.KindExercise, recommend.KindResource, recommend.KindTip:
		return recommend.Kind(s), true
	}
	return "", false
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
