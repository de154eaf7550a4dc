package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_FIFOAndRecording(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"first"`)},
		MockResponse{Content: json.RawMessage(`"second"`)},
	)

	resp, err := mock.Complete(context.Background(), Request{Prompt: "one"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `"first"` {
		t.Errorf("content = %s", resp.Content)
	}

	resp, _ = mock.Complete(context.Background(), Request{Prompt: "two"})
	if string(resp.Content) != `"second"` {
		t.Errorf("content = %s", resp.Content)
	}

	if len(mock.Calls) != 2 || mock.Calls[0].Prompt != "one" || mock.Calls[1].Prompt != "two" {
		t.Errorf("recorded calls = %+v", mock.Calls)
	}
}

func TestMockProvider_EmptyQueueUnavailable(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Complete(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %v", err)
	}
}

func TestMockProvider_Enqueue(t *testing.T) {
	mock := NewMockProvider()
	mock.Enqueue(MockResponse{Content: json.RawMessage(`{}`)})
	if _, err := mock.Complete(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := WithPurpose(context.Background(), "recommendations")
	if got := PurposeFrom(ctx); got != "recommendations" {
		t.Errorf("purpose = %q", got)
	}
	if got := PurposeFrom(context.Background()); got != "unknown" {
		t.Errorf("default purpose = %q", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"anthropic with key", func(c *Config) { c.Anthropic.APIKey = "k" }, false},
		{"anthropic missing key", func(c *Config) {}, true},
		{"mock needs nothing", func(c *Config) { c.Provider = "mock" }, false},
		{"unknown provider", func(c *Config) { c.Provider = "oracle" }, true},
		{"openai missing key", func(c *Config) { c.Provider = "openai" }, true},
		{"openrouter with key", func(c *Config) {
			c.Provider = "openrouter"
			c.OpenRouter.APIKey = "k"
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv("MAESTRO_LLM_PROVIDER", "gemini")
	t.Setenv("MAESTRO_GEMINI_API_KEY", "test-key")
	t.Setenv("MAESTRO_GEMINI_MODEL", "gemini-pro")

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Gemini.APIKey != "test-key" || cfg.Gemini.Model != "gemini-pro" {
		t.Errorf("gemini config = %+v", cfg.Gemini)
	}
	// Untouched sections keep their defaults.
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("openai model default = %q", cfg.OpenAI.Model)
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ak")
	t.Setenv("OPENAI_API_KEY", "ok")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected discovery to succeed")
	}
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q, anthropic should win", cfg.Provider)
	}
}

func TestDiscoverConfig_NoneSet(t *testing.T) {
	for _, k := range []string{"ANTHROPIC_API_KEY", "OPENAI_API_KEY", "GEMINI_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Error("expected discovery to fail with no keys set")
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("claude-haiku", anthropicModels); got != "claude-haiku-4-5-20251001" {
		t.Errorf("friendly name resolved to %q", got)
	}
	if got := resolveModel("claude-3-custom", anthropicModels); got != "claude-3-custom" {
		t.Errorf("passthrough = %q", got)
	}
}
