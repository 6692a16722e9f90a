package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/tabuada/internal/llm"
)

// DelegateConfig holds configuration for the delegated provider.
type DelegateConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultDelegateConfig returns sensible defaults.
func DefaultDelegateConfig() DelegateConfig {
	return DelegateConfig{
		MaxTokens:   512,
		Temperature: 0.6,
	}
}

// Delegate produces the narrative via a text-generation provider.
type Delegate struct {
	provider llm.Provider
	cfg      DelegateConfig
}

// NewDelegate creates a delegated narrative provider.
func NewDelegate(provider llm.Provider, cfg DelegateConfig) *Delegate {
	return &Delegate{provider: provider, cfg: cfg}
}

// narrativeOutput is the raw structured response.
type narrativeOutput struct {
	Narrative string `json:"narrative"`
}

// Analyze sends the snapshot as a structured prompt and returns the
// generated narrative. Any failure is returned to the caller; the
// Service decides what to do with it.
func (d *Delegate) Analyze(ctx context.Context, snap Snapshot) (string, error) {
	prompt, err := buildNarrativePrompt(snap)
	if err != nil {
		return "", fmt.Errorf("build narrative prompt: %w", err)
	}

	resp, err := d.provider.Generate(ctx, llm.Request{
		System:      narrativeSystemPrompt,
		Prompt:      prompt,
		Schema:      narrativeSchema,
		MaxTokens:   d.cfg.MaxTokens,
		Temperature: d.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("narrative generation failed: %w", err)
	}

	var raw narrativeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return "", fmt.Errorf("parse narrative response: %w", err)
	}
	if strings.TrimSpace(raw.Narrative) == "" {
		return "", fmt.Errorf("empty narrative from %s", resp.Model)
	}
	return raw.Narrative, nil
}
