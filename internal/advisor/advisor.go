// Package advisor produces a short qualitative note on a lead's comments
// using the Gemini API. It is strictly optional: when no API key is
// configured, or a call fails, callers proceed without a note.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"leadscore_backend/platform/config"
	"leadscore_backend/platform/logger"

	"google.golang.org/genai"
)

const (
	model = "gemini-2.0-flash"

	promptFmt = "You are a real-estate sales assistant. In at most two sentences, " +
		"summarize what this prospective buyer's comment tells a sales agent " +
		"about how to approach the follow-up call. Comment: %q"
)

// Advisor wraps the Gemini client.
type Advisor struct {
	client *genai.Client
	log    *logger.Logger
}

// New creates the advisor. Returns nil when no API key is configured; a
// nil advisor returns empty notes.
func New(ctx context.Context, cfg config.AdvisorConfig, log *logger.Logger) (*Advisor, error) {
	if !cfg.IsAdvisorEnabled() {
		log.Info("advisor disabled; no API key configured")
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GetGeminiAPIKey(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Advisor{client: client, log: log}, nil
}

// Note asks the model for a two-sentence qualitative read of the lead's
// comments. An empty comment or any API failure yields an empty note.
func (a *Advisor) Note(ctx context.Context, comments string) string {
	if a == nil || strings.TrimSpace(comments) == "" {
		return ""
	}

	resp, err := a.client.Models.GenerateContent(ctx, model,
		genai.Text(fmt.Sprintf(promptFmt, comments)), nil)
	if err != nil {
		a.log.Warn("advisor call failed", "error", err)
		return ""
	}

	return strings.TrimSpace(resp.Text())
}
