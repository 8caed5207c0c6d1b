package ai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/loganlanou/reviewhub/internal/content"
	"github.com/loganlanou/reviewhub/internal/importer"
)

const (
	temperature    = 0.7
	defaultTimeout = 120 * time.Second
)

// Completer sends one system and user prompt pair to a model and returns
// the raw reply text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Config holds server-level provider settings. Credentials live in the
// site document and arrive with each call.
type Config struct {
	Timeout       time.Duration
	OpenAIBaseURL string
	GeminiBaseURL string
	OllamaURL     string
}

// Generator turns a topic into candidate import records.
type Generator struct {
	cfg        Config
	httpClient *http.Client
}

func NewGenerator(cfg Config) *Generator {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Generator{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Generate asks the configured provider for count records of kind about
// topic. The credential is checked before any network call and the
// provider is called exactly once.
func (g *Generator) Generate(ctx context.Context, settings content.AISettings, kind importer.Kind, topic string, count int) ([]importer.Record, error) {
	completer, err := g.completer(ctx, settings)
	if err != nil {
		return nil, err
	}

	prompt, err := UserPrompt(kind, count, topic)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	reply, err := completer.Complete(ctx, SystemPrompt(settings.Language), prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	records, err := ParseRecords(reply)
	if err != nil {
		slog.Warn("unparseable AI reply", "provider", settings.Provider, "kind", kind, "reply_len", len(reply))
		return nil, err
	}

	slog.Info("generated import records",
		"provider", settings.Provider,
		"kind", kind,
		"requested", count,
		"returned", len(records),
		"duration", time.Since(start),
	)
	return records, nil
}

func (g *Generator) completer(ctx context.Context, s content.AISettings) (Completer, error) {
	provider := strings.ToLower(strings.TrimSpace(s.Provider))
	if provider == "" {
		provider = content.DefaultAIProvider
	}

	switch provider {
	case "openai":
		if s.OpenAIKey == "" {
			return nil, ErrConfigMissing
		}
		return newOpenAIClient(g.httpClient, g.cfg.OpenAIBaseURL, s.OpenAIKey, modelFor(provider, s.Model)), nil
	case "gemini":
		if s.GeminiKey == "" {
			return nil, ErrConfigMissing
		}
		return newGeminiClient(ctx, g.httpClient, g.cfg.GeminiBaseURL, s.GeminiKey, modelFor(provider, s.Model))
	case "ollama":
		baseURL := s.OllamaURL
		if baseURL == "" {
			baseURL = g.cfg.OllamaURL
		}
		if baseURL == "" {
			return nil, ErrConfigMissing
		}
		return newOllamaClient(g.httpClient, baseURL, modelFor(provider, s.Model)), nil
	}
	return nil, fmt.Errorf("%w: unknown provider %q", ErrConfigMissing, s.Provider)
}

var defaultModels = map[string]string{
	"openai": content.DefaultAIModel,
	"gemini": "gemini-2.0-flash-lite",
	"ollama": "mistral:7b",
}

// modelFor keeps the stored model unless it is empty or is the seeded
// OpenAI default left over after switching providers.
func modelFor(provider, model string) string {
	if model == "" || (provider != "openai" && model == content.DefaultAIModel) {
		return defaultModels[provider]
	}
	return model
}
