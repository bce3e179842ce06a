package ai

import (
	"context"
	"errors"
	"time"
)

// Provider defines the interface for AI providers.
type Provider interface {
	// Test sends a test message and returns the response.
	Test(ctx context.Context) (string, error)
	// Name returns the provider name.
	Name() string
	// Complete generates a response constrained by instruction only.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
	// CompleteStructured generates a response with the backend asked to
	// honor the given JSON schema. This is an optimization hint, not a
	// guarantee: callers must still validate the reply. Providers
	// without first-class structured output return
	// ErrStructuredUnsupported.
	CompleteStructured(ctx context.Context, systemPrompt, content string, schema StructuredSchema) (string, error)
}

// StructuredSchema names a JSON schema for strict-mode requests.
type StructuredSchema struct {
	Name   string
	Schema map[string]any
}

// Config holds the configuration for an AI provider.
type Config struct {
	Provider string // openai, anthropic, compatible
	APIKey   string
	BaseURL  string // optional for openai, required for compatible
	Model    string
}

// ProviderType constants
const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

// DefaultTimeout bounds a single generation round-trip, the only
// unbounded-latency dependency in the system.
const DefaultTimeout = 30 * time.Second

var (
	ErrInvalidProvider       = errors.New("invalid provider")
	ErrMissingAPIKey         = errors.New("API key is required")
	ErrMissingBaseURL        = errors.New("base URL is required for compatible provider")
	ErrMissingModel          = errors.New("model is required")
	ErrStructuredUnsupported = errors.New("structured output not supported by provider")
)

// NewProvider creates a new AI provider based on the config.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model)
	default:
		return nil, ErrInvalidProvider
	}
}
