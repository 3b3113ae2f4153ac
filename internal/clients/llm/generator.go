// Package llm wraps the text generation backends behind one interface
package llm

//go:generate mockgen -destination=mock/mock_generator.go -package=llmmock github.com/KirkDiggler/pokidex/internal/clients/llm Generator

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/pokidex/internal/errors"
)

// Backend names
const (
	BackendGemini = "gemini"
	BackendOpenAI = "openai"
	BackendOllama = "ollama"
)

// DefaultTimeout bounds one generation request
const DefaultTimeout = 60 * time.Second

// Generator produces text for a prompt
type Generator interface {
	// Generate sends one single-turn prompt, optionally with inline media
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// GenerateInput is one prompt
type GenerateInput struct {
	Prompt string
	// Media is attached after the prompt when set
	Media *Media
}

// Media is inline binary content such as an image
type Media struct {
	Data     []byte
	MIMEType string
}

// GenerateOutput is the generated text
type GenerateOutput struct {
	Text string
}

// Config selects and configures a backend
type Config struct {
	Backend string
	APIKey  string
	Model   string
	// BaseURL overrides the backend endpoint (optional)
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// New creates the generator for cfg.Backend
func New(ctx context.Context, cfg *Config) (Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("llm config is required")
	}

	switch cfg.Backend {
	case BackendGemini, "":
		return NewGemini(ctx, &GeminiConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
			Logger:  cfg.Logger,
		})
	case BackendOpenAI:
		return NewOpenAI(&OpenAIConfig{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
			Logger:  cfg.Logger,
		})
	case BackendOllama:
		return NewOllama(&OllamaConfig{
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
			Logger:  cfg.Logger,
		})
	default:
		return nil, errors.InvalidArgumentf("unknown llm backend %q", cfg.Backend)
	}
}

func validateInput(input *GenerateInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if input.Prompt == "" {
		return errors.InvalidArgument("prompt is required")
	}
	if input.Media != nil && len(input.Media.Data) == 0 {
		return errors.InvalidArgument("media data is empty")
	}
	return nil
}

// requestError classifies a failed backend call.
// Cancellation keeps its own code; everything else is an unreachable upstream.
func requestError(ctx context.Context, err error, backend string) error {
	if ctx.Err() != nil {
		return errors.Wrapf(ctx.Err(), "%s request interrupted", backend)
	}
	return errors.WrapWithCodef(err, errors.CodeUnavailable, "%s request failed", backend)
}
