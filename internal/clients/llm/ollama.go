package llm

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokidex/internal/errors"
)

const (
	// DefaultOllamaURL is the local Ollama server
	DefaultOllamaURL = "http://localhost:11434"
	// DefaultOllamaModel accepts images
	DefaultOllamaModel = "llava"
)

// OllamaConfig configures a local Ollama backend
type OllamaConfig struct {
	// Model (optional, defaults to DefaultOllamaModel)
	Model string
	// BaseURL (optional, defaults to DefaultOllamaURL); a trailing /v1 is dropped
	BaseURL string
	// Timeout per request (optional, defaults to 60 seconds)
	Timeout time.Duration
	// HTTPClient (optional)
	HTTPClient *http.Client
	// Logger (optional)
	Logger *zap.Logger
}

// Validate validates the config and sets defaults
func (cfg *OllamaConfig) Validate() error {
	if cfg.Model == "" {
		cfg.Model = DefaultOllamaModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOllamaURL
	}
	cfg.BaseURL = strings.TrimSuffix(strings.TrimSuffix(cfg.BaseURL, "/"), "/v1")
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type ollama struct {
	client  *api.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewOllama creates a Generator backed by the Ollama chat API
func NewOllama(cfg *OllamaConfig) (Generator, error) {
	if cfg == nil {
		cfg = &OllamaConfig{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "invalid ollama config")
	}

	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeFailedPrecondition, "invalid ollama base URL %q", cfg.BaseURL)
	}

	return &ollama{
		client:  api.NewClient(base, cfg.HTTPClient),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
	}, nil
}

func (o *ollama) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	message := api.Message{Role: "user", Content: input.Prompt}
	if input.Media != nil {
		message.Images = []api.ImageData{input.Media.Data}
	}

	stream := false
	req := &api.ChatRequest{
		Model:    o.model,
		Messages: []api.Message{message},
		Stream:   &stream,
	}

	requestCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	var sb strings.Builder
	err := o.client.Chat(requestCtx, req, func(resp api.ChatResponse) error {
		sb.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		err = requestError(ctx, err, BackendOllama)
		observe(BackendOllama, o.model, input, start, "", err)
		return nil, err
	}

	text := sb.String()
	if text == "" {
		err := errors.Unavailablef("ollama returned no text for model %s", o.model)
		observe(BackendOllama, o.model, input, start, "", err)
		return nil, err
	}
	observe(BackendOllama, o.model, input, start, text, nil)

	o.logger.Debug("ollama response",
		zap.String("model", o.model),
		zap.Int("response_bytes", len(text)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &GenerateOutput{Text: text}, nil
}
