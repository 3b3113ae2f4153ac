package llm

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/KirkDiggler/pokidex/internal/errors"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.5-flash"

// GeminiConfig configures the Gemini API backend
type GeminiConfig struct {
	APIKey string
	// Model (optional, defaults to DefaultGeminiModel)
	Model string
	// BaseURL overrides the API endpoint (optional)
	BaseURL string
	// Timeout per request (optional, defaults to 60 seconds)
	Timeout time.Duration
	// HTTPClient (optional)
	HTTPClient *http.Client
	// Logger (optional)
	Logger *zap.Logger
}

// Validate validates the config and sets defaults
func (cfg *GeminiConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type gemini struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGemini creates a Generator backed by the Gemini API
func NewGemini(ctx context.Context, cfg *GeminiConfig) (Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("gemini config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "invalid gemini config")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "failed to create gemini client")
	}

	return &gemini{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
	}, nil
}

func (g *gemini) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	parts := []*genai.Part{genai.NewPartFromText(input.Prompt)}
	if input.Media != nil {
		parts = append(parts, genai.NewPartFromBytes(input.Media.Data, input.Media.MIMEType))
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	requestCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	res, err := g.client.Models.GenerateContent(requestCtx, g.model, contents, nil)
	if err != nil {
		err = requestError(ctx, err, BackendGemini)
		observe(BackendGemini, g.model, input, start, "", err)
		return nil, err
	}

	text := responseText(res)
	if text == "" {
		err := errors.Unavailablef("gemini returned no text for model %s", g.model)
		observe(BackendGemini, g.model, input, start, "", err)
		return nil, err
	}
	observe(BackendGemini, g.model, input, start, text, nil)

	g.logger.Debug("gemini response",
		zap.String("model", g.model),
		zap.Int("prompt_bytes", len(input.Prompt)),
		zap.Bool("media", input.Media != nil),
		zap.Int("response_bytes", len(text)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &GenerateOutput{Text: text}, nil
}

// responseText joins the text parts of the first candidate
func responseText(res *genai.GenerateContentResponse) string {
	if res == nil || len(res.Candidates) == 0 || res.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range res.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}
