package llm

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokidex/internal/errors"
)

// DefaultOpenAIModel is used when no model is configured
const DefaultOpenAIModel = "gpt-4o-mini"

// OpenAIConfig configures an OpenAI compatible chat completion backend
type OpenAIConfig struct {
	APIKey string
	// Model (optional, defaults to DefaultOpenAIModel)
	Model string
	// BaseURL for compatible providers (optional)
	BaseURL string
	// Timeout per request (optional, defaults to 60 seconds)
	Timeout time.Duration
	// HTTPClient (optional)
	HTTPClient *http.Client
	// Logger (optional)
	Logger *zap.Logger
}

// Validate validates the config and sets defaults
func (cfg *OpenAIConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("APIKey", cfg.APIKey, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type openAI struct {
	client  *openai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewOpenAI creates a Generator backed by the chat completions API
func NewOpenAI(cfg *OpenAIConfig) (Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("openai config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "invalid openai config")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	if cfg.HTTPClient != nil {
		clientCfg.HTTPClient = cfg.HTTPClient
	}

	return &openAI{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  cfg.Logger,
	}, nil
}

func (o *openAI) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	message := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser}
	if input.Media == nil {
		message.Content = input.Prompt
	} else {
		message.MultiContent = []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: input.Prompt},
			{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL:    dataURL(input.Media),
					Detail: openai.ImageURLDetailAuto,
				},
			},
		}
	}

	requestCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(requestCtx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: []openai.ChatCompletionMessage{message},
	})
	if err != nil {
		err = requestError(ctx, err, BackendOpenAI)
		observe(BackendOpenAI, o.model, input, start, "", err)
		return nil, err
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		err := errors.Unavailablef("openai returned no text for model %s", o.model)
		observe(BackendOpenAI, o.model, input, start, "", err)
		return nil, err
	}
	text := resp.Choices[0].Message.Content
	observe(BackendOpenAI, o.model, input, start, text, nil)

	o.logger.Debug("openai response",
		zap.String("model", o.model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &GenerateOutput{Text: text}, nil
}

func dataURL(media *Media) string {
	return fmt.Sprintf("data:%s;base64,%s", media.MIMEType, base64.StdEncoding.EncodeToString(media.Data))
}
