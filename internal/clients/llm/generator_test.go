package llm_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zaptest"

	"github.com/KirkDiggler/pokidex/internal/clients/llm"
	"github.com/KirkDiggler/pokidex/internal/errors"
)

type GeneratorTestSuite struct {
	suite.Suite
	ctx     context.Context
	handler http.HandlerFunc
	server  *httptest.Server
	path    string
	body    []byte
}

func TestGeneratorSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func (s *GeneratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.handler = nil
	s.path = ""
	s.body = nil
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.path = r.URL.Path
		s.body, _ = io.ReadAll(r.Body)
		s.handler(w, r)
	}))
}

func (s *GeneratorTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *GeneratorTestSuite) respond(status int, body any) {
	s.handler = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

func (s *GeneratorTestSuite) TestNewRejectsUnknownBackend() {
	_, err := llm.New(s.ctx, &llm.Config{Backend: "claude"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *GeneratorTestSuite) TestGeminiRequiresAPIKey() {
	_, err := llm.NewGemini(s.ctx, &llm.GeminiConfig{})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *GeneratorTestSuite) TestOpenAIRequiresAPIKey() {
	_, err := llm.NewOpenAI(&llm.OpenAIConfig{})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *GeneratorTestSuite) TestGenerateRejectsEmptyPrompt() {
	gen, err := llm.NewOllama(&llm.OllamaConfig{BaseURL: s.server.URL})
	s.Require().NoError(err)

	_, err = gen.Generate(s.ctx, &llm.GenerateInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *GeneratorTestSuite) TestOpenAIText() {
	s.respond(http.StatusOK, map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": "Pikachu is Electric."},
			"finish_reason": "stop",
		}},
		"usage": map[string]any{"prompt_tokens": 10, "completion_tokens": 4, "total_tokens": 14},
	})

	gen, err := llm.NewOpenAI(&llm.OpenAIConfig{
		APIKey:  "test",
		BaseURL: s.server.URL + "/v1",
		Logger:  zaptest.NewLogger(s.T()),
	})
	s.Require().NoError(err)

	out, err := gen.Generate(s.ctx, &llm.GenerateInput{Prompt: "What type is Pikachu?"})
	s.Require().NoError(err)
	s.Equal("Pikachu is Electric.", out.Text)
	s.Equal("/v1/chat/completions", s.path)
	s.Contains(string(s.body), "What type is Pikachu?")
}

func (s *GeneratorTestSuite) TestOpenAIAttachesImageAsDataURL() {
	s.respond(http.StatusOK, map[string]any{
		"choices": []map[string]any{{
			"message": map[string]any{"role": "assistant", "content": `{"type":"pokemon","name":"Pikachu"}`},
		}},
	})

	gen, err := llm.NewOpenAI(&llm.OpenAIConfig{APIKey: "test", BaseURL: s.server.URL + "/v1"})
	s.Require().NoError(err)

	image := []byte{0x89, 'P', 'N', 'G'}
	_, err = gen.Generate(s.ctx, &llm.GenerateInput{
		Prompt: "Is this a Pokémon?",
		Media:  &llm.Media{Data: image, MIMEType: "image/png"},
	})
	s.Require().NoError(err)
	s.Contains(string(s.body), "data:image/png;base64,"+base64.StdEncoding.EncodeToString(image))
}

func (s *GeneratorTestSuite) TestOpenAIServerErrorIsUnavailable() {
	s.respond(http.StatusInternalServerError, map[string]any{
		"error": map[string]any{"message": "overloaded", "type": "server_error"},
	})

	gen, err := llm.NewOpenAI(&llm.OpenAIConfig{APIKey: "test", BaseURL: s.server.URL + "/v1"})
	s.Require().NoError(err)

	_, err = gen.Generate(s.ctx, &llm.GenerateInput{Prompt: "hi"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *GeneratorTestSuite) TestOllamaText() {
	s.respond(http.StatusOK, map[string]any{
		"model":      "llava",
		"created_at": time.Now().UTC().Format(time.RFC3339),
		"message":    map[string]any{"role": "assistant", "content": "Bulbasaur is Grass and Poison."},
		"done":       true,
	})

	gen, err := llm.NewOllama(&llm.OllamaConfig{BaseURL: s.server.URL + "/v1"})
	s.Require().NoError(err)

	out, err := gen.Generate(s.ctx, &llm.GenerateInput{
		Prompt: "Describe this",
		Media:  &llm.Media{Data: []byte("img"), MIMEType: "image/png"},
	})
	s.Require().NoError(err)
	s.Equal("Bulbasaur is Grass and Poison.", out.Text)
	s.Equal("/api/chat", s.path)
	s.Contains(string(s.body), base64.StdEncoding.EncodeToString([]byte("img")))
}

func (s *GeneratorTestSuite) TestOllamaEmptyResponseIsUnavailable() {
	s.respond(http.StatusOK, map[string]any{
		"model":   "llava",
		"message": map[string]any{"role": "assistant", "content": ""},
		"done":    true,
	})

	gen, err := llm.NewOllama(&llm.OllamaConfig{BaseURL: s.server.URL})
	s.Require().NoError(err)

	_, err = gen.Generate(s.ctx, &llm.GenerateInput{Prompt: "hi"})
	s.Require().Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *GeneratorTestSuite) TestGeminiText() {
	s.respond(http.StatusOK, map[string]any{
		"candidates": []map[string]any{{
			"content": map[string]any{
				"role":  "model",
				"parts": []map[string]any{{"text": `{"type":"final",`}, {"text": `"answer":"Hi"}`}},
			},
			"finishReason": "STOP",
		}},
	})

	gen, err := llm.NewGemini(s.ctx, &llm.GeminiConfig{APIKey: "test", BaseURL: s.server.URL})
	s.Require().NoError(err)

	out, err := gen.Generate(s.ctx, &llm.GenerateInput{Prompt: "hello"})
	s.Require().NoError(err)
	s.Equal(`{"type":"final","answer":"Hi"}`, out.Text)
	s.Contains(s.path, "models/"+llm.DefaultGeminiModel+":generateContent")
}

func (s *GeneratorTestSuite) TestCanceledContext() {
	s.respond(http.StatusOK, map[string]any{})

	gen, err := llm.NewOpenAI(&llm.OpenAIConfig{APIKey: "test", BaseURL: s.server.URL + "/v1"})
	s.Require().NoError(err)

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err = gen.Generate(ctx, &llm.GenerateInput{Prompt: "hi"})
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}
