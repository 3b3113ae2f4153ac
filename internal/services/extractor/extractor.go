// Package extractor finds a resolvable pokemon name in a free text question
package extractor

//go:generate mockgen -destination=mock/mock_extractor.go -package=extractormock github.com/KirkDiggler/pokidex/internal/services/extractor Extractor

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/KirkDiggler/pokidex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokidex/internal/errors"
)

// Candidate tokens are longer than minTokenLength and shorter than maxTokenLength runes
const (
	minTokenLength = 2
	maxTokenLength = 20
)

// Extractor finds the first name in a query that the lookup service knows
type Extractor interface {
	// Extract returns the normalized identifier, or false when none resolves
	Extract(ctx context.Context, query string) (string, bool)
}

// Config holds the extractor dependencies
type Config struct {
	Client pokeapi.Client
	Logger *zap.Logger
}

// Validate validates the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type extractor struct {
	client pokeapi.Client
	logger *zap.Logger
}

// New creates an extractor
func New(cfg *Config) (Extractor, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &extractor{client: cfg.Client, logger: cfg.Logger}, nil
}

func (e *extractor) Extract(ctx context.Context, query string) (string, bool) {
	for _, token := range Candidates(query) {
		if ctx.Err() != nil {
			return "", false
		}

		name := pokeapi.NormalizeName(token)
		if name == "" {
			continue
		}

		if _, err := e.client.GetPokemon(ctx, name); err != nil {
			e.logger.Debug("candidate did not resolve",
				zap.String("token", token),
				zap.String("name", name),
				zap.Error(err),
			)
			continue
		}

		e.logger.Debug("extracted name", zap.String("token", token), zap.String("name", name))
		return name, true
	}

	return "", false
}

// Candidates returns the tokens worth probing, in query order.
// A candidate starts with an uppercase letter and has 3 to 19 runes.
func Candidates(query string) []string {
	var out []string
	for _, token := range strings.Fields(query) {
		n := utf8.RuneCountInString(token)
		if n <= minTokenLength || n >= maxTokenLength {
			continue
		}
		first, _ := utf8.DecodeRuneInString(token)
		if !unicode.IsUpper(first) {
			continue
		}
		out = append(out, token)
	}
	return out
}
