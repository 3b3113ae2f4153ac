// Package pokeapi is the location for the PokéAPI client
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokidex/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/KirkDiggler/pokidex/internal/entities/pokemon"
	"github.com/KirkDiggler/pokidex/internal/errors"
)

const (
	// DefaultBaseURL is the public PokéAPI v2 endpoint
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	// DefaultHTTPTimeout bounds a single lookup request
	DefaultHTTPTimeout = 30 * time.Second

	pokemonResource = "pokemon"
	speciesResource = "pokemon-species"

	// error bodies are only read for diagnostics
	maxErrorBody = 512
)

// Client defines the interface for lookup service interactions.
// Both operations accept a name or a numeric id. The name is tried first;
// when that fails and the identifier parses as an integer, the id is tried.
type Client interface {
	// GetPokemon fetches the creature record
	GetPokemon(ctx context.Context, nameOrID string) (*pokemon.Pokemon, error)

	// GetSpecies fetches the species record
	GetSpecies(ctx context.Context, nameOrID string) (*pokemon.Species, error)
}

// Config contains configuration options for the PokéAPI client.
type Config struct {
	// BaseURL for the API (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
	// Logger (optional)
	Logger *zap.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base URL %q: %v", cfg.BaseURL, err)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a new PokéAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, nameOrID string) (*pokemon.Pokemon, error) {
	var res pokemonResponse
	if err := c.getByNameOrID(ctx, pokemonResource, nameOrID, &res); err != nil {
		return nil, err
	}
	return res.toEntity(), nil
}

func (c *client) GetSpecies(ctx context.Context, nameOrID string) (*pokemon.Species, error) {
	var res speciesResponse
	if err := c.getByNameOrID(ctx, speciesResource, nameOrID, &res); err != nil {
		return nil, err
	}
	return res.toEntity(), nil
}

// getByNameOrID resolves the identifier as a name, falling back to a numeric id.
func (c *client) getByNameOrID(ctx context.Context, resource, nameOrID string, out any) error {
	identifier := strings.TrimSpace(nameOrID)
	if identifier == "" {
		return errors.InvalidArgumentf("%s identifier is required", resource)
	}

	err := c.get(ctx, resource, identifier, out)
	if err == nil {
		return nil
	}

	id, parseErr := strconv.ParseInt(identifier, 10, 64)
	if parseErr != nil {
		return errors.Wrapf(err, "failed to find %s %q", resource, identifier).
			WithMeta("identifier", identifier)
	}

	c.logger.Debug("name lookup failed, retrying by id",
		zap.String("resource", resource),
		zap.String("identifier", identifier),
		zap.Int64("id", id),
		zap.Error(err),
	)

	if err := c.get(ctx, resource, strconv.FormatInt(id, 10), out); err != nil {
		return errors.Wrapf(err, "failed to find %s with id %d", resource, id).
			WithMeta("identifier", identifier)
	}
	return nil
}

func (c *client) get(ctx context.Context, resource, key string, out any) error {
	endpoint := c.baseURL + resource + "/" + url.PathEscape(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", endpoint)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return errors.Wrap(ctx.Err(), "lookup interrupted")
		}
		return errors.WrapWithCode(err, errors.CodeUnavailable, "pokeapi request failed")
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // body already consumed
	}()

	c.logger.Debug("pokeapi response",
		zap.String("url", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errors.NotFoundf("%s %q not found", resource, key)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return errors.Unavailablef("pokeapi returned %d for %s %q: %s",
			resp.StatusCode, resource, key, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, fmt.Sprintf("failed to decode %s %q", resource, key))
	}
	return nil
}
