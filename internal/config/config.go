// Package config loads process configuration from a .env file, the
// environment and an optional YAML file, in that order.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/pokidex/internal/errors"
)

// EnvPrefix is prepended to every variable name. Unprefixed names are
// accepted as well, so GEMINI_API_KEY works on its own.
const EnvPrefix = "POKIDEX"

// DefaultEnvFile is loaded when present
const DefaultEnvFile = ".env"

// Generation backends
const (
	BackendGemini = "gemini"
	BackendOpenAI = "openai"
	BackendOllama = "ollama"
)

// Backends lists the accepted LLM_BACKEND values
var Backends = []string{BackendGemini, BackendOpenAI, BackendOllama}

var defaultModels = map[string]string{
	BackendGemini: "gemini-2.5-flash",
	BackendOpenAI: "gpt-4o-mini",
	BackendOllama: "llava",
}

// Config is the full process configuration
type Config struct {
	// Secrets never come from the YAML file
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" yaml:"-"`
	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY" yaml:"-"`

	LLMBackend string        `envconfig:"LLM_BACKEND" default:"gemini" yaml:"llm_backend"`
	LLMModel   string        `envconfig:"LLM_MODEL" yaml:"llm_model"`
	LLMBaseURL string        `envconfig:"LLM_BASE_URL" yaml:"llm_base_url"`
	LLMTimeout time.Duration `envconfig:"LLM_TIMEOUT" default:"60s" yaml:"llm_timeout"`

	PokeAPIBaseURL string        `envconfig:"POKEAPI_BASE_URL" yaml:"pokeapi_base_url"`
	PokeAPITimeout time.Duration `envconfig:"POKEAPI_TIMEOUT" default:"30s" yaml:"pokeapi_timeout"`
	MaxMoves       int           `envconfig:"MAX_MOVES" default:"20" yaml:"max_moves"`

	// RedisAddr selects the Redis session store; empty keeps sessions in memory
	RedisAddr  string        `envconfig:"REDIS_ADDR" yaml:"redis_addr"`
	SessionTTL time.Duration `envconfig:"SESSION_TTL" default:"1h" yaml:"session_ttl"`

	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn" yaml:"log_level"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"console" yaml:"log_encoding"`
}

// Options selects the files Load reads
type Options struct {
	// EnvFile defaults to .env; a missing file is skipped
	EnvFile string
	// ConfigFile is an optional YAML overlay; a missing file is an error
	ConfigFile string
}

// Load builds the configuration and validates it.
// Validation failures carry CodeFailedPrecondition.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeFailedPrecondition, "failed to load env file %s", envFile)
		}
	}

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "failed to read environment")
	}

	if opts.ConfigFile != "" {
		if err := cfg.overlayFile(opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	cfg.LLMBackend = strings.ToLower(strings.TrimSpace(cfg.LLMBackend))
	if cfg.LLMModel == "" {
		cfg.LLMModel = defaultModels[cfg.LLMBackend]
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "invalid configuration")
	}

	return &cfg, nil
}

func (c *Config) overlayFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeFailedPrecondition, "failed to read config file %s", path)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.WrapWithCodef(err, errors.CodeFailedPrecondition, "failed to parse config file %s", path)
	}
	return nil
}

// Validate checks the selected backend has what it needs
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("LLMBackend", c.LLMBackend, Backends, vb)

	switch c.LLMBackend {
	case BackendGemini:
		if strings.TrimSpace(c.GeminiAPIKey) == "" {
			vb.Field("GeminiAPIKey", "is required: set GEMINI_API_KEY")
		}
	case BackendOpenAI:
		if strings.TrimSpace(c.OpenAIAPIKey) == "" {
			vb.Field("OpenAIAPIKey", "is required: set OPENAI_API_KEY")
		}
	}

	if c.LLMTimeout <= 0 {
		vb.InvalidField("LLMTimeout", "must be positive")
	}
	if c.PokeAPITimeout <= 0 {
		vb.InvalidField("PokeAPITimeout", "must be positive")
	}
	if c.MaxMoves < 0 {
		vb.InvalidField("MaxMoves", "must not be negative")
	}
	if c.SessionTTL <= 0 {
		vb.InvalidField("SessionTTL", "must be positive")
	}

	return vb.Build()
}

// APIKey returns the credential of the selected backend
func (c *Config) APIKey() string {
	switch c.LLMBackend {
	case BackendGemini:
		return c.GeminiAPIKey
	case BackendOpenAI:
		return c.OpenAIAPIKey
	default:
		return ""
	}
}
