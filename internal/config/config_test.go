package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokidex/internal/config"
	"github.com/KirkDiggler/pokidex/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

var configVars = []string{
	"GEMINI_API_KEY", "OPENAI_API_KEY", "LLM_BACKEND", "LLM_MODEL", "LLM_BASE_URL", "LLM_TIMEOUT",
	"POKEAPI_BASE_URL", "POKEAPI_TIMEOUT", "MAX_MOVES", "REDIS_ADDR", "SESSION_TTL", "LOG_LEVEL", "LOG_ENCODING",
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	// t.Setenv restores the previous value; unsetting afterwards leaves a clean slate
	for _, name := range configVars {
		for _, key := range []string{name, config.EnvPrefix + "_" + name} {
			s.T().Setenv(key, "")
			s.Require().NoError(os.Unsetenv(key))
		}
	}
}

func (s *ConfigTestSuite) missingEnvFile() string {
	return filepath.Join(s.dir, "absent.env")
}

func (s *ConfigTestSuite) TestDefaults() {
	s.T().Setenv("GEMINI_API_KEY", "secret")

	cfg, err := config.Load(config.Options{EnvFile: s.missingEnvFile()})
	s.Require().NoError(err)

	s.Equal(config.BackendGemini, cfg.LLMBackend)
	s.Equal("gemini-2.5-flash", cfg.LLMModel)
	s.Equal(60*time.Second, cfg.LLMTimeout)
	s.Equal(30*time.Second, cfg.PokeAPITimeout)
	s.Equal(20, cfg.MaxMoves)
	s.Equal(time.Hour, cfg.SessionTTL)
	s.Equal("warn", cfg.LogLevel)
	s.Empty(cfg.RedisAddr)
	s.Equal("secret", cfg.APIKey())
}

func (s *ConfigTestSuite) TestMissingCredentialFails() {
	_, err := config.Load(config.Options{EnvFile: s.missingEnvFile()})
	s.Require().Error(err)

	s.True(errors.IsFailedPrecondition(err))
	s.Contains(err.Error(), "GEMINI_API_KEY")
}

func (s *ConfigTestSuite) TestOpenAIRequiresItsOwnKey() {
	s.T().Setenv("GEMINI_API_KEY", "secret")
	s.T().Setenv("LLM_BACKEND", "openai")

	_, err := config.Load(config.Options{EnvFile: s.missingEnvFile()})
	s.Require().Error(err)
	s.Contains(err.Error(), "OPENAI_API_KEY")
}

func (s *ConfigTestSuite) TestOllamaNeedsNoKey() {
	s.T().Setenv("POKIDEX_LLM_BACKEND", "Ollama")

	cfg, err := config.Load(config.Options{EnvFile: s.missingEnvFile()})
	s.Require().NoError(err)
	s.Equal(config.BackendOllama, cfg.LLMBackend)
	s.Equal("llava", cfg.LLMModel)
	s.Empty(cfg.APIKey())
}

func (s *ConfigTestSuite) TestUnknownBackend() {
	s.T().Setenv("LLM_BACKEND", "claude")

	_, err := config.Load(config.Options{EnvFile: s.missingEnvFile()})
	s.Require().Error(err)
	s.Contains(err.Error(), "must be one of: gemini, openai, ollama")
}

func (s *ConfigTestSuite) TestEnvFile() {
	envFile := filepath.Join(s.dir, ".env")
	s.Require().NoError(os.WriteFile(envFile, []byte("GEMINI_API_KEY=from-file\nMAX_MOVES=5\n"), 0o600))
	s.T().Cleanup(func() {
		_ = os.Unsetenv("GEMINI_API_KEY")
		_ = os.Unsetenv("MAX_MOVES")
	})

	cfg, err := config.Load(config.Options{EnvFile: envFile})
	s.Require().NoError(err)
	s.Equal("from-file", cfg.GeminiAPIKey)
	s.Equal(5, cfg.MaxMoves)
}

func (s *ConfigTestSuite) TestYAMLOverlay() {
	s.T().Setenv("GEMINI_API_KEY", "secret")
	path := filepath.Join(s.dir, "pokidex.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(
		"llm_model: gemini-2.5-pro\nmax_moves: 8\npokeapi_timeout: 5s\ngemini_api_key: ignored\n"), 0o600))

	cfg, err := config.Load(config.Options{EnvFile: s.missingEnvFile(), ConfigFile: path})
	s.Require().NoError(err)
	s.Equal("gemini-2.5-pro", cfg.LLMModel)
	s.Equal(8, cfg.MaxMoves)
	s.Equal(5*time.Second, cfg.PokeAPITimeout)
	s.Equal("secret", cfg.GeminiAPIKey)
}

func (s *ConfigTestSuite) TestMissingConfigFile() {
	s.T().Setenv("GEMINI_API_KEY", "secret")

	_, err := config.Load(config.Options{
		EnvFile:    s.missingEnvFile(),
		ConfigFile: filepath.Join(s.dir, "nope.yaml"),
	})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
}

func (s *ConfigTestSuite) TestValidateNegativeMoves() {
	cfg := &config.Config{
		LLMBackend:     config.BackendOllama,
		LLMTimeout:     time.Second,
		PokeAPITimeout: time.Second,
		SessionTTL:     time.Minute,
		MaxMoves:       -1,
	}

	err := cfg.Validate()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "MaxMoves")
}
