package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/KirkDiggler/pokidex/internal/clients/llm"
	"github.com/KirkDiggler/pokidex/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokidex/internal/config"
	"github.com/KirkDiggler/pokidex/internal/errors"
	"github.com/KirkDiggler/pokidex/internal/logger"
	"github.com/KirkDiggler/pokidex/internal/orchestrators/assistant"
	"github.com/KirkDiggler/pokidex/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokidex/internal/redis"
	chatsession "github.com/KirkDiggler/pokidex/internal/repositories/chat_session"
)

// app holds the wired dependencies shared by the subcommands
type app struct {
	cfg       *config.Config
	logger    *zap.Logger
	lookup    pokeapi.Client
	assistant assistant.Service
}

// newApp loads configuration and builds the lookup client. The generator and
// orchestrator are only built when withAssistant is set.
func newApp(ctx context.Context, withAssistant bool) (*app, error) {
	cfg, err := config.Load(config.Options{EnvFile: envFile, ConfigFile: configFile})
	if err != nil {
		return nil, err
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: cfg.LogEncoding})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "failed to create logger")
	}

	lookup, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPIBaseURL,
		HTTPTimeout: cfg.PokeAPITimeout,
		Logger:      log.Named("pokeapi"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pokeapi client")
	}

	a := &app{cfg: cfg, logger: log, lookup: lookup}
	if !withAssistant {
		return a, nil
	}

	generator, err := llm.New(ctx, &llm.Config{
		Backend: cfg.LLMBackend,
		APIKey:  cfg.APIKey(),
		Model:   cfg.LLMModel,
		BaseURL: cfg.LLMBaseURL,
		Timeout: cfg.LLMTimeout,
		Logger:  log.Named("llm"),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create generator")
	}

	a.assistant, err = assistant.NewOrchestrator(&assistant.Config{
		Lookup:    lookup,
		Generator: generator,
		Logger:    log.Named("assistant"),
		MaxMoves:  cfg.MaxMoves,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create assistant")
	}

	log.Debug("configured",
		zap.String("backend", cfg.LLMBackend),
		zap.String("model", cfg.LLMModel),
		zap.Bool("redis_sessions", cfg.RedisAddr != ""),
	)
	return a, nil
}

// sessionRepository uses Redis when REDIS_ADDR is set and memory otherwise.
// The returned func releases the Redis connection.
func (a *app) sessionRepository(ctx context.Context) (chatsession.Repository, func(), error) {
	if a.cfg.RedisAddr == "" {
		return chatsession.NewInMemory(clock.New()), func() {}, nil
	}

	client, err := redisclient.NewClient(a.cfg.RedisAddr, nil)
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeFailedPrecondition, "failed to create redis client")
	}
	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	if err := client.Ping(ctx).Err(); err != nil {
		cleanup()
		return nil, nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "redis at %s is unreachable", a.cfg.RedisAddr)
	}

	repo, err := chatsession.NewRedisRepository(&chatsession.Config{Client: client, Clock: clock.New()})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return repo, cleanup, nil
}

func (a *app) close() {
	_ = a.logger.Sync() // nolint:errcheck // stderr sync fails on some terminals
}
