package chatsession

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokidex/internal/errors"
	"github.com/KirkDiggler/pokidex/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokidex/internal/redis"
)

// Key pattern: chat_session:{session_id}
const sessionKeyPrefix = "chat_session:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for chat sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	now := r.clock.Now()
	session := &Session{
		ID:        input.SessionID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}

	if err := r.save(ctx, session, ttl); err != nil {
		return nil, err
	}

	return &CreateOutput{Session: session}, nil
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	got, err := r.Get(ctx, GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	session := got.Session
	remaining := session.ExpiresAt.Sub(r.clock.Now())
	if remaining <= 0 {
		return nil, errors.NotFound(errSessionExpired)
	}

	exchange := input.Exchange
	if exchange.AskedAt.IsZero() {
		exchange.AskedAt = r.clock.Now()
	}
	session.Exchanges = append(session.Exchanges, exchange)

	if err := r.save(ctx, session, remaining); err != nil {
		return nil, err
	}

	return &AppendOutput{Session: session}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	key := sessionKeyPrefix + input.SessionID
	sessionJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound(errSessionMissing).WithMeta("session_id", input.SessionID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get session from Redis")
	}

	var session Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal session")
	}

	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound(errSessionExpired)
	}

	return &GetOutput{Session: &session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	var deleted int
	if got, err := r.Get(ctx, GetInput(input)); err == nil {
		deleted = len(got.Session.Exchanges)
	}

	if err := r.client.Del(ctx, sessionKeyPrefix+input.SessionID).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete session from Redis")
	}

	return &DeleteOutput{ExchangesDeleted: deleted}, nil
}

func (r *redisRepository) save(ctx context.Context, session *Session, ttl time.Duration) error {
	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to marshal session")
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+session.ID, sessionJSON, ttl).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store session in Redis")
	}
	return nil
}
