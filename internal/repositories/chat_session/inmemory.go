package chatsession

import (
	"context"
	"sync"

	"github.com/KirkDiggler/pokidex/internal/errors"
	"github.com/KirkDiggler/pokidex/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	clock clock.Clock
	store map[string]*Session
}

// NewInMemory creates a new in-memory repository; a nil clock uses real time
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[string]*Session),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create stores an empty session
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := r.clock.Now()
	session := &Session{ID: input.SessionID, CreatedAt: now, ExpiresAt: now.Add(ttl)}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.SessionID] = session

	return &CreateOutput{Session: copySession(session)}, nil
}

// Append adds an exchange to a live session
func (r *InMemoryRepository) Append(_ context.Context, input AppendInput) (*AppendOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.live(input.SessionID)
	if err != nil {
		return nil, err
	}

	exchange := input.Exchange
	if exchange.AskedAt.IsZero() {
		exchange.AskedAt = r.clock.Now()
	}
	session.Exchanges = append(session.Exchanges, exchange)

	return &AppendOutput{Session: copySession(session)}, nil
}

// Get returns a copy of a live session
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, err := r.live(input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Session: copySession(session)}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int
	if session, err := r.live(input.SessionID); err == nil {
		deleted = len(session.Exchanges)
	}
	delete(r.store, input.SessionID)

	return &DeleteOutput{ExchangesDeleted: deleted}, nil
}

// live returns the stored session, dropping it when expired. Callers hold mu.
func (r *InMemoryRepository) live(id string) (*Session, error) {
	session, ok := r.store[id]
	if !ok {
		return nil, errors.NotFound(errSessionMissing).WithMeta("session_id", id)
	}
	if r.clock.Now().After(session.ExpiresAt) {
		delete(r.store, id)
		return nil, errors.NotFound(errSessionExpired)
	}
	return session, nil
}

func copySession(s *Session) *Session {
	out := *s
	out.Exchanges = append([]Exchange(nil), s.Exchanges...)
	return &out
}
