// Package chatsession stores the question and answer exchanges of one chat run
package chatsession

import (
	"context"
	"time"
)

// DefaultTTL bounds how long an abandoned session lingers
const DefaultTTL = time.Hour

// Session is the transcript of one chat run
type Session struct {
	ID        string
	Exchanges []Exchange
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Exchange is one question and its answer
type Exchange struct {
	Question string
	Answer   string
	// Mode is the answer path, e.g. "tool" or "fallback"
	Mode    string
	AskedAt time.Time
}

// CreateInput contains parameters for creating a session
type CreateInput struct {
	SessionID string
	// TTL defaults to DefaultTTL
	TTL time.Duration
}

// CreateOutput contains the created session
type CreateOutput struct {
	Session *Session
}

// AppendInput adds one exchange to a session
type AppendInput struct {
	SessionID string
	Exchange  Exchange
}

// AppendOutput contains the updated session
type AppendOutput struct {
	Session *Session
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	SessionID string
}

// GetOutput contains the session
type GetOutput struct {
	Session *Session
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	SessionID string
}

// DeleteOutput reports what was removed
type DeleteOutput struct {
	ExchangesDeleted int
}

// Repository defines chat session storage. Sessions expire on their own;
// Append keeps the original expiry.
type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

const (
	errSessionIDEmpty = "session ID cannot be empty"
	errSessionExpired = "chat session has expired"
	errSessionMissing = "chat session not found"
)
