package repository

import (
	"context"
	"time"
)

// Session is an authenticated login tracked server-side so logout can
// revoke tokens before they expire.
type Session struct {
	ID        string
	UserID    int
	ExpiresAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, session Session) error
	// Get returns domain.ErrSessionNotFound for a missing or expired session.
	Get(ctx context.Context, sessionID string) (Session, error)
	Delete(ctx context.Context, sessionID string) error
}
