package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository"
)

const sessionPrefix = "sessions:"

type sessionRepository struct {
	client *goredis.Client
}

func NewSessionRepository(client *goredis.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(id string) string {
	return sessionPrefix + id
}

func (r *sessionRepository) Create(ctx context.Context, session repository.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return domain.ErrInvalidInput
	}

	fields := map[string]interface{}{
		"user_id":    session.UserID,
		"expires_at": session.ExpiresAt.Unix(),
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, sessionKey(session.ID), fields)
	pipe.Expire(ctx, sessionKey(session.ID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, sessionID string) (repository.Session, error) {
	fields, err := r.client.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return repository.Session{}, fmt.Errorf("get session: %w", err)
	}
	if len(fields) == 0 {
		return repository.Session{}, domain.ErrSessionNotFound
	}

	userID, err := strconv.Atoi(fields["user_id"])
	if err != nil {
		return repository.Session{}, fmt.Errorf("parse session user id: %w", err)
	}
	expiresUnix, err := strconv.ParseInt(fields["expires_at"], 10, 64)
	if err != nil {
		return repository.Session{}, fmt.Errorf("parse session expiry: %w", err)
	}

	session := repository.Session{
		ID:        sessionID,
		UserID:    userID,
		ExpiresAt: time.Unix(expiresUnix, 0),
	}
	if time.Now().After(session.ExpiresAt) {
		return repository.Session{}, domain.ErrSessionNotFound
	}
	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
