package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (repository.SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionRepository(client), mr
}

func TestSessionRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	session := repository.Session{
		ID:        "sess-1",
		UserID:    42,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, session))

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, 42, got.UserID)
	assert.Equal(t, "sess-1", got.ID)
}

func TestSessionGetMissing(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionCreateRejectsExpired(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Create(context.Background(), repository.Session{
		ID:        "stale",
		UserID:    1,
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessionExpiry(t *testing.T) {
	repo, mr := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, repository.Session{
		ID:        "sess-ttl",
		UserID:    7,
		ExpiresAt: time.Now().Add(time.Minute),
	}))

	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, "sess-ttl")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionDelete(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, repository.Session{
		ID:        "sess-del",
		UserID:    7,
		ExpiresAt: time.Now().Add(time.Hour),
	}))
	require.NoError(t, repo.Delete(ctx, "sess-del"))

	_, err := repo.Get(ctx, "sess-del")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Deleting a missing session is a no-op.
	assert.NoError(t, repo.Delete(ctx, "sess-del"))
}
