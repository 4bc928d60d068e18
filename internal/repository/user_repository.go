package repository

import (
	"context"

	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
)

// CandidateFilter carries the stored preference criteria the candidate
// query applies. It is built by the feed use case, never defaulted here.
type CandidateFilter struct {
	PreferredGender string
	MinAge          int
	MaxAge          int
	Limit           int
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateLastActive(ctx context.Context, id int) error

	// ListCandidates returns users eligible for userID to swipe on:
	// excludes self, banned users, and every pair that already has a
	// swipe decision in either direction.
	ListCandidates(ctx context.Context, userID int, filter CandidateFilter) ([]*domain.User, error)
}
