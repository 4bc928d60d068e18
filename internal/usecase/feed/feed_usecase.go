package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository"
	"go.uber.org/zap"
)

const maxCandidateLimit = 100

// PhotoURLResolver turns a stored object key into a client-fetchable URL.
type PhotoURLResolver interface {
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type FeedUseCase struct {
	userRepo  repository.UserRepository
	prefRepo  repository.PreferenceRepository
	photoRepo repository.PhotoRepository
	photoURLs PhotoURLResolver
	defLimit  int
	log       *zap.Logger
}

func NewFeedUseCase(
	userRepo repository.UserRepository,
	prefRepo repository.PreferenceRepository,
	photoRepo repository.PhotoRepository,
	photoURLs PhotoURLResolver,
	defaultLimit int,
	log *zap.Logger,
) *FeedUseCase {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	return &FeedUseCase{
		userRepo:  userRepo,
		prefRepo:  prefRepo,
		photoRepo: photoRepo,
		photoURLs: photoURLs,
		defLimit:  defaultLimit,
		log:       log,
	}
}

// NextCandidates returns the next batch of users eligible for userID to
// swipe on: self and every already-decided pair excluded, stored preference
// filters applied, truncated to limit. A user without stored preferences
// gets ErrPreferencesNotSet; the selector never guesses defaults.
func (uc *FeedUseCase) NextCandidates(ctx context.Context, userID, limit int) ([]domain.UserSummary, error) {
	pref, err := uc.prefRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPreferenceNotFound) {
			return nil, domain.ErrPreferencesNotSet
		}
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	if limit <= 0 {
		limit = uc.defLimit
	}
	if limit > maxCandidateLimit {
		limit = maxCandidateLimit
	}

	candidates, err := uc.userRepo.ListCandidates(ctx, userID, repository.CandidateFilter{
		PreferredGender: pref.PreferredGender,
		MinAge:          pref.MinAge,
		MaxAge:          pref.MaxAge,
		Limit:           limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	summaries := make([]domain.UserSummary, 0, len(candidates))
	for _, candidate := range candidates {
		summary := candidate.Summary()
		uc.attachPrimaryPhoto(ctx, &summary)
		summaries = append(summaries, summary)
	}

	return summaries, nil
}

func (uc *FeedUseCase) attachPrimaryPhoto(ctx context.Context, summary *domain.UserSummary) {
	if uc.photoRepo == nil || uc.photoURLs == nil {
		return
	}

	photo, err := uc.photoRepo.GetPrimaryByUser(ctx, summary.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrPhotoNotFound) {
			uc.log.Warn("primary photo lookup failed",
				zap.Int("user_id", summary.ID),
				zap.Error(err),
			)
		}
		return
	}

	url, err := uc.photoURLs.PresignedURL(ctx, photo.ObjectKey, 15*time.Minute)
	if err != nil {
		uc.log.Warn("photo url resolution failed",
			zap.String("object_key", photo.ObjectKey),
			zap.Error(err),
		)
		return
	}
	summary.PhotoURL = &url
}
