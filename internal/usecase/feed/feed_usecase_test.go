package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository"
	"go.uber.org/zap"
)

type stubPrefRepo struct {
	pref *domain.Preference
	err  error
}

func (s *stubPrefRepo) GetByUserID(_ context.Context, _ int) (*domain.Preference, error) {
	return s.pref, s.err
}

func (s *stubPrefRepo) Upsert(_ context.Context, _ *domain.Preference) error { return nil }

type stubUserRepo struct {
	candidates []*domain.User
	lastFilter repository.CandidateFilter
}

func (s *stubUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }
func (s *stubUserRepo) GetByID(_ context.Context, _ int) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (s *stubUserRepo) Update(_ context.Context, _ *domain.User) error     { return nil }
func (s *stubUserRepo) UpdateLastActive(_ context.Context, _ int) error    { return nil }

func (s *stubUserRepo) ListCandidates(_ context.Context, _ int, filter repository.CandidateFilter) ([]*domain.User, error) {
	s.lastFilter = filter
	return s.candidates, nil
}

type stubPhotoRepo struct {
	primary map[int]*domain.Photo
}

func (s *stubPhotoRepo) Create(_ context.Context, _ *domain.Photo) error { return nil }
func (s *stubPhotoRepo) GetByID(_ context.Context, _ int) (*domain.Photo, error) {
	return nil, domain.ErrPhotoNotFound
}
func (s *stubPhotoRepo) ListByUser(_ context.Context, _ int) ([]*domain.Photo, error) {
	return nil, nil
}
func (s *stubPhotoRepo) Delete(_ context.Context, _ int) error { return nil }

func (s *stubPhotoRepo) GetPrimaryByUser(_ context.Context, userID int) (*domain.Photo, error) {
	photo, ok := s.primary[userID]
	if !ok {
		return nil, domain.ErrPhotoNotFound
	}
	return photo, nil
}

type stubURLResolver struct{}

func (stubURLResolver) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://cdn.test/" + key, nil
}

func candidate(id int, name string) *domain.User {
	return &domain.User{
		ID:        id,
		Name:      name,
		Gender:    "female",
		BirthDate: time.Date(1999, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNextCandidatesRequiresPreferences(t *testing.T) {
	prefRepo := &stubPrefRepo{err: domain.ErrPreferenceNotFound}
	uc := NewFeedUseCase(&stubUserRepo{}, prefRepo, &stubPhotoRepo{}, stubURLResolver{}, 20, zap.NewNop())

	_, err := uc.NextCandidates(context.Background(), 1, 10)
	if !errors.Is(err, domain.ErrPreferencesNotSet) {
		t.Errorf("err = %v, want ErrPreferencesNotSet", err)
	}
}

func TestNextCandidatesAppliesStoredPreferences(t *testing.T) {
	userRepo := &stubUserRepo{candidates: []*domain.User{candidate(2, "bob")}}
	prefRepo := &stubPrefRepo{pref: &domain.Preference{
		UserID:          1,
		PreferredGender: "male",
		MinAge:          25,
		MaxAge:          35,
	}}
	uc := NewFeedUseCase(userRepo, prefRepo, &stubPhotoRepo{}, stubURLResolver{}, 20, zap.NewNop())

	summaries, err := uc.NextCandidates(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("NextCandidates: %v", err)
	}
	if len(summaries) != 1 || summaries[0].ID != 2 {
		t.Fatalf("summaries = %+v, want one entry for user 2", summaries)
	}

	filter := userRepo.lastFilter
	if filter.PreferredGender != "male" || filter.MinAge != 25 || filter.MaxAge != 35 || filter.Limit != 5 {
		t.Errorf("filter = %+v, want stored preferences with limit 5", filter)
	}
}

func TestNextCandidatesLimitDefaultsAndCaps(t *testing.T) {
	userRepo := &stubUserRepo{}
	prefRepo := &stubPrefRepo{pref: &domain.Preference{PreferredGender: "female", MinAge: 18, MaxAge: 99}}
	uc := NewFeedUseCase(userRepo, prefRepo, &stubPhotoRepo{}, stubURLResolver{}, 20, zap.NewNop())
	ctx := context.Background()

	if _, err := uc.NextCandidates(ctx, 1, 0); err != nil {
		t.Fatalf("NextCandidates: %v", err)
	}
	if userRepo.lastFilter.Limit != 20 {
		t.Errorf("limit = %d, want configured default 20", userRepo.lastFilter.Limit)
	}

	if _, err := uc.NextCandidates(ctx, 1, 500); err != nil {
		t.Fatalf("NextCandidates: %v", err)
	}
	if userRepo.lastFilter.Limit != maxCandidateLimit {
		t.Errorf("limit = %d, want cap %d", userRepo.lastFilter.Limit, maxCandidateLimit)
	}
}

func TestNextCandidatesAttachesPrimaryPhotoURL(t *testing.T) {
	userRepo := &stubUserRepo{candidates: []*domain.User{candidate(2, "bob"), candidate(3, "carol")}}
	prefRepo := &stubPrefRepo{pref: &domain.Preference{PreferredGender: "female", MinAge: 18, MaxAge: 99}}
	photoRepo := &stubPhotoRepo{primary: map[int]*domain.Photo{
		2: {ID: 7, UserID: 2, ObjectKey: "users/2/a.jpg", IsPrimary: true},
	}}
	uc := NewFeedUseCase(userRepo, prefRepo, photoRepo, stubURLResolver{}, 20, zap.NewNop())

	summaries, err := uc.NextCandidates(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("NextCandidates: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].PhotoURL == nil || *summaries[0].PhotoURL != "https://cdn.test/users/2/a.jpg" {
		t.Errorf("photo_url = %v, want presigned URL for user 2", summaries[0].PhotoURL)
	}
	if summaries[1].PhotoURL != nil {
		t.Errorf("user without a primary photo must have no photo_url, got %v", *summaries[1].PhotoURL)
	}
}
