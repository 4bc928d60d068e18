package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository"
	"go.uber.org/zap"
)

// PhotoStore is the object-storage surface the profile use case needs;
// bytes are passed through untouched.
type PhotoStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type ProfileUseCase struct {
	userRepo  repository.UserRepository
	prefRepo  repository.PreferenceRepository
	photoRepo repository.PhotoRepository
	photos    PhotoStore
	log       *zap.Logger
}

func NewProfileUseCase(
	userRepo repository.UserRepository,
	prefRepo repository.PreferenceRepository,
	photoRepo repository.PhotoRepository,
	photos PhotoStore,
	log *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo:  userRepo,
		prefRepo:  prefRepo,
		photoRepo: photoRepo,
		photos:    photos,
		log:       log,
	}
}

// UpdateProfileRequest represents profile update request
type UpdateProfileRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=100"`
	Bio   *string `json:"bio" binding:"omitempty,max=500"`
	City  *string `json:"city" binding:"omitempty,max=100"`
	Phone *string `json:"phone" binding:"omitempty,max=20"`
}

// PreferencesRequest represents preference upsert request
type PreferencesRequest struct {
	PreferredGender string `json:"preferred_gender" binding:"required,oneof=male female"`
	MinAge          int    `json:"min_age" binding:"required,min=18,max=100"`
	MaxAge          int    `json:"max_age" binding:"required,min=18,max=100"`
	MaxDistanceKm   *int   `json:"max_distance_km" binding:"omitempty,min=1,max=1000"`
}

// PhotoView is a photo row with a resolvable URL
type PhotoView struct {
	ID        int       `json:"id"`
	IsPrimary bool      `json:"is_primary"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse represents the full own-profile view
type ProfileResponse struct {
	User        *domain.User       `json:"user"`
	Preferences *domain.Preference `json:"preferences,omitempty"`
	Photos      []PhotoView        `json:"photos"`
}

func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID int) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := &ProfileResponse{User: user, Photos: []PhotoView{}}

	pref, err := uc.prefRepo.GetByUserID(ctx, userID)
	if err == nil {
		response.Preferences = pref
	} else if !errors.Is(err, domain.ErrPreferenceNotFound) {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}

	photos, err := uc.photoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	for _, photo := range photos {
		url, err := uc.photos.PresignedURL(ctx, photo.ObjectKey, 15*time.Minute)
		if err != nil {
			uc.log.Warn("photo url resolution failed",
				zap.String("object_key", photo.ObjectKey),
				zap.Error(err),
			)
			continue
		}
		response.Photos = append(response.Photos, PhotoView{
			ID:        photo.ID,
			IsPrimary: photo.IsPrimary,
			URL:       url,
			CreatedAt: photo.CreatedAt,
		})
	}

	return response, nil
}

func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.City != nil {
		user.City = req.City
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

func (uc *ProfileUseCase) UpsertPreferences(ctx context.Context, userID int, req *PreferencesRequest) (*domain.Preference, error) {
	if req.MinAge > req.MaxAge {
		return nil, domain.ErrInvalidInput
	}

	pref := &domain.Preference{
		UserID:          userID,
		PreferredGender: req.PreferredGender,
		MinAge:          req.MinAge,
		MaxAge:          req.MaxAge,
		MaxDistanceKm:   req.MaxDistanceKm,
	}
	if err := uc.prefRepo.Upsert(ctx, pref); err != nil {
		return nil, fmt.Errorf("failed to save preferences: %w", err)
	}
	return pref, nil
}

// UploadPhoto streams the photo to object storage and records the row.
func (uc *ProfileUseCase) UploadPhoto(ctx context.Context, userID int, filename, contentType string, size int64, body io.Reader, isPrimary bool) (*domain.Photo, error) {
	if size <= 0 {
		return nil, domain.ErrInvalidInput
	}

	key := fmt.Sprintf("users/%d/%s%s", userID, uuid.NewString(), path.Ext(filename))
	if err := uc.photos.Put(ctx, key, body, size, contentType); err != nil {
		return nil, fmt.Errorf("failed to store photo: %w", err)
	}

	photo := &domain.Photo{
		UserID:    userID,
		ObjectKey: key,
		IsPrimary: isPrimary,
	}
	if err := uc.photoRepo.Create(ctx, photo); err != nil {
		// Orphaned object; best effort cleanup.
		if rmErr := uc.photos.Remove(ctx, key); rmErr != nil {
			uc.log.Warn("orphaned photo cleanup failed",
				zap.String("object_key", key),
				zap.Error(rmErr),
			)
		}
		return nil, fmt.Errorf("failed to record photo: %w", err)
	}

	return photo, nil
}

func (uc *ProfileUseCase) DeletePhoto(ctx context.Context, userID, photoID int) error {
	photo, err := uc.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		return err
	}
	if photo.UserID != userID {
		return domain.ErrPhotoNotFound
	}

	if err := uc.photoRepo.Delete(ctx, photoID); err != nil {
		return err
	}
	if err := uc.photos.Remove(ctx, photo.ObjectKey); err != nil {
		uc.log.Warn("photo object removal failed",
			zap.String("object_key", photo.ObjectKey),
			zap.Error(err),
		)
	}
	return nil
}
