package repository

import (
	"context"

	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.Photo) error
	GetByID(ctx context.Context, id int) (*domain.Photo, error)
	ListByUser(ctx context.Context, userID int) ([]*domain.Photo, error)
	GetPrimaryByUser(ctx context.Context, userID int) (*domain.Photo, error)
	Delete(ctx context.Context, id int) error
}
