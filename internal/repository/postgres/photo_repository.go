package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository"
)

type photoRepository struct {
	db *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *domain.Photo) error {
	query := `
		INSERT INTO photos (user_id, object_key, is_primary)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		photo.UserID, photo.ObjectKey, photo.IsPrimary,
	).Scan(&photo.ID, &photo.CreatedAt)
}

func (r *photoRepository) GetByID(ctx context.Context, id int) (*domain.Photo, error) {
	var photo domain.Photo
	query := `SELECT * FROM photos WHERE id = $1`
	err := r.db.GetContext(ctx, &photo, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Photo, error) {
	var photos []*domain.Photo
	query := `SELECT * FROM photos WHERE user_id = $1 ORDER BY is_primary DESC, created_at DESC`
	err := r.db.SelectContext(ctx, &photos, query, userID)
	return photos, err
}

func (r *photoRepository) GetPrimaryByUser(ctx context.Context, userID int) (*domain.Photo, error) {
	var photo domain.Photo
	query := `
		SELECT * FROM photos WHERE user_id = $1
		ORDER BY is_primary DESC, created_at DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &photo, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPhotoNotFound
		}
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM photos WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPhotoNotFound
	}
	return nil
}
