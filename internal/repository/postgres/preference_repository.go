package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository"
)

type preferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUserID(ctx context.Context, userID int) (*domain.Preference, error) {
	var pref domain.Preference
	query := `SELECT * FROM preferences WHERE user_id = $1`
	err := r.db.GetContext(ctx, &pref, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferenceNotFound
		}
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) Upsert(ctx context.Context, pref *domain.Preference) error {
	query := `
		INSERT INTO preferences (user_id, preferred_gender, min_age, max_age, max_distance_km)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET preferred_gender = EXCLUDED.preferred_gender,
		    min_age = EXCLUDED.min_age,
		    max_age = EXCLUDED.max_age,
		    max_distance_km = EXCLUDED.max_distance_km,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`
	return r.db.QueryRowContext(ctx, query,
		pref.UserID, pref.PreferredGender, pref.MinAge, pref.MaxAge, pref.MaxDistanceKm,
	).Scan(&pref.UpdatedAt)
}
