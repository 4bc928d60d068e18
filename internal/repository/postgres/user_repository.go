package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (email, password_hash, name, gender, birth_date, phone, bio, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, is_verified, is_banned, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Name, user.Gender,
		user.BirthDate, user.Phone, user.Bio, user.City,
	).Scan(&user.ID, &user.IsVerified, &user.IsBanned, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE id = $1`
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT * FROM users WHERE email = $1`
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, gender = $2, birth_date = $3, phone = $4, bio = $5, city = $6,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $7
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Gender, user.BirthDate, user.Phone, user.Bio, user.City, user.ID,
	).Scan(&user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrUserNotFound
	}
	return err
}

func (r *userRepository) UpdateLastActive(ctx context.Context, id int) error {
	query := `UPDATE users SET last_active_at = CURRENT_TIMESTAMP WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// ListCandidates applies the decided-pair exclusion and stored preference
// filters in SQL so the user base is never scanned client-side.
func (r *userRepository) ListCandidates(ctx context.Context, userID int, filter repository.CandidateFilter) ([]*domain.User, error) {
	var users []*domain.User

	query := `
		SELECT u.* FROM users u
		WHERE u.id <> $1
		  AND u.is_banned = FALSE
		  AND u.gender = $2
		  AND DATE_PART('year', AGE(CURRENT_TIMESTAMP, u.birth_date))::int BETWEEN $3 AND $4
		  AND NOT EXISTS (
			SELECT 1 FROM swipe_decisions s
			WHERE (s.actor_id = $1 AND s.target_id = u.id)
			   OR (s.actor_id = u.id AND s.target_id = $1)
		  )
		ORDER BY u.last_active_at DESC NULLS LAST, u.created_at DESC
		LIMIT $5
	`
	err := r.db.SelectContext(ctx, &users, query,
		userID, filter.PreferredGender, filter.MinAge, filter.MaxAge, filter.Limit)
	return users, err
}
