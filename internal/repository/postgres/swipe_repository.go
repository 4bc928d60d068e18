package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository"
)

const uniqueViolation = pq.ErrorCode("23505")

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

// RecordDecision runs the insert and the mutual-match reconciliation inside
// one transaction. A pg_advisory_xact_lock on the canonical (low, high) pair
// serializes concurrent reciprocal likes: exactly one of two racing calls
// observes the counterpart's PENDING like and applies the dual transition,
// and the unique constraint on (actor_id, target_id) makes retries fail
// deterministically with ErrDecisionExists instead of duplicating rows.
func (r *swipeRepository) RecordDecision(ctx context.Context, decision *domain.SwipeDecision) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return false, fmt.Errorf("%w: begin transaction: %v", domain.ErrStorageUnavailable, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lo, hi := domain.PairKey(decision.ActorID, decision.TargetID)
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1, $2)`, lo, hi); err != nil {
		return false, fmt.Errorf("%w: acquire pair lock: %v", domain.ErrStorageUnavailable, err)
	}

	insert := `
		INSERT INTO swipe_decisions (actor_id, target_id, action, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRowContext(ctx, insert,
		decision.ActorID, decision.TargetID, decision.Action, decision.Status,
	).Scan(&decision.ID, &decision.CreatedAt, &decision.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return false, domain.ErrDecisionExists
		}
		return false, fmt.Errorf("%w: insert decision: %v", domain.ErrStorageUnavailable, err)
	}

	mutual := false
	if decision.Action == domain.ActionLike {
		var reciprocalID int
		query := `
			SELECT id FROM swipe_decisions
			WHERE actor_id = $1 AND target_id = $2 AND action = $3 AND status = $4
		`
		err = tx.GetContext(ctx, &reciprocalID, query,
			decision.TargetID, decision.ActorID, domain.ActionLike, domain.StatusPending)
		switch {
		case err == nil:
			// Both-or-neither: one statement flips both directions.
			update := `
				UPDATE swipe_decisions
				SET status = $1, updated_at = CURRENT_TIMESTAMP
				WHERE (actor_id = $2 AND target_id = $3)
				   OR (actor_id = $3 AND target_id = $2)
			`
			result, err := tx.ExecContext(ctx, update,
				domain.StatusMatched, decision.ActorID, decision.TargetID)
			if err != nil {
				return false, fmt.Errorf("%w: apply mutual transition: %v", domain.ErrStorageUnavailable, err)
			}
			rows, err := result.RowsAffected()
			if err != nil {
				return false, fmt.Errorf("%w: apply mutual transition: %v", domain.ErrStorageUnavailable, err)
			}
			if rows != 2 {
				return false, fmt.Errorf("%w: mutual transition touched %d rows, want 2", domain.ErrStorageUnavailable, rows)
			}
			decision.Status = domain.StatusMatched
			mutual = true
		case errors.Is(err, sql.ErrNoRows):
			// No reciprocal like; the new row stays PENDING.
		default:
			return false, fmt.Errorf("%w: reciprocal lookup: %v", domain.ErrStorageUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("%w: commit: %v", domain.ErrStorageUnavailable, err)
	}

	return mutual, nil
}

func (r *swipeRepository) GetByActorTarget(ctx context.Context, actorID, targetID int) (*domain.SwipeDecision, error) {
	var decision domain.SwipeDecision
	query := `SELECT * FROM swipe_decisions WHERE actor_id = $1 AND target_id = $2`
	err := r.db.GetContext(ctx, &decision, query, actorID, targetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDecisionNotFound
		}
		return nil, err
	}
	return &decision, nil
}

func (r *swipeRepository) ListByUser(ctx context.Context, userID int, status *domain.DecisionStatus, limit, offset int) ([]*domain.SwipeDecision, error) {
	var decisions []*domain.SwipeDecision

	query := `
		SELECT * FROM swipe_decisions
		WHERE (actor_id = $1 OR target_id = $1)
	`
	args := []interface{}{userID}
	if status != nil {
		query += ` AND status = $2 ORDER BY created_at DESC LIMIT $3 OFFSET $4`
		args = append(args, *status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}

	err := r.db.SelectContext(ctx, &decisions, query, args...)
	return decisions, err
}
