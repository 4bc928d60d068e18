package repository

import (
	"context"

	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
)

type SwipeRepository interface {
	// RecordDecision inserts the decision and reconciles a mutual match in
	// a single transaction serialized on the pair. On a LIKE with a
	// reciprocal PENDING like it transitions both rows to MATCHED and
	// reports mutual=true; the decision is updated in place with the
	// generated id, timestamps and final status.
	//
	// Returns domain.ErrDecisionExists when the actor already decided on
	// the target, domain.ErrStorageUnavailable on transaction failure.
	RecordDecision(ctx context.Context, decision *domain.SwipeDecision) (mutual bool, err error)

	GetByActorTarget(ctx context.Context, actorID, targetID int) (*domain.SwipeDecision, error)
	ListByUser(ctx context.Context, userID int, status *domain.DecisionStatus, limit, offset int) ([]*domain.SwipeDecision, error)
}
