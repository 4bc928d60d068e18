package swipe

import (
	"context"
	"fmt"

	"github.com/sparkmatch/sparkmatch-backend/internal/domain"
	"github.com/sparkmatch/sparkmatch-backend/internal/repository"
	"go.uber.org/zap"
)

type SwipeUseCase struct {
	swipeRepo repository.SwipeRepository
	userRepo  repository.UserRepository
	log       *zap.Logger
}

func NewSwipeUseCase(
	swipeRepo repository.SwipeRepository,
	userRepo repository.UserRepository,
	log *zap.Logger,
) *SwipeUseCase {
	return &SwipeUseCase{
		swipeRepo: swipeRepo,
		userRepo:  userRepo,
		log:       log,
	}
}

// SwipeRequest represents a swipe action
type SwipeRequest struct {
	TargetID int    `json:"target_id" binding:"required"`
	Action   string `json:"action" binding:"required,swipeaction"`
}

// SwipeResponse represents swipe result
type SwipeResponse struct {
	Decision    *domain.SwipeDecision `json:"decision"`
	Mutual      bool                  `json:"mutual"`
	MatchedUser *domain.UserSummary   `json:"matched_user,omitempty"`
}

// MatchEntry pairs a decision with the counterpart's summary
type MatchEntry struct {
	Decision    *domain.SwipeDecision `json:"decision"`
	Counterpart domain.UserSummary    `json:"counterpart"`
}

// RecordSwipe validates the pair, records the decision and reconciles a
// mutual match. On a LIKE that completes a pair the response carries
// Mutual=true and the decision already transitioned to MATCHED; a PASS is
// terminal (REJECTED) and never reconciles.
func (uc *SwipeUseCase) RecordSwipe(ctx context.Context, actorID int, req *SwipeRequest) (*SwipeResponse, error) {
	action, err := domain.ParseSwipeAction(req.Action)
	if err != nil {
		return nil, err
	}

	if actorID == req.TargetID {
		return nil, domain.ErrSelfSwipe
	}

	if _, err := uc.userRepo.GetByID(ctx, actorID); err != nil {
		return nil, err
	}
	target, err := uc.userRepo.GetByID(ctx, req.TargetID)
	if err != nil {
		return nil, err
	}

	decision := &domain.SwipeDecision{
		ActorID:  actorID,
		TargetID: req.TargetID,
		Action:   action,
		Status:   domain.StatusPending,
	}
	if action == domain.ActionPass {
		decision.Status = domain.StatusRejected
	}

	mutual, err := uc.swipeRepo.RecordDecision(ctx, decision)
	if err != nil {
		return nil, err
	}

	response := &SwipeResponse{
		Decision: decision,
		Mutual:   mutual,
	}
	if mutual {
		summary := target.Summary()
		response.MatchedUser = &summary
		uc.log.Info("mutual match confirmed",
			zap.Int("actor_id", actorID),
			zap.Int("target_id", req.TargetID),
		)
	}

	return response, nil
}

// ListMatches returns the user's decisions, optionally filtered by status,
// each with the counterpart user's summary.
func (uc *SwipeUseCase) ListMatches(ctx context.Context, userID int, statusFilter string, limit, offset int) ([]*MatchEntry, error) {
	var status *domain.DecisionStatus
	if statusFilter != "" {
		s := domain.DecisionStatus(statusFilter)
		switch s {
		case domain.StatusPending, domain.StatusMatched, domain.StatusRejected:
			status = &s
		default:
			return nil, domain.ErrInvalidInput
		}
	}

	if limit <= 0 {
		limit = 50
	}

	decisions, err := uc.swipeRepo.ListByUser(ctx, userID, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list decisions: %w", err)
	}

	entries := make([]*MatchEntry, 0, len(decisions))
	for _, decision := range decisions {
		counterpartID, ok := decision.CounterpartID(userID)
		if !ok {
			continue
		}
		counterpart, err := uc.userRepo.GetByID(ctx, counterpartID)
		if err != nil {
			uc.log.Warn("counterpart lookup failed",
				zap.Int("user_id", counterpartID),
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, &MatchEntry{
			Decision:    decision,
			Counterpart: counterpart.Summary(),
		})
	}

	return entries, nil
}
