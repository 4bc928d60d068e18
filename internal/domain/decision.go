package domain

import (
	"strings"
	"time"
)

// SwipeAction is what the actor did on the card.
type SwipeAction string

const (
	ActionLike SwipeAction = "LIKE"
	ActionPass SwipeAction = "PASS"
)

// ParseSwipeAction normalizes client input ("like", "Like", "LIKE").
func ParseSwipeAction(input string) (SwipeAction, error) {
	switch SwipeAction(strings.ToUpper(strings.TrimSpace(input))) {
	case ActionLike:
		return ActionLike, nil
	case ActionPass:
		return ActionPass, nil
	default:
		return "", ErrInvalidAction
	}
}

// DecisionStatus is the lifecycle state of a swipe decision. It is written
// once on creation and mutated at most once, by the match reconciler.
type DecisionStatus string

const (
	StatusPending  DecisionStatus = "PENDING"
	StatusMatched  DecisionStatus = "MATCHED"
	StatusRejected DecisionStatus = "REJECTED"
)

// SwipeDecision is one user's recorded like/pass judgment about another user.
// At most one row exists per directed pair (actor_id, target_id); a confirmed
// match is two rows, one per direction, both MATCHED.
type SwipeDecision struct {
	ID        int            `json:"id" db:"id"`
	ActorID   int            `json:"actor_id" db:"actor_id"`
	TargetID  int            `json:"target_id" db:"target_id"`
	Action    SwipeAction    `json:"action" db:"action"`
	Status    DecisionStatus `json:"status" db:"status"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

func (d *SwipeDecision) Involves(userID int) bool {
	return d.ActorID == userID || d.TargetID == userID
}

// CounterpartID returns the other member of the pair.
func (d *SwipeDecision) CounterpartID(userID int) (int, bool) {
	if d.ActorID == userID {
		return d.TargetID, true
	}
	if d.TargetID == userID {
		return d.ActorID, true
	}
	return 0, false
}

// PairKey returns the pair in canonical (low, high) order. The reconciler
// uses it as the per-pair serialization key.
func PairKey(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
