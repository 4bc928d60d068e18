package domain

import "time"

// Preference holds a user's stored filter criteria for the candidate feed.
// The selector never guesses defaults: a missing row is a precondition
// failure, not an empty filter.
type Preference struct {
	UserID          int       `json:"user_id" db:"user_id"`
	PreferredGender string    `json:"preferred_gender" db:"preferred_gender"`
	MinAge          int       `json:"min_age" db:"min_age"`
	MaxAge          int       `json:"max_age" db:"max_age"`
	MaxDistanceKm   *int      `json:"max_distance_km,omitempty" db:"max_distance_km"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
