package domain

import "time"

// Photo is a profile photo stored in object storage; ObjectKey addresses the
// blob, the row is only metadata.
type Photo struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	ObjectKey string    `json:"object_key" db:"object_key"`
	IsPrimary bool      `json:"is_primary" db:"is_primary"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
