package domain

import "time"

type User struct {
	ID           int        `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	Name         string     `json:"name" db:"name"`
	Gender       string     `json:"gender" db:"gender"`
	BirthDate    time.Time  `json:"birth_date" db:"birth_date"`
	Phone        *string    `json:"phone,omitempty" db:"phone"`
	Bio          *string    `json:"bio,omitempty" db:"bio"`
	City         *string    `json:"city,omitempty" db:"city"`
	IsVerified   bool       `json:"is_verified" db:"is_verified"`
	IsBanned     bool       `json:"-" db:"is_banned"`
	LastActiveAt *time.Time `json:"last_active_at,omitempty" db:"last_active_at"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
}

// Age returns full years since BirthDate.
func (u *User) Age() int {
	now := time.Now()
	age := now.Year() - u.BirthDate.Year()
	if now.YearDay() < u.BirthDate.YearDay() {
		age--
	}
	return age
}

// UserSummary is the public shape exposed to feed and match listings.
type UserSummary struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Gender   string  `json:"gender"`
	Age      int     `json:"age"`
	Bio      *string `json:"bio,omitempty"`
	City     *string `json:"city,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:     u.ID,
		Name:   u.Name,
		Gender: u.Gender,
		Age:    u.Age(),
		Bio:    u.Bio,
		City:   u.City,
	}
}
