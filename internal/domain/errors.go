package domain

import "errors"

var (
	// Not found
	ErrUserNotFound       = errors.New("user not found")
	ErrDecisionNotFound   = errors.New("swipe decision not found")
	ErrPreferenceNotFound = errors.New("preferences not found")
	ErrPhotoNotFound      = errors.New("photo not found")

	// Invalid argument
	ErrSelfSwipe     = errors.New("cannot swipe on yourself")
	ErrInvalidAction = errors.New("invalid swipe action")
	ErrInvalidInput  = errors.New("invalid input")

	// Conflict
	ErrDecisionExists = errors.New("decision already exists for this pair")
	ErrEmailTaken     = errors.New("user with this email already exists")

	// Precondition failed
	ErrPreferencesNotSet = errors.New("preferences are not set")

	// Auth
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")

	// Storage layer failure; the only class callers may retry
	ErrStorageUnavailable = errors.New("storage unavailable")
)
