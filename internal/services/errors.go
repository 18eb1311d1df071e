package services

import "errors"

// Sentinel errors shared across services. Handlers translate them into
// HTTP status codes (or mask them, depending on policy).
var (
	// ErrNotFound means the requested dictionary, character or session does not exist
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the user may not read or write the dictionary
	ErrForbidden = errors.New("forbidden")
	// ErrAlreadyExists means a unique constraint was violated (duplicate dictionary name)
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidRating means the submitted rating is outside the 0-5 scale
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
	// ErrInvalidCredentials means the username/password pair did not match any account
	ErrInvalidCredentials = errors.New("invalid credentials")
)
