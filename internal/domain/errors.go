package domain

import "errors"

// Roster mutation errors. Handlers classify these with errors.Is to pick the
// user-facing message; none of them is fatal to the process.
var (
	ErrEmptyName         = errors.New("name must not be empty")
	ErrInvalidBirthDate  = errors.New("birth date must be a valid DD.MM.YYYY date")
	ErrDuplicateUsername = errors.New("username is already on the roster")
	ErrPersonNotFound    = errors.New("person not found")
)
