package models

import "fmt"

// ErrorNotFound is returned when a book, rating or user does not exist
// (or is soft-deleted).
type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

// ErrorConflict is returned when a uniqueness rule is violated.
type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

// ErrorUnauthorized covers bad credentials, bad tokens and missing scopes.
type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

// ErrorForbidden is returned when an authenticated user lacks privileges.
type ErrorForbidden struct {
	Message string
}

func (e ErrorForbidden) Error() string { return e.Message }

// ErrorValidation is returned for input that breaks a data-model rule.
type ErrorValidation struct {
	Field   string
	Message string
}

func (e ErrorValidation) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ErrorInternal wraps storage faults that must surface as 500.
type ErrorInternal struct {
	Message string
	Err     error
}

func (e ErrorInternal) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Message + ": " + e.Err.Error()
}

func (e ErrorInternal) Unwrap() error { return e.Err }

var (
	ErrInvalidCredentials = ErrorUnauthorized{Message: "could not validate credentials"}
	ErrInvalidToken       = ErrorUnauthorized{Message: "invalid or expired token"}
	ErrInsufficientScope  = ErrorUnauthorized{Message: "not enough permissions"}
	ErrNotSuperuser       = ErrorForbidden{Message: "superuser privileges required"}
	ErrInvalidRatingValue = ErrorValidation{Field: "value", Message: "not a valid rating value"}
)

func BookNotFound(id string) error {
	return ErrorNotFound{Message: fmt.Sprintf("book with id %s not found", id)}
}

func BookAlreadyExists(title, author string) error {
	return ErrorConflict{Message: fmt.Sprintf("book with title %q and author %q already exists", title, author)}
}

func RatingNotFound(bookID, userID string) error {
	return ErrorNotFound{Message: fmt.Sprintf("rating not found for book_id %s and user_id %s", bookID, userID)}
}

func UserNotFound() error {
	return ErrorNotFound{Message: "user not found"}
}

func UserAlreadyExists(email string) error {
	return ErrorConflict{Message: fmt.Sprintf("user with email %q already exists", email)}
}
