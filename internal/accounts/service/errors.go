package service

import "errors"

var (
	// ErrEmailOrPhoneTaken is returned when one user already holds both the
	// email and the phone number.
	ErrEmailOrPhoneTaken = errors.New("email and phone number already registered")

	// ErrUsernameTaken is returned for any unique collision caught at
	// insert time.
	ErrUsernameTaken = errors.New("username already registered")

	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError is a rejected form field. Message is shown to the client
// as is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }
