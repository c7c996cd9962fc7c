package main

import "errors"

// Sentinel failures surfaced to clients. Authentication messages are the
// exact strings the API exposes; login failures stay generic so responses
// cannot be used to enumerate accounts.
var (
	ErrNoToken            = errors.New("No token provided")
	ErrInvalidToken       = errors.New("Invalid token")
	ErrUserNotFound       = errors.New("User not found")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailExists        = errors.New("Email already exists")
	ErrNotFound           = errors.New("record not found")
)

// ValidationError marks malformed input; its message is safe to return to
// the client with a 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationError(msg string) error { return &ValidationError{Msg: msg} }
