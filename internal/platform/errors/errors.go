package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotFound         = errors.New("not found")
)

// AuthError is a failed login. Status carries the HTTP status of the auth
// endpoint's response, or 0 when the request never reached the server.
type AuthError struct {
	Status int
	Err    error
}

func (e *AuthError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}
	return fmt.Sprintf("authentication failed: status %d", e.Status)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ValidationError carries the server's field→message map from a 400 response
// on create or update. Keys are wire field names (nome, idade, ...).
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// RequestError is any other non-2xx response, kept with its status and raw
// body so callers can log or surface it unchanged.
type RequestError struct {
	Status int
	Body   string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: status %d", e.Status)
}
