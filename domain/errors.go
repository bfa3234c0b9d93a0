package domain

import "fmt"

// ValidationError maps to 400: missing or malformed request data.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError maps to 404: a referenced entity is absent.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError maps to 409: a dependency blocks the operation.
// Dependencies carries the number of blocking records.
type ConflictError struct {
	Message      string
	Dependencies int
}

func (e *ConflictError) Error() string { return e.Message }

// AuthError maps to 401: missing or invalid session / credentials.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// TransportError wraps a network or connection failure talking to the
// database. Callers decide whether to retry; the gateway never does.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("transport: %s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// QueryError wraps a failure the database itself reported for a
// statement (malformed query, constraint violation).
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string { return fmt.Sprintf("query: %s: %v", e.Op, e.Err) }
func (e *QueryError) Unwrap() error { return e.Err }
