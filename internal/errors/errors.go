package errors

import "errors"

// This package defines the sentinel errors shared by the chat layers.
// Services wrap them with context (`fmt.Errorf("%w: ...")`) and the API layer
// matches them with `errors.Is()` to pick an HTTP status, so neither side
// depends on the other's implementation details.

var (
	// ErrNotFound signifies that a chat session (or another resource) could
	// not be located. Mapped to 404 Not Found.
	ErrNotFound = errors.New("resource not found")

	// ErrValidation signifies that client input failed validation.
	// Mapped to 400 Bad Request.
	ErrValidation = errors.New("validation failed")

	// ErrConflict signifies that the operation conflicts with the current
	// state, e.g. submitting while a question is still pending.
	// Mapped to 409 Conflict.
	ErrConflict = errors.New("resource conflict")

	// ErrUnavailable signifies that the question-answering backend could not
	// produce an answer: transport failure, non-2xx status or a malformed body.
	// The chat controller turns it into the fallback message; it never
	// reaches end users verbatim.
	ErrUnavailable = errors.New("assistant unavailable")

	// ErrInternal signifies an unexpected server-side failure. Mapped to 500.
	ErrInternal = errors.New("internal server error")
)
