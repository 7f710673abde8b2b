package services

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by the handlers:
//   - InvalidRequestError wraps caller mistakes and maps to 400.
//   - ErrMissingCredential means a required API key is absent and maps to 500.
//   - UpstreamError means the generative service itself failed and maps to 500.
//
// The job-search path never surfaces upstream errors; it degrades to
// synthetic postings instead.
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrMissingCredential = errors.New("missing API credential")
)

// InvalidRequestError carries the user-facing message verbatim so handlers
// can return it in the error envelope without unwrapping prefixes.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string { return e.Message }

// Is lets errors.Is(err, ErrInvalidRequest) match any InvalidRequestError.
func (e *InvalidRequestError) Is(target error) bool { return target == ErrInvalidRequest }

func invalidRequest(format string, args ...any) error {
	return &InvalidRequestError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError carries whatever the external generative service reported.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream error (status %d): %s", e.Status, e.Message)
	}
	return "upstream error: " + e.Message
}
