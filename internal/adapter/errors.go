package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrRejected            = errors.New("request rejected")
	ErrNotFound            = errors.New("resource not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrEmptyToken          = errors.New("server returned an empty token")
	ErrInvalidKind         = errors.New("unknown collection kind")
)

// RejectionError is a 422 response decoded into its reason and stable kind.
// It matches ErrRejected with errors.Is.
type RejectionError struct {
	Kind    string
	Message string
}

func (e *RejectionError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("%s: %s", ErrRejected, e.Message)
	}
	return fmt.Sprintf("%s (%s): %s", ErrRejected, e.Kind, e.Message)
}

func (e *RejectionError) Is(target error) bool {
	return target == ErrRejected
}
