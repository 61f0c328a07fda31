package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/museum-user-api/models"
)

// Kind is the stable, machine-readable class of a collaborator rejection.
// It is part of the HTTP contract and never changes meaning.
type Kind string

const (
	KindInvalidInput     Kind = "invalid_input"
	KindPasswordMismatch Kind = "password_mismatch"
	KindUserNameTaken    Kind = "user_name_taken"
	KindUserNotFound     Kind = "user_not_found"
	KindWrongPassword    Kind = "wrong_password"
	KindCollectionFull   Kind = "collection_full"
	KindItemNotFound     Kind = "item_not_found"
	KindInternal         Kind = "internal"
)

// Error is a rejection carrying a [Kind] and the human message shown to the
// client. Err keeps the underlying cause for logs only.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind, so the sentinels
// below match any message variant.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidInput     = &Error{Kind: KindInvalidInput, Message: "invalid data provided"}
	ErrPasswordMismatch = &Error{Kind: KindPasswordMismatch, Message: "Passwords do not match"}
	ErrUserNameTaken    = &Error{Kind: KindUserNameTaken, Message: "User Name already taken"}
	ErrUserNotFound     = &Error{Kind: KindUserNotFound, Message: "Unable to find user"}
	ErrWrongPassword    = &Error{Kind: KindWrongPassword, Message: "Incorrect password"}
	ErrCollectionFull   = &Error{Kind: KindCollectionFull, Message: "Unable to update collection"}
	ErrItemNotFound     = &Error{Kind: KindItemNotFound, Message: "item is not in collection"}
	ErrInternal         = &Error{Kind: KindInternal, Message: "unexpected error"}
)

// Token errors never reach the client body; the gate answers 401.
var (
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

func userNotFound(userName string) error {
	return &Error{Kind: KindUserNotFound, Message: fmt.Sprintf("Unable to find user %s", userName)}
}

func wrongPassword(userName string) error {
	return &Error{Kind: KindWrongPassword, Message: fmt.Sprintf("Incorrect password for user %s", userName)}
}

func collectionNotUpdated(kind models.CollectionKind, userID string, cause error) error {
	return &Error{
		Kind:    KindCollectionFull,
		Message: fmt.Sprintf("Unable to update %s for user with id: %s", kind, userID),
		Err:     cause,
	}
}

func itemNotFound(kind models.CollectionKind, itemID string) error {
	return &Error{Kind: KindItemNotFound, Message: fmt.Sprintf("item %s is not in %s", itemID, kind)}
}

func internal(cause error) error {
	return &Error{Kind: KindInternal, Message: ErrInternal.Message, Err: cause}
}

// AsError extracts the [*Error] carried by err. Errors of any other type are
// reported as [KindInternal] so their text never reaches a client.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindInternal, Message: ErrInternal.Message, Err: err}
}
