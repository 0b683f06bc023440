package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies failures so transports can map them without string matching.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotAuthenticated
	KindNotAuthorized
	KindNotFound
	KindConflict
	KindReferentialConflict
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotAuthenticated:
		return "not_authenticated"
	case KindNotAuthorized:
		return "not_authorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindReferentialConflict:
		return "referential_conflict"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Error carries a user-facing message together with its kind.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func NotAuthenticated(msg string) error {
	return &Error{Kind: KindNotAuthenticated, Message: msg}
}

func NotAuthorized(msg string) error {
	return &Error{Kind: KindNotAuthorized, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

func ReferentialConflict(msg string) error {
	return &Error{Kind: KindReferentialConflict, Message: msg}
}

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindInternal for untyped errors.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// IsKind reports whether err is a domain error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == k
}

// Message returns the user-facing message of a domain error.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "Internal server error"
}
