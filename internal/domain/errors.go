package domain

import (
	"errors"
	"fmt"
)

// Kind classifies an Error so callers can branch on the category of failure
// instead of on message text.
type Kind int

const (
	// KindInfrastructure covers storage and other unexpected failures.
	// It is the zero value so unclassified errors default to it.
	KindInfrastructure Kind = iota

	// KindValidation indicates bad caller input, such as an empty title.
	KindValidation

	// KindConflict indicates the requested state change cannot be applied,
	// such as completing a task that is missing or already completed.
	KindConflict
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	default:
		return "infrastructure"
	}
}

// User-facing messages. Clients rely on these exact strings.
const (
	MsgTitleRequired           = "Title is required"
	MsgTitleTooLong            = "Title must not exceed 255 characters"
	MsgTaskNotFoundOrCompleted = "Task not found or already completed"
)

// Error is a failure with a Kind and a human-readable Message.
// Err holds the underlying cause, if any, and is never shown to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Sentinel errors returned by the task rules.
var (
	// ErrTitleRequired is returned when the trimmed title is empty.
	ErrTitleRequired = &Error{Kind: KindValidation, Message: MsgTitleRequired}

	// ErrTitleTooLong is returned when the trimmed title exceeds MaxTitleLength characters.
	ErrTitleTooLong = &Error{Kind: KindValidation, Message: MsgTitleTooLong}

	// ErrTaskNotFoundOrCompleted is the single error for completing a task that
	// does not exist or was already completed. The two cases are not distinguished.
	ErrTaskNotFoundOrCompleted = &Error{Kind: KindConflict, Message: MsgTaskNotFoundOrCompleted}
)

// NewInfrastructureError wraps err as an infrastructure failure with the given message.
func NewInfrastructureError(message string, err error) *Error {
	return &Error{Kind: KindInfrastructure, Message: message, Err: err}
}

// KindOf reports the Kind of err. Errors that are not (and do not wrap) an
// *Error are treated as infrastructure failures.
func KindOf(err error) Kind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return KindInfrastructure
}

// MessageOf returns the user-facing message carried by err, or fallback when
// err is not an *Error.
func MessageOf(err error, fallback string) string {
	var domainErr *Error
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return fallback
}
