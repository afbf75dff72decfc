package notes

import (
	"errors"
	"fmt"
)

// Kind categorises a gateway failure without exposing backend-specific
// detail. Handlers map kinds onto HTTP status codes.
type Kind int

const (
	KindUnknown Kind = iota
	KindConflict     // key, file name or folder name already taken
	KindBadInput     // empty or missing required fields, rejected before any backend call
	KindNotFound     // requested key absent
	KindStorage      // backend I/O failure, surfaced as an internal error
)

func (k Kind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindBadInput:
		return "bad_input"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	default:
		return "unknown"
	}
}

// Error is the classified error type returned by the gateway service.
type Error struct {
	Kind    Kind
	Message string
	Cause   error // backend-level error, preserved for logging only
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is / errors.As to traverse the cause chain.
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates an *Error with no underlying cause.
func NewError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// WrapError attaches a kind and message to an underlying error.
func WrapError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Cause: cause}
}

func hasKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// IsConflict reports whether err is a name-collision rejection.
func IsConflict(err error) bool { return hasKind(err, KindConflict) }

// IsBadInput reports whether err is a request-validation rejection.
func IsBadInput(err error) bool { return hasKind(err, KindBadInput) }

// IsNotFound reports whether err means the requested key is absent.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

// IsStorage reports whether err is a backend I/O failure.
func IsStorage(err error) bool { return hasKind(err, KindStorage) }

// BatchError reports a folder/batch upload that failed partway through.
// Uploads are sequential and not transactional, so everything stored before
// the failing item stays stored; Uploaded lists those keys in order.
type BatchError struct {
	Uploaded    []string // keys persisted before the failure, in upload order
	FailedIndex int      // position of the failing item in the request
	FailedName  string   // name/path of the failing item
	Cause       error    // classified error for the failing item
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch upload failed at item %d (%s) after %d stored: %v",
		e.FailedIndex, e.FailedName, len(e.Uploaded), e.Cause)
}

func (e *BatchError) Unwrap() error {
	return e.Cause
}
