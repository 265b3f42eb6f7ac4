package apperr

import "errors"

// Kind classifies an operation failure so the transport layer can pick a
// status code without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindDuplicateKey
	KindReferentialConflict
	KindNotFound
	KindInsufficientStock
	KindInvalidCredentials
	KindOperationFailed
)

// Error is the single error type crossing the service boundary. Message is
// user-visible; cause (if any) stays internal for logging.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.cause }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func DuplicateKey(msg string) *Error {
	return &Error{Kind: KindDuplicateKey, Message: msg}
}

func ReferentialConflict(msg string) *Error {
	return &Error{Kind: KindReferentialConflict, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func InsufficientStock(msg string) *Error {
	return &Error{Kind: KindInsufficientStock, Message: msg}
}

func InvalidCredentials() *Error {
	return &Error{Kind: KindInvalidCredentials, Message: "Invalid email or password"}
}

// Failed wraps a storage or otherwise unexpected fault behind a generic
// user-visible message.
func Failed(msg string, cause error) *Error {
	return &Error{Kind: KindOperationFailed, Message: msg, cause: cause}
}

// KindOf returns the kind of err, or KindUnknown for errors that did not come
// from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
