package apperr

import "errors"

// Kind classifies an error for transport mapping.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindForbidden
	KindInvalidArgument
	KindInvalidState
	KindDependencyFailure
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(code, message string) error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Forbidden(code, message string) error {
	return &Error{Kind: KindForbidden, Code: code, Message: message}
}

func InvalidArgument(code, message string) error {
	return &Error{Kind: KindInvalidArgument, Code: code, Message: message}
}

func InvalidState(code, message string) error {
	return &Error{Kind: KindInvalidState, Code: code, Message: message}
}

func DependencyFailure(code, message string, err error) error {
	return &Error{Kind: KindDependencyFailure, Code: code, Message: message, Err: err}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
