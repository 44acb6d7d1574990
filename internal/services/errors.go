package services

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindConflict
	KindForbidden
	KindUnprocessable
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindUnprocessable:
		return "unprocessable"
	default:
		return "internal"
	}
}

// ServiceError is the typed outcome every service operation fails with.
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...interface{}) error {
	return &ServiceError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &ServiceError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...interface{}) error {
	return &ServiceError{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func Unprocessable(format string, args ...interface{}) error {
	return &ServiceError{Kind: KindUnprocessable, Message: fmt.Sprintf(format, args...)}
}

// Internal hides err from the caller-facing message but keeps it for logs.
func Internal(message string, err error) error {
	return &ServiceError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns KindInternal for errors that are not ServiceErrors.
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// passThrough keeps ServiceErrors as they are and wraps anything else as
// Internal.
func passThrough(message string, err error) error {
	var se *ServiceError
	if errors.As(err, &se) {
		return err
	}
	return Internal(message, err)
}
