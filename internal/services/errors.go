package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a service failure for the HTTP layer. Handlers
// map kinds to status codes and never let concrete causes leak to the
// client for upstream and internal failures.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindAuth
	KindNotFound
	KindConflict
	KindQuota
	KindUpstream
)

type ServiceError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func ValidationError(format string, args ...any) error {
	return &ServiceError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func AuthError(message string) error {
	return &ServiceError{Kind: KindAuth, Message: message}
}

func NotFoundError(message string) error {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func ConflictError(message string) error {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func QuotaError(message string) error {
	return &ServiceError{Kind: KindQuota, Message: message}
}

func UpstreamError(message string, err error) error {
	return &ServiceError{Kind: KindUpstream, Message: message, Err: err}
}

func InternalError(message string, err error) error {
	return &ServiceError{Kind: KindInternal, Message: message, Err: err}
}

// KindOf returns the taxonomy kind of err, defaulting to internal for
// anything unclassified.
func KindOf(err error) ErrorKind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

// PublicMessage is the client-facing error string. Message carries the
// generic text; the wrapped cause stays in logs only, so upstream and
// internal detail never leaks.
func PublicMessage(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Message
	}
	return "Internal server error"
}
