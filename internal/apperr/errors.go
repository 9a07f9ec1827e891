// Package apperr defines the error kinds surfaced by MindBank and how they
// map onto HTTP responses.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation  Kind = "validation"
	KindPersistence Kind = "persistence"
	KindRateFetch   Kind = "rate_fetch"
	KindInternal    Kind = "internal"
)

const (
	msgPersistence = "Could not access stored data, please try again later"
	msgInternal    = "Something went wrong, please try again later"
	msgRateFetch   = "Exchange rate service unavailable"
)

type Error struct {
	Kind        Kind
	Op          string
	Message     string
	UserMessage string
	cause       error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.cause)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Validation is an input problem. msg is shown to the user as is.
func Validation(msg string) *Error {
	return &Error{
		Kind:        KindValidation,
		Message:     msg,
		UserMessage: msg,
	}
}

func Validationf(format string, args ...any) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

// Persistence wraps a failure to read or write a record. op names the
// operation, e.g. "save_config".
func Persistence(op string, cause error) *Error {
	return &Error{
		Kind:        KindPersistence,
		Op:          op,
		Message:     "persistence error during " + op,
		UserMessage: msgPersistence,
		cause:       cause,
	}
}

func RateFetch(cause error) *Error {
	return &Error{
		Kind:        KindRateFetch,
		Op:          "fetch_rate",
		Message:     "exchange rate fetch failed",
		UserMessage: msgRateFetch,
		cause:       cause,
	}
}

// KindOf reports the kind of err, KindInternal for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}
	return KindInternal
}

func IsValidation(err error) bool { return KindOf(err) == KindValidation }

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindRateFetch:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// UserMessage returns text safe to show to the user. Causes never leak.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e != nil && e.UserMessage != "" {
		return e.UserMessage
	}
	return msgInternal
}
