// Package errors classifies handler failures so the web layer can pick a
// status code and, when one exists, a translated message for the visitor.
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

// Kind classifies a failure.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindUnavailable  Kind = "unavailable"
)

var kindStatus = map[Kind]int{
	KindInvalidInput: http.StatusBadRequest,
	KindUnauthorized: http.StatusUnauthorized,
	KindForbidden:    http.StatusForbidden,
	KindNotFound:     http.StatusNotFound,
	KindConflict:     http.StatusConflict,
	KindUnavailable:  http.StatusServiceUnavailable,
}

// Status returns the HTTP status for k; unknown kinds map to 500.
func (k Kind) Status() int {
	if status, ok := kindStatus[k]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error is a classified failure. Key, when set, is what the visitor reads
// instead of the internal message.
type Error struct {
	Kind    Kind
	Key     i18n.Key
	HasKey  bool
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// E builds a classified error with an internal message.
func E(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// EK is E with a display key for the visitor.
func EK(kind Kind, key i18n.Key, message string) error {
	return &Error{Kind: kind, Key: key, HasKey: true, Message: message}
}

// Wrap classifies err, keeping its message and chain.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

func as(err error) (*Error, bool) {
	var target *Error
	if err == nil || !stderrors.As(err, &target) {
		return nil, false
	}
	return target, true
}

// LocalizationKey returns the display key attached anywhere in err's chain.
func LocalizationKey(err error) (i18n.Key, bool) {
	if e, ok := as(err); ok && e.HasKey {
		return e.Key, true
	}
	return 0, false
}

// HTTPStatus maps err to a status code. Unclassified storage sentinels
// still map to 404 and 409.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	if e, ok := as(err); ok {
		return e.Kind.Status()
	}
	switch {
	case stderrors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, storage.ErrAlreadyExists):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
