// Package apperr is the error vocabulary shared by services and the
// HTTP serializer. Services return one of these kinds; the serializer
// maps kinds to statuses without re-inspecting causes.
package apperr

import (
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck/internal/modules/model"
)

type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation      // missing or invalid required field
	KindForbidden       // insufficient project role
	KindNotFound        // missing entity or cross-scope mismatch
	KindUpstream        // inference endpoint unreachable or non-2xx
	KindStore           // transaction failure
)

type Error struct {
	Kind Kind
	Msg  string
	// Role carries the resolved role on forbidden errors for diagnostics.
	Role model.Role
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Forbidden(msg string, role model.Role) *Error {
	return &Error{Kind: KindForbidden, Msg: msg, Role: role}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func Upstream(msg string, err error) *Error {
	return &Error{Kind: KindUpstream, Msg: msg, Err: err}
}

func Store(msg string, err error) *Error {
	return &Error{Kind: KindStore, Msg: msg, Err: err}
}

// KindOf classifies any error; non-apperr errors are unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// As returns the typed error when err is (or wraps) one.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
