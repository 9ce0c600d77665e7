package service

import (
	"fmt"

	"github.com/alexanderramin/styring/internal/api"
	"github.com/alexanderramin/styring/internal/domain"
)

// LoginFailedMessage is shown when a failed auth request carries no detail.
const LoginFailedMessage = "Feil ved innlogging"

// FieldError reports a required or malformed form field. It is raised
// before any request is sent.
type FieldError = domain.FieldError

// AuthError is returned by Login and Register on any failure. Message is
// the server's detail when it sent one.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

func newAuthError(err error) *AuthError {
	msg := api.DetailOf(err)
	if msg == "" {
		msg = LoginFailedMessage
	}
	return &AuthError{Message: msg, Err: err}
}

// WriteError reports a create request the backend rejected or never
// answered. It is distinct from read failures, which the detail loader
// swallows.
type WriteError struct {
	Entity string
	Detail string
	Err    error
}

func (e *WriteError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("creating %s: %s", e.Entity, e.Detail)
	}
	return fmt.Sprintf("creating %s: %v", e.Entity, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func newWriteError(entity string, err error) *WriteError {
	return &WriteError{Entity: entity, Detail: api.DetailOf(err), Err: err}
}
