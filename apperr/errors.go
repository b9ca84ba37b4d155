package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error
type Kind string

const (
	KindIO         Kind = "io"
	KindParse      Kind = "parse"
	KindConnection Kind = "connection"
	KindValidation Kind = "validation"
	KindAPI        Kind = "api"
)

// Error is the single error type surfaced by the application.
// Message is what the user sees; Err is the optional underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the message, followed by the cause when there is one
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error { return e.Err }

// IO reports a failure creating, reading or writing a file or directory
func IO(msg string, err error) *Error { return &Error{Kind: KindIO, Message: msg, Err: err} }

// Parse reports malformed or incomplete JSON, stored or received
func Parse(msg string, err error) *Error { return &Error{Kind: KindParse, Message: msg, Err: err} }

// Connection reports a failed network request
func Connection(msg string, err error) *Error { return &Error{Kind: KindConnection, Message: msg, Err: err} }

// Validation reports missing or invalid user input
func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// API reports a non-200 reply from the weather provider
func API(msg string) *Error { return &Error{Kind: KindAPI, Message: msg} }

// KindOf returns the Kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
