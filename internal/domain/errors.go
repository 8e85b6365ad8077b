// Package domain provides the protocol error taxonomy and the Snowflake
// identifier shared by every model in the codebase.
package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind categorizes a protocol failure.
type ErrorKind string

const (
	// KindInvalidSignature indicates the request did not carry a valid
	// Ed25519 signature and must not be processed further.
	KindInvalidSignature ErrorKind = "invalid_signature"

	// KindMissingHeader indicates a required signature header was absent.
	KindMissingHeader ErrorKind = "missing_header"

	// KindMalformedID indicates a Snowflake could not be parsed.
	KindMalformedID ErrorKind = "malformed_id"

	// KindMissingDiscriminant indicates a tagged envelope had no usable
	// integer "type" field.
	KindMissingDiscriminant ErrorKind = "missing_discriminant"

	// KindUnknownVariant indicates a discriminant with no registered decoder.
	KindUnknownVariant ErrorKind = "unknown_variant"

	// KindSchemaMismatch indicates the selected concrete decoder rejected
	// the envelope body.
	KindSchemaMismatch ErrorKind = "schema_mismatch"

	// KindNoHandler indicates no handler was registered for a dispatched
	// interaction. Recovered into a diagnostic response, never a transport
	// error.
	KindNoHandler ErrorKind = "no_handler_registered"
)

// ProtocolError is the canonical error for signature, decode and dispatch
// failures. Frontline handlers translate it to an HTTP status via
// HTTPStatusCode.
type ProtocolError struct {
	Kind    ErrorKind
	Message string

	// Tag is the offending discriminant for unknown_variant and
	// schema_mismatch errors.
	Tag uint64

	// Err is the wrapped cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the cause for errors.Is/errors.As.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode maps the error kind to the status the webhook pipeline
// produces. Authentication failures are 401, decode failures 400.
func (e *ProtocolError) HTTPStatusCode() int {
	switch e.Kind {
	case KindInvalidSignature, KindMissingHeader:
		return http.StatusUnauthorized
	case KindMalformedID, KindMissingDiscriminant, KindUnknownVariant, KindSchemaMismatch:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrInvalidSignature reports a failed request validation. Hex decode
// failures and cryptographic failures share this one kind so callers cannot
// distinguish which check rejected the request.
func ErrInvalidSignature() *ProtocolError {
	return &ProtocolError{Kind: KindInvalidSignature, Message: "request signature validation failed"}
}

// ErrMissingHeader reports an absent signature header.
func ErrMissingHeader(name string) *ProtocolError {
	return &ProtocolError{Kind: KindMissingHeader, Message: fmt.Sprintf("missing required header %s", name)}
}

// ErrMalformedID reports an unparseable Snowflake.
func ErrMalformedID(raw string, cause error) *ProtocolError {
	return &ProtocolError{Kind: KindMalformedID, Message: fmt.Sprintf("malformed snowflake %q", raw), Err: cause}
}

// ErrMissingDiscriminant reports an envelope without an unsigned integer
// "type" field.
func ErrMissingDiscriminant(family string) *ProtocolError {
	return &ProtocolError{Kind: KindMissingDiscriminant, Message: fmt.Sprintf("%s envelope has no integer type field", family)}
}

// ErrUnknownVariant reports a discriminant outside the declared mapping.
func ErrUnknownVariant(family string, tag uint64) *ProtocolError {
	return &ProtocolError{Kind: KindUnknownVariant, Message: fmt.Sprintf("unknown %s variant", family), Tag: tag}
}

// ErrSchemaMismatch reports a concrete decode failure for a known variant.
func ErrSchemaMismatch(family string, tag uint64, cause error) *ProtocolError {
	return &ProtocolError{Kind: KindSchemaMismatch, Message: fmt.Sprintf("%s variant %d rejected envelope", family, tag), Tag: tag, Err: cause}
}

// ErrNoHandler reports a dispatch target with no registered handler.
func ErrNoHandler(what string) *ProtocolError {
	return &ProtocolError{Kind: KindNoHandler, Message: fmt.Sprintf("no handler registered for %s", what)}
}

// KindOf returns the kind of a ProtocolError, or an empty kind for any other
// error.
func KindOf(err error) ErrorKind {
	var pe *ProtocolError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return ""
}
