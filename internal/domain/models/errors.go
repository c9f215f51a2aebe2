package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies domain failures. Kinds map 1:1 to HTTP semantics at the
// edge: InvalidInput and EphemerisUnavailable are client-caused, InvalidHouseData
// is an internal defect of the ephemeris integration.
type ErrorKind string

const (
	KindInvalidInput         ErrorKind = "invalid_input"
	KindEphemerisUnavailable ErrorKind = "ephemeris_unavailable"
	KindInvalidHouseData     ErrorKind = "invalid_house_data"
)

// DomainError carries an error kind plus the offending field, if any.
type DomainError struct {
	Kind    ErrorKind
	Field   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *DomainError) Unwrap() error { return e.Err }

// NewInvalidInput reports a malformed request field. Never retried.
func NewInvalidInput(field, message string) *DomainError {
	return &DomainError{Kind: KindInvalidInput, Field: field, Message: message}
}

// NewEphemerisUnavailable reports that the ephemeris engine cannot compute for
// the given inputs (e.g. a date outside its supported range).
func NewEphemerisUnavailable(message string, err error) *DomainError {
	return &DomainError{Kind: KindEphemerisUnavailable, Message: message, Err: err}
}

// NewInvalidHouseData reports a cusp set that is not monotonic around the
// circle. This indicates a bug in the ephemeris integration, not bad input.
func NewInvalidHouseData(message string) *DomainError {
	return &DomainError{Kind: KindInvalidHouseData, Message: message}
}

// KindOf extracts the domain error kind, or "" for non-domain errors.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
