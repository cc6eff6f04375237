package dim

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes dimension algebra errors.
type ErrorCode string

const (
	// ErrCodeBasisMismatch indicates two dimensions built over different bases
	// were combined.
	ErrCodeBasisMismatch ErrorCode = "BASIS_MISMATCH"

	// ErrCodeInvalidPower indicates a rational power whose result would have a
	// fractional exponent, or a zero denominator.
	ErrCodeInvalidPower ErrorCode = "INVALID_POWER"

	// ErrCodeUnknownBase indicates a base-dimension name that is not a member
	// of the basis.
	ErrCodeUnknownBase ErrorCode = "UNKNOWN_BASE"

	// ErrCodeInvalidBasis indicates a basis declaration with no names or with
	// duplicate names.
	ErrCodeInvalidBasis ErrorCode = "INVALID_BASIS"
)

// Error is a structured dimension algebra error.
//
// Every rule it reports marks a programming error in static code, but the
// violation surfaces as a value so that dynamic composition (e.g. loading a
// unit table) can report it cleanly.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op is the operation that failed ("Mul", "Pow", "Base", ...).
	Op string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("dim: %s: %s: %s", e.Op, e.Code, e.Message)
	}
	return fmt.Sprintf("dim: %s: %s", e.Code, e.Message)
}

// IsBasisMismatch reports whether err is a basis mismatch error.
// Uses errors.As to handle wrapped errors.
func IsBasisMismatch(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == ErrCodeBasisMismatch
}

// IsInvalidPower reports whether err is an invalid rational power error.
// Uses errors.As to handle wrapped errors.
func IsInvalidPower(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == ErrCodeInvalidPower
}

// IsUnknownBase reports whether err is an unknown base-dimension error.
// Uses errors.As to handle wrapped errors.
func IsUnknownBase(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == ErrCodeUnknownBase
}

// IsInvalidBasis reports whether err is an invalid basis declaration error.
// Uses errors.As to handle wrapped errors.
func IsInvalidBasis(err error) bool {
	var de *Error
	return errors.As(err, &de) && de.Code == ErrCodeInvalidBasis
}
