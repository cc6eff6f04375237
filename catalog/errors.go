package catalog

import (
	"errors"
	"fmt"

	"github.com/roach88/measure/dim"
)

// UnknownUnitError reports a name with no registry entry.
type UnknownUnitError struct {
	Name string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("catalog: unknown unit %q", e.Name)
}

// DuplicateUnitError reports a second registration under an existing name.
type DuplicateUnitError struct {
	Name string
}

func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("catalog: unit %q already registered", e.Name)
}

// MismatchError reports a conversion between units of different dimensions.
type MismatchError struct {
	From, To       string
	FromDim, ToDim dim.Dim
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("catalog: cannot convert %s (%s) to %s (%s)",
		e.From, e.FromDim, e.To, e.ToDim)
}

// TableError reports an invalid unit-table file or entry.
type TableError struct {
	// Entry is the zero-based index of the offending entry, or -1 for a
	// file-level error.
	Entry int

	// Name is the entry's unit name, when known.
	Name string

	// Message is a human-readable description.
	Message string

	// Err is the underlying error (optional).
	Err error
}

func (e *TableError) Error() string {
	switch {
	case e.Entry >= 0 && e.Name != "":
		return fmt.Sprintf("catalog: unit table entry %d (%s): %s", e.Entry, e.Name, e.Message)
	case e.Entry >= 0:
		return fmt.Sprintf("catalog: unit table entry %d: %s", e.Entry, e.Message)
	default:
		return fmt.Sprintf("catalog: unit table: %s", e.Message)
	}
}

func (e *TableError) Unwrap() error {
	return e.Err
}

// IsUnknownUnit reports whether err is an unknown unit lookup error.
// Uses errors.As to handle wrapped errors.
func IsUnknownUnit(err error) bool {
	var ue *UnknownUnitError
	return errors.As(err, &ue)
}

// IsMismatch reports whether err is a dimension mismatch conversion error.
// Uses errors.As to handle wrapped errors.
func IsMismatch(err error) bool {
	var me *MismatchError
	return errors.As(err, &me)
}
