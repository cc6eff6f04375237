package dim

import (
	"fmt"
	"slices"
)

// Basis is an ordered, closed set of base-dimension names.
//
// The basis is fixed configuration: all dimensions in a program are expected
// to share one basis, and combining dimensions from different bases is
// rejected. Order is significant: two bases with the same names in a
// different order are different schemas.
type Basis struct {
	names []string
	index map[string]int
}

// NewBasis creates a basis from an ordered list of base-dimension names.
// At least one name is required and names must be unique.
func NewBasis(names ...string) (*Basis, error) {
	if len(names) == 0 {
		return nil, &Error{
			Code:    ErrCodeInvalidBasis,
			Op:      "NewBasis",
			Message: "basis requires at least one base dimension",
		}
	}
	index := make(map[string]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, &Error{
				Code:    ErrCodeInvalidBasis,
				Op:      "NewBasis",
				Message: fmt.Sprintf("base dimension %d has an empty name", i),
			}
		}
		if _, dup := index[name]; dup {
			return nil, &Error{
				Code:    ErrCodeInvalidBasis,
				Op:      "NewBasis",
				Message: fmt.Sprintf("duplicate base dimension %q", name),
			}
		}
		index[name] = i
	}
	return &Basis{names: slices.Clone(names), index: index}, nil
}

// MustNewBasis is NewBasis, panicking on error.
// Intended for package-level basis declarations.
func MustNewBasis(names ...string) *Basis {
	b, err := NewBasis(names...)
	if err != nil {
		panic(err)
	}
	return b
}

// Len returns the number of base dimensions.
func (b *Basis) Len() int {
	return len(b.names)
}

// Names returns the ordered base-dimension names.
func (b *Basis) Names() []string {
	return slices.Clone(b.names)
}

// Contains reports whether name is a member of the basis.
func (b *Basis) Contains(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Equal reports whether two bases describe the same schema: the same names
// in the same order.
func (b *Basis) Equal(o *Basis) bool {
	if b == o {
		return true
	}
	if b == nil || o == nil {
		return false
	}
	return slices.Equal(b.names, o.names)
}

// Scalar returns the dimensionless Dim for this basis: every exponent zero.
func (b *Basis) Scalar() Dim {
	return Dim{basis: b, exps: make([]int, len(b.names))}
}

// Base returns the unit dimension for name: exponent one at name's
// position, zero elsewhere. Returns an error if name is not a member of
// the basis.
func (b *Basis) Base(name string) (Dim, error) {
	i, ok := b.index[name]
	if !ok {
		return Dim{}, &Error{
			Code:    ErrCodeUnknownBase,
			Op:      "Base",
			Message: fmt.Sprintf("%q is not a member of basis %v", name, b.names),
		}
	}
	exps := make([]int, len(b.names))
	exps[i] = 1
	return Dim{basis: b, exps: exps}, nil
}

// MustBase is Base, panicking on error.
// Intended for package-level dimension declarations.
func (b *Basis) MustBase(name string) Dim {
	d, err := b.Base(name)
	if err != nil {
		panic(err)
	}
	return d
}

// sameBasis reports whether two dimensions may be combined: identical basis
// pointer, or equal ordered name lists.
func sameBasis(a, b *Basis) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return slices.Equal(a.names, b.names)
}
