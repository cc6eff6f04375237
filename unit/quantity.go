package unit

import "github.com/roach88/measure/dim"

// Quantity is a magnitude tagged with a dimension. The magnitude is always
// stored in the standard unit for the dimension; conversion happens only at
// the unit boundary (construction through a unit, or projection with Get).
//
// Quantities of the same dimension add, subtract, and compare. Quantities
// of any dimensions multiply and divide, composing the result dimension.
// Operations reserved for scalar (dimensionless) values (raw-value
// construction, Value, AddValue, SubValue, CmpValue) panic on non-scalar
// receivers.
//
// The zero Quantity is a zero magnitude over the zero dim; build quantities
// through a unit or a constructor.
type Quantity[T Value] struct {
	d   dim.Dim
	std T
}

// Scalar constructs a dimensionless quantity from a raw value. Scalar
// construction is the only raw-number path; dimensioned quantities are
// built through a unit (or AtStandard).
func Scalar[T Value](basis *dim.Basis, v T) Quantity[T] {
	return Quantity[T]{d: basis.Scalar(), std: v}
}

// AtStandard constructs a quantity of dimension d directly from a magnitude
// already expressed in standard units. This is the canonical way non-scalar
// quantities are produced, typically by a unit's conversion.
func AtStandard[T Value](d dim.Dim, std T) Quantity[T] {
	return Quantity[T]{d: d, std: std}
}

// Dim returns the quantity's dimension.
func (q Quantity[T]) Dim() dim.Dim {
	return q.d
}

// IsScalar reports whether the quantity is dimensionless.
func (q Quantity[T]) IsScalar() bool {
	return q.d.IsScalar()
}

// Standard returns the magnitude in standard units.
// Escape hatch; prefer Get with a unit.
func (q Quantity[T]) Standard() T {
	return q.std
}

// SetStandard replaces the magnitude, interpreted in standard units.
// Escape hatch; prefer constructing through a unit.
func (q *Quantity[T]) SetStandard(v T) {
	q.std = v
}

// Value returns the raw magnitude of a scalar quantity.
// Panics if the quantity is not scalar.
func (q Quantity[T]) Value() T {
	mustScalar("Value", q.d)
	return q.std
}

// Get returns the magnitude expressed in u's unit.
// Panics unless u has the quantity's dimension.
func (q Quantity[T]) Get(u Unit[T]) T {
	mustSameDim("Get", q.d, u.Dim())
	return u.FromStandard(q.std)
}

// Add returns q + r. Panics unless the dimensions match.
func (q Quantity[T]) Add(r Quantity[T]) Quantity[T] {
	mustSameDim("Add", q.d, r.d)
	return Quantity[T]{d: q.d, std: q.std + r.std}
}

// Sub returns q - r. Panics unless the dimensions match.
func (q Quantity[T]) Sub(r Quantity[T]) Quantity[T] {
	mustSameDim("Sub", q.d, r.d)
	return Quantity[T]{d: q.d, std: q.std - r.std}
}

// AddValue returns q + v for a scalar quantity.
// Panics if the quantity is not scalar.
func (q Quantity[T]) AddValue(v T) Quantity[T] {
	mustScalar("AddValue", q.d)
	return Quantity[T]{d: q.d, std: q.std + v}
}

// SubValue returns q - v for a scalar quantity.
// Panics if the quantity is not scalar.
func (q Quantity[T]) SubValue(v T) Quantity[T] {
	mustScalar("SubValue", q.d)
	return Quantity[T]{d: q.d, std: q.std - v}
}

// Neg returns the quantity with a negated magnitude.
func (q Quantity[T]) Neg() Quantity[T] {
	return Quantity[T]{d: q.d, std: -q.std}
}

// Mul returns q * r: magnitudes multiply and dimensions compose.
// Panics if the operands' bases differ.
func (q Quantity[T]) Mul(r Quantity[T]) Quantity[T] {
	return Quantity[T]{d: dim.MustMul(q.d, r.d), std: q.std * r.std}
}

// Div returns q / r: magnitudes divide and dimensions compose.
// Panics if the operands' bases differ.
func (q Quantity[T]) Div(r Quantity[T]) Quantity[T] {
	return Quantity[T]{d: dim.MustDiv(q.d, r.d), std: q.std / r.std}
}

// MulValue returns q scaled by a raw value. The dimension is unchanged.
func (q Quantity[T]) MulValue(v T) Quantity[T] {
	return Quantity[T]{d: q.d, std: q.std * v}
}

// DivValue returns q divided by a raw value. The dimension is unchanged.
func (q Quantity[T]) DivValue(v T) Quantity[T] {
	return Quantity[T]{d: q.d, std: q.std / v}
}

// Reciprocal returns 1/q with the inverse dimension. A raw value divided by
// a quantity is Reciprocal(q).MulValue(v).
func Reciprocal[T Value](q Quantity[T]) Quantity[T] {
	return Quantity[T]{d: dim.Inv(q.d), std: 1 / q.std}
}

// Cmp compares two quantities of the same dimension, returning -1, 0, or
// +1. Panics unless the dimensions match. NaN magnitudes follow the
// underlying float comparison and compare as unordered (Cmp returns 0 for
// no ordering).
func (q Quantity[T]) Cmp(r Quantity[T]) int {
	mustSameDim("Cmp", q.d, r.d)
	switch {
	case q.std < r.std:
		return -1
	case q.std > r.std:
		return 1
	default:
		return 0
	}
}

// CmpValue compares a scalar quantity against a raw value.
// Panics if the quantity is not scalar.
func (q Quantity[T]) CmpValue(v T) int {
	mustScalar("CmpValue", q.d)
	switch {
	case q.std < v:
		return -1
	case q.std > v:
		return 1
	default:
		return 0
	}
}

// Equal reports structural equality: same dimension, same magnitude.
func (q Quantity[T]) Equal(r Quantity[T]) bool {
	return q.d.Equal(r.d) && q.std == r.std
}

// AsAbsolute reinterprets the quantity's magnitude as a point on the
// affine scale of the same dimension.
func (q Quantity[T]) AsAbsolute() Absolute[T] {
	return Absolute[T]{d: q.d, std: q.std}
}
