package unit

import "github.com/roach88/measure/dim"

// Absolute is a point on an affine scale with a dimension: a temperature,
// as opposed to a temperature difference. It stores a standard-unit offset
// from the scale's fixed origin.
//
// Absolutes are unit-correct but not closed under multiplication or
// division: multiplying two temperatures is meaningless, so those
// operations do not exist on this type at all. The arithmetic that does
// exist follows affine structure:
//
//	Absolute - Absolute = Quantity   (point minus point is a difference)
//	Absolute ± Quantity = Absolute   (point offset by a difference)
type Absolute[T Value] struct {
	d   dim.Dim
	std T
}

// AbsoluteAtStandard constructs an absolute of dimension d from a
// standard-unit offset from the origin.
func AbsoluteAtStandard[T Value](d dim.Dim, std T) Absolute[T] {
	return Absolute[T]{d: d, std: std}
}

// Dim returns the absolute's dimension.
func (a Absolute[T]) Dim() dim.Dim {
	return a.d
}

// IsScalar reports whether the absolute is dimensionless.
func (a Absolute[T]) IsScalar() bool {
	return a.d.IsScalar()
}

// Standard returns the standard-unit offset from the origin.
// Escape hatch; prefer Get with a unit.
func (a Absolute[T]) Standard() T {
	return a.std
}

// SetStandard replaces the offset, interpreted in standard units.
// Escape hatch; prefer constructing through a unit.
func (a *Absolute[T]) SetStandard(v T) {
	a.std = v
}

// Get returns the point expressed in u's scale.
// Panics unless u has the absolute's dimension.
func (a Absolute[T]) Get(u PointUnit[T]) T {
	mustSameDim("Get", a.d, u.Dim())
	return u.FromStandardPoint(a.std)
}

// Add returns the point offset forward by a difference.
// Panics unless the dimensions match.
func (a Absolute[T]) Add(q Quantity[T]) Absolute[T] {
	mustSameDim("Add", a.d, q.d)
	return Absolute[T]{d: a.d, std: a.std + q.std}
}

// Sub returns the difference between two points.
// Panics unless the dimensions match.
func (a Absolute[T]) Sub(o Absolute[T]) Quantity[T] {
	mustSameDim("Sub", a.d, o.d)
	return Quantity[T]{d: a.d, std: a.std - o.std}
}

// SubQuantity returns the point offset backward by a difference.
// Panics unless the dimensions match.
func (a Absolute[T]) SubQuantity(q Quantity[T]) Absolute[T] {
	mustSameDim("SubQuantity", a.d, q.d)
	return Absolute[T]{d: a.d, std: a.std - q.std}
}

// AddValue returns a scalar point offset by a raw value.
// Panics if the absolute is not scalar.
func (a Absolute[T]) AddValue(v T) Absolute[T] {
	mustScalar("AddValue", a.d)
	return Absolute[T]{d: a.d, std: a.std + v}
}

// SubValue returns a scalar point offset backward by a raw value.
// Panics if the absolute is not scalar.
func (a Absolute[T]) SubValue(v T) Absolute[T] {
	mustScalar("SubValue", a.d)
	return Absolute[T]{d: a.d, std: a.std - v}
}

// Equal reports structural equality: same dimension, same offset.
func (a Absolute[T]) Equal(o Absolute[T]) bool {
	return a.d.Equal(o.d) && a.std == o.std
}

// AsQuantity reinterprets the point's offset from the origin as a
// difference, discarding the affine semantics.
func (a Absolute[T]) AsQuantity() Quantity[T] {
	return Quantity[T]{d: a.d, std: a.std}
}
