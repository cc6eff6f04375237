package unit

import "github.com/roach88/measure/dim"

// Linear is a unit that relates to the standard unit of its dimension by a
// constant factor: the factor is standard units per one of this unit. This
// covers most units in everyday use; offset scales like Celsius are Affine.
//
// Units compose by ordinary arithmetic: the product of two linear units is
// a first-class linear unit whose dimension and factor are the products of
// the operands'. Any unit expressible as a product or quotient of existing
// units needs no separate declaration.
type Linear[T Value] struct {
	d      dim.Dim
	factor T
}

// Identity returns the unit with factor one for dimension d. The identity
// unit defines what "standard units" means for the dimension: meters is
// the identity for length.
func Identity[T Value](d dim.Dim) Linear[T] {
	return Linear[T]{d: d, factor: 1}
}

// NewLinear returns a unit for dimension d with an explicit conversion
// factor: standard units per one of this unit.
func NewLinear[T Value](d dim.Dim, factor T) Linear[T] {
	return Linear[T]{d: d, factor: factor}
}

// Dim returns the unit's dimension.
func (u Linear[T]) Dim() dim.Dim {
	return u.d
}

// Factor returns the conversion factor: standard units per one of this
// unit.
func (u Linear[T]) Factor() T {
	return u.factor
}

// ScaledUp derives a larger unit, e.g. kilometers = meters.ScaledUp(1000).
func (u Linear[T]) ScaledUp(f T) Linear[T] {
	return Linear[T]{d: u.d, factor: u.factor * f}
}

// ScaledDown derives a smaller unit, e.g. millimeters =
// meters.ScaledDown(1000).
func (u Linear[T]) ScaledDown(f T) Linear[T] {
	return Linear[T]{d: u.d, factor: u.factor / f}
}

// Of converts a raw value in this unit to a quantity. This is the primary
// way dimensioned values are created from literals: kilometers.Of(5) is a
// length quantity of 5000 meters.
func (u Linear[T]) Of(v T) Quantity[T] {
	return Quantity[T]{d: u.d, std: u.ToStandard(v)}
}

// PointOf converts a raw value in this unit to a point on the affine scale
// of the unit's dimension.
func (u Linear[T]) PointOf(v T) Absolute[T] {
	return Absolute[T]{d: u.d, std: u.ToStandardPoint(v)}
}

// ToStandard converts a value in this unit to standard units.
func (u Linear[T]) ToStandard(v T) T {
	return v * u.factor
}

// FromStandard converts a value in standard units to this unit.
func (u Linear[T]) FromStandard(std T) T {
	return std / u.factor
}

// ToStandardPoint converts a point in this unit's scale to standard units.
// For a linear unit this coincides with ToStandard.
func (u Linear[T]) ToStandardPoint(v T) T {
	return u.ToStandard(v)
}

// FromStandardPoint converts a standard-unit point to this unit's scale.
// For a linear unit this coincides with FromStandard.
func (u Linear[T]) FromStandardPoint(std T) T {
	return u.FromStandard(std)
}

// Get returns q's magnitude expressed in this unit.
// Panics unless the dimensions match.
func (u Linear[T]) Get(q Quantity[T]) T {
	mustSameDim("Get", u.d, q.Dim())
	return u.FromStandard(q.Standard())
}

// Mul composes a compound unit: the dimensions and factors both multiply.
// E.g. torque.Get(newtons.Mul(meters)). Panics if the operands' bases
// differ.
func (u Linear[T]) Mul(o Linear[T]) Linear[T] {
	return Linear[T]{d: dim.MustMul(u.d, o.d), factor: u.factor * o.factor}
}

// Div composes a compound unit: the dimensions and factors both divide.
// E.g. speed.Get(meters.Div(seconds)). Panics if the operands' bases
// differ.
func (u Linear[T]) Div(o Linear[T]) Linear[T] {
	return Linear[T]{d: dim.MustDiv(u.d, o.d), factor: u.factor / o.factor}
}
