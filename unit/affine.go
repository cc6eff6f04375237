package unit

import "github.com/roach88/measure/dim"

// Affine is a unit whose scale is offset from the standard origin:
// a standard-unit point is v*factor + offset for a value v on this scale.
// Celsius and Fahrenheit are the canonical examples.
//
// Differences on an affine scale carry no offset (a temperature rise of
// 1 °C is a rise of 1 K), so the Unit (difference) conversions use the
// factor alone, while the PointUnit conversions apply the offset. The same
// unit value therefore serves Quantity.Get and Absolute.Get with the
// physically correct meaning for each.
type Affine[T Value] struct {
	d      dim.Dim
	factor T
	offset T
}

// NewAffine returns an affine unit for dimension d. factor is standard
// units per one of this unit; offset is the standard-unit position of this
// scale's zero point.
func NewAffine[T Value](d dim.Dim, factor, offset T) Affine[T] {
	return Affine[T]{d: d, factor: factor, offset: offset}
}

// Dim returns the unit's dimension.
func (u Affine[T]) Dim() dim.Dim {
	return u.d
}

// Factor returns the scale factor: standard units per one of this unit.
func (u Affine[T]) Factor() T {
	return u.factor
}

// Offset returns the standard-unit position of the scale's zero point.
func (u Affine[T]) Offset() T {
	return u.offset
}

// Of converts a difference measured in this unit to a quantity.
// No offset applies to differences.
func (u Affine[T]) Of(v T) Quantity[T] {
	return Quantity[T]{d: u.d, std: u.ToStandard(v)}
}

// PointOf converts a point on this scale to an absolute:
// celsius.PointOf(25) is the point 298.15 K.
func (u Affine[T]) PointOf(v T) Absolute[T] {
	return Absolute[T]{d: u.d, std: u.ToStandardPoint(v)}
}

// ToStandard converts a difference in this unit to standard units.
func (u Affine[T]) ToStandard(v T) T {
	return v * u.factor
}

// FromStandard converts a standard-unit difference to this unit.
func (u Affine[T]) FromStandard(std T) T {
	return std / u.factor
}

// ToStandardPoint converts a point on this scale to standard units.
func (u Affine[T]) ToStandardPoint(v T) T {
	return v*u.factor + u.offset
}

// FromStandardPoint converts a standard-unit point to this scale.
func (u Affine[T]) FromStandardPoint(std T) T {
	return (std - u.offset) / u.factor
}
