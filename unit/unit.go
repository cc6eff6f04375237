package unit

import (
	"fmt"

	"github.com/roach88/measure/dim"
)

// Value constrains the magnitude types a quantity can carry.
type Value interface {
	~float32 | ~float64
}

// Unit is the capability required to convert linear measurements. Any type
// exposing a dimension and both conversion directions can serve as a unit
// argument to Quantity.Get; this is the extension point for custom units.
//
// ToStandard and FromStandard must be exact inverses under real-number
// arithmetic (subject to floating-point rounding).
type Unit[T Value] interface {
	Dim() dim.Dim
	ToStandard(v T) T
	FromStandard(std T) T
}

// PointUnit is the capability required to convert points on an affine
// scale. For purely linear units the point conversions coincide with the
// linear ones; offset scales like Celsius differ.
type PointUnit[T Value] interface {
	Dim() dim.Dim
	ToStandardPoint(v T) T
	FromStandardPoint(std T) T
}

// Convert converts a quantity to a different magnitude type. The dimension
// is unchanged; the magnitude undergoes the ordinary numeric conversion.
func Convert[To, From Value](q Quantity[From]) Quantity[To] {
	return Quantity[To]{d: q.d, std: To(q.std)}
}

// ConvertAbsolute converts an absolute to a different magnitude type.
func ConvertAbsolute[To, From Value](a Absolute[From]) Absolute[To] {
	return Absolute[To]{d: a.d, std: To(a.std)}
}

// mustSameDim panics unless a and b are the same dimension. Mismatched
// dimensions are a programming error; see the package comment.
func mustSameDim(op string, a, b dim.Dim) {
	if !a.Equal(b) {
		panic(fmt.Sprintf("unit: %s: mismatched dimensions %s and %s", op, a, b))
	}
}

// mustScalar panics unless d is the scalar dimension; guards the
// raw-value operations that only make sense for dimensionless values.
func mustScalar(op string, d dim.Dim) {
	if !d.IsScalar() {
		panic(fmt.Sprintf("unit: %s: requires a scalar dimension, have %s", op, d))
	}
}
