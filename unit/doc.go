// Package unit provides dimensioned value types built on the dim algebra:
//
//   - Quantity: a magnitude tagged with a dimension, representing a linear
//     measurement or difference. Closed under scaling and combination.
//   - Absolute: a point on an affine scale (a temperature, not a temperature
//     difference). Subtracting two Absolutes yields a Quantity; an Absolute
//     offset by a Quantity is an Absolute; Absolutes cannot be multiplied.
//   - Linear: a named scale factor between a human-facing unit and the
//     standard unit of its dimension. Linear units compose by multiplication
//     and division into first-class compound units.
//   - Affine: an offset scale (Celsius, Fahrenheit), the non-linear unit
//     extension point made concrete.
//
// Magnitudes are always stored in the standard unit of their dimension
// (meters for length, seconds for time, ...); conversion happens only at
// the unit boundary, when a value is constructed through a unit or
// projected into one with Get.
//
// # Dimension mismatches panic
//
// Combining values of incompatible dimensions is a programming error, not
// an input error. Go cannot carry the exponent vector in the type, so
// arithmetic on mismatched dimensions panics deterministically instead of
// failing to compile. Use Dim().Equal to gate
// operations on values whose dimensions are not statically known, and the
// dim package's error-returning algebra when composing dimensions
// dynamically.
//
// All types in this package are immutable-shape values: no operation
// mutates its receiver (SetStandard, the documented escape hatch, is the
// one exception), and values are safe to share between goroutines.
package unit
