// Package dim implements a dimension algebra: physical dimensions
// represented as integer exponent vectors over an ordered, closed basis of
// base dimensions (length, time, mass, ...).
//
// A Basis fixes the set and order of base dimensions for a program. It is a
// versioned schema, not a runtime parameter: every Dim in a program is
// expected to share one basis, and operations across different bases are
// rejected.
//
// The algebra is pure integer vector arithmetic:
//
//   - Mul sums exponents positionwise.
//   - Inv negates every exponent.
//   - Div is Mul with the inverse.
//   - Pow scales every exponent by num/den and is only defined when the
//     result is exact at every position. There is no rounding fallback,
//     because fractional dimension exponents are not representable.
//
// Operations that can be misused return (Dim, error); the Must variants
// panic and are intended for package-level catalog declarations, where a
// failure is a programming error caught on first run.
//
// In a type system with type-level integer arithmetic these rules could be
// enforced at compile time. Go cannot compute exponent vectors at the type
// level, so the checks here run at construction and composition time
// instead. Callers get deterministic errors (or panics, for the Must forms)
// rather than compile failures; the checked rules are identical.
package dim
