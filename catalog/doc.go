// Package catalog declares the standard basis, the named dimensions
// derived from it, and the common units: mechanical instantiations of the
// dim and unit packages.
//
// The catalog also provides a Registry: an exact-name lookup table mapping
// unit names to units, preloaded with the built-in catalog (SI prefix
// families expanded from a declaration table) and extensible at run time
// from YAML unit tables validated against an embedded CUE schema. The
// registry looks names up verbatim; it does not parse unit expressions.
package catalog
