package catalog

import (
	"sort"

	"github.com/roach88/measure/unit"
)

// Registry is an exact-name lookup table of units. Lookups are verbatim:
// the registry never parses unit expressions.
//
// A Registry is not safe for concurrent mutation; populate it first, then
// share it read-only.
type Registry struct {
	byName map[string]unit.Unit[float64]
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]unit.Unit[float64])}
}

// Register adds a unit under name. Registering an existing name fails.
func (r *Registry) Register(name string, u unit.Unit[float64]) error {
	if _, dup := r.byName[name]; dup {
		return &DuplicateUnitError{Name: name}
	}
	r.byName[name] = u
	return nil
}

// Lookup finds a unit by exact name.
func (r *Registry) Lookup(name string) (unit.Unit[float64], bool) {
	u, ok := r.byName[name]
	return u, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Convert converts a difference value from one named unit to another.
// The units must exist and share a dimension.
func (r *Registry) Convert(value float64, from, to string) (float64, error) {
	fu, ok := r.Lookup(from)
	if !ok {
		return 0, &UnknownUnitError{Name: from}
	}
	tu, ok := r.Lookup(to)
	if !ok {
		return 0, &UnknownUnitError{Name: to}
	}
	if !fu.Dim().Equal(tu.Dim()) {
		return 0, &MismatchError{From: from, To: to, FromDim: fu.Dim(), ToDim: tu.Dim()}
	}
	return tu.FromStandard(fu.ToStandard(value)), nil
}

// ConvertPoint converts a point value (an absolute, e.g. a temperature
// reading) from one named unit to another. Both units must support point
// conversion and share a dimension. Every catalog unit supports points;
// for linear units the result coincides with Convert.
func (r *Registry) ConvertPoint(value float64, from, to string) (float64, error) {
	fu, ok := r.Lookup(from)
	if !ok {
		return 0, &UnknownUnitError{Name: from}
	}
	tu, ok := r.Lookup(to)
	if !ok {
		return 0, &UnknownUnitError{Name: to}
	}
	if !fu.Dim().Equal(tu.Dim()) {
		return 0, &MismatchError{From: from, To: to, FromDim: fu.Dim(), ToDim: tu.Dim()}
	}
	fp, fok := fu.(unit.PointUnit[float64])
	tp, tok := tu.(unit.PointUnit[float64])
	if !fok || !tok {
		return 0, &MismatchError{From: from, To: to, FromDim: fu.Dim(), ToDim: tu.Dim()}
	}
	return tp.FromStandardPoint(fp.ToStandardPoint(value)), nil
}

// SI prefix families, applied by scaling a base unit the way the catalog's
// own prefixed declarations are built.
var (
	siLargePrefixes = []struct {
		Name   string
		Factor float64
	}{
		{"deca", 10},
		{"hecto", 100},
		{"kilo", 1000},
		{"mega", 1_000_000},
		{"giga", 1_000_000_000},
	}

	siSmallPrefixes = []struct {
		Name   string
		Factor float64
	}{
		{"deci", 10},
		{"centi", 100},
		{"milli", 1000},
		{"micro", 1_000_000},
		{"nano", 1_000_000_000},
	}
)

// Prefix family names accepted by unit tables and the builtin catalog.
const (
	PrefixNone    = ""
	PrefixSI      = "si"
	PrefixSILarge = "si-large"
	PrefixSISmall = "si-small"
)

// registerPrefixed registers u under name plus every prefixed derivation in
// the family: "meters" with the "si" family also registers "decameters"
// through "nanometers".
func (r *Registry) registerPrefixed(name string, u unit.Linear[float64], family string) error {
	if err := r.Register(name, u); err != nil {
		return err
	}
	if family == PrefixNone {
		return nil
	}
	if family == PrefixSI || family == PrefixSILarge {
		for _, p := range siLargePrefixes {
			if err := r.Register(p.Name+name, u.ScaledUp(p.Factor)); err != nil {
				return err
			}
		}
	}
	if family == PrefixSI || family == PrefixSISmall {
		for _, p := range siSmallPrefixes {
			if err := r.Register(p.Name+name, u.ScaledDown(p.Factor)); err != nil {
				return err
			}
		}
	}
	return nil
}

// builtinLinear declares the linear catalog units by name, with their
// prefix families.
var builtinLinear = []struct {
	Name     string
	Unit     unit.Linear[float64]
	Prefixes string
}{
	{"unitless", Unitless, PrefixNone},

	{"meters", Meters, PrefixSI},
	{"inches", Inches, PrefixNone},
	{"feet", Feet, PrefixNone},
	{"yards", Yards, PrefixNone},
	{"miles", Miles, PrefixNone},

	{"seconds", Seconds, PrefixSISmall},
	{"minutes", Minutes, PrefixNone},
	{"hours", Hours, PrefixNone},
	{"days", Days, PrefixNone},
	{"weeks", Weeks, PrefixNone},
	{"months", Months, PrefixNone},
	{"years", Years, PrefixNone},

	{"grams", Grams, PrefixSI},

	{"radians", Radians, PrefixNone},
	{"degrees", Degrees, PrefixNone},

	{"bytes", Bytes, PrefixSILarge},
	{"bits", Bits, PrefixNone},

	{"coulombs", Coulombs, PrefixNone},

	{"kelvin", Kelvin, PrefixNone},
	{"rankine", Rankine, PrefixNone},

	{"square_meters", SquareMeters, PrefixNone},
	{"cubic_meters", CubicMeters, PrefixNone},
	{"liters", Liters, PrefixNone},
	{"hertz", Hertz, PrefixNone},
	{"meters_per_second", MetersPerSecond, PrefixNone},
	{"meters_per_second_squared", MetersPerSecondSquared, PrefixNone},
	{"kilometers_per_hour", KilometersPerHour, PrefixNone},
	{"miles_per_hour", MilesPerHour, PrefixNone},
	{"newtons", Newtons, PrefixNone},
	{"joules", Joules, PrefixNone},
	{"watts", Watts, PrefixNone},
	{"pascals", Pascals, PrefixNone},
	{"amperes", Amperes, PrefixNone},
}

// builtinAffine declares the affine catalog units by name.
var builtinAffine = []struct {
	Name string
	Unit unit.Affine[float64]
}{
	{"celsius", Celsius},
	{"fahrenheit", Fahrenheit},
}

// Builtin returns a fresh registry preloaded with the catalog units,
// prefix families expanded.
func Builtin() *Registry {
	r := NewRegistry()
	for _, e := range builtinLinear {
		if err := r.registerPrefixed(e.Name, e.Unit, e.Prefixes); err != nil {
			// The builtin table is static; a collision is a programming error.
			panic(err)
		}
	}
	for _, e := range builtinAffine {
		if err := r.Register(e.Name, e.Unit); err != nil {
			panic(err)
		}
	}
	return r
}
