package catalog

import "github.com/roach88/measure/dim"

// StandardBasis is the basis every catalog dimension and unit is built
// over. The set and order are fixed; changing either changes the identity
// of every dimension, so treat this as a versioned schema.
var StandardBasis = dim.MustNewBasis(
	"length",
	"time",
	"mass",
	"angle",
	"data",
	"charge",
	"temperature",
)

// Base dimensions.
var (
	Scalar      = StandardBasis.Scalar()
	Length      = StandardBasis.MustBase("length")
	Time        = StandardBasis.MustBase("time")
	Mass        = StandardBasis.MustBase("mass")
	Angle       = StandardBasis.MustBase("angle")
	Data        = StandardBasis.MustBase("data")
	Charge      = StandardBasis.MustBase("charge")
	Temperature = StandardBasis.MustBase("temperature")
)

// Derived dimensions.
var (
	Area   = dim.MustMul(Length, Length)
	Volume = dim.MustMul(Area, Length)

	Frequency = dim.MustDiv(Scalar, Time)

	Velocity     = dim.MustDiv(Length, Time)
	Acceleration = dim.MustDiv(Velocity, Time)
	Jerk         = dim.MustDiv(Acceleration, Time)

	Momentum = dim.MustMul(Mass, Velocity)
	Force    = dim.MustMul(Mass, Acceleration)
	Energy   = dim.MustMul(Force, Length)
	Power    = dim.MustDiv(Energy, Time)

	Density  = dim.MustDiv(Mass, Volume)
	Pressure = dim.MustDiv(Force, Area)

	Current = dim.MustDiv(Charge, Time)
)

// NamedDim pairs a dimension with its catalog name.
type NamedDim struct {
	Name string
	Dim  dim.Dim
}

// NamedDims returns the catalog's named dimensions in declaration order.
func NamedDims() []NamedDim {
	return []NamedDim{
		{"scalar", Scalar},
		{"length", Length},
		{"time", Time},
		{"mass", Mass},
		{"angle", Angle},
		{"data", Data},
		{"charge", Charge},
		{"temperature", Temperature},
		{"area", Area},
		{"volume", Volume},
		{"frequency", Frequency},
		{"velocity", Velocity},
		{"acceleration", Acceleration},
		{"jerk", Jerk},
		{"momentum", Momentum},
		{"force", Force},
		{"energy", Energy},
		{"power", Power},
		{"density", Density},
		{"pressure", Pressure},
		{"current", Current},
	}
}

// LookupDim finds a catalog dimension by name.
func LookupDim(name string) (dim.Dim, bool) {
	for _, nd := range NamedDims() {
		if nd.Name == name {
			return nd.Dim, true
		}
	}
	return dim.Dim{}, false
}
