package catalog

import (
	"math"

	"github.com/roach88/measure/unit"
)

// Unitless is the identity unit for the scalar dimension.
var Unitless = unit.Identity[float64](Scalar)

// Length units. Meters is the standard unit.
var (
	Meters      = unit.Identity[float64](Length)
	Kilometers  = Meters.ScaledUp(1000)
	Centimeters = Meters.ScaledDown(100)
	Millimeters = Meters.ScaledDown(1000)
	Micrometers = Meters.ScaledDown(1_000_000)
	Nanometers  = Meters.ScaledDown(1_000_000_000)

	Inches = Meters.ScaledDown(39.3701)
	Feet   = Inches.ScaledUp(12)
	Yards  = Inches.ScaledUp(36)
	Miles  = Feet.ScaledUp(5280)
)

// Time units. Seconds is the standard unit.
var (
	Seconds      = unit.Identity[float64](Time)
	Milliseconds = Seconds.ScaledDown(1000)
	Microseconds = Seconds.ScaledDown(1_000_000)
	Nanoseconds  = Seconds.ScaledDown(1_000_000_000)

	Minutes = Seconds.ScaledUp(60)
	Hours   = Minutes.ScaledUp(60)
	Days    = Hours.ScaledUp(24)
	Weeks   = Days.ScaledUp(7)
	Years   = Days.ScaledUp(365.25)
	Months  = Years.ScaledDown(12)
)

// Mass units. The standard unit is the kilogram, so grams carry a factor
// of 0.001.
var (
	Grams      = unit.NewLinear(Mass, 0.001)
	Kilograms  = Grams.ScaledUp(1000)
	Milligrams = Grams.ScaledDown(1000)
)

// Angle units. Radians is the standard unit.
var (
	Radians = unit.Identity[float64](Angle)
	Degrees = Radians.ScaledDown(180 / math.Pi)
)

// Data units. Bytes is the standard unit.
var (
	Bytes     = unit.Identity[float64](Data)
	Bits      = Bytes.ScaledDown(8)
	Kilobytes = Bytes.ScaledUp(1000)
	Megabytes = Bytes.ScaledUp(1_000_000)
	Gigabytes = Bytes.ScaledUp(1_000_000_000)
)

// Charge units. Coulombs is the standard unit.
var Coulombs = unit.Identity[float64](Charge)

// Temperature units. Kelvin is the standard unit; Celsius and Fahrenheit
// are affine scales, usable for both points and differences.
var (
	Kelvin     = unit.Identity[float64](Temperature)
	Rankine    = Kelvin.ScaledDown(1.8)
	Celsius    = unit.NewAffine(Temperature, 1, 273.15)
	Fahrenheit = unit.NewAffine(Temperature, 5.0/9.0, 273.15-160.0/9.0)
)

// Compound units, built by composition alone.
var (
	SquareMeters = Meters.Mul(Meters)
	CubicMeters  = SquareMeters.Mul(Meters)
	Liters       = CubicMeters.ScaledDown(1000)

	Hertz = Unitless.Div(Seconds)

	MetersPerSecond        = Meters.Div(Seconds)
	MetersPerSecondSquared = MetersPerSecond.Div(Seconds)
	KilometersPerHour      = Kilometers.Div(Hours)
	MilesPerHour           = Miles.Div(Hours)

	Newtons = Kilograms.Mul(MetersPerSecondSquared)
	Joules  = Newtons.Mul(Meters)
	Watts   = Joules.Div(Seconds)
	Pascals = Newtons.Div(SquareMeters)

	Amperes = Coulombs.Div(Seconds)
)
