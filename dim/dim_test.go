package dim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testBasis returns a small basis plus its three base dimensions.
func testBasis(t *testing.T) (*Basis, Dim, Dim, Dim) {
	t.Helper()
	b := MustNewBasis("length", "time", "mass")
	return b, b.MustBase("length"), b.MustBase("time"), b.MustBase("mass")
}

func TestMulSumsExponents(t *testing.T) {
	_, length, tm, _ := testBasis(t)

	area := MustMul(length, length)
	assert.Equal(t, []int{2, 0, 0}, area.Exponents())

	lt := MustMul(length, tm)
	assert.Equal(t, []int{1, 1, 0}, lt.Exponents())
}

func TestMulCommutative(t *testing.T) {
	_, length, tm, mass := testBasis(t)
	dims := []Dim{length, tm, mass, MustMul(length, length), Inv(tm)}

	for _, a := range dims {
		for _, b := range dims {
			ab := MustMul(a, b)
			ba := MustMul(b, a)
			assert.True(t, ab.Equal(ba), "Mul(%s,%s) != Mul(%s,%s)", a, b, b, a)
		}
	}
}

func TestMulAssociative(t *testing.T) {
	_, length, tm, mass := testBasis(t)

	left := MustMul(MustMul(length, tm), mass)
	right := MustMul(length, MustMul(tm, mass))
	assert.True(t, left.Equal(right))
}

func TestMulInverseIsScalar(t *testing.T) {
	b, length, tm, mass := testBasis(t)
	dims := []Dim{length, tm, mass, MustMul(length, mass), MustDiv(length, tm)}

	for _, d := range dims {
		p := MustMul(d, Inv(d))
		assert.True(t, p.IsScalar(), "Mul(%s, Inv) is not scalar", d)
		assert.True(t, p.Equal(b.Scalar()))
	}
}

func TestDivSelfIsScalar(t *testing.T) {
	_, length, tm, _ := testBasis(t)
	velocity := MustDiv(length, tm)

	q := MustDiv(velocity, velocity)
	assert.True(t, q.IsScalar())
}

func TestDivSubtractsExponents(t *testing.T) {
	_, length, tm, _ := testBasis(t)

	velocity := MustDiv(length, tm)
	assert.Equal(t, []int{1, -1, 0}, velocity.Exponents())

	acceleration := MustDiv(velocity, tm)
	assert.Equal(t, []int{1, -2, 0}, acceleration.Exponents())
}

func TestPowMatchesRepeatedProduct(t *testing.T) {
	_, length, tm, _ := testBasis(t)
	velocity := MustDiv(length, tm)

	for _, d := range []Dim{length, velocity} {
		product := d
		for n := 2; n <= 4; n++ {
			product = MustMul(product, d)
			pow, err := Pow(d, n, 1)
			require.NoError(t, err)
			assert.True(t, pow.Equal(product), "Pow(%s, %d, 1)", d, n)
		}
	}
}

func TestPowRationalRoots(t *testing.T) {
	_, length, tm, _ := testBasis(t)
	area := MustMul(length, length)

	root, err := Pow(area, 1, 2)
	require.NoError(t, err)
	assert.True(t, root.Equal(length))

	inv, err := Pow(length, -1, 1)
	require.NoError(t, err)
	assert.True(t, inv.Equal(Inv(length)))

	// Negative denominators divide exactly too.
	neg, err := Pow(tm, 2, -2)
	require.NoError(t, err)
	assert.True(t, neg.Equal(Inv(tm)))
}

// Fractional resulting exponents are unrepresentable and must be rejected,
// never rounded.
func TestPowRejectsFractionalExponents(t *testing.T) {
	_, length, tm, _ := testBasis(t)
	volume := MustMul(MustMul(length, length), length)

	tests := []struct {
		name     string
		d        Dim
		num, den int
	}{
		{"sqrt_of_odd_exponent", length, 1, 2},
		{"cbrt_of_square", MustMul(length, length), 1, 3},
		{"mixed_vector", MustDiv(volume, tm), 1, 2},
		{"zero_denominator", length, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Pow(tt.d, tt.num, tt.den)
			require.Error(t, err)
			assert.True(t, IsInvalidPower(err))
			assert.Panics(t, func() { MustPow(tt.d, tt.num, tt.den) })
		})
	}
}

func TestPowZeroGivesScalar(t *testing.T) {
	_, length, tm, _ := testBasis(t)
	velocity := MustDiv(length, tm)

	p, err := Pow(velocity, 0, 1)
	require.NoError(t, err)
	assert.True(t, p.IsScalar())
}

func TestCrossBasisRejected(t *testing.T) {
	a := MustNewBasis("length", "time")
	b := MustNewBasis("mass", "charge")

	_, err := Mul(a.MustBase("length"), b.MustBase("mass"))
	require.Error(t, err)
	assert.True(t, IsBasisMismatch(err))

	_, err = Div(a.MustBase("length"), b.MustBase("mass"))
	require.Error(t, err)
	assert.True(t, IsBasisMismatch(err))

	assert.Panics(t, func() { MustMul(a.MustBase("length"), b.MustBase("mass")) })
}

func TestSameSchemaDifferentPointersCompose(t *testing.T) {
	a := MustNewBasis("length", "time")
	b := MustNewBasis("length", "time")

	d, err := Mul(a.MustBase("length"), b.MustBase("length"))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, d.Exponents())
}

func TestEqualRequiresSameSchema(t *testing.T) {
	a := MustNewBasis("length", "time")
	b := MustNewBasis("time", "length")

	assert.False(t, a.MustBase("length").Equal(b.MustBase("length")),
		"same name over reordered bases must differ")
	assert.True(t, a.Scalar().Equal(MustNewBasis("length", "time").Scalar()))
}

func TestExponentLookup(t *testing.T) {
	_, length, tm, _ := testBasis(t)
	velocity := MustDiv(length, tm)

	e, ok := velocity.Exponent("time")
	assert.True(t, ok)
	assert.Equal(t, -1, e)

	_, ok = velocity.Exponent("charge")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	_, length, tm, mass := testBasis(t)

	tests := []struct {
		name string
		d    Dim
		want string
	}{
		{"scalar", MustDiv(length, length), "1"},
		{"base", length, "length"},
		{"inverse", Inv(tm), "time^-1"},
		{"velocity", MustDiv(length, tm), "length*time^-1"},
		{"force", MustMul(mass, MustDiv(MustDiv(length, tm), tm)), "length*time^-2*mass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.String())
		})
	}
}

func TestZeroDim(t *testing.T) {
	var zero Dim
	assert.True(t, zero.IsScalar())
	assert.True(t, zero.Equal(Dim{}))
	assert.Equal(t, "1", zero.String())

	// Zero dims compose only with other empty-basis dims.
	b := MustNewBasis("length")
	_, err := Mul(zero, b.MustBase("length"))
	require.Error(t, err)
	assert.True(t, IsBasisMismatch(err))
}
