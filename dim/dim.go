package dim

import (
	"fmt"
	"slices"
	"strings"
)

// Dim is a physical dimension: an integer exponent per base dimension of
// its basis. Dims are immutable values; every operation returns a new Dim.
//
// The zero Dim is the scalar dimension of the empty basis. It is scalar and
// equal to itself, but it only composes with other empty-basis dims; build
// dims through a Basis.
type Dim struct {
	basis *Basis
	exps  []int
}

// Basis returns the basis the dimension is built over.
func (d Dim) Basis() *Basis {
	return d.basis
}

// Exponents returns a copy of the exponent vector, in basis order.
func (d Dim) Exponents() []int {
	return slices.Clone(d.exps)
}

// Exponent returns the exponent for the named base dimension.
// The second result is false if name is not a member of the basis.
func (d Dim) Exponent(name string) (int, bool) {
	if d.basis == nil {
		return 0, false
	}
	i, ok := d.basis.index[name]
	if !ok {
		return 0, false
	}
	return d.exps[i], true
}

// IsScalar reports whether every exponent is zero.
func (d Dim) IsScalar() bool {
	for _, e := range d.exps {
		if e != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether two dimensions have the same basis schema and the
// same exponent at every position.
func (d Dim) Equal(o Dim) bool {
	return sameBasis(d.basis, o.basis) && slices.Equal(d.exps, o.exps)
}

// String renders the dimension as a product of named factors, e.g.
// "length*time^-2". The scalar dimension renders as "1".
func (d Dim) String() string {
	var sb strings.Builder
	for i, e := range d.exps {
		if e == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('*')
		}
		sb.WriteString(d.basis.names[i])
		if e != 1 {
			fmt.Fprintf(&sb, "^%d", e)
		}
	}
	if sb.Len() == 0 {
		return "1"
	}
	return sb.String()
}

// Mul returns the product dimension: the positionwise sum of exponents.
// The operands must share a basis.
func Mul(a, b Dim) (Dim, error) {
	if !sameBasis(a.basis, b.basis) {
		return Dim{}, basisMismatch("Mul", a, b)
	}
	exps := make([]int, len(a.exps))
	for i := range a.exps {
		exps[i] = a.exps[i] + b.exps[i]
	}
	return Dim{basis: a.basis, exps: exps}, nil
}

// MustMul is Mul, panicking on error.
// Intended for package-level dimension declarations.
func MustMul(a, b Dim) Dim {
	d, err := Mul(a, b)
	if err != nil {
		panic(err)
	}
	return d
}

// Inv returns the multiplicative inverse: every exponent negated.
func Inv(d Dim) Dim {
	exps := make([]int, len(d.exps))
	for i, e := range d.exps {
		exps[i] = -e
	}
	return Dim{basis: d.basis, exps: exps}
}

// Div returns the quotient dimension: Mul(a, Inv(b)).
// The operands must share a basis.
func Div(a, b Dim) (Dim, error) {
	d, err := Mul(a, Inv(b))
	if err != nil {
		return Dim{}, basisMismatch("Div", a, b)
	}
	return d, nil
}

// MustDiv is Div, panicking on error.
// Intended for package-level dimension declarations.
func MustDiv(a, b Dim) Dim {
	d, err := Div(a, b)
	if err != nil {
		panic(err)
	}
	return d
}

// Pow raises the dimension to the rational power num/den: every exponent e
// becomes e*num/den. The power is only defined when den is nonzero and
// e*num is evenly divisible by den at every position; otherwise Pow returns
// an invalid power error. There is no rounding fallback, because fractional
// dimension exponents are not representable.
func Pow(d Dim, num, den int) (Dim, error) {
	if den == 0 {
		return Dim{}, &Error{
			Code:    ErrCodeInvalidPower,
			Op:      "Pow",
			Message: fmt.Sprintf("zero denominator raising %s to %d/%d", d, num, den),
		}
	}
	exps := make([]int, len(d.exps))
	for i, e := range d.exps {
		if (e*num)%den != 0 {
			return Dim{}, &Error{
				Code: ErrCodeInvalidPower,
				Op:   "Pow",
				Message: fmt.Sprintf("raising %s to %d/%d gives a fractional exponent for %q",
					d, num, den, d.basis.names[i]),
			}
		}
		exps[i] = (e * num) / den
	}
	return Dim{basis: d.basis, exps: exps}, nil
}

// MustPow is Pow, panicking on error.
// Intended for package-level dimension declarations.
func MustPow(d Dim, num, den int) Dim {
	p, err := Pow(d, num, den)
	if err != nil {
		panic(err)
	}
	return p
}

func basisMismatch(op string, a, b Dim) *Error {
	return &Error{
		Code:    ErrCodeBasisMismatch,
		Op:      op,
		Message: fmt.Sprintf("%s and %s are built over different bases", describe(a), describe(b)),
	}
}

// describe names a dimension for error messages, including its basis so
// that two same-looking dims over different schemas stay distinguishable.
func describe(d Dim) string {
	if d.basis == nil {
		return "<zero dim>"
	}
	return fmt.Sprintf("%s over %v", d, d.basis.names)
}
