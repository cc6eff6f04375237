package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validTable = `
units:
  - name: furlongs
    dimension: {length: 1}
    factor: 201.168
  - name: fortnights
    dimension: {time: 1}
    factor: 1209600
  - name: knots
    dimension: {length: 1, time: -1}
    factor: 0.514444
`

func TestLoadTable(t *testing.T) {
	r := Builtin()
	require.NoError(t, r.LoadTable(StandardBasis, []byte(validTable)))

	furlongs, ok := r.Lookup("furlongs")
	require.True(t, ok)
	assert.True(t, furlongs.Dim().Equal(Length))
	assert.InDelta(t, 201.168, furlongs.ToStandard(1), 1e-9)

	knots, ok := r.Lookup("knots")
	require.True(t, ok)
	assert.True(t, knots.Dim().Equal(Velocity))

	got, err := r.Convert(10, "furlongs", "meters")
	require.NoError(t, err)
	assert.InDelta(t, 2011.68, got, 1e-9)
}

func TestLoadTableWithPrefixes(t *testing.T) {
	table := `
units:
  - name: parsecs
    dimension: {length: 1}
    factor: 3.0857e16
    prefixes: si-large
`
	r := NewRegistry()
	require.NoError(t, r.LoadTable(StandardBasis, []byte(table)))

	_, ok := r.Lookup("kiloparsecs")
	assert.True(t, ok)
	_, ok = r.Lookup("milliparsecs")
	assert.False(t, ok, "si-large must not add small prefixes")
}

func TestValidateTableAcceptsValid(t *testing.T) {
	require.NoError(t, ValidateTable([]byte(validTable)))
}

func TestValidateTableRejects(t *testing.T) {
	tests := []struct {
		name  string
		table string
	}{
		{"not_yaml", "units: ["},
		{"missing_factor", `
units:
  - name: furlongs
    dimension: {length: 1}
`},
		{"zero_factor", `
units:
  - name: furlongs
    dimension: {length: 1}
    factor: 0
`},
		{"bad_name", `
units:
  - name: Furlongs
    dimension: {length: 1}
    factor: 201.168
`},
		{"bad_prefix_family", `
units:
  - name: furlongs
    dimension: {length: 1}
    factor: 201.168
    prefixes: binary
`},
		{"fractional_exponent", `
units:
  - name: weird
    dimension: {length: 1.5}
    factor: 1
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTable([]byte(tt.table))
			require.Error(t, err)
			var te *TableError
			assert.ErrorAs(t, err, &te)
		})
	}
}

func TestLoadTableUnknownBase(t *testing.T) {
	table := `
units:
  - name: dollars
    dimension: {currency: 1}
    factor: 1
`
	r := NewRegistry()
	err := r.LoadTable(StandardBasis, []byte(table))
	require.Error(t, err)

	var te *TableError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 0, te.Entry)
	assert.Equal(t, "dollars", te.Name)
	assert.Contains(t, te.Message, "currency")
}

func TestLoadTableDuplicateAgainstBuiltin(t *testing.T) {
	table := `
units:
  - name: meters
    dimension: {length: 1}
    factor: 2
`
	r := Builtin()
	err := r.LoadTable(StandardBasis, []byte(table))
	require.Error(t, err)

	var te *TableError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "meters", te.Name)
}

func TestLoadTableRejectsBeforeRegistering(t *testing.T) {
	// Validation failure must leave the registry untouched.
	table := `
units:
  - name: furlongs
    dimension: {length: 1}
    factor: 201.168
  - name: broken
    dimension: {length: 1}
`
	r := NewRegistry()
	err := r.LoadTable(StandardBasis, []byte(table))
	require.Error(t, err)

	_, ok := r.Lookup("furlongs")
	assert.False(t, ok)
}
