package catalog

import (
	"fmt"
	"sort"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cueyaml "cuelang.org/go/encoding/yaml"
	"gopkg.in/yaml.v3"

	"github.com/roach88/measure/dim"
	"github.com/roach88/measure/unit"
)

// tableSchema is the CUE schema every unit table must satisfy before it is
// decoded. Validation happens against the schema, not during decoding, so
// a malformed table is rejected with a field-level message instead of a
// half-loaded registry.
const tableSchema = `
#Unit: {
	name:      string & =~"^[a-z][a-z0-9_]*$"
	dimension: {[string]: int}
	factor:    number & !=0
	prefixes?: "si" | "si-large" | "si-small"
}

units: [...#Unit]
`

// tableFile is the decoded form of a unit table.
type tableFile struct {
	Units []tableUnit `yaml:"units"`
}

// tableUnit is one unit declaration: a name, a dimension given as an
// exponent per base-dimension name, a conversion factor (standard units
// per one of this unit), and an optional SI prefix family.
type tableUnit struct {
	Name      string         `yaml:"name"`
	Dimension map[string]int `yaml:"dimension"`
	Factor    float64        `yaml:"factor"`
	Prefixes  string         `yaml:"prefixes"`
}

// ValidateTable checks a YAML unit table against the embedded CUE schema
// without loading it.
func ValidateTable(data []byte) error {
	file, err := cueyaml.Extract("units.yaml", data)
	if err != nil {
		return &TableError{Entry: -1, Message: fmt.Sprintf("invalid YAML: %v", err), Err: err}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(tableSchema)
	if err := schema.Err(); err != nil {
		return &TableError{Entry: -1, Message: fmt.Sprintf("internal schema error: %v", err), Err: err}
	}

	value := ctx.BuildFile(file)
	if err := value.Err(); err != nil {
		return &TableError{Entry: -1, Message: fmt.Sprintf("invalid table: %v", err), Err: err}
	}

	if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return &TableError{
			Entry:   -1,
			Message: fmt.Sprintf("schema violation:\n%s", cueerrors.Details(err, nil)),
			Err:     err,
		}
	}
	return nil
}

// LoadTable validates a YAML unit table and registers every declared unit
// (with its prefix family expanded) into the registry. Dimensions in the
// table are built over basis; a name outside the basis rejects the entry.
//
// On error the registry may hold entries from earlier table rows; load
// into a scratch registry first if that matters.
func (r *Registry) LoadTable(basis *dim.Basis, data []byte) error {
	if err := ValidateTable(data); err != nil {
		return err
	}

	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return &TableError{Entry: -1, Message: fmt.Sprintf("decoding: %v", err), Err: err}
	}

	for i, entry := range file.Units {
		d, err := buildDim(basis, entry.Dimension)
		if err != nil {
			return &TableError{Entry: i, Name: entry.Name, Message: err.Error(), Err: err}
		}
		u := unit.NewLinear(d, entry.Factor)
		if err := r.registerPrefixed(entry.Name, u, entry.Prefixes); err != nil {
			return &TableError{Entry: i, Name: entry.Name, Message: err.Error(), Err: err}
		}
	}
	return nil
}

// buildDim composes a dimension from an exponent-per-base-name map.
// Names are visited in sorted order so error messages are deterministic;
// the product itself is order-independent.
func buildDim(basis *dim.Basis, exponents map[string]int) (dim.Dim, error) {
	names := make([]string, 0, len(exponents))
	for name := range exponents {
		names = append(names, name)
	}
	sort.Strings(names)

	d := basis.Scalar()
	for _, name := range names {
		base, err := basis.Base(name)
		if err != nil {
			return dim.Dim{}, err
		}
		pow, err := dim.Pow(base, exponents[name], 1)
		if err != nil {
			return dim.Dim{}, err
		}
		d = dim.MustMul(d, pow)
	}
	return d, nil
}
