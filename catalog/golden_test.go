package catalog

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TestNamedDimsGolden pins the catalog's dimension table: names, order,
// and exponent signatures. Regenerate with:
//
//	go test ./catalog -update
func TestNamedDimsGolden(t *testing.T) {
	var buf bytes.Buffer
	for _, nd := range NamedDims() {
		fmt.Fprintf(&buf, "%s %s\n", nd.Name, nd.Dim)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "named_dims", buf.Bytes())
}
