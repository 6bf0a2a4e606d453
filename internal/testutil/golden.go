package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares actual against testdata/golden/<name>.golden.
// Run the test with -update to rewrite the fixture.
func AssertGolden(t *testing.T, name string, actual []byte) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, actual)
}
