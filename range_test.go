package semverx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSatisfiesMonotonicity(t *testing.T) {
	// Property 4: satisfies(v, ">=X") implies v >= X.
	x := Version{Major: 1, Minor: 2, Patch: 3}
	ge := Version{Major: 1, Minor: 5, Patch: 0}
	ok, err := ge.Satisfies(">=1.2.3")
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, Compare(ge, x) >= 0)
}

func TestSatisfiesScenarios(t *testing.T) {
	cases := []struct {
		version string
		rng     string
		want    bool
	}{
		{"1.5.0", ">=1.2.3 <2.0.0", true},
		{"2.0.0", ">=1.2.3 <2.0.0", false},
		{"0.9.0", ">=1.2.3 || <1.0.0", true},
	}
	for _, c := range cases {
		v, err := Parse(c.version)
		require.NoError(t, err)
		got, err := v.Satisfies(c.rng)
		require.NoError(t, err)
		require.Equalf(t, c.want, got, "satisfies(%s, %q)", c.version, c.rng)
	}
}

func TestParseRangeUnknownOperator(t *testing.T) {
	// Unknown operator prefixes just fail the inner Parse call, since the
	// grammar only recognizes the five defined operator tokens; anything
	// else is treated as part of the version string and fails to parse.
	_, err := ParseRange("~>1.2.3")
	require.Error(t, err)
}
