package semverx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type versionTestcase struct {
	Name    string
	Input   string
	Want    Version
	WantErr bool
}

func (tc versionTestcase) ParseTest(t *testing.T) {
	got, err := Parse(tc.Input)
	if tc.WantErr {
		require.Error(t, err)
		return
	}
	require.NoError(t, err)
	if !cmp.Equal(tc.Want, got) {
		t.Error(cmp.Diff(tc.Want, got))
	}
}

var versiontt = []versionTestcase{
	{Name: "Simple", Input: "1.2.3", Want: Version{Major: 1, Minor: 2, Patch: 3}},
	{Name: "Prerelease", Input: "1.2.3-alpha.1", Want: Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "alpha.1"}},
	{Name: "Build", Input: "1.2.3+build.9", Want: Version{Major: 1, Minor: 2, Patch: 3, Build: "build.9"}},
	{Name: "PrereleaseAndBuild", Input: "1.2.3-rc.1+build.9", Want: Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "rc.1", Build: "build.9"}},
	{Name: "Environment", Input: "1.2.3.prod", Want: Version{Major: 1, Minor: 2, Patch: 3, Environment: EnvProd}},
	{Name: "EnvironmentCaseInsensitive", Input: "1.2.3.PROD", Want: Version{Major: 1, Minor: 2, Patch: 3, Environment: EnvProd}},
	{Name: "EnvironmentAndClassifier", Input: "1.2.3.staging.legacy", Want: Version{Major: 1, Minor: 2, Patch: 3, Environment: EnvStaging, Classifier: ClassifierLegacy}},
	{Name: "FullExtended", Input: "1.2.3.dev.experimental.feature-x", Want: Version{Major: 1, Minor: 2, Patch: 3, Environment: EnvDev, Classifier: ClassifierExperimental, Intent: "feature-x"}},
	{Name: "TooFewSegments", Input: "1.2", WantErr: true},
	{Name: "NonNumericMajor", Input: "a.2.3", WantErr: true},
	{Name: "UnknownEnvironment", Input: "1.2.3.bogus", WantErr: true},
	{Name: "UnknownClassifier", Input: "1.2.3.prod.bogus", WantErr: true},
}

func TestVersionParse(t *testing.T) {
	for _, tc := range versiontt {
		t.Run(tc.Name, tc.ParseTest)
	}
}

func TestVersionRenderRoundTrip(t *testing.T) {
	// Property 1: parse/render round-trip on the base five fields.
	cases := []string{"1.2.3", "1.2.3-alpha.1", "1.2.3+build.9", "0.0.0", "10.20.30-rc.2+meta.1"}
	for _, in := range cases {
		v, err := Parse(in)
		require.NoError(t, err)
		require.Equal(t, in, v.Render())
	}
}

func TestCompareOrderingTotal(t *testing.T) {
	// Property 2: for versions with no prerelease, compare is antisymmetric.
	a := Version{Major: 1, Minor: 0, Patch: 0}
	b := Version{Major: 2, Minor: 0, Patch: 0}
	require.Equal(t, -1, Compare(a, b))
	require.Equal(t, 1, Compare(b, a))
	require.Equal(t, 0, Compare(a, a))
}

func TestComparePrereleaseOutranked(t *testing.T) {
	// Property 3: no-prerelease outranks having a prerelease.
	base := Version{Major: 1, Minor: 2, Patch: 3}
	withPre := Version{Major: 1, Minor: 2, Patch: 3, Prerelease: "alpha.1"}
	require.Equal(t, 1, Compare(base, withPre))
	require.Equal(t, -1, Compare(withPre, base))
}

func TestCompareBuildIgnored(t *testing.T) {
	a := Version{Major: 1, Minor: 2, Patch: 3, Build: "build.9"}
	b := Version{Major: 1, Minor: 2, Patch: 3}
	require.Equal(t, 0, Compare(a, b))
}

func TestValidateRejectsDeprecatedInProd(t *testing.T) {
	// Property 5.
	v := Version{Major: 1, Classifier: ClassifierDeprecated, Environment: EnvProd}
	require.Error(t, v.Validate())

	ok := Version{Major: 1, Classifier: ClassifierDeprecated, Environment: EnvStaging}
	require.NoError(t, ok.Validate())
}

func TestValidateRejectsOverflowPriority(t *testing.T) {
	v := Version{SEI: SEIMetadata{IntentPriority: 101}}
	err := v.Validate()
	require.Error(t, err)
	sx, ok := AsError(err)
	require.True(t, ok)
	require.Equal(t, KindValidating, sx.Kind)
}
