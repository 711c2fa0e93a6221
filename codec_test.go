package semverx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type codecTestcase struct {
	Name    string
	Version Version
}

func (tc codecTestcase) MarshalTest(t *testing.T) {
	var got Version
	b, err := tc.Version.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if err := got.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(tc.Version, got) {
		t.Error(cmp.Diff(tc.Version, got))
	}
}

var codectt = []codecTestcase{
	{Name: "Zero", Version: Version{}},
	{
		Name: "Full",
		Version: Version{
			Major: 1, Minor: 2, Patch: 3,
			Prerelease:  "alpha.1",
			Build:       "build.9",
			Environment: EnvProd,
			Classifier:  ClassifierStable,
			Intent:      "feature-x",
			SEI: SEIMetadata{
				StatementContract:    "contract-v1",
				StatementVersion:     2,
				ExpressionSignature:  "sig",
				ExpressionComplexity: 7,
				IntentHash:           "hash",
				IntentPriority:       80,
			},
		},
	},
}

func TestVersionCodecRoundTrip(t *testing.T) {
	for _, tc := range codectt {
		t.Run(tc.Name, tc.MarshalTest)
	}
}
