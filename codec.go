package semverx

import "encoding/json"

// structured is the inter-component transport record for a Version, per
// the structured form described in the format contract: a record with
// keys major, minor, patch, prerelease?, build?, environment?,
// classifier?, intent?, sei.
type structured struct {
	Major       uint64      `json:"major"`
	Minor       uint64      `json:"minor"`
	Patch       uint64      `json:"patch"`
	Prerelease  string      `json:"prerelease,omitempty"`
	Build       string      `json:"build,omitempty"`
	Environment Environment `json:"environment,omitempty"`
	Classifier  Classifier  `json:"classifier,omitempty"`
	Intent      string      `json:"intent,omitempty"`
	SEI         seiWire     `json:"sei"`
}

type seiWire struct {
	StatementContract    string `json:"statement_contract"`
	StatementVersion     uint32 `json:"statement_version"`
	ExpressionSignature  string `json:"expression_signature"`
	ExpressionComplexity uint32 `json:"expression_complexity"`
	IntentHash           string `json:"intent_hash"`
	IntentPriority       uint32 `json:"intent_priority"`
}

// MarshalText encodes v in the lossless structured transport form,
// including the SEI block that Render omits.
func (v Version) MarshalText() ([]byte, error) {
	s := structured{
		Major:       v.Major,
		Minor:       v.Minor,
		Patch:       v.Patch,
		Prerelease:  v.Prerelease,
		Build:       v.Build,
		Environment: v.Environment,
		Classifier:  v.Classifier,
		Intent:      v.Intent,
		SEI: seiWire{
			StatementContract:    v.SEI.StatementContract,
			StatementVersion:     v.SEI.StatementVersion,
			ExpressionSignature:  v.SEI.ExpressionSignature,
			ExpressionComplexity: v.SEI.ExpressionComplexity,
			IntentHash:           v.SEI.IntentHash,
			IntentPriority:       v.SEI.IntentPriority,
		},
	}
	return json.Marshal(s)
}

// UnmarshalText decodes the structured transport form produced by
// MarshalText, restoring the SEI block.
func (v *Version) UnmarshalText(b []byte) error {
	var s structured
	if err := json.Unmarshal(b, &s); err != nil {
		return newError(KindParsing, "semverx.Version.UnmarshalText", err.Error(), 3, false)
	}
	v.Major, v.Minor, v.Patch = s.Major, s.Minor, s.Patch
	v.Prerelease, v.Build = s.Prerelease, s.Build
	v.Environment, v.Classifier, v.Intent = s.Environment, s.Classifier, s.Intent
	v.SEI = SEIMetadata{
		StatementContract:    s.SEI.StatementContract,
		StatementVersion:     s.SEI.StatementVersion,
		ExpressionSignature:  s.SEI.ExpressionSignature,
		ExpressionComplexity: s.SEI.ExpressionComplexity,
		IntentHash:           s.SEI.IntentHash,
		IntentPriority:       s.SEI.IntentPriority,
	}
	return nil
}
