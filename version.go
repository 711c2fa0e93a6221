// Package semverx implements an extended semantic-version model: the
// classic (major, minor, patch[-pre][+build]) triple augmented with
// environment, classifier, and intent metadata, plus a required SEI
// (Statement/Expression/Intent) metadata block.
package semverx

import (
	"strconv"
	"strings"
)

// Environment is the deployment environment a version was cut for.
type Environment string

// Defined environments. The zero value means "unset".
const (
	EnvDev     Environment = "dev"
	EnvTest    Environment = "test"
	EnvStaging Environment = "staging"
	EnvProd    Environment = "prod"
)

// Classifier is the life-cycle tag of a version.
type Classifier string

// Defined classifiers. The zero value means "unset".
const (
	ClassifierStable       Classifier = "stable"
	ClassifierLegacy       Classifier = "legacy"
	ClassifierExperimental Classifier = "experimental"
	ClassifierDeprecated   Classifier = "deprecated"
)

// SEIMetadata is the Statement/Expression/Intent block required on every
// Version.
type SEIMetadata struct {
	StatementContract    string
	StatementVersion     uint32
	ExpressionSignature  string
	ExpressionComplexity uint32
	IntentHash           string
	IntentPriority       uint32
}

// Version is the extended-semver value. Major, Minor, and Patch are the
// classic semver triple; Prerelease and Build are optional dotted
// identifier strings; Environment, Classifier, and Intent are
// domain-specific extensions beyond semver 2.0.
type Version struct {
	Major, Minor, Patch uint64
	Prerelease          string
	Build               string
	Environment         Environment
	Classifier          Classifier
	Intent              string
	SEI                 SEIMetadata
}

func envFromToken(tok string) (Environment, bool) {
	switch Environment(strings.ToLower(tok)) {
	case EnvDev:
		return EnvDev, true
	case EnvTest:
		return EnvTest, true
	case EnvStaging:
		return EnvStaging, true
	case EnvProd:
		return EnvProd, true
	default:
		return "", false
	}
}

func classifierFromToken(tok string) (Classifier, bool) {
	switch Classifier(strings.ToLower(tok)) {
	case ClassifierStable:
		return ClassifierStable, true
	case ClassifierLegacy:
		return ClassifierLegacy, true
	case ClassifierExperimental:
		return ClassifierExperimental, true
	case ClassifierDeprecated:
		return ClassifierDeprecated, true
	default:
		return "", false
	}
}

// Parse accepts a dotted string
// MAJOR.MINOR.PATCH[-PRE][+BUILD][.ENV][.CLASS][.INTENT].
//
// The patch token may carry a "-prerelease" suffix then a "+build" suffix,
// in that order when both are present; their dotted identifiers run up to
// the first segment that is an environment token. Tokens after the version
// core, if present, are consumed in order as environment, classifier, and
// intent. Parse does not populate SEI; callers that need the SEI block
// populated should use UnmarshalText on the structured transport form.
func Parse(s string) (Version, error) {
	const op = "semverx.Parse"
	segs := strings.Split(s, ".")
	if len(segs) < 3 {
		return Version{}, newError(KindParsing, op, "expected at least three dot-segments: "+s, 3, false)
	}

	major, err := strconv.ParseUint(segs[0], 10, 64)
	if err != nil {
		return Version{}, newError(KindParsing, op, "invalid major version: "+segs[0], 3, false)
	}
	minor, err := strconv.ParseUint(segs[1], 10, 64)
	if err != nil {
		return Version{}, newError(KindParsing, op, "invalid minor version: "+segs[1], 3, false)
	}

	// Prerelease and build identifiers are dotted, so when the patch token
	// carries a suffix, the segments after it belong to that suffix up to
	// the first one that names an environment.
	end := 3
	if strings.ContainsAny(segs[2], "-+") {
		for end < len(segs) {
			if _, ok := envFromToken(segs[end]); ok {
				break
			}
			end++
		}
	}
	patchTok := strings.Join(segs[2:end], ".")
	patch, pre, build, err := parsePatchToken(patchTok)
	if err != nil {
		return Version{}, newError(KindParsing, op, err.Error(), 3, false)
	}

	v := Version{Major: major, Minor: minor, Patch: patch, Prerelease: pre, Build: build}

	extra := segs[end:]
	idx := 0
	if idx < len(extra) {
		if env, ok := envFromToken(extra[idx]); ok {
			v.Environment = env
			idx++
		} else {
			return Version{}, newError(KindParsing, op, "unknown environment token: "+extra[idx], 3, false)
		}
	}
	if idx < len(extra) {
		if cls, ok := classifierFromToken(extra[idx]); ok {
			v.Classifier = cls
			idx++
		} else {
			return Version{}, newError(KindParsing, op, "unknown classifier token: "+extra[idx], 3, false)
		}
	}
	if idx < len(extra) {
		v.Intent = extra[idx]
		idx++
	}

	return v, nil
}

// parsePatchToken splits a patch token of the form "PATCH[-PRE][+BUILD]".
func parsePatchToken(tok string) (patch uint64, pre, build string, err error) {
	rest := tok
	if i := strings.IndexByte(rest, '-'); i >= 0 {
		patchStr := rest[:i]
		rest = rest[i+1:]
		if j := strings.IndexByte(rest, '+'); j >= 0 {
			pre = rest[:j]
			build = rest[j+1:]
		} else {
			pre = rest
		}
		patch, perr := strconv.ParseUint(patchStr, 10, 64)
		if perr != nil {
			return 0, "", "", errInvalidPatch(patchStr)
		}
		return patch, pre, build, nil
	}
	if i := strings.IndexByte(rest, '+'); i >= 0 {
		patchStr := rest[:i]
		build = rest[i+1:]
		patch, perr := strconv.ParseUint(patchStr, 10, 64)
		if perr != nil {
			return 0, "", "", errInvalidPatch(patchStr)
		}
		return patch, "", build, nil
	}
	patch, perr := strconv.ParseUint(rest, 10, 64)
	if perr != nil {
		return 0, "", "", errInvalidPatch(rest)
	}
	return patch, "", "", nil
}

type patchError string

func (e patchError) Error() string { return "invalid patch version: " + string(e) }

func errInvalidPatch(s string) error { return patchError(s) }

// Render emits MAJOR.MINOR.PATCH followed by -PRE if set and +BUILD if
// set. Render is lossy by design: environment, classifier, intent, and the
// SEI block are not re-emitted. Use MarshalText for a lossless structured
// form.
func (v Version) Render() string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(v.Major, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Minor, 10))
	b.WriteByte('.')
	b.WriteString(strconv.FormatUint(v.Patch, 10))
	if v.Prerelease != "" {
		b.WriteByte('-')
		b.WriteString(v.Prerelease)
	}
	if v.Build != "" {
		b.WriteByte('+')
		b.WriteString(v.Build)
	}
	return b.String()
}

func (v Version) String() string { return v.Render() }

// Compare returns -1, 0, or +1 comparing a and b by lexicographic
// (major, minor, patch), then breaking ties on prerelease: no-prerelease
// outranks having a prerelease, otherwise comparison is codepoint-wise on
// the prerelease string. Build metadata never affects order.
func Compare(a, b Version) int {
	if a.Major != b.Major {
		return cmpUint(a.Major, b.Major)
	}
	if a.Minor != b.Minor {
		return cmpUint(a.Minor, b.Minor)
	}
	if a.Patch != b.Patch {
		return cmpUint(a.Patch, b.Patch)
	}
	switch {
	case a.Prerelease == "" && b.Prerelease == "":
		return 0
	case a.Prerelease == "" && b.Prerelease != "":
		return 1
	case a.Prerelease != "" && b.Prerelease == "":
		return -1
	default:
		return strings.Compare(a.Prerelease, b.Prerelease)
	}
}

func cmpUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Less reports whether v orders before other, per Compare.
func (v Version) Less(other Version) bool { return Compare(v, other) < 0 }

// Equal reports whether v and other compare equal, per Compare. Build
// metadata and extended fields are not considered.
func (v Version) Equal(other Version) bool { return Compare(v, other) == 0 }

// Validate checks the two version invariants of the data model:
// SEI.IntentPriority must be <= 100, and a version with
// Classifier == deprecated and Environment == prod is invalid.
func (v Version) Validate() error {
	const op = "semverx.Version.Validate"
	if v.SEI.IntentPriority > 100 {
		return newError(KindValidating, op, "sei.intent_priority must be <= 100", 4, false)
	}
	if v.Classifier == ClassifierDeprecated && v.Environment == EnvProd {
		return newError(KindValidating, op, "deprecated classifier is invalid in prod environment", 4, false)
	}
	return nil
}

// Satisfies parses rangeStr and returns true iff any comparator-set within
// it is fully satisfied by v.
func (v Version) Satisfies(rangeStr string) (bool, error) {
	r, err := ParseRange(rangeStr)
	if err != nil {
		return false, err
	}
	return r.Matches(v), nil
}
