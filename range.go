package semverx

import "strings"

// operator is a comparator's relational operator.
type operator int

const (
	opEQ operator = iota
	opGT
	opLT
	opGE
	opLE
)

type comparator struct {
	op  operator
	ver Version
}

func (c comparator) matches(v Version) bool {
	cmp := Compare(v, c.ver)
	switch c.op {
	case opEQ:
		return cmp == 0
	case opGT:
		return cmp > 0
	case opLT:
		return cmp < 0
	case opGE:
		return cmp >= 0
	case opLE:
		return cmp <= 0
	default:
		return false
	}
}

// Range is a parsed version range: a disjunction of comparator-sets, each
// an conjunction of simple comparators.
type Range struct {
	sets [][]comparator
}

// ParseRange parses `range = comparator_set ("||" comparator_set)*` where
// `comparator_set = comparator (WS+ comparator)*` and
// `comparator = op? version`, op in {">=", "<=", ">", "<", "="} (default
// "=").
func ParseRange(s string) (Range, error) {
	const op = "semverx.ParseRange"
	var r Range
	for _, setStr := range strings.Split(s, "||") {
		setStr = strings.TrimSpace(setStr)
		if setStr == "" {
			return Range{}, newError(KindParsing, op, "empty comparator set in range: "+s, 3, false)
		}
		fields := strings.Fields(setStr)
		set := make([]comparator, 0, len(fields))
		for _, f := range fields {
			c, err := parseComparator(f)
			if err != nil {
				return Range{}, newError(KindParsing, op, err.Error(), 3, false)
			}
			set = append(set, c)
		}
		r.sets = append(r.sets, set)
	}
	return r, nil
}

func parseComparator(tok string) (comparator, error) {
	op, rest := opEQ, tok
	switch {
	case strings.HasPrefix(tok, ">="):
		op, rest = opGE, tok[2:]
	case strings.HasPrefix(tok, "<="):
		op, rest = opLE, tok[2:]
	case strings.HasPrefix(tok, ">"):
		op, rest = opGT, tok[1:]
	case strings.HasPrefix(tok, "<"):
		op, rest = opLT, tok[1:]
	case strings.HasPrefix(tok, "="):
		op, rest = opEQ, tok[1:]
	}
	ver, err := Parse(rest)
	if err != nil {
		return comparator{}, err
	}
	return comparator{op: op, ver: ver}, nil
}

// Matches reports whether v satisfies any comparator-set in r.
func (r Range) Matches(v Version) bool {
	for _, set := range r.sets {
		ok := true
		for _, c := range set {
			if !c.matches(v) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}
