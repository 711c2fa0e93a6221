package semverx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorBubbleUpAmplifiesStress(t *testing.T) {
	e := newError(KindResolving, "resolver.Resolve", "no path found", 6.0, true)
	e.BubbleUp("while resolving component a")
	require.InDelta(t, 9.0, e.StressLevel, 1e-9)
	e.BubbleUp("while resolving component b")
	require.InDelta(t, 13.5, e.StressLevel, 1e-9)
	require.Len(t, e.Context, 2)
}

func TestErrorIs(t *testing.T) {
	e := newError(KindParsing, "semverx.Parse", "bad input", 3, false)
	require.True(t, errors.Is(e, KindParsing))
	require.False(t, errors.Is(e, KindValidating))
}

func TestErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	e := &Error{Kind: KindInternalForTest(), Inner: inner}
	require.Equal(t, inner, errors.Unwrap(e))
}

// KindInternalForTest exists only because the spec's closed kind set has no
// generic "internal" member; tests that just need *some* kind reuse panic,
// which no other code in this module produces.
func KindInternalForTest() ErrorKind { return KindPanic }
