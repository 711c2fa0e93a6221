package stress

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonitorMeanOfSamples(t *testing.T) {
	m := NewMonitor(WithSampleCapacity(4))
	require.Equal(t, 0.0, m.Current())
	m.AddSample(2)
	m.AddSample(4)
	require.InDelta(t, 3.0, m.Current(), 1e-9)
}

func TestMonitorEvictsOldestOnOverflow(t *testing.T) {
	m := NewMonitor(WithSampleCapacity(3))
	m.AddSample(10)
	m.AddSample(10)
	m.AddSample(10)
	require.InDelta(t, 10.0, m.Current(), 1e-9)
	m.AddSample(1) // evicts the first 10
	require.InDelta(t, 7.0, m.Current(), 1e-9)
}

func TestZoneStepFunction(t *testing.T) {
	// Property 6: zone is exactly the step function of the spec.
	cases := []struct {
		stress float64
		want   Zone
	}{
		{0, ZoneOk}, {2.99, ZoneOk},
		{3, ZoneWarning}, {5.99, ZoneWarning},
		{6, ZoneDanger}, {8.99, ZoneDanger},
		{9, ZoneCritical}, {100, ZoneCritical},
	}
	for _, c := range cases {
		require.Equalf(t, c.want, AssessZone(c.stress), "stress=%v", c.stress)
	}
}

func TestHealthCanSelfHeal(t *testing.T) {
	h := &Health{StressLevel: 8, HealAttempts: 2}
	require.True(t, h.CanSelfHeal())

	h.HealAttempts = 3
	require.False(t, h.CanSelfHeal())

	h2 := &Health{StressLevel: 9}
	require.False(t, h2.CanSelfHeal())
}

func TestStressSampleHelpers(t *testing.T) {
	require.Equal(t, 6.0, FromConflict(3))
	require.InDelta(t, 8.0, FromCycle(4), 1e-9)
	require.InDelta(t, 0.0, FromComplexity(5, 1), 1e-9)
}
