package heal

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/obinexus/semverx"
	"github.com/obinexus/semverx/stress"
)

type fakeComponent struct {
	id       string
	class    string
	health   *stress.Health
	version  semverx.Version
	rolledTo *semverx.Version
}

func (f *fakeComponent) ID() string              { return f.id }
func (f *fakeComponent) Class() string           { return f.class }
func (f *fakeComponent) Health() *stress.Health  { return f.health }
func (f *fakeComponent) Version() semverx.Version { return f.version }
func (f *fakeComponent) Rollback(to semverx.Version) {
	f.version = to
	f.rolledTo = &to
}

func mustVersion(t *testing.T, s string) semverx.Version {
	t.Helper()
	v, err := semverx.Parse(s)
	require.NoError(t, err)
	return v
}

func TestAttemptSelfHealRollsBackFailingComponent(t *testing.T) {
	c := &fakeComponent{
		id:      "svc-a",
		class:   ClassFailing,
		health:  &stress.Health{StressLevel: 8},
		version: mustVersion(t, "2.0.0"),
	}
	stable := mustVersion(t, "1.0.0")

	err := AttemptSelfHeal(context.Background(), c, stable, zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, stable, c.version)
	require.InDelta(t, 4.0, c.health.StressLevel, 1e-9)
	require.Equal(t, uint32(1), c.health.HealAttempts)
}

func TestAttemptSelfHealIneligibleComponent(t *testing.T) {
	c := &fakeComponent{
		id:     "svc-b",
		class:  ClassSlowing,
		health: &stress.Health{StressLevel: 9},
	}
	err := AttemptSelfHeal(context.Background(), c, semverx.Version{}, zerolog.Nop())
	require.Error(t, err)
	sx, ok := semverx.AsError(err)
	require.True(t, ok)
	require.False(t, sx.CanRecover)
}

func TestAttemptSelfHealExhaustedAttempts(t *testing.T) {
	c := &fakeComponent{
		id:     "svc-c",
		class:  ClassStopping,
		health: &stress.Health{StressLevel: 2, HealAttempts: 3},
	}
	err := AttemptSelfHeal(context.Background(), c, semverx.Version{}, zerolog.Nop())
	require.Error(t, err)
}

func TestAttemptSelfHealNoopClass(t *testing.T) {
	c := &fakeComponent{
		id:     "svc-d",
		class:  "unclassified",
		health: &stress.Health{StressLevel: 4},
	}
	err := AttemptSelfHeal(context.Background(), c, semverx.Version{}, zerolog.Nop())
	require.NoError(t, err)
	require.InDelta(t, 2.0, c.health.StressLevel, 1e-9)
}

func TestAttemptSelfHealCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &fakeComponent{id: "svc-e", class: ClassFailing, health: &stress.Health{StressLevel: 1}}
	err := AttemptSelfHeal(ctx, c, semverx.Version{}, zerolog.Nop())
	require.Error(t, err)
	sx, ok := semverx.AsError(err)
	require.True(t, ok)
	require.True(t, sx.CanRecover)
}
