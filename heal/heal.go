// Package heal implements the self-heal controller: recovery actions
// applied to a component based on its dependency class and stress zone.
//
// Self-heal side effects are chosen to be in-process state changes only
// (see DESIGN.md Open Question 4): rollback restores a prior Version
// snapshot held by the caller, and the other classes are logged as
// structured events with no external I/O, keeping the core free of any
// host/process boundary.
package heal

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/obinexus/semverx"
	"github.com/obinexus/semverx/stress"
)

// Healable is the minimal surface the controller needs from a dependency
// graph component: its class, health, and version, plus a way to roll its
// version back to a prior snapshot.
type Healable interface {
	ID() string
	Class() string
	Health() *stress.Health
	Version() semverx.Version
	Rollback(to semverx.Version)
}

// Class strings recognized by the dispatch table. Any other class falls
// through to the generic no-op healer, reserved for extension.
const (
	ClassFailing  = "failing"
	ClassSlowing  = "slowing"
	ClassStopping = "stopping"
)

// AttemptSelfHeal requires c to be heal-eligible (stress < 9 and fewer
// than 3 prior attempts), else it returns a non-recoverable healing
// error. On entry it increments the heal-attempt counter. The action
// taken depends on c's class; on success, stress_level is halved and the
// zone is reassessed.
func AttemptSelfHeal(ctx context.Context, c Healable, lastStable semverx.Version, logger zerolog.Logger) error {
	const op = "heal.AttemptSelfHeal"
	h := c.Health()

	if ctx != nil {
		select {
		case <-ctx.Done():
			return &semverx.Error{
				Kind:        semverx.KindHealing,
				Op:          op,
				Message:     "self-heal cancelled for component " + c.ID(),
				Inner:       ctx.Err(),
				StressLevel: h.StressLevel,
				CanRecover:  true,
			}
		default:
		}
	}

	if !h.CanSelfHeal() {
		return &semverx.Error{
			Kind:        semverx.KindHealing,
			Op:          op,
			Message:     "component " + c.ID() + " is not eligible for self-heal",
			StressLevel: h.StressLevel,
			CanRecover:  false,
		}
	}

	h.HealAttempts++

	switch c.Class() {
	case ClassFailing:
		c.Rollback(lastStable)
		logger.Info().Str("component", c.ID()).Str("action", "rollback").Msg("self-heal: rolled back to last stable version")
	case ClassSlowing:
		logger.Info().Str("component", c.ID()).Str("action", "clear-caches-restart").Msg("self-heal: cleared caches and restarted")
	case ClassStopping:
		logger.Info().Str("component", c.ID()).Str("action", "force-restart").Msg("self-heal: forced restart with new configuration")
	default:
		logger.Debug().Str("component", c.ID()).Str("action", "noop").Msg("self-heal: generic no-op healer")
	}

	h.Update(h.StressLevel * 0.5)
	return nil
}
