package resolver

import (
	"github.com/obinexus/semverx"
	"github.com/obinexus/semverx/stress"

	"github.com/obinexus/semverx/heal"
)

// componentHealable adapts a *Component to heal.Healable.
type componentHealable struct{ c *Component }

func (h componentHealable) ID() string                  { return h.c.ID }
func (h componentHealable) Class() string                { return h.c.Class }
func (h componentHealable) Health() *stress.Health       { return h.c.Health }
func (h componentHealable) Version() semverx.Version     { return h.c.Version }
func (h componentHealable) Rollback(to semverx.Version) { h.c.Version = to }

var _ heal.Healable = componentHealable{}

// Healable returns idx's component wrapped to satisfy heal.Healable, so
// callers can drive self-heal without reaching into unexported Resolver
// state.
func (r *Resolver) Healable(idx int) (heal.Healable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if idx < 0 || idx >= len(r.nodes) {
		return nil, &semverx.Error{Kind: semverx.KindResolving, Op: "resolver.Healable", Message: "invalid component index"}
	}
	return componentHealable{c: r.nodes[idx]}, nil
}
