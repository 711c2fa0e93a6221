package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/obinexus/semverx"
)

// ResolutionResult is the outcome of a successful Resolve call.
type ResolutionResult struct {
	RunID            uuid.UUID
	ResolvedVersions map[string]semverx.Version
	StrategyUsed     Strategy
	Iterations       int
	StressImpact     float64
}

// Resolve resolves componentID's transitive dependencies using strategy.
// Passing StrategyAuto derives the strategy from the resolver's current
// stress reading, taken once at call entry per spec §5 (stress samples
// added during the call are not re-read mid-traversal).
func (r *Resolver) Resolve(ctx context.Context, componentID string, strategy Strategy) (ResolutionResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rootIdx, ok := r.byName[componentID]
	if !ok {
		return ResolutionResult{}, &semverx.Error{
			Kind:    semverx.KindResolving,
			Op:      "resolver.Resolve",
			Message: "no component named " + describeComponent(componentID),
		}
	}

	entryStress := r.monitor.Current()
	used := strategy
	if used == StrategyAuto {
		used = defaultStrategyFor(entryStress)
	}

	r.logger.Debug().
		Str("component", componentID).
		Str("strategy", used.String()).
		Float64("entry_stress", entryStress).
		Msg("resolve: starting")

	run := &resolveRun{r: r, ctx: ctx, maxIterations: r.cfg.maxIterations}

	var (
		result ResolutionResult
		err    error
	)
	switch used {
	case StrategyEulerian:
		result, err = run.eulerian(rootIdx)
	case StrategyHamiltonian:
		result, err = run.hamiltonian(rootIdx)
	case StrategyAStar:
		result, err = run.astar(rootIdx)
	case StrategyHybrid:
		result, err = run.hybrid(rootIdx, entryStress)
	default:
		result, err = run.hamiltonian(rootIdx)
	}

	outcome := "success"
	if err != nil {
		outcome = "failure"
	} else {
		result.RunID = uuid.New()
		result.StrategyUsed = used
		r.monitor.AddSample(result.StressImpact)
	}
	if r.resolveC != nil {
		r.resolveC.WithLabelValues(used.String(), outcome).Inc()
	}

	r.nodes[rootIdx].resolutionAttempts++

	if err != nil {
		r.logger.Warn().Str("component", componentID).Str("strategy", used.String()).Err(err).Msg("resolve: failed")
	} else {
		r.logger.Debug().Str("component", componentID).Str("strategy", used.String()).Int("iterations", result.Iterations).Msg("resolve: success")
	}
	return result, err
}

// resolveRun carries per-call state shared across the strategy
// implementations: the resolver being traversed (read-only except for
// resolutionAttempts), the caller's cancellation context, and the
// iteration cap.
type resolveRun struct {
	r             *Resolver
	ctx           context.Context
	maxIterations int
}

// checkEdge validates that target's version satisfies edge's constraint,
// per spec §4.E's edge-compatibility check.
func (run *resolveRun) checkEdge(target *Component, constraint string) error {
	ok, err := target.Version.Satisfies(constraint)
	if err != nil {
		return &semverx.Error{
			Kind:        semverx.KindResolving,
			Op:          "resolver.checkEdge",
			Message:     "invalid constraint " + constraint + " for " + target.ID,
			Inner:       err,
			StressLevel: 5.0,
			CanRecover:  true,
		}
	}
	if !ok {
		return &semverx.Error{
			Kind:        semverx.KindResolving,
			Op:          "resolver.checkEdge",
			Message:     describeComponent(target.ID) + " does not satisfy " + constraint,
			StressLevel: 5.0,
			CanRecover:  true,
		}
	}
	return nil
}

// cancelled reports whether the run's context has been cancelled.
func (run *resolveRun) cancelled() bool {
	if run.ctx == nil {
		return false
	}
	select {
	case <-run.ctx.Done():
		return true
	default:
		return false
	}
}

func capError(op string) error {
	return &semverx.Error{
		Kind:        semverx.KindResolving,
		Op:          op,
		Message:     "maximum resolution iterations exceeded",
		StressLevel: 6.0,
		CanRecover:  true,
	}
}
