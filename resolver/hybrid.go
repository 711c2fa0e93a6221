package resolver

import "github.com/obinexus/semverx"

// hybrid tries strategies in an order derived from entryStress: if stress
// <6, Hamiltonian → A* → Eulerian; else A* → Eulerian → Hamiltonian.
// Accepts the first success. A non-recoverable error aborts immediately.
// If all attempts fail, the last recoverable error is returned, or a
// synthesized resolving error at stress 9.0 if none was recoverable.
func (run *resolveRun) hybrid(root int, entryStress float64) (ResolutionResult, error) {
	var attempts []func(int) (ResolutionResult, error)
	if entryStress < 6 {
		attempts = []func(int) (ResolutionResult, error){run.hamiltonian, run.astar, run.eulerian}
	} else {
		attempts = []func(int) (ResolutionResult, error){run.astar, run.eulerian, run.hamiltonian}
	}

	var lastRecoverable error
	for _, attempt := range attempts {
		result, err := attempt(root)
		if err == nil {
			return result, nil
		}
		sx, ok := err.(*semverx.Error)
		if !ok || !sx.CanRecover {
			return ResolutionResult{}, err
		}
		lastRecoverable = err
	}

	if lastRecoverable != nil {
		return ResolutionResult{}, lastRecoverable
	}
	return ResolutionResult{}, &semverx.Error{
		Kind:        semverx.KindResolving,
		Op:          "resolver.hybrid",
		Message:     "all strategies exhausted",
		StressLevel: 9.0,
		CanRecover:  false,
	}
}
