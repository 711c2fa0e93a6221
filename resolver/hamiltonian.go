package resolver

import "github.com/obinexus/semverx"

// hamiltonian performs a recursive DFS with backtracking from root,
// seeking a path that visits every graph node exactly once. On failure
// within the iteration cap, it falls back to A* rather than erroring, per
// spec §4.E (DESIGN.md Open Question 3 notes the resulting double
// fallback inside Hybrid is harmless).
func (run *resolveRun) hamiltonian(root int) (ResolutionResult, error) {
	r := run.r
	nodeCount := len(r.nodes)
	visited := make(map[int]bool, nodeCount)
	path := make([]int, 0, nodeCount)
	iterations := 0
	capped := false

	var dfs func(cur int) bool
	dfs = func(cur int) bool {
		if run.cancelled() {
			capped = true
			return false
		}
		iterations++
		if iterations > run.maxIterations {
			capped = true
			return false
		}
		visited[cur] = true
		path = append(path, cur)

		if len(visited) == nodeCount {
			return true
		}

		for _, e := range r.edges[cur] {
			if visited[e.target] {
				continue
			}
			target := r.nodes[e.target]
			if err := run.checkEdge(target, e.constraint); err != nil {
				continue // try a different neighbor; this one isn't a viable step
			}
			if dfs(e.target) {
				return true
			}
			if capped {
				return false
			}
		}

		// Backtrack.
		delete(visited, cur)
		path = path[:len(path)-1]
		return false
	}

	if dfs(root) {
		resolved := make(map[string]semverx.Version, len(path))
		for _, idx := range path {
			resolved[r.nodes[idx].ID] = r.nodes[idx].Version
		}
		return ResolutionResult{
			ResolvedVersions: resolved,
			Iterations:       iterations,
			StressImpact:     float64(len(path)) * 0.05,
		}, nil
	}

	if capped {
		return ResolutionResult{}, capError("resolver.hamiltonian")
	}

	return run.astar(root)
}
