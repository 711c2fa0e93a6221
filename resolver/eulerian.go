package resolver

import "github.com/obinexus/semverx"

// eulerian performs a Hierholzer-style edge-covering traversal from root:
// maintain a stack initialized with root, peek the top node, pick an
// unvisited outgoing edge, push its target, mark the edge visited; when
// the top node has no unvisited outgoing edges, pop it onto the final
// path. The output is the popped sequence, reversed.
func (run *resolveRun) eulerian(root int) (ResolutionResult, error) {
	r := run.r
	// Work on a private copy of the edge-visited flags so concurrent
	// resolutions against independently-locked graphs never interfere,
	// and so a failed attempt (as tried by Hybrid) doesn't leave stale
	// visited marks behind for a subsequent attempt.
	visited := make([][]bool, len(r.edges))
	for i, es := range r.edges {
		visited[i] = make([]bool, len(es))
	}

	stack := []int{root}
	var path []int
	var visitedEdgeCount int
	iterations := 0

	for len(stack) > 0 {
		if run.cancelled() {
			return ResolutionResult{}, capError("resolver.eulerian")
		}
		iterations++
		if iterations > run.maxIterations {
			return ResolutionResult{}, capError("resolver.eulerian")
		}

		top := stack[len(stack)-1]
		nextEdge := -1
		for i, e := range r.edges[top] {
			if !visited[top][i] {
				nextEdge = i
				break
			}
		}
		if nextEdge == -1 {
			path = append(path, top)
			stack = stack[:len(stack)-1]
			continue
		}

		e := r.edges[top][nextEdge]
		visited[top][nextEdge] = true
		visitedEdgeCount++

		target := r.nodes[e.target]
		if err := run.checkEdge(target, e.constraint); err != nil {
			return ResolutionResult{}, err
		}
		stack = append(stack, e.target)
	}

	// Reverse path in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	resolved := make(map[string]semverx.Version, len(path))
	for _, idx := range path {
		resolved[r.nodes[idx].ID] = r.nodes[idx].Version
	}

	return ResolutionResult{
		ResolvedVersions: resolved,
		Iterations:       iterations,
		StressImpact:     float64(visitedEdgeCount) * 0.1,
	}, nil
}
