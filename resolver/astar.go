package resolver

import (
	"container/heap"

	"github.com/obinexus/semverx"
)

// astarNode is one entry in the A* open set's priority queue.
type astarNode struct {
	idx       int
	g         float64 // accumulated edge weight from root
	h         float64 // node.health.stress_level + 0.5 * len(dependencies)
	f         float64 // g + h
	heapIndex int
}

// astarQueue is a container/heap min-heap on f-cost, the same priority
// queue mechanics golang-dep's gps solver uses (container/heap) for its
// backtrack frontier, adapted here to a min-heap rather than a max-heap
// keyed for lowest-f-first popping.
type astarQueue []*astarNode

func (q astarQueue) Len() int            { return len(q) }
func (q astarQueue) Less(i, j int) bool  { return q[i].f < q[j].f }
func (q astarQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].heapIndex, q[j].heapIndex = i, j }
func (q *astarQueue) Push(x interface{}) {
	n := x.(*astarNode)
	n.heapIndex = len(*q)
	*q = append(*q, n)
}
func (q *astarQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// heuristic computes h(n) = node.health.stress_level + 0.5 * len(deps); a
// missing node (idx < 0) scores 100 to discourage exploration through
// holes.
func (run *resolveRun) heuristic(idx int) float64 {
	if idx < 0 {
		return 100
	}
	c := run.r.nodes[idx]
	h := 0.5 * float64(len(c.Dependencies))
	if c.Health != nil {
		h += c.Health.StressLevel
	}
	return h
}

// astar runs classical A* with f = g + h, terminating when it pops a node
// whose closed set satisfies isResolutionComplete, per spec §4.E.
func (run *resolveRun) astar(root int) (ResolutionResult, error) {
	r := run.r

	open := &astarQueue{}
	heap.Init(open)
	heap.Push(open, &astarNode{idx: root, g: 0, h: run.heuristic(root), f: run.heuristic(root)})

	cameFrom := map[int]int{}
	bestG := map[int]float64{root: 0}
	closed := map[int]bool{}
	iterations := 0
	var finalCost float64

	for open.Len() > 0 {
		if run.cancelled() {
			return ResolutionResult{}, capError("resolver.astar")
		}
		iterations++
		if iterations > run.maxIterations {
			return ResolutionResult{}, capError("resolver.astar")
		}

		cur := heap.Pop(open).(*astarNode)
		if closed[cur.idx] {
			continue
		}
		closed[cur.idx] = true
		finalCost = cur.g

		if r.isResolutionComplete(root, closed) {
			path := reconstructPath(cameFrom, root, cur.idx)
			resolved := make(map[string]semverx.Version, len(path))
			for _, idx := range path {
				resolved[r.nodes[idx].ID] = r.nodes[idx].Version
			}
			return ResolutionResult{
				ResolvedVersions: resolved,
				Iterations:       iterations,
				StressImpact:     finalCost * 0.1,
			}, nil
		}

		for _, e := range r.edges[cur.idx] {
			target := r.nodes[e.target]
			if err := run.checkEdge(target, e.constraint); err != nil {
				continue
			}
			g := cur.g + e.weight
			if best, ok := bestG[e.target]; ok && best <= g {
				continue
			}
			bestG[e.target] = g
			cameFrom[e.target] = cur.idx
			h := run.heuristic(e.target)
			heap.Push(open, &astarNode{idx: e.target, g: g, h: h, f: g + h})
		}
	}

	return ResolutionResult{}, &semverx.Error{
		Kind:        semverx.KindResolving,
		Op:          "resolver.astar",
		Message:     "open set exhausted without a complete resolution",
		StressLevel: 6.0,
		CanRecover:  true,
	}
}

func reconstructPath(cameFrom map[int]int, root, goal int) []int {
	path := []int{goal}
	cur := goal
	for cur != root {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// Reverse so root comes first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
