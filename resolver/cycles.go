package resolver

import (
	"github.com/obinexus/semverx"
	"github.com/obinexus/semverx/stress"
)

// tarjanFrame is one stack frame of the iterative Tarjan's algorithm,
// grounded on the explicit-call-stack style used elsewhere in the pack to
// avoid recursion-depth issues on deep graphs.
type tarjanFrame struct {
	node      int
	edgeIndex int
}

// stronglyConnectedComponents returns the graph's SCCs (each a slice of
// node indices), computed with Tarjan's algorithm using an explicit call
// stack rather than native recursion.
func (r *Resolver) stronglyConnectedComponents() [][]int {
	n := len(r.nodes)
	index := make([]int, n)
	lowlink := make([]int, n)
	onStack := make([]bool, n)
	visited := make([]bool, n)
	for i := range index {
		index[i] = -1
	}
	var sccStack []int
	var sccs [][]int
	counter := 0

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		callStack := []tarjanFrame{{node: start}}
		for len(callStack) > 0 {
			top := &callStack[len(callStack)-1]
			v := top.node
			if !visited[v] {
				visited[v] = true
				index[v] = counter
				lowlink[v] = counter
				counter++
				sccStack = append(sccStack, v)
				onStack[v] = true
			}

			recursed := false
			for top.edgeIndex < len(r.edges[v]) {
				w := r.edges[v][top.edgeIndex].target
				top.edgeIndex++
				if !visited[w] {
					callStack = append(callStack, tarjanFrame{node: w})
					recursed = true
					break
				} else if onStack[w] {
					if index[w] < lowlink[v] {
						lowlink[v] = index[w]
					}
				}
			}
			if recursed {
				continue
			}

			// All of v's edges processed; pop v.
			callStack = callStack[:len(callStack)-1]
			if len(callStack) > 0 {
				parent := &callStack[len(callStack)-1]
				if lowlink[v] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[v]
				}
			}

			if lowlink[v] == index[v] {
				var scc []int
				for {
					w := sccStack[len(sccStack)-1]
					sccStack = sccStack[:len(sccStack)-1]
					onStack[w] = false
					scc = append(scc, w)
					if w == v {
						break
					}
				}
				sccs = append(sccs, scc)
			}
		}
	}
	return sccs
}

// PreventDiamondDependency computes the graph's strongly connected
// components and, for every SCC with more than one node, removes the
// highest-weight edge inside that SCC and pins the removed edge's target
// node's version classifier to stable, repeating until no such SCC
// remains. After this completes the graph is a DAG.
func (r *Resolver) PreventDiamondDependency() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sccs := r.stronglyConnectedComponents()
	for i := 0; i < len(sccs); i++ {
		scc := sccs[i]
		if len(scc) < 2 {
			continue
		}
		inSCC := make(map[int]bool, len(scc))
		for _, idx := range scc {
			inSCC[idx] = true
		}

		worstSrc, worstEdgeIdx := -1, -1
		worstWeight := -1.0

		for _, src := range scc {
			for ei, e := range r.edges[src] {
				if !inSCC[e.target] {
					continue
				}
				if e.weight > worstWeight {
					worstWeight = e.weight
					worstSrc = src
					worstEdgeIdx = ei
				}
			}
		}

		if worstSrc == -1 {
			return &semverx.Error{
				Kind:        semverx.KindResolving,
				Op:          "resolver.PreventDiamondDependency",
				Message:     "scc detected with no internal edge to break",
				StressLevel: 9.0,
				CanRecover:  false,
			}
		}

		target := r.edges[worstSrc][worstEdgeIdx].target
		r.edges[worstSrc] = append(r.edges[worstSrc][:worstEdgeIdx], r.edges[worstSrc][worstEdgeIdx+1:]...)
		r.nodes[target].Version.Classifier = semverx.ClassifierStable

		r.logger.Warn().
			Str("broken_from", r.nodes[worstSrc].ID).
			Str("broken_to", r.nodes[target].ID).
			Float64("weight", worstWeight).
			Msg("prevent_diamond_dependency: broke highest-weight SCC edge and pinned target to stable")

		r.monitor.AddSample(stress.FromCycle(len(scc)))

		// Removing one edge can leave a smaller cycle inside the same
		// component, so recompute the SCCs and start over.
		sccs, i = r.stronglyConnectedComponents(), -1
	}
	return nil
}
