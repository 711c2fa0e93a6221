package resolver

// isResolutionComplete reports whether, for every visited component, each
// non-optional, non-dev dependency names a component present in the
// graph's name map. Per DESIGN.md Open Question 2, the root must itself be
// in visited — an empty visited set is never considered complete.
func (r *Resolver) isResolutionComplete(root int, visited map[int]bool) bool {
	if !visited[root] {
		return false
	}
	for idx := range visited {
		c := r.nodes[idx]
		for _, dep := range c.Dependencies {
			if dep.Optional || dep.Dev {
				continue
			}
			if _, ok := r.byName[dep.Name]; !ok {
				return false
			}
		}
	}
	return true
}
