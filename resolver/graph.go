// Package resolver implements the dependency-graph resolver: a directed
// graph of component nodes and typed edges, four selectable traversal
// strategies, and a diamond/cycle breaker.
package resolver

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/obinexus/semverx"
	"github.com/obinexus/semverx/stress"
)

// Dependency is a single declared dependency of a Component.
type Dependency struct {
	Name     string // target component id
	Version  semverx.Version
	Range    string
	Optional bool
	Dev      bool
	Class    string // verb-noun category, e.g. "rollback-able", "restart-safe"
}

// Component is a dependency-graph node.
//
// Class is not part of spec §3's formal Component field list, but §4.G
// dispatches self-heal actions by "the component's verb-noun class" — a
// field spec.md only defines on Dependency. Added here so self-heal has
// somewhere to read it from a Component directly.
type Component struct {
	ID                 string
	Version            semverx.Version
	Dependencies       []Dependency
	Health             *stress.Health
	Class              string
	resolutionAttempts uint32
}

// ResolutionAttempts returns the number of times the strategy engine has
// attempted to resolve this component. Only the strategy engine may
// increment it.
func (c *Component) ResolutionAttempts() uint32 { return c.resolutionAttempts }

// edge is a directed, weighted edge from a dependent to a dependency.
type edge struct {
	source, target int
	constraint     string
	weight         float64
}

// IsCritical reports whether the edge's weight exceeds 5.0.
func (e edge) IsCritical() bool { return e.weight > 5.0 }

// EdgeView is a read-only projection of an edge, returned by
// OutgoingEdges.
type EdgeView struct {
	Source, Target int
	Constraint     string
	Weight         float64
	IsCritical     bool
}

// Resolver owns a directed graph of Components and the strategy engine
// that traverses it. A Resolver's graph-mutating operations
// (AddComponent, AddDependency, PreventDiamondDependency) and Resolve are
// serialized against a single instance by an internal mutex; independent
// Resolver instances may be used concurrently.
type Resolver struct {
	mu       sync.Mutex
	nodes    []*Component
	edges    [][]edge // adjacency list keyed by source index
	byName   map[string]int
	monitor  *stress.Monitor
	logger   zerolog.Logger
	cfg      resolverConfig
	resolveC *prometheus.CounterVec
}

// New constructs an empty Resolver.
func New(opts ...ResolverOption) *Resolver {
	cfg := defaultResolverConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &Resolver{
		byName:  make(map[string]int),
		monitor: cfg.monitor,
		logger:  cfg.logger,
		cfg:     cfg,
	}
	if cfg.registry != nil {
		cv := prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "semverx",
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Count of resolve attempts by strategy and outcome.",
		}, []string{"strategy", "outcome"})
		cfg.registry.MustRegister(cv)
		r.resolveC = cv
	}
	return r
}

// AddComponent inserts a node and returns its opaque index. It is an error
// to add a component whose id already exists in the graph: a resolver
// instance is meant to be built once from a known component set, and a
// silent overwrite would invalidate edges already added against the old
// index (see DESIGN.md Open Question 1).
func (r *Resolver) AddComponent(c *Component) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[c.ID]; exists {
		return 0, &semverx.Error{
			Kind:    semverx.KindValidating,
			Op:      "resolver.AddComponent",
			Message: "component id already exists: " + c.ID,
		}
	}
	if c.Health == nil {
		c.Health = &stress.Health{}
	}
	idx := len(r.nodes)
	r.nodes = append(r.nodes, c)
	r.edges = append(r.edges, nil)
	r.byName[c.ID] = idx
	return idx, nil
}

// AddDependency appends a directed, weighted edge from fromIdx to toIdx.
func (r *Resolver) AddDependency(fromIdx, toIdx int, constraint string, weight float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fromIdx < 0 || fromIdx >= len(r.nodes) {
		return &semverx.Error{Kind: semverx.KindResolving, Op: "resolver.AddDependency", Message: "invalid source index"}
	}
	if toIdx < 0 || toIdx >= len(r.nodes) {
		return &semverx.Error{Kind: semverx.KindResolving, Op: "resolver.AddDependency", Message: "invalid target index"}
	}
	r.edges[fromIdx] = append(r.edges[fromIdx], edge{source: fromIdx, target: toIdx, constraint: constraint, weight: weight})
	return nil
}

// GetByName returns the index of the component with the given id.
func (r *Resolver) GetByName(id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	idx, ok := r.byName[id]
	if !ok {
		return 0, &semverx.Error{
			Kind:       semverx.KindResolving,
			Op:         "resolver.GetByName",
			Message:    "no component named " + id,
			CanRecover: false,
		}
	}
	return idx, nil
}

// OutgoingEdges returns a read-only view of idx's outgoing edges.
func (r *Resolver) OutgoingEdges(idx int) []EdgeView {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EdgeView, 0, len(r.edges[idx]))
	for _, e := range r.edges[idx] {
		out = append(out, EdgeView{Source: e.source, Target: e.target, Constraint: e.constraint, Weight: e.weight, IsCritical: e.IsCritical()})
	}
	return out
}

// NodeCount returns the number of components in the graph.
func (r *Resolver) NodeCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.nodes)
}

func (r *Resolver) componentAt(idx int) *Component { return r.nodes[idx] }
