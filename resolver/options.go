package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/obinexus/semverx/stress"
)

const defaultMaxIterations = 1000

// resolverConfig is the immutable configuration resolved from
// ResolverOptions at New() time.
type resolverConfig struct {
	maxIterations int
	monitor       *stress.Monitor
	logger        zerolog.Logger
	registry      prometheus.Registerer
}

func defaultResolverConfig() resolverConfig {
	return resolverConfig{
		maxIterations: defaultMaxIterations,
		monitor:       stress.NewMonitor(),
		logger:        zerolog.Nop(),
	}
}

// ResolverOption configures a Resolver at construction time.
type ResolverOption func(*resolverConfig)

// WithMaxIterations overrides the default iteration cap of 1000 shared by
// all four traversal strategies.
func WithMaxIterations(n int) ResolverOption {
	return func(c *resolverConfig) { c.maxIterations = n }
}

// WithLogger attaches a zerolog.Logger. The zero value discards output.
func WithLogger(l zerolog.Logger) ResolverOption {
	return func(c *resolverConfig) { c.logger = l }
}

// WithMonitor attaches an externally-owned stress.Monitor, letting several
// resolvers (or a resolver and its caller) observe the same stress signal.
// When omitted, New creates a private Monitor.
func WithMonitor(m *stress.Monitor) ResolverOption {
	return func(c *resolverConfig) { c.monitor = m }
}

// WithMetrics registers Prometheus counters tracking resolve outcomes by
// strategy against the given registerer.
func WithMetrics(reg prometheus.Registerer) ResolverOption {
	return func(c *resolverConfig) { c.registry = reg }
}
