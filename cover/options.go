package cover

import "github.com/katalvlaran/bicover/forced"

// config collects the pipeline-wide knobs Search accepts. Currently
// this is only the two toggles forced.Config already exposes; Search
// threads them through to its one call to forced.Elements.
type config struct {
	forced forced.Config
}

// Option represents a functional option for configuring Search.
type Option func(*config)

func defaultConfig() config {
	return config{forced: forced.DefaultConfig()}
}

// WithGuaranteedPicks toggles the row-solo/column-solo fast path in the
// forced-element pipeline. Default on.
func WithGuaranteedPicks(enabled bool) Option {
	return func(c *config) {
		c.forced.GuaranteedPicks = enabled
	}
}

// WithDominancePruning toggles domination pruning of candidate forced
// elements before the anchored search. Default on.
func WithDominancePruning(enabled bool) Option {
	return func(c *config) {
		c.forced.DominancePruning = enabled
	}
}
