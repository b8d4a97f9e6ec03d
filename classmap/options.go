package classmap

import "class-dispatch/lineage"

// Option configures a table at construction.
type Option func(*config)

type config struct {
	lineage *lineage.Lineage
}

// WithLineage makes the table walk l instead of the embedding-only lineage.
func WithLineage(l *lineage.Lineage) Option {
	return func(c *config) {
		c.lineage = l
	}
}

func buildConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}
