// Package classification turns a planet's composition and orbit into a planet type and
// its physical description. Every function is pure and safe for concurrent use.
package classification

import (
	"planet-builder/internal/physics"
)

// Classifier evaluates the classification cascade against a luminosity table.
type Classifier struct {
	luminosity physics.LuminosityTable
}

type Option func(*Classifier)

// WithLuminosity replaces the default star luminosities.
func WithLuminosity(table physics.LuminosityTable) Option {
	return func(c *Classifier) {
		c.luminosity = table
	}
}

func New(opts ...Option) *Classifier {
	c := &Classifier{luminosity: physics.DefaultLuminosity}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify always returns exactly one classification. The first rule of the cascade that
// matches decides the planet type.
func (c *Classifier) Classify(p Parameters) Classification {
	result, _, _ := c.evaluate(p)
	return result
}

// Assess classifies p and explains the result from a single pass over the cascade.
func (c *Classifier) Assess(p Parameters) (Classification, Explanation) {
	result, idx, obs := c.evaluate(p)
	return result, explain(result, idx, obs)
}

// evaluate runs the cascade and also returns the index of the matching rule and the
// observations it was matched against.
func (c *Classifier) evaluate(p Parameters) (Classification, int, *observations) {
	obs := observe(p, c.luminosity)
	for i, r := range cascade {
		if r.matches(obs) {
			return r.build(obs), i, obs
		}
	}
	// The last rule matches everything.
	last := len(cascade) - 1
	return cascade[last].build(obs), last, obs
}

var defaultClassifier = New()

// Classify uses the default luminosity table.
func Classify(p Parameters) Classification {
	return defaultClassifier.Classify(p)
}
