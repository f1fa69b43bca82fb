// Package distance2 options and sentinel errors.
package distance2

import (
	"context"
	"errors"
)

// ErrNeighborOutOfRange is returned when a 1-hop neighbor index is not a DOF.
var ErrNeighborOutOfRange = errors.New("distance2: neighbor index out of range")

// DefaultWorkers keeps the expander sequential.
const DefaultWorkers = 1

// Option configures Expand.
type Option func(*Options)

// Options holds the resolved Expand configuration.
type Options struct {
	// Ctx allows cancellation between DOFs.
	Ctx context.Context

	// Workers is the number of goroutines; 1 runs the sequential algorithm.
	Workers int
}

// DefaultOptions returns background context and a single worker.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: DefaultWorkers,
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of goroutines. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("distance2: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}
