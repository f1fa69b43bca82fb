package d2color

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/lvcolor/distance2"
	"github.com/katalvlaran/lvcolor/sparsity"
)

// ErrInvalidArgument is the error kind of every input rejection.
var ErrInvalidArgument = sparsity.ErrInvalidArgument

// Option configures ColorAndSeeds.
type Option func(*options)

type options struct {
	ctx     context.Context
	workers int
	logger  *slog.Logger
	trusted bool
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		workers: distance2.DefaultWorkers,
		logger:  slog.New(slog.DiscardHandler),
	}
}

// WithWorkers sets the goroutine count of the distance-2 expansion.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("d2color: WithWorkers(n<1)")
	}
	return func(o *options) { o.workers = n }
}

// WithContext sets the context used by the expansion. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger routes stage statistics to l. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithTrustedInput skips the column range check; offsets are still validated.
func WithTrustedInput() Option {
	return func(o *options) { o.trusted = true }
}
