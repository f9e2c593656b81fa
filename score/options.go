package score

import (
	"github.com/pkg/errors"
)

// DefaultTolerance is the number of characters a predicted span may overrun a gold span by on either side.
const DefaultTolerance = 10

// ErrInvalidInput is the cause of errors returned for gold or prediction data that cannot be scored.
var ErrInvalidInput = errors.New("invalid input")

// Progress is notified once per gold document scored. A *pb.ProgressBar satisfies it.
type Progress interface {
	Increment() int
}

// Option configures a scorer.
type Option func(o *options)

type options struct {
	tolerance int
	progress  Progress
}

func newOptions(opts ...Option) options {
	o := options{
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) step() {
	if o.progress != nil {
		o.progress.Increment()
	}
}

// Tolerance sets the span-matching tolerance. It has no effect on the set-match scorer.
func Tolerance(tolerance int) Option {
	return func(o *options) {
		o.tolerance = tolerance
	}
}

// WithProgress reports scoring progress to p.
func WithProgress(p Progress) Option {
	return func(o *options) {
		o.progress = p
	}
}
