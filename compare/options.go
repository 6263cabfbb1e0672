package compare

import (
	"io"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Options configures an experiment.
type Options struct {
	Runs       int           // runs per solver, ≥ MinRuns
	BaseSeed   int64         // run r uses solver.DeriveSeed(BaseSeed, r)
	Workers    int           // worker pool size
	RunTimeout time.Duration // per-run wall-clock limit; 0 = none
	Reference  bool          // compute the exact optimum and gaps
	HostInfo   bool          // collect HostInfo
	Scenario   string        // label copied into the Report
	Logger     logrus.FieldLogger
}

// Option mutates Options. Constructors panic on meaningless values; the run
// count is checked by Compare so that it can report ErrTooFewRuns.
type Option func(*Options)

// DefaultOptions returns DefaultRuns runs, DefaultBaseSeed, one worker per
// CPU, no timeout, no reference, no host facts and a discarding logger.
func DefaultOptions() Options {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	return Options{
		Runs:     DefaultRuns,
		BaseSeed: DefaultBaseSeed,
		Workers:  runtime.NumCPU(),
		Logger:   quiet,
	}
}

// WithRuns sets the number of runs per solver.
func WithRuns(n int) Option {
	return func(o *Options) { o.Runs = n }
}

// WithBaseSeed sets the seed every run seed is derived from.
func WithBaseSeed(seed int64) Option {
	return func(o *Options) { o.BaseSeed = seed }
}

// WithWorkers sets the worker pool size (≥ 1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic("compare: WithWorkers(n<1)")
	}
	return func(o *Options) { o.Workers = n }
}

// WithRunTimeout bounds every run (≥ 0; 0 disables).
func WithRunTimeout(d time.Duration) Option {
	if d < 0 {
		panic("compare: WithRunTimeout(d<0)")
	}
	return func(o *Options) { o.RunTimeout = d }
}

// WithReference enables the exact reference optimum.
func WithReference(on bool) Option {
	return func(o *Options) { o.Reference = on }
}

// WithHostInfo enables host facts in the Report.
func WithHostInfo(on bool) Option {
	return func(o *Options) { o.HostInfo = on }
}

// WithScenario labels the Report.
func WithScenario(name string) Option {
	return func(o *Options) { o.Scenario = name }
}

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("compare: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}
