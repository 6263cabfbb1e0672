// Package annealing defines configuration for the simulated annealing route solver.
package annealing

import (
	"errors"
	"fmt"
)

// Name is the registry name of the solver.
const Name = "sa"

// ErrInvalidOption is the panic payload prefix of option constructors.
var ErrInvalidOption = errors.New("annealing: invalid option")

// Defaults.
const (
	DefaultInitialTemperature = 5.0
	DefaultCooling            = 0.995
	DefaultMinTemperature     = 1e-6
	DefaultIterations         = 5000
)

// Start selects how the initial route is built.
type Start int

const (
	// MinDelayStart begins from the minimum-delay route when it fits the hop
	// limit, else from a random route.
	MinDelayStart Start = iota
	// RandomStart begins from a random simple route.
	RandomStart
)

// String returns the configuration name of s.
func (s Start) String() string {
	switch s {
	case MinDelayStart:
		return "min-delay"
	case RandomStart:
		return "random"
	default:
		return fmt.Sprintf("Start(%d)", int(s))
	}
}

// ParseStart maps a configuration name to a Start. Empty means MinDelayStart.
func ParseStart(name string) (Start, error) {
	switch name {
	case "", "min-delay":
		return MinDelayStart, nil
	case "random":
		return RandomStart, nil
	default:
		return 0, fmt.Errorf("%w: start %q", ErrInvalidOption, name)
	}
}

// Options configures the annealing schedule.
type Options struct {
	InitialTemperature float64 // T0 > 0
	Cooling            float64 // geometric factor ∈ (0,1)
	MinTemperature     float64 // stop once T falls below; ∈ [0,T0)
	Iterations         int     // proposal budget ≥ 1
	Start              Start
	MaxHops            int // 0 = |V|-1
}

// Option mutates Options. Constructors panic on meaningless values.
type Option func(*Options)

// DefaultOptions returns the default schedule.
func DefaultOptions() Options {
	return Options{
		InitialTemperature: DefaultInitialTemperature,
		Cooling:            DefaultCooling,
		MinTemperature:     DefaultMinTemperature,
		Iterations:         DefaultIterations,
		Start:              MinDelayStart,
	}
}

func invalid(format string, args ...interface{}) {
	panic(fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidOption}, args...)...))
}

// WithTemperature sets T0 and the stopping floor.
func WithTemperature(initial, min float64) Option {
	return func(o *Options) {
		if !(initial > 0) || !(min >= 0 && min < initial) {
			invalid("temperature initial=%v min=%v", initial, min)
		}
		o.InitialTemperature, o.MinTemperature = initial, min
	}
}

// WithCooling sets the geometric cooling factor ∈ (0,1).
func WithCooling(c float64) Option {
	return func(o *Options) {
		if !(c > 0 && c < 1) {
			invalid("cooling=%v", c)
		}
		o.Cooling = c
	}
}

// WithIterations sets the proposal budget (≥ 1).
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			invalid("iterations=%d", n)
		}
		o.Iterations = n
	}
}

// WithStart selects the initial route strategy.
func WithStart(s Start) Option {
	return func(o *Options) {
		if s != MinDelayStart && s != RandomStart {
			invalid("start=%d", int(s))
		}
		o.Start = s
	}
}

// WithMaxHops bounds route length in links; 0 means |V|-1.
func WithMaxHops(h int) Option {
	return func(o *Options) {
		if h < 0 {
			invalid("max hops=%d", h)
		}
		o.MaxHops = h
	}
}
