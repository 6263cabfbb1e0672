// Package genetic defines configuration for the genetic route solver.
package genetic

import (
	"errors"
	"fmt"
)

// Name is the registry name of the solver.
const Name = "ga"

// ErrInvalidOption is the panic payload prefix of option constructors.
var ErrInvalidOption = errors.New("genetic: invalid option")

// Selection chooses parents for reproduction.
type Selection int

const (
	// Tournament picks the best of TournamentSize random individuals.
	Tournament Selection = iota
	// RouletteWheel picks proportionally to fitness 1/cost.
	RouletteWheel
)

// String implements fmt.Stringer.
func (s Selection) String() string {
	switch s {
	case Tournament:
		return "tournament"
	case RouletteWheel:
		return "roulette"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// ParseSelection maps "tournament" / "roulette" to a Selection.
func ParseSelection(s string) (Selection, error) {
	switch s {
	case "tournament", "":
		return Tournament, nil
	case "roulette":
		return RouletteWheel, nil
	}

	return 0, fmt.Errorf("%w: selection %q", ErrInvalidOption, s)
}

// Defaults.
const (
	DefaultPopulation     = 50
	DefaultGenerations    = 100
	DefaultCrossoverRate  = 0.9
	DefaultMutationRate   = 0.1
	DefaultTournamentSize = 3
	DefaultElites         = 1
)

// Options configures the evolution.
type Options struct {
	Population          int       // individuals per generation
	Generations         int       // generation budget
	CrossoverRate       float64   // probability of attempting crossover
	MutationRate        float64   // probability of mutating a child
	Selection           Selection // parent selection scheme
	TournamentSize      int       // contestants per tournament
	Elites              int       // best individuals copied unchanged
	MaxHops             int       // 0 = |V|-1
	ConvergenceVariance float64   // stop when cost variance falls below; 0 = never
}

// Option mutates Options. Constructors panic on meaningless values.
type Option func(*Options)

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Population:     DefaultPopulation,
		Generations:    DefaultGenerations,
		CrossoverRate:  DefaultCrossoverRate,
		MutationRate:   DefaultMutationRate,
		Selection:      Tournament,
		TournamentSize: DefaultTournamentSize,
		Elites:         DefaultElites,
	}
}

func invalid(format string, args ...interface{}) {
	panic(fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidOption}, args...)...))
}

// WithPopulation sets the population size (≥ 2).
func WithPopulation(n int) Option {
	return func(o *Options) {
		if n < 2 {
			invalid("population=%d", n)
		}
		o.Population = n
	}
}

// WithGenerations sets the generation budget (≥ 1).
func WithGenerations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			invalid("generations=%d", n)
		}
		o.Generations = n
	}
}

// WithCrossoverRate sets the crossover probability ∈ [0,1].
func WithCrossoverRate(p float64) Option {
	return func(o *Options) {
		if !(p >= 0 && p <= 1) {
			invalid("crossover rate=%v", p)
		}
		o.CrossoverRate = p
	}
}

// WithMutationRate sets the mutation probability ∈ [0,1].
func WithMutationRate(p float64) Option {
	return func(o *Options) {
		if !(p >= 0 && p <= 1) {
			invalid("mutation rate=%v", p)
		}
		o.MutationRate = p
	}
}

// WithSelection sets the parent selection scheme.
func WithSelection(s Selection) Option {
	return func(o *Options) {
		if s != Tournament && s != RouletteWheel {
			invalid("selection=%v", s)
		}
		o.Selection = s
	}
}

// WithTournamentSize sets the number of contestants (≥ 1).
func WithTournamentSize(k int) Option {
	return func(o *Options) {
		if k < 1 {
			invalid("tournament size=%d", k)
		}
		o.TournamentSize = k
	}
}

// WithElites sets how many top individuals survive unchanged (≥ 1).
func WithElites(k int) Option {
	return func(o *Options) {
		if k < 1 {
			invalid("elites=%d", k)
		}
		o.Elites = k
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

// WithConvergenceVariance stops evolution once the population cost variance
// drops below v; 0 disables the test.
func WithConvergenceVariance(v float64) Option {
	return func(o *Options) {
		if !(v >= 0) {
			invalid("convergence variance=%v", v)
		}
		o.ConvergenceVariance = v
	}
}
