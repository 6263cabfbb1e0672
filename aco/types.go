// Package aco defines configuration for the ant colony route solver.
package aco

import (
	"errors"
	"fmt"
)

// Name is the registry name of the solver.
const Name = "aco"

// ErrInvalidOption is the panic payload prefix of option constructors.
var ErrInvalidOption = errors.New("aco: invalid option")

// Defaults.
const (
	DefaultAnts             = 15
	DefaultIterations       = 20
	DefaultAlpha            = 1.0
	DefaultBeta             = 2.0
	DefaultEvaporation      = 0.1
	DefaultDeposit          = 10.0
	DefaultInitialPheromone = 0.1
	DefaultMinPheromone     = 0.01
	DefaultMaxPheromone     = 10000.0
	DefaultEliteAnts        = 1
)

// Options configures a colony.
type Options struct {
	Ants             int     // ants per iteration
	Iterations       int     // iteration budget
	Alpha            float64 // pheromone exponent
	Beta             float64 // heuristic (1/cost) exponent
	Evaporation      float64 // ρ ∈ (0,1]
	Deposit          float64 // Q; an ant deposits Q/cost on each arc of its route
	InitialPheromone float64 // τ0 on every arc
	MinPheromone     float64 // evaporation floor
	MaxPheromone     float64 // deposit cap
	EliteAnts        int     // best ants of each iteration that deposit
	MaxHops          int     // 0 = |V|-1
	Patience         int     // stop after this many non-improving iterations; 0 = never
}

// Option mutates Options. Constructors panic on meaningless values.
type Option func(*Options)

// DefaultOptions returns the default colony configuration.
func DefaultOptions() Options {
	return Options{
		Ants:             DefaultAnts,
		Iterations:       DefaultIterations,
		Alpha:            DefaultAlpha,
		Beta:             DefaultBeta,
		Evaporation:      DefaultEvaporation,
		Deposit:          DefaultDeposit,
		InitialPheromone: DefaultInitialPheromone,
		MinPheromone:     DefaultMinPheromone,
		MaxPheromone:     DefaultMaxPheromone,
		EliteAnts:        DefaultEliteAnts,
	}
}

func invalid(format string, args ...interface{}) {
	panic(fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidOption}, args...)...))
}

// WithAnts sets the number of ants per iteration (≥ 1).
func WithAnts(n int) Option {
	return func(o *Options) {
		if n < 1 {
			invalid("ants=%d", n)
		}
		o.Ants = n
	}
}

// WithIterations sets the iteration budget (≥ 1).
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			invalid("iterations=%d", n)
		}
		o.Iterations = n
	}
}

// WithAlpha sets the pheromone exponent (≥ 0).
func WithAlpha(a float64) Option {
	return func(o *Options) {
		if !(a >= 0) {
			invalid("alpha=%v", a)
		}
		o.Alpha = a
	}
}

// WithBeta sets the heuristic exponent (≥ 0).
func WithBeta(b float64) Option {
	return func(o *Options) {
		if !(b >= 0) {
			invalid("beta=%v", b)
		}
		o.Beta = b
	}
}

// WithEvaporation sets ρ ∈ (0, 1].
func WithEvaporation(rho float64) Option {
	return func(o *Options) {
		if !(rho > 0 && rho <= 1) {
			invalid("evaporation=%v", rho)
		}
		o.Evaporation = rho
	}
}

// WithDeposit sets Q (> 0).
func WithDeposit(q float64) Option {
	return func(o *Options) {
		if !(q > 0) {
			invalid("deposit=%v", q)
		}
		o.Deposit = q
	}
}

// WithInitialPheromone sets τ0 (> 0).
func WithInitialPheromone(tau float64) Option {
	return func(o *Options) {
		if !(tau > 0) {
			invalid("initial pheromone=%v", tau)
		}
		o.InitialPheromone = tau
	}
}

// WithPheromoneBounds sets the evaporation floor and deposit cap (0 < min ≤ max).
func WithPheromoneBounds(min, max float64) Option {
	return func(o *Options) {
		if !(min > 0 && max >= min) {
			invalid("pheromone bounds=[%v,%v]", min, max)
		}
		o.MinPheromone, o.MaxPheromone = min, max
	}
}

// WithEliteAnts sets how many of the best ants of each iteration deposit (≥ 1).
func WithEliteAnts(k int) Option {
	return func(o *Options) {
		if k < 1 {
			invalid("elite ants=%d", k)
		}
		o.EliteAnts = k
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

// WithPatience stops the colony after k iterations without improvement; 0 disables.
func WithPatience(k int) Option {
	return func(o *Options) {
		if k < 0 {
			invalid("patience=%d", k)
		}
		o.Patience = k
	}
}
