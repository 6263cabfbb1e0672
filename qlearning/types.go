// Package qlearning defines configuration for the tabular Q-learning route solver.
package qlearning

import (
	"errors"
	"fmt"
)

// Name is the registry name of the solver.
const Name = "qlearning"

// ErrInvalidOption is the panic payload prefix of option constructors.
var ErrInvalidOption = errors.New("qlearning: invalid option")

// Defaults.
const (
	DefaultEpisodes       = 500
	DefaultLearningRate   = 0.1
	DefaultDiscount       = 0.9
	DefaultEpsilon        = 1.0
	DefaultEpsilonMin     = 0.01
	DefaultEpsilonDecay   = 0.995
	DefaultCyclePenalty   = 1000.0
	DefaultFailurePenalty = 1000.0
)

// Options configures training.
type Options struct {
	Episodes       int     // training episodes
	LearningRate   float64 // α ∈ (0,1]
	Discount       float64 // γ ∈ [0,1]
	Epsilon        float64 // initial exploration rate ∈ [0,1]
	EpsilonMin     float64 // exploration floor ∈ [0,Epsilon]
	EpsilonDecay   float64 // per-episode multiplicative decay ∈ (0,1]
	CyclePenalty   float64 // extra negative reward for stepping onto a visited vertex
	FailurePenalty float64 // extra negative reward for exceeding MaxHops or dead-ending
	MaxHops        int     // 0 = |V|-1
}

// Option mutates Options. Constructors panic on meaningless values.
type Option func(*Options)

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Episodes:       DefaultEpisodes,
		LearningRate:   DefaultLearningRate,
		Discount:       DefaultDiscount,
		Epsilon:        DefaultEpsilon,
		EpsilonMin:     DefaultEpsilonMin,
		EpsilonDecay:   DefaultEpsilonDecay,
		CyclePenalty:   DefaultCyclePenalty,
		FailurePenalty: DefaultFailurePenalty,
	}
}

func invalid(format string, args ...interface{}) {
	panic(fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidOption}, args...)...))
}

// WithEpisodes sets the number of training episodes (≥ 1).
func WithEpisodes(n int) Option {
	return func(o *Options) {
		if n < 1 {
			invalid("episodes=%d", n)
		}
		o.Episodes = n
	}
}

// WithLearningRate sets α ∈ (0,1].
func WithLearningRate(a float64) Option {
	return func(o *Options) {
		if !(a > 0 && a <= 1) {
			invalid("learning rate=%v", a)
		}
		o.LearningRate = a
	}
}

// WithDiscount sets γ ∈ [0,1].
func WithDiscount(g float64) Option {
	return func(o *Options) {
		if !(g >= 0 && g <= 1) {
			invalid("discount=%v", g)
		}
		o.Discount = g
	}
}

// WithExploration sets the ε schedule: start, floor and per-episode decay.
func WithExploration(start, min, decay float64) Option {
	return func(o *Options) {
		if !(start >= 0 && start <= 1) || !(min >= 0 && min <= start) || !(decay > 0 && decay <= 1) {
			invalid("exploration start=%v min=%v decay=%v", start, min, decay)
		}
		o.Epsilon, o.EpsilonMin, o.EpsilonDecay = start, min, decay
	}
}

// WithPenalties sets the cycle and failure penalties (both ≥ 0).
func WithPenalties(cycle, failure float64) Option {
	return func(o *Options) {
		if !(cycle >= 0) || !(failure >= 0) {
			invalid("penalties cycle=%v failure=%v", cycle, failure)
		}
		o.CyclePenalty, o.FailurePenalty = cycle, failure
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
