package qos

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for cost evaluation.
var (
	// ErrInvalidPath indicates an empty path, a hop that is not a link of the
	// graph, or a link whose reliability makes −ln(r) undefined.
	ErrInvalidPath = errors.New("qos: invalid path")

	// ErrInvalidWeights indicates a negative or non-finite weight, or all
	// weights equal to zero.
	ErrInvalidWeights = errors.New("qos: invalid weights")
)

// Default weight split used when no preference is configured.
const (
	DefaultDelayWeight       = 0.33
	DefaultReliabilityWeight = 0.33
	DefaultResourceWeight    = 0.34
)

// Weights are the preference coefficients of the composite cost.
type Weights struct {
	Delay       float64 `json:"delay" yaml:"delay" toml:"delay"`
	Reliability float64 `json:"reliability" yaml:"reliability" toml:"reliability"`
	Resource    float64 `json:"resource" yaml:"resource" toml:"resource"`
}

// DefaultWeights returns the balanced 0.33/0.33/0.34 split.
func DefaultWeights() Weights {
	return Weights{
		Delay:       DefaultDelayWeight,
		Reliability: DefaultReliabilityWeight,
		Resource:    DefaultResourceWeight,
	}
}

// Validate enforces w ≥ 0 componentwise, finiteness, and Σw > 0.
func (w Weights) Validate() error {
	for _, c := range [...]struct {
		name string
		v    float64
	}{{"delay", w.Delay}, {"reliability", w.Reliability}, {"resource", w.Resource}} {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) || c.v < 0 {
			return fmt.Errorf("%w: %s=%v", ErrInvalidWeights, c.name, c.v)
		}
	}
	if w.Delay+w.Reliability+w.Resource <= 0 {
		return fmt.Errorf("%w: all weights are zero", ErrInvalidWeights)
	}

	return nil
}

// Scale returns w with every component multiplied by k.
func (w Weights) Scale(k float64) Weights {
	return Weights{Delay: w.Delay * k, Reliability: w.Reliability * k, Resource: w.Resource * k}
}

// Normalized returns w rescaled so its components sum to 1.
// Costs under the result rank paths exactly like costs under w.
func (w Weights) Normalized() (Weights, error) {
	if err := w.Validate(); err != nil {
		return Weights{}, err
	}

	return w.Scale(1 / (w.Delay + w.Reliability + w.Resource)), nil
}

// String renders w as "d/r/res".
func (w Weights) String() string {
	return fmt.Sprintf("%g/%g/%g", w.Delay, w.Reliability, w.Resource)
}

// Metrics is the per-criterion breakdown of one path.
type Metrics struct {
	// TotalDelay is Σ delay.
	TotalDelay float64 `json:"total_delay"`

	// ReliabilityCost is Σ −ln(reliability).
	ReliabilityCost float64 `json:"reliability_cost"`

	// Reliability is the end-to-end delivery probability, Π reliability.
	Reliability float64 `json:"reliability"`

	// ResourceUsage is Σ resource.
	ResourceUsage float64 `json:"resource_usage"`

	// Bottleneck is the minimum constrained bandwidth along the path;
	// 0 when every link is unconstrained.
	Bottleneck float64 `json:"bottleneck"`

	// Hops is the number of links.
	Hops int `json:"hops"`

	// Cost is the weighted composite cost.
	Cost float64 `json:"cost"`
}
