// Package: qosroute/builder
//
// attr_fn.go - link attribute distributions.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/qosroute/core"
)

// Default attribute ranges of generated links.
const (
	DefaultDelayMin       = 3.0
	DefaultDelayMax       = 15.0
	DefaultReliabilityMin = 0.95
	DefaultReliabilityMax = 0.999
	DefaultBandwidthMin   = 100.0
	DefaultBandwidthMax   = 1000.0
	// DefaultResourceScale makes resource = scale / bandwidth.
	DefaultResourceScale = 1000.0
)

// AttrFn produces the attributes of one link from the configured RNG,
// which may be nil.
type AttrFn func(rng *rand.Rand) core.Attributes

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64 `toml:"min" yaml:"min" json:"min"`
	Max float64 `toml:"max" yaml:"max" json:"max"`
}

// AttrRanges parameterizes UniformAttrFn.
type AttrRanges struct {
	Delay         Range   `toml:"delay" yaml:"delay" json:"delay"`
	Reliability   Range   `toml:"reliability" yaml:"reliability" json:"reliability"`
	Bandwidth     Range   `toml:"bandwidth" yaml:"bandwidth" json:"bandwidth"`
	ResourceScale float64 `toml:"resource_scale" yaml:"resource_scale" json:"resource_scale"`
}

// DefaultAttrRanges returns delay U[3,15], reliability U[0.95,0.999],
// bandwidth U[100,1000] and resource = 1000/bandwidth.
func DefaultAttrRanges() AttrRanges {
	return AttrRanges{
		Delay:         Range{Min: DefaultDelayMin, Max: DefaultDelayMax},
		Reliability:   Range{Min: DefaultReliabilityMin, Max: DefaultReliabilityMax},
		Bandwidth:     Range{Min: DefaultBandwidthMin, Max: DefaultBandwidthMax},
		ResourceScale: DefaultResourceScale,
	}
}

// Validate checks that every generated link would pass core validation.
func (r AttrRanges) Validate() error {
	switch {
	case r.Delay.Min < 0 || r.Delay.Max < r.Delay.Min:
		return fmt.Errorf("delay range [%g,%g]", r.Delay.Min, r.Delay.Max)
	case r.Reliability.Min <= 0 || r.Reliability.Max > 1 || r.Reliability.Max < r.Reliability.Min:
		return fmt.Errorf("reliability range [%g,%g]", r.Reliability.Min, r.Reliability.Max)
	case r.Bandwidth.Min <= 0 || r.Bandwidth.Max < r.Bandwidth.Min:
		return fmt.Errorf("bandwidth range [%g,%g]", r.Bandwidth.Min, r.Bandwidth.Max)
	case r.ResourceScale < 0:
		return fmt.Errorf("resource scale %g", r.ResourceScale)
	}

	return nil
}

// UniformAttrFn samples each attribute uniformly from its range; resource is
// ResourceScale / bandwidth. With a nil RNG every attribute is the midpoint.
// Panics if r is invalid.
func UniformAttrFn(r AttrRanges) AttrFn {
	if err := r.Validate(); err != nil {
		panic(fmt.Sprintf("UniformAttrFn: %v", err))
	}

	return func(rng *rand.Rand) core.Attributes {
		bw := r.Bandwidth.draw(rng)
		return core.Attributes{
			Delay:       r.Delay.draw(rng),
			Reliability: r.Reliability.draw(rng),
			Bandwidth:   bw,
			Resource:    r.ResourceScale / bw,
		}
	}
}

// ConstantAttrFn returns a generator that always yields a. Panics if a is
// not a valid link.
func ConstantAttrFn(a core.Attributes) AttrFn {
	if err := a.Validate(); err != nil {
		panic(fmt.Sprintf("ConstantAttrFn: %v", err))
	}

	return func(*rand.Rand) core.Attributes { return a }
}

// WithAttrRanges sets attributes ∼ UniformAttrFn(r).
func WithAttrRanges(r AttrRanges) BuilderOption {
	return WithAttrFn(UniformAttrFn(r))
}

// WithConstantAttributes gives every link the same attributes.
func WithConstantAttributes(a core.Attributes) BuilderOption {
	return WithAttrFn(ConstantAttrFn(a))
}

func (r Range) draw(rng *rand.Rand) float64 {
	if rng == nil || r.Max == r.Min {
		return (r.Min + r.Max) / 2
	}

	return r.Min + rng.Float64()*(r.Max-r.Min)
}
