// SPDX-License-Identifier: MIT
// Package: qosroute/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn   = DefaultIDFn  ("0","1","2",...)
//   - rng    = nil          (stochastic constructors refuse to run without one)
//   - attrFn = UniformAttrFn(DefaultAttrRanges())

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn   IDFn
	rng    *rand.Rand
	attrFn AttrFn
}

// newBuilderConfig applies opts over the defaults in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		attrFn: UniformAttrFn(DefaultAttrRanges()),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
