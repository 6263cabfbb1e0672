package compare

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/solver"
)

// Scenario is one (source, destination, demand) query of a batch.
type Scenario struct {
	ID          string      `toml:"id" json:"id"`
	Source      string      `toml:"source" json:"source"`
	Destination string      `toml:"destination" json:"destination"`
	Demand      float64     `toml:"demand" json:"demand"`
	Weights     qos.Weights `toml:"weights" json:"weights"` // zero value = qos.DefaultWeights()
}

// Problem binds the scenario to graph g.
func (s Scenario) Problem(g *core.Graph) solver.Problem {
	w := s.Weights
	if w == (qos.Weights{}) {
		w = qos.DefaultWeights()
	}

	return solver.Problem{Graph: g, Source: s.Source, Destination: s.Destination, Weights: w, Demand: s.Demand}
}

// Skipped is a scenario rejected before its first run.
type Skipped struct {
	Scenario Scenario `json:"scenario"`
	Reason   string   `json:"reason"`
}

// BatchResult collects the reports of a batch in scenario order.
type BatchResult struct {
	Reports []*Report `json:"reports"`
	Skipped []Skipped `json:"skipped,omitempty"`
}

// Batch runs Compare for every scenario on the shared graph g.
//
// Each scenario is its own experiment labelled with its ID. A scenario whose
// problem is invalid (unknown vertex, same endpoints, bad weights or demand)
// is skipped and listed in Skipped; ErrTooFewRuns, solver list errors and a
// cancelled ctx abort the whole batch.
func Batch(ctx context.Context, g *core.Graph, scenarios []Scenario, solvers []solver.Solver, opts ...Option) (*BatchResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Runs < MinRuns {
		return nil, fmt.Errorf("%w: %d < %d", ErrTooFewRuns, o.Runs, MinRuns)
	}
	if err := checkSolvers(solvers); err != nil {
		return nil, err
	}

	out := &BatchResult{}
	for i, sc := range scenarios {
		if sc.ID == "" {
			sc.ID = fmt.Sprintf("S%d", i+1)
		}
		log := o.Logger.WithField("scenario", sc.ID)
		scOpts := make([]Option, 0, len(opts)+1)
		scOpts = append(scOpts, opts...)
		rep, err := Compare(ctx, sc.Problem(g), solvers, append(scOpts, WithScenario(sc.ID))...)
		switch {
		case err == nil:
			out.Reports = append(out.Reports, rep)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return out, err
		default:
			log.WithError(err).Warn("scenario skipped")
			out.Skipped = append(out.Skipped, Skipped{Scenario: sc, Reason: err.Error()})
		}
	}

	return out, nil
}
