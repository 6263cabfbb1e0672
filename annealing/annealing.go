package annealing

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/qosroute/dijkstra"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/solver"
)

// ctxCheckEvery is how many proposals run between context checks.
const ctxCheckEvery = 64

// Solver is a simulated annealing route solver holding only configuration.
type Solver struct {
	opts Options
}

// New returns an annealing solver configured by opts.
func New(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Solver{opts: o}
}

// Name implements solver.Solver.
func (*Solver) Name() string { return Name }

// Options returns the effective configuration.
func (s *Solver) Options() Options { return s.opts }

// Solve implements solver.Solver.
//
// Steps:
//  1. Build the initial route (see Start); none means ErrNoPathFound.
//  2. Propose a neighbour by rerouting a random sub-segment.
//  3. Accept it if it is cheaper, else with probability exp(−Δ/T).
//  4. Cool T ← T·Cooling; stop after Iterations or once T < MinTemperature.
//
// The best route ever held is returned, not the final state.
func (s *Solver) Solve(ctx context.Context, p solver.Problem, seed int64) (solver.Result, error) {
	started := time.Now()
	net, err := solver.Compile(p)
	if err != nil {
		return solver.Result{}, err
	}
	if err = ctx.Err(); err != nil {
		return solver.Result{}, solver.Canceled(Name, 0, err)
	}

	an := &annealer{
		net:     net,
		opts:    s.opts,
		rng:     solver.NewRand(seed),
		maxHops: net.HopLimit(s.opts.MaxHops),
	}
	start := an.initial()
	if start == nil {
		return net.Finish(Name, seed, nil, started, 0)
	}
	iters, err := an.run(ctx, start)
	if err != nil {
		return solver.Result{}, err
	}

	return net.Finish(Name, seed, an.best.Path, started, iters)
}

// annealer is the private state of one run.
type annealer struct {
	net     *solver.Network
	opts    Options
	rng     *rand.Rand
	maxHops int
	best    solver.Candidate
}

// initial returns the starting route, or nil when none exists within the
// hop limit.
func (an *annealer) initial() []int {
	if an.opts.Start == MinDelayStart {
		if path := an.minDelay(); path != nil {
			return path
		}
	}

	return an.net.Sample(an.rng, an.maxHops)
}

// minDelay is the exact minimum-delay route if it fits the hop limit.
func (an *annealer) minDelay() []int {
	net := an.net
	p := net.Problem()
	ids, _, err := dijkstra.ShortestPath(net.Graph(), p.Source, p.Destination,
		dijkstra.WithWeights(qos.Weights{Delay: 1}))
	if err != nil {
		return nil
	}
	path := make([]int, len(ids))
	for i, id := range ids {
		path[i], _ = net.Index(id)
	}
	if !net.Valid(path, an.maxHops) {
		return nil
	}

	return path
}

func (an *annealer) run(ctx context.Context, start []int) (int, error) {
	var (
		cur     = an.candidate(start)
		temp    = an.opts.InitialTemperature
		it      int
		next    []int
		ok      bool
		delta   float64
		propose solver.Candidate
	)
	an.best = cur
	for it = 0; it < an.opts.Iterations && temp >= an.opts.MinTemperature; it++ {
		if it%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return it, solver.Canceled(Name, it, err)
			}
		}
		if next, ok = an.net.Reroute(an.rng, cur.Path, an.maxHops); ok {
			propose = an.candidate(next)
			delta = propose.Cost - cur.Cost
			if delta < 0 || an.rng.Float64() < math.Exp(-delta/temp) {
				cur = propose
				if an.net.Better(cur, an.best) {
					an.best = cur
				}
			}
		}
		temp *= an.opts.Cooling
	}

	return it, nil
}

func (an *annealer) candidate(path []int) solver.Candidate {
	cost, _ := an.net.PathCost(path)
	return solver.Candidate{Path: path, Cost: cost}
}
