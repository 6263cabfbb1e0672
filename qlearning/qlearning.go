package qlearning

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/qosroute/solver"
)

// Solver is a tabular Q-learning route solver holding only configuration.
type Solver struct {
	opts Options
}

// New returns a Q-learning solver configured by opts.
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

// Solve implements solver.Solver: train for Episodes, then extract the
// greedy route.
func (s *Solver) Solve(ctx context.Context, p solver.Problem, seed int64) (solver.Result, error) {
	started := time.Now()
	net, err := solver.Compile(p)
	if err != nil {
		return solver.Result{}, err
	}

	a := &agent{
		net:     net,
		opts:    s.opts,
		rng:     solver.NewRand(seed),
		q:       make(map[solver.ArcKey]float64),
		epsilon: s.opts.Epsilon,
		maxHops: net.HopLimit(s.opts.MaxHops),
	}
	var ep int
	for ep = 0; ep < s.opts.Episodes; ep++ {
		if err = ctx.Err(); err != nil {
			return solver.Result{}, solver.Canceled(Name, ep, err)
		}
		a.episode()
		a.epsilon = math.Max(a.opts.EpsilonMin, a.epsilon*a.opts.EpsilonDecay)
	}

	path, err := a.greedy()
	if err != nil {
		return solver.Result{}, err
	}

	return net.Finish(Name, seed, path, started, ep)
}

// agent is the private state of one run. The Q-table is sparse, keyed by
// arc; missing entries read as 0.
type agent struct {
	net     *solver.Network
	opts    Options
	rng     *rand.Rand
	q       map[solver.ArcKey]float64
	epsilon float64
	maxHops int
}

// episode runs one ε-greedy walk from the source, updating Q after every
// step with reward −cost(u,v):
//
//	Q(u,v) ← Q(u,v) + α·(r + γ·max_w Q(v,w) − Q(u,v))
//
// The walk ends at the destination, on a revisit (−CyclePenalty), or when it
// runs out of hops or moves (−FailurePenalty). Terminal steps do not bootstrap.
func (a *agent) episode() {
	net := a.net
	visited := make([]bool, net.Len())
	cur := net.Source()
	visited[cur] = true

	for steps := 1; ; steps++ {
		arcs := net.Arcs(cur)
		if len(arcs) == 0 {
			return
		}
		var arc solver.Arc
		if a.rng.Float64() < a.epsilon {
			arc = arcs[a.rng.Intn(len(arcs))]
		} else {
			arc = a.argmax(cur)
		}
		next, reward := arc.To, -arc.Cost

		switch {
		case visited[next]:
			a.update(cur, next, reward-a.opts.CyclePenalty)
			return
		case next == net.Destination():
			a.update(cur, next, reward)
			return
		case steps >= a.maxHops || len(net.Arcs(next)) == 0:
			a.update(cur, next, reward-a.opts.FailurePenalty)
			return
		}
		a.update(cur, next, reward+a.opts.Discount*a.maxQ(next))
		visited[next] = true
		cur = next
	}
}

// update moves Q(u,v) towards target by the learning rate.
func (a *agent) update(u, v int, target float64) {
	k := solver.ArcKey{From: u, To: v}
	old := a.q[k]
	a.q[k] = old + a.opts.LearningRate*(target-old)
}

// argmax returns the arc of u with the highest Q-value; ties resolve to the
// first arc in neighbor order. u must have at least one arc.
func (a *agent) argmax(u int) solver.Arc {
	arcs := a.net.Arcs(u)
	best := arcs[0]
	bestQ := a.q[solver.ArcKey{From: u, To: best.To}]
	for _, arc := range arcs[1:] {
		if v := a.q[solver.ArcKey{From: u, To: arc.To}]; v > bestQ {
			best, bestQ = arc, v
		}
	}

	return best
}

func (a *agent) maxQ(u int) float64 {
	if len(a.net.Arcs(u)) == 0 {
		return 0
	}
	arc := a.argmax(u)

	return a.q[solver.ArcKey{From: u, To: arc.To}]
}

// greedy follows the highest Q-value among unvisited neighbours from the
// source. A dead end or a walk longer than the hop limit yields
// ErrNoPathFound.
func (a *agent) greedy() ([]int, error) {
	net := a.net
	visited := make([]bool, net.Len())
	cur := net.Source()
	visited[cur] = true
	path := []int{cur}

	for cur != net.Destination() {
		if len(path)-1 >= a.maxHops {
			return nil, fmt.Errorf("%s: %w: greedy route exceeds %d hops", Name, solver.ErrNoPathFound, a.maxHops)
		}
		next, bestQ := -1, math.Inf(-1)
		for _, arc := range net.Arcs(cur) {
			if visited[arc.To] {
				continue
			}
			if v := a.q[solver.ArcKey{From: cur, To: arc.To}]; v > bestQ {
				next, bestQ = arc.To, v
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("%s: %w: greedy route dead-ends at %s", Name, solver.ErrNoPathFound, net.ID(cur))
		}
		visited[next] = true
		path = append(path, next)
		cur = next
	}

	return path, nil
}
