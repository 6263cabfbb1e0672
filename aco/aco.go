package aco

import (
	"context"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/qosroute/solver"
)

// costFloor keeps 1/cost finite for zero-cost links and routes.
const costFloor = 1e-9

// Solver is an ant colony route solver. It holds only configuration, so one
// value can serve concurrent runs.
type Solver struct {
	opts Options
}

// New returns a colony solver configured by opts.
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
// Steps per iteration:
//  1. Every ant builds a simple route by roulette over τ^α·η^β, η = 1/cost.
//     Ants back out of dead ends; an ant with no route left is discarded.
//  2. Evaporate: τ ← max(τ·(1−ρ), MinPheromone) on every arc.
//  3. The EliteAnts best routes of the iteration deposit Q/cost on their
//     arcs, capped at MaxPheromone.
//  4. Track the global best; stop early after Patience stale iterations.
func (s *Solver) Solve(ctx context.Context, p solver.Problem, seed int64) (solver.Result, error) {
	started := time.Now()
	net, err := solver.Compile(p)
	if err != nil {
		return solver.Result{}, err
	}

	c := &colony{
		net:     net,
		opts:    s.opts,
		rng:     solver.NewRand(seed),
		tau:     make(map[solver.ArcKey]float64),
		base:    s.opts.InitialPheromone,
		maxHops: net.HopLimit(s.opts.MaxHops),
	}
	iterations, err := c.run(ctx)
	if err != nil {
		return solver.Result{}, err
	}

	return net.Finish(Name, seed, c.best.Path, started, iterations)
}

// colony is the private state of one run.
//
// Pheromone is sparse: tau holds only arcs that received a deposit; every
// other arc carries the shared value base, which evaporates like the rest.
type colony struct {
	net     *solver.Network
	opts    Options
	rng     *rand.Rand
	tau     map[solver.ArcKey]float64
	base    float64
	maxHops int
	best    solver.Candidate
}

func (c *colony) run(ctx context.Context) (int, error) {
	var (
		it    int
		stale int
		ants  []solver.Candidate
	)
	for it = 0; it < c.opts.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return it, solver.Canceled(Name, it, err)
		}

		// 1) construct
		ants = ants[:0]
		for a := 0; a < c.opts.Ants; a++ {
			if path := c.walk(); path != nil {
				cost, _ := c.net.PathCost(path)
				ants = append(ants, solver.Candidate{Path: path, Cost: cost})
			}
		}

		// 2) evaporate
		c.evaporate()

		// 3) deposit
		if len(ants) > 0 {
			sort.SliceStable(ants, func(i, j int) bool { return c.net.Better(ants[i], ants[j]) })
			for k := 0; k < c.opts.EliteAnts && k < len(ants); k++ {
				c.deposit(ants[k])
			}
		}

		// 4) best and patience
		if len(ants) > 0 && c.net.Better(ants[0], c.best) {
			c.best = ants[0]
			stale = 0
		} else {
			stale++
		}
		if c.opts.Patience > 0 && stale >= c.opts.Patience {
			return it + 1, nil
		}
	}

	return it, nil
}

// walk sends one ant from source towards destination.
//
// The ant never enters a vertex twice. At a dead end, or where no neighbour
// can still reach the destination within the hop limit, it retreats one hop
// and tries elsewhere. It returns nil once it has retreated past the source.
func (c *colony) walk() []int {
	net := c.net
	dst := net.Destination()
	entered := make([]bool, net.Len())
	cur := net.Source()
	entered[cur] = true
	path := []int{cur}

	var (
		weights []float64
		targets []int
	)
	for cur != dst {
		depth := len(path) // links used once the next vertex is entered
		weights, targets = weights[:0], targets[:0]
		for _, a := range net.Arcs(cur) {
			h := net.HopsToDestination(a.To)
			if entered[a.To] || h < 0 || depth+h > c.maxHops {
				continue
			}
			targets = append(targets, a.To)
			weights = append(weights, c.attractiveness(cur, a))
		}
		if len(targets) == 0 {
			path = path[:len(path)-1]
			if len(path) == 0 {
				return nil
			}
			cur = path[len(path)-1]
			continue
		}
		cur = targets[solver.Roulette(c.rng, weights)]
		entered[cur] = true
		path = append(path, cur)
	}

	return path
}

// attractiveness is τ(u,v)^α · (1/cost(u,v))^β.
func (c *colony) attractiveness(u int, a solver.Arc) float64 {
	tau := c.pheromone(u, a.To)
	eta := 1 / math.Max(a.Cost, costFloor)

	return math.Pow(tau, c.opts.Alpha) * math.Pow(eta, c.opts.Beta)
}

func (c *colony) pheromone(u, v int) float64 {
	if t, ok := c.tau[solver.ArcKey{From: u, To: v}]; ok {
		return t
	}

	return c.base
}

func (c *colony) evaporate() {
	keep := 1 - c.opts.Evaporation
	c.base = math.Max(c.base*keep, c.opts.MinPheromone)
	for k, t := range c.tau {
		c.tau[k] = math.Max(t*keep, c.opts.MinPheromone)
	}
}

func (c *colony) deposit(ant solver.Candidate) {
	amount := c.opts.Deposit / math.Max(ant.Cost, costFloor)
	for i := 1; i < len(ant.Path); i++ {
		k := solver.ArcKey{From: ant.Path[i-1], To: ant.Path[i]}
		c.tau[k] = math.Min(c.pheromone(k.From, k.To)+amount, c.opts.MaxPheromone)
	}
}
