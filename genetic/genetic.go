package genetic

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/qosroute/solver"
)

// fitnessFloor keeps 1/cost finite for zero-cost routes.
const fitnessFloor = 1e-9

// samplingFactor bounds initial sampling to Population·samplingFactor draws.
const samplingFactor = 10

// Solver is a genetic route solver holding only configuration.
type Solver struct {
	opts Options
}

// New returns a genetic solver configured by opts.
func New(opts ...Option) *Solver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Elites >= o.Population {
		o.Elites = o.Population - 1
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
//  1. Seed the population with random simple routes.
//  2. Per generation: rank, keep Elites, then fill the next generation with
//     children of selected parents (crossover at a shared intermediate
//     vertex, else mutation only; optional segment-reroute mutation).
//  3. Repair children by loop excision; replace still-invalid ones with a
//     fresh random route (or a parent copy if sampling fails).
//  4. Stop after Generations or once cost variance < ConvergenceVariance.
func (s *Solver) Solve(ctx context.Context, p solver.Problem, seed int64) (solver.Result, error) {
	started := time.Now()
	net, err := solver.Compile(p)
	if err != nil {
		return solver.Result{}, err
	}

	e := &evolution{
		net:     net,
		opts:    s.opts,
		rng:     solver.NewRand(seed),
		maxHops: net.HopLimit(s.opts.MaxHops),
	}
	gens, err := e.run(ctx)
	if err != nil {
		return solver.Result{}, err
	}

	return net.Finish(Name, seed, e.best.Path, started, gens)
}

// evolution is the private state of one run.
type evolution struct {
	net     *solver.Network
	opts    Options
	rng     *rand.Rand
	maxHops int
	pop     []solver.Candidate
	best    solver.Candidate
}

func (e *evolution) run(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, solver.Canceled(Name, 0, err)
	}
	e.seedPopulation()
	if len(e.pop) == 0 {
		return 0, nil
	}

	var gen int
	for gen = 0; gen < e.opts.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return gen, solver.Canceled(Name, gen, err)
		}
		e.rank()
		if e.converged() {
			return gen, nil
		}
		e.pop = e.breed()
	}
	e.rank()

	return gen, nil
}

func (e *evolution) seedPopulation() {
	e.pop = make([]solver.Candidate, 0, e.opts.Population)
	for draws := 0; len(e.pop) < e.opts.Population && draws < e.opts.Population*samplingFactor; draws++ {
		if path := e.net.Sample(e.rng, e.maxHops); path != nil {
			e.pop = append(e.pop, e.candidate(path))
		}
	}
}

// rank sorts the population best-first and records the global best.
func (e *evolution) rank() {
	sort.SliceStable(e.pop, func(i, j int) bool { return e.net.Better(e.pop[i], e.pop[j]) })
	if e.net.Better(e.pop[0], e.best) {
		e.best = e.pop[0]
	}
}

func (e *evolution) converged() bool {
	if e.opts.ConvergenceVariance <= 0 || len(e.pop) < 2 {
		return false
	}
	costs := make([]float64, len(e.pop))
	for i, c := range e.pop {
		costs[i] = c.Cost
	}

	return stat.Variance(costs, nil) < e.opts.ConvergenceVariance
}

func (e *evolution) breed() []solver.Candidate {
	next := make([]solver.Candidate, 0, e.opts.Population)
	for i := 0; i < e.opts.Elites && i < len(e.pop); i++ {
		next = append(next, e.pop[i])
	}
	for len(next) < e.opts.Population {
		p1, p2 := e.selectParent(), e.selectParent()

		var (
			child   []int
			crossed bool
		)
		if e.rng.Float64() < e.opts.CrossoverRate {
			child, crossed = e.crossover(p1.Path, p2.Path)
		}
		if !crossed {
			child = append([]int(nil), p1.Path...)
		}
		if !crossed || e.rng.Float64() < e.opts.MutationRate {
			if m, ok := e.net.Reroute(e.rng, child, e.maxHops); ok {
				child = m
			}
		}

		child = solver.RemoveLoops(child)
		if !e.net.Valid(child, e.maxHops) {
			if child = e.net.Sample(e.rng, e.maxHops); child == nil {
				child = append([]int(nil), p1.Path...)
			}
		}
		next = append(next, e.candidate(child))
	}

	return next
}

// crossover joins the head of a and the tail of b at a random vertex they
// share strictly inside both routes.
func (e *evolution) crossover(a, b []int) ([]int, bool) {
	posB := make(map[int]int, len(b))
	for j := 1; j < len(b)-1; j++ {
		posB[b[j]] = j
	}
	var cuts [][2]int
	for i := 1; i < len(a)-1; i++ {
		if j, ok := posB[a[i]]; ok {
			cuts = append(cuts, [2]int{i, j})
		}
	}
	if len(cuts) == 0 {
		return nil, false
	}
	cut := cuts[e.rng.Intn(len(cuts))]
	child := make([]int, 0, cut[0]+len(b)-cut[1])
	child = append(child, a[:cut[0]]...)
	child = append(child, b[cut[1]:]...)

	return child, true
}

func (e *evolution) selectParent() solver.Candidate {
	if e.opts.Selection == RouletteWheel {
		weights := make([]float64, len(e.pop))
		for i, c := range e.pop {
			weights[i] = fitness(c.Cost)
		}
		return e.pop[solver.Roulette(e.rng, weights)]
	}

	best := e.pop[e.rng.Intn(len(e.pop))]
	for k := 1; k < e.opts.TournamentSize; k++ {
		if c := e.pop[e.rng.Intn(len(e.pop))]; e.net.Better(c, best) {
			best = c
		}
	}

	return best
}

func (e *evolution) candidate(path []int) solver.Candidate {
	cost, _ := e.net.PathCost(path)
	return solver.Candidate{Path: path, Cost: cost}
}

// fitness is 1/cost.
func fitness(cost float64) float64 {
	if cost < fitnessFloor {
		cost = fitnessFloor
	}

	return 1 / cost
}
