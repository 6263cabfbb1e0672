package config

import (
	"fmt"

	"github.com/katalvlaran/qosroute/aco"
	"github.com/katalvlaran/qosroute/annealing"
	"github.com/katalvlaran/qosroute/dijkstra"
	"github.com/katalvlaran/qosroute/genetic"
	"github.com/katalvlaran/qosroute/qlearning"
	"github.com/katalvlaran/qosroute/solver"
)

// Heuristics are the solvers compared when Experiment.Solvers is empty.
var Heuristics = []string{aco.Name, genetic.Name, qlearning.Name, annealing.Name}

// ACO is the [aco] table.
type ACO struct {
	Ants             int     `toml:"ants"`
	Iterations       int     `toml:"iterations"`
	Alpha            float64 `toml:"alpha"`
	Beta             float64 `toml:"beta"`
	Evaporation      float64 `toml:"evaporation"`
	Deposit          float64 `toml:"deposit"`
	InitialPheromone float64 `toml:"initial_pheromone"`
	MinPheromone     float64 `toml:"min_pheromone"`
	MaxPheromone     float64 `toml:"max_pheromone"`
	EliteAnts        int     `toml:"elite_ants"`
	MaxHops          int     `toml:"max_hops"`
	Patience         int     `toml:"patience"`
}

func defaultACO() ACO {
	o := aco.DefaultOptions()

	return ACO{
		Ants: o.Ants, Iterations: o.Iterations, Alpha: o.Alpha, Beta: o.Beta,
		Evaporation: o.Evaporation, Deposit: o.Deposit, InitialPheromone: o.InitialPheromone,
		MinPheromone: o.MinPheromone, MaxPheromone: o.MaxPheromone, EliteAnts: o.EliteAnts,
		MaxHops: o.MaxHops, Patience: o.Patience,
	}
}

// Options converts the table into aco options.
func (a ACO) Options() []aco.Option {
	return []aco.Option{
		aco.WithAnts(a.Ants),
		aco.WithIterations(a.Iterations),
		aco.WithAlpha(a.Alpha),
		aco.WithBeta(a.Beta),
		aco.WithEvaporation(a.Evaporation),
		aco.WithDeposit(a.Deposit),
		aco.WithInitialPheromone(a.InitialPheromone),
		aco.WithPheromoneBounds(a.MinPheromone, a.MaxPheromone),
		aco.WithEliteAnts(a.EliteAnts),
		aco.WithMaxHops(a.MaxHops),
		aco.WithPatience(a.Patience),
	}
}

// Genetic is the [genetic] table.
type Genetic struct {
	Population          int     `toml:"population"`
	Generations         int     `toml:"generations"`
	CrossoverRate       float64 `toml:"crossover_rate"`
	MutationRate        float64 `toml:"mutation_rate"`
	Selection           string  `toml:"selection"` // "tournament" or "roulette"
	TournamentSize      int     `toml:"tournament_size"`
	Elites              int     `toml:"elites"`
	MaxHops             int     `toml:"max_hops"`
	ConvergenceVariance float64 `toml:"convergence_variance"`
}

func defaultGenetic() Genetic {
	o := genetic.DefaultOptions()

	return Genetic{
		Population: o.Population, Generations: o.Generations, CrossoverRate: o.CrossoverRate,
		MutationRate: o.MutationRate, Selection: o.Selection.String(), TournamentSize: o.TournamentSize,
		Elites: o.Elites, MaxHops: o.MaxHops, ConvergenceVariance: o.ConvergenceVariance,
	}
}

// Options converts the table into genetic options.
func (g Genetic) Options() ([]genetic.Option, error) {
	sel, err := genetic.ParseSelection(g.Selection)
	if err != nil {
		return nil, err
	}

	return []genetic.Option{
		genetic.WithPopulation(g.Population),
		genetic.WithGenerations(g.Generations),
		genetic.WithCrossoverRate(g.CrossoverRate),
		genetic.WithMutationRate(g.MutationRate),
		genetic.WithSelection(sel),
		genetic.WithTournamentSize(g.TournamentSize),
		genetic.WithElites(g.Elites),
		genetic.WithMaxHops(g.MaxHops),
		genetic.WithConvergenceVariance(g.ConvergenceVariance),
	}, nil
}

// QLearning is the [qlearning] table.
type QLearning struct {
	Episodes       int     `toml:"episodes"`
	LearningRate   float64 `toml:"learning_rate"`
	Discount       float64 `toml:"discount"`
	Epsilon        float64 `toml:"epsilon"`
	EpsilonMin     float64 `toml:"epsilon_min"`
	EpsilonDecay   float64 `toml:"epsilon_decay"`
	CyclePenalty   float64 `toml:"cycle_penalty"`
	FailurePenalty float64 `toml:"failure_penalty"`
	MaxHops        int     `toml:"max_hops"`
}

func defaultQLearning() QLearning {
	o := qlearning.DefaultOptions()

	return QLearning{
		Episodes: o.Episodes, LearningRate: o.LearningRate, Discount: o.Discount,
		Epsilon: o.Epsilon, EpsilonMin: o.EpsilonMin, EpsilonDecay: o.EpsilonDecay,
		CyclePenalty: o.CyclePenalty, FailurePenalty: o.FailurePenalty, MaxHops: o.MaxHops,
	}
}

// Options converts the table into qlearning options.
func (q QLearning) Options() []qlearning.Option {
	return []qlearning.Option{
		qlearning.WithEpisodes(q.Episodes),
		qlearning.WithLearningRate(q.LearningRate),
		qlearning.WithDiscount(q.Discount),
		qlearning.WithExploration(q.Epsilon, q.EpsilonMin, q.EpsilonDecay),
		qlearning.WithPenalties(q.CyclePenalty, q.FailurePenalty),
		qlearning.WithMaxHops(q.MaxHops),
	}
}

// Annealing is the [annealing] table.
type Annealing struct {
	InitialTemperature float64 `toml:"initial_temperature"`
	MinTemperature     float64 `toml:"min_temperature"`
	Cooling            float64 `toml:"cooling"`
	Iterations         int     `toml:"iterations"`
	Start              string  `toml:"start"` // "min-delay" or "random"
	MaxHops            int     `toml:"max_hops"`
}

func defaultAnnealing() Annealing {
	o := annealing.DefaultOptions()

	return Annealing{
		InitialTemperature: o.InitialTemperature, MinTemperature: o.MinTemperature,
		Cooling: o.Cooling, Iterations: o.Iterations, Start: o.Start.String(), MaxHops: o.MaxHops,
	}
}

// Options converts the table into annealing options.
func (a Annealing) Options() ([]annealing.Option, error) {
	start, err := annealing.ParseStart(a.Start)
	if err != nil {
		return nil, err
	}

	return []annealing.Option{
		annealing.WithTemperature(a.InitialTemperature, a.MinTemperature),
		annealing.WithCooling(a.Cooling),
		annealing.WithIterations(a.Iterations),
		annealing.WithStart(start),
		annealing.WithMaxHops(a.MaxHops),
	}, nil
}

// Registry builds every configured solver plus the exact dijkstra solver.
// Option values the solver packages reject come back as ErrInvalidConfig.
func (c *Config) Registry() (reg *solver.Registry, err error) {
	defer func() {
		if v := recover(); v != nil {
			perr, ok := v.(error)
			if !ok {
				panic(v)
			}
			reg, err = nil, fmt.Errorf("%w: %w", ErrInvalidConfig, perr)
		}
	}()

	gopts, err := c.Genetic.Options()
	if err != nil {
		return nil, fmt.Errorf("%w: genetic: %w", ErrInvalidConfig, err)
	}
	sopts, err := c.Annealing.Options()
	if err != nil {
		return nil, fmt.Errorf("%w: annealing: %w", ErrInvalidConfig, err)
	}

	return solver.NewRegistry(
		aco.New(c.ACO.Options()...),
		genetic.New(gopts...),
		qlearning.New(c.QLearning.Options()...),
		annealing.New(sopts...),
		dijkstra.New(),
	)
}

// Solvers returns the solvers named by Experiment.Solvers, or Heuristics.
func (c *Config) Solvers() ([]solver.Solver, error) {
	reg, err := c.Registry()
	if err != nil {
		return nil, err
	}
	names := c.Experiment.Solvers
	if len(names) == 0 {
		names = Heuristics
	}
	out, err := reg.Select(names...)
	if err != nil {
		return nil, fmt.Errorf("%w: experiment: %w", ErrInvalidConfig, err)
	}

	return out, nil
}
