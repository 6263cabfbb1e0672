// Package config loads the qosbench TOML file.
//
// Load starts from Default(), so every key is optional. Solver tables start
// from each solver package's DefaultOptions and only override what the file
// sets.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/qosroute/builder"
	"github.com/katalvlaran/qosroute/compare"
	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/logging"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/report"
	"github.com/katalvlaran/qosroute/solver"
	"github.com/katalvlaran/qosroute/topology"
)

// ErrInvalidConfig wraps every validation failure of Load.
var ErrInvalidConfig = errors.New("config: invalid")

// Generated graph defaults.
const (
	DefaultNodes       = 250
	DefaultProbability = 0.4
	DefaultGraphSeed   = int64(42)
	DefaultAttempts    = 10
	DefaultBaseSeed    = int64(1000)
)

// Shapes of generated graphs.
const (
	RandomShape   = "random"
	PathShape     = "path"
	CompleteShape = "complete"
	GridShape     = "grid"
)

// ID schemes of generated graphs.
const (
	NumericIDs = "numeric"
	ExcelIDs   = "excel"
	PrefixIDs  = "prefix" // IDPrefix + index, e.g. "r0", "r1"
)

// Duration is a time.Duration written as a string ("1.5s") in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Config is the whole configuration file.
type Config struct {
	Log        logging.Config     `toml:"log"`
	Graph      Graph              `toml:"graph"`
	Experiment Experiment         `toml:"experiment"`
	Scenarios  []compare.Scenario `toml:"scenario"`
	ACO        ACO                `toml:"aco"`
	Genetic    Genetic            `toml:"genetic"`
	QLearning  QLearning          `toml:"qlearning"`
	Annealing  Annealing          `toml:"annealing"`
}

// Graph selects the network: a topology file, or a generated graph of the
// given shape. Nodes sizes random, path and complete graphs; Rows and Cols
// size grids.
type Graph struct {
	File        string             `toml:"file"` // YAML or JSON topology; wins over generation
	Shape       string             `toml:"shape"`
	Nodes       int                `toml:"nodes"`
	Rows        int                `toml:"rows"`
	Cols        int                `toml:"cols"`
	Probability float64            `toml:"probability"`
	Seed        int64              `toml:"seed"`
	Attempts    int                `toml:"attempts"`
	Directed    bool               `toml:"directed"`
	IDScheme    string             `toml:"id_scheme"`
	IDPrefix    string             `toml:"id_prefix"`
	Attributes  builder.AttrRanges `toml:"attributes"`
}

// Experiment is the routing problem and how often to solve it.
type Experiment struct {
	Source      string      `toml:"source"`
	Destination string      `toml:"destination"`
	Weights     qos.Weights `toml:"weights"`
	Demand      float64     `toml:"demand"`
	Solvers     []string    `toml:"solvers"` // empty = all heuristics
	Runs        int         `toml:"runs"`
	Seed        int64       `toml:"seed"`
	Workers     int         `toml:"workers"`
	RunTimeout  Duration    `toml:"run_timeout"` // 0 = unlimited
	Reference   bool        `toml:"reference"`
	HostInfo    bool        `toml:"host_info"`
	ScenarioCSV string      `toml:"scenario_csv"` // appended to [[scenario]]
	Output      string      `toml:"output"`       // result directory, "" = none
}

// Default returns the configuration used for keys the file leaves out.
func Default() Config {
	return Config{
		Log: logging.DefaultConfig(),
		Graph: Graph{
			Shape:       RandomShape,
			Nodes:       DefaultNodes,
			Probability: DefaultProbability,
			Seed:        DefaultGraphSeed,
			Attempts:    DefaultAttempts,
			IDScheme:    NumericIDs,
			Attributes:  builder.DefaultAttrRanges(),
		},
		Experiment: Experiment{
			Weights: qos.DefaultWeights(),
			Runs:    compare.DefaultRuns,
			Seed:    DefaultBaseSeed,
		},
		ACO:       defaultACO(),
		Genetic:   defaultGenetic(),
		QLearning: defaultQLearning(),
		Annealing: defaultAnnealing(),
	}
}

// Load decodes path over Default() and validates the result. Unknown keys
// are rejected.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown keys %v", ErrInvalidConfig, undecoded)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks every section. Source and destination are not required
// here: batch mode takes its endpoints from the scenarios.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("%w: log: %w", ErrInvalidConfig, err)
	}
	if err := c.Graph.validate(); err != nil {
		return fmt.Errorf("%w: graph: %w", ErrInvalidConfig, err)
	}
	e := c.Experiment
	if err := e.Weights.Validate(); err != nil {
		return fmt.Errorf("%w: experiment: %w", ErrInvalidConfig, err)
	}
	switch {
	case e.Demand < 0:
		return fmt.Errorf("%w: experiment: demand %g", ErrInvalidConfig, e.Demand)
	case e.Runs < compare.MinRuns:
		return fmt.Errorf("%w: experiment: %w: %d", ErrInvalidConfig, compare.ErrTooFewRuns, e.Runs)
	case e.Workers < 0:
		return fmt.Errorf("%w: experiment: workers %d", ErrInvalidConfig, e.Workers)
	case e.RunTimeout.Duration < 0:
		return fmt.Errorf("%w: experiment: run_timeout %s", ErrInvalidConfig, e.RunTimeout)
	}
	if _, err := c.Solvers(); err != nil {
		return err
	}

	return nil
}

func (g Graph) validate() error {
	if g.File != "" {
		_, err := topology.FormatOf(g.File)
		return err
	}
	switch g.Shape {
	case GridShape:
		if g.Rows < 1 || g.Cols < 1 || g.Rows*g.Cols < 2 {
			return fmt.Errorf("%w: grid %dx%d", builder.ErrTooFewVertices, g.Rows, g.Cols)
		}
	case RandomShape, PathShape, CompleteShape:
		if g.Nodes < 2 {
			return fmt.Errorf("%w: nodes %d", builder.ErrTooFewVertices, g.Nodes)
		}
	default:
		return fmt.Errorf("shape %q", g.Shape)
	}
	switch {
	case !(g.Probability >= 0 && g.Probability <= 1):
		return fmt.Errorf("%w: probability %g", builder.ErrInvalidProbability, g.Probability)
	case g.Attempts < 1:
		return fmt.Errorf("attempts %d", g.Attempts)
	case g.IDScheme != NumericIDs && g.IDScheme != ExcelIDs && g.IDScheme != PrefixIDs:
		return fmt.Errorf("id_scheme %q", g.IDScheme)
	case g.IDScheme == PrefixIDs && g.IDPrefix == "":
		return fmt.Errorf("id_scheme %q needs id_prefix", g.IDScheme)
	}

	return g.Attributes.Validate()
}

// BuildGraph loads Graph.File, or generates a graph of Graph.Shape. Random
// graphs are resampled until connected.
func (c *Config) BuildGraph() (*core.Graph, error) {
	g := c.Graph
	if g.File != "" {
		return topology.Load(g.File)
	}

	bopts := []builder.BuilderOption{builder.WithSeed(g.Seed), builder.WithAttrRanges(g.Attributes)}
	switch g.IDScheme {
	case ExcelIDs:
		bopts = append(bopts, builder.WithExcelColumnIDs())
	case PrefixIDs:
		bopts = append(bopts, builder.WithSymbNumb(g.IDPrefix))
	}

	gopts := []core.GraphOption{core.WithDirected(g.Directed)}
	switch g.Shape {
	case PathShape:
		return builder.BuildGraph(gopts, bopts, builder.Path(g.Nodes))
	case CompleteShape:
		return builder.BuildGraph(gopts, bopts, builder.Complete(g.Nodes))
	case GridShape:
		return builder.BuildGraph(gopts, bopts, builder.Grid(g.Rows, g.Cols))
	}

	return builder.Connected(g.Nodes, g.Probability, g.Attempts, gopts, bopts...)
}

// Problem is the experiment's routing problem on g.
func (c *Config) Problem(g *core.Graph) solver.Problem {
	e := c.Experiment

	return solver.Problem{
		Graph:       g,
		Source:      e.Source,
		Destination: e.Destination,
		Weights:     e.Weights,
		Demand:      e.Demand,
	}
}

// CompareOptions converts the experiment section into harness options.
func (c *Config) CompareOptions() []compare.Option {
	e := c.Experiment
	opts := []compare.Option{
		compare.WithRuns(e.Runs),
		compare.WithBaseSeed(e.Seed),
		compare.WithRunTimeout(e.RunTimeout.Duration),
		compare.WithReference(e.Reference),
		compare.WithHostInfo(e.HostInfo),
	}
	if e.Workers > 0 {
		opts = append(opts, compare.WithWorkers(e.Workers))
	}

	return opts
}

// AllScenarios returns the [[scenario]] entries followed by the rows of
// Experiment.ScenarioCSV. Scenarios without weights get Experiment.Weights.
func (c *Config) AllScenarios() ([]compare.Scenario, error) {
	out := append([]compare.Scenario(nil), c.Scenarios...)
	if path := c.Experiment.ScenarioCSV; path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		defer f.Close()
		more, err := report.ReadScenarios(f)
		if err != nil {
			return nil, fmt.Errorf("config: %s: %w", path, err)
		}
		out = append(out, more...)
	}
	for i := range out {
		if out[i].Weights == (qos.Weights{}) {
			out[i].Weights = c.Experiment.Weights
		}
		if out[i].ID == "" {
			out[i].ID = fmt.Sprintf("S%d", i+1)
		}
	}

	return out, nil
}
