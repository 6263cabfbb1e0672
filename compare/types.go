// Package compare runs several solvers on one routing problem under
// identical conditions and aggregates the outcomes.
package compare

import (
	"errors"
	"time"

	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/solver"
)

// Sentinel errors of the harness.
var (
	// ErrTooFewRuns indicates fewer than MinRuns runs per solver.
	ErrTooFewRuns = errors.New("compare: too few runs")

	// ErrNoSolvers indicates an empty solver list.
	ErrNoSolvers = errors.New("compare: no solvers")

	// ErrDuplicateSolver indicates two solvers with the same Name().
	ErrDuplicateSolver = errors.New("compare: duplicate solver name")

	// ErrRunTimeout marks a run stopped by the per-run time limit.
	ErrRunTimeout = errors.New("compare: run timed out")

	// ErrRunPanic marks a run whose solver panicked.
	ErrRunPanic = errors.New("compare: solver panicked")
)

// Run counts and seed.
const (
	MinRuns         = 5
	DefaultRuns     = 5
	DefaultBaseSeed = int64(42)
)

// Status is the outcome class of one run.
type Status string

// Run statuses.
const (
	StatusSuccess Status = "SUCCESS"
	StatusFail    Status = "FAIL"
)

// Failure reasons tallied in Summary.Reasons.
const (
	ReasonNoPath   = "no_path"
	ReasonTimeout  = "timeout"
	ReasonPanic    = "panic"
	ReasonCanceled = "canceled"
	ReasonError    = "error"
)

// RunRecord is the outcome of run Run of one solver.
type RunRecord struct {
	Solver  string        `json:"solver"`
	Run     int           `json:"run"`
	Seed    int64         `json:"seed"`
	Status  Status        `json:"status"`
	Reason  string        `json:"reason,omitempty"`
	Error   string        `json:"error,omitempty"`
	Result  solver.Result `json:"result"`
	Elapsed time.Duration `json:"elapsed"`

	err error
}

// Err returns the error of a failed run, nil on success.
func (r RunRecord) Err() error { return r.err }

// OK reports whether the run produced a route.
func (r RunRecord) OK() bool { return r.Status == StatusSuccess }

// Summary aggregates the runs of one solver. Cost statistics use successful
// runs only; StdDevCost is the sample standard deviation (0 for one run).
type Summary struct {
	Solver      string         `json:"solver"`
	Runs        int            `json:"runs"`
	Successes   int            `json:"successes"`
	Failures    int            `json:"failures"`
	SuccessRate float64        `json:"success_rate"`
	Reasons     map[string]int `json:"reasons,omitempty"`

	// NoSolution is set when every run failed; cost fields are then zero.
	NoSolution bool `json:"no_solution"`

	MeanCost   float64 `json:"mean_cost"`
	StdDevCost float64 `json:"stddev_cost"`
	MedianCost float64 `json:"median_cost"` // lower median
	BestCost   float64 `json:"best_cost"`
	WorstCost  float64 `json:"worst_cost"`

	// MeanRuntime averages successful runs, or all runs when none succeeded.
	MeanRuntime time.Duration `json:"mean_runtime"`

	// BestPath is the route of the best successful run (ranked like
	// solver.BetterResult), with its seed and metrics.
	BestPath    []string    `json:"best_path,omitempty"`
	BestSeed    int64       `json:"best_seed"`
	BestMetrics qos.Metrics `json:"best_metrics"`

	// DistinctPaths counts different routes among successful runs.
	DistinctPaths int `json:"distinct_paths"`

	// Gap fields are set when a reference optimum was found: absolute
	// differences to it, and MeanGap relative to it (0 if the optimum is 0).
	HasGap      bool    `json:"has_gap"`
	BestGap     float64 `json:"best_gap"`
	MeanGap     float64 `json:"mean_gap"`
	RelativeGap float64 `json:"relative_gap"`
}

// Reference is the exact optimum the summaries are measured against.
type Reference struct {
	Found bool     `json:"found"`
	Path  []string `json:"path,omitempty"`
	Cost  float64  `json:"cost"`
}

// HostInfo describes the machine the experiment ran on.
type HostInfo struct {
	Hostname        string `json:"hostname"`
	OS              string `json:"os"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	CPUModel        string `json:"cpu_model"`
	LogicalCPUs     int    `json:"logical_cpus"`
	MemoryTotal     uint64 `json:"memory_total"`
}

// Report is the outcome of one experiment.
type Report struct {
	ID          string        `json:"id"`
	Scenario    string        `json:"scenario,omitempty"`
	Source      string        `json:"source"`
	Destination string        `json:"destination"`
	Demand      float64       `json:"demand"`
	Weights     qos.Weights   `json:"weights"`
	Runs        int           `json:"runs"`
	BaseSeed    int64         `json:"base_seed"`
	Workers     int           `json:"workers"`
	Started     time.Time     `json:"started"`
	Elapsed     time.Duration `json:"elapsed"`
	Host        *HostInfo     `json:"host,omitempty"`
	Reference   *Reference    `json:"reference,omitempty"`

	// Records are ordered by solver (input order), then run index.
	Records []RunRecord `json:"records"`

	// Summaries follow the input solver order.
	Summaries []Summary `json:"summaries"`
}

// Summary returns the summary of the named solver.
func (r *Report) Summary(name string) (Summary, bool) {
	for _, s := range r.Summaries {
		if s.Solver == name {
			return s, true
		}
	}

	return Summary{}, false
}

// RecordsOf returns the records of the named solver in run order.
func (r *Report) RecordsOf(name string) []RunRecord {
	var out []RunRecord
	for _, rec := range r.Records {
		if rec.Solver == name {
			out = append(out, rec)
		}
	}

	return out
}
