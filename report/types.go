package report

import "errors"

// ErrInvalidScenarios indicates a malformed scenario CSV.
var ErrInvalidScenarios = errors.New("report: invalid scenario file")

// PathSeparator joins vertex IDs in CSV path cells.
const PathSeparator = "->"

// Output file names used by Export.
const (
	RunsFile    = "runs.csv"
	SummaryFile = "summary.csv"
	JSONFile    = "report.json"
)

// RunColumns is the header of the runs table.
var RunColumns = []string{
	"scenario_id", "S", "D", "B", "algorithm", "run_id", "seed", "status", "fail_reason",
	"total_delay", "reliability_cost", "resource_cost", "total_cost", "runtime_ms", "path",
}

// SummaryColumns is the header of the summary table.
var SummaryColumns = []string{
	"scenario_id", "algorithm", "success_count", "success_rate",
	"avg_total_cost", "std_total_cost", "best_total_cost", "worst_total_cost", "median_total_cost",
	"avg_runtime_ms", "distinct_paths", "best_gap", "best_path",
}
