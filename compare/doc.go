// Package compare is the experiment harness: it runs several solvers on the
// same problem under identical conditions and aggregates the outcomes.
//
// Conditions
//
//   - Every solver sees the same Problem (graph, endpoints, weights, demand).
//   - Run r of every solver is seeded with solver.DeriveSeed(BaseSeed, r), so
//     runs differ from each other but solvers are compared seed for seed.
//   - At least MinRuns (5) runs per solver; fewer is ErrTooFewRuns.
//   - The problem is validated once before any run; construction errors
//     abort the experiment.
//
// Execution
//
// Runs are submitted to an ants worker pool. Each run gets its own context
// (with Options.RunTimeout when set) and a panic guard. A run that returns an
// error, times out (ErrRunTimeout) or panics (ErrRunPanic) becomes a failed
// RunRecord with a reason; it never stops the other runs.
//
// Aggregation
//
// Summary statistics (gonum stat/floats) use successful runs only. A solver
// whose runs all failed has NoSolution set. With WithReference the exact
// optimum (dijkstra) is computed first and every Summary carries its gap.
//
// Batch runs one experiment per Scenario on a shared graph and skips invalid
// scenarios.
//
// Reports carry a UUID, the configuration, optional host facts (gopsutil),
// every RunRecord and the summaries; see package report for writers.
package compare
