// Package report turns compare results into files and terminal tables.
//
// CSV layout follows the classic experiment logs: one runs table with a row
// per (scenario, solver, run) and one summary table with a row per
// (scenario, solver). Failed runs keep their row with empty cost columns.
// Run IDs are 1-based in every output; compare.RunRecord.Run is 0-based.
//
// Scenario files are CSV with a header naming at least S and D; scenario_id
// and B (bandwidth demand) are optional.
package report
