package report_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qosroute/compare"
	"github.com/katalvlaran/qosroute/dijkstra"
	"github.com/katalvlaran/qosroute/internal/fixture"
	"github.com/katalvlaran/qosroute/internal/solvertest"
	"github.com/katalvlaran/qosroute/qos"
	"github.com/katalvlaran/qosroute/report"
	"github.com/katalvlaran/qosroute/solver"
)

// sample is a two-solver report: "aco" succeeds once and fails once,
// "ga" never finds a route.
func sample() *compare.Report {
	res := solver.Result{
		Solver:  "aco",
		Path:    []string{"0", "2", "3"},
		Cost:    fixture.DiamondLowerCost,
		Metrics: qos.Metrics{TotalDelay: 2, ReliabilityCost: 1.3862943611198906, ResourceUsage: 6, Hops: 2},
	}

	return &compare.Report{
		ID:          "exp-1",
		Scenario:    "S1",
		Source:      "0",
		Destination: "3",
		Demand:      50,
		Weights:     fixture.DiamondWeights,
		Runs:        2,
		Records: []compare.RunRecord{
			{Solver: "aco", Run: 0, Seed: 11, Status: compare.StatusSuccess, Result: res, Elapsed: 1500 * time.Microsecond},
			{Solver: "aco", Run: 1, Seed: 12, Status: compare.StatusFail, Reason: compare.ReasonNoPath, Elapsed: time.Millisecond},
			{Solver: "ga", Run: 0, Seed: 11, Status: compare.StatusFail, Reason: compare.ReasonTimeout, Elapsed: 2 * time.Millisecond},
			{Solver: "ga", Run: 1, Seed: 12, Status: compare.StatusFail, Reason: compare.ReasonTimeout, Elapsed: 2 * time.Millisecond},
		},
		Summaries: []compare.Summary{
			{
				Solver: "aco", Runs: 2, Successes: 1, Failures: 1, SuccessRate: 0.5,
				MeanCost: res.Cost, BestCost: res.Cost, WorstCost: res.Cost, MedianCost: res.Cost,
				MeanRuntime: 1500 * time.Microsecond, BestPath: res.Path, DistinctPaths: 1,
				HasGap: true,
			},
			{Solver: "ga", Runs: 2, Failures: 2, NoSolution: true, MeanRuntime: 2 * time.Millisecond},
		},
	}
}

func readCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestWriteRunsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteRunsCSV(&buf, sample()))

	rows := readCSV(t, buf.Bytes())
	require.Len(t, rows, 5)
	assert.Equal(t, report.RunColumns, rows[0])

	assert.Equal(t, []string{
		"S1", "0", "3", "50", "aco", "1", "11", "SUCCESS", "",
		"2", "1.3862943611198906", "6", "3.386294361119891", "1.500", "0->2->3",
	}, rows[1])

	failed := rows[2]
	assert.Equal(t, "2", failed[5], "run ids are 1-based")
	assert.Equal(t, "FAIL", failed[7])
	assert.Equal(t, "no_path", failed[8])
	assert.Empty(t, failed[12])
	assert.Empty(t, failed[14])
	assert.Equal(t, "1.000", failed[13])
}

func TestWriteSummaryCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteSummaryCSV(&buf, sample(), sample()))

	rows := readCSV(t, buf.Bytes())
	require.Len(t, rows, 5)
	assert.Equal(t, report.SummaryColumns, rows[0])

	aco := rows[1]
	assert.Equal(t, []string{"S1", "aco", "1", "0.5"}, aco[:4])
	assert.Equal(t, "3.386294361119891", aco[4])
	assert.Equal(t, "0", aco[5])
	assert.Equal(t, "0", aco[11], "gap present")
	assert.Equal(t, "0->2->3", aco[12])

	ga := rows[2]
	for _, c := range ga[4:9] {
		assert.Empty(t, c)
	}
	assert.Equal(t, "2.000", ga[9])
	assert.Empty(t, ga[11])
}

func TestReadScenarios(t *testing.T) {
	in := "scenario_id,S,D,B\n1, 0, 7, 100\n\n2,3,4,\n"
	got, err := report.ReadScenarios(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []compare.Scenario{
		{ID: "1", Source: "0", Destination: "7", Demand: 100},
		{ID: "2", Source: "3", Destination: "4"},
	}, got)

	got, err = report.ReadScenarios(strings.NewReader("d,s\nb,a\n"))
	require.NoError(t, err)
	assert.Equal(t, []compare.Scenario{{Source: "a", Destination: "b"}}, got)

	for name, bad := range map[string]string{
		"empty":      "",
		"no D":       "S,B\n1,2\n",
		"bad demand": "S,D,B\n1,2,lots\n",
		"blank end":  "S,D\n1, \n",
		"ragged":     "S,D\n1,2,3\n",
	} {
		_, err = report.ReadScenarios(strings.NewReader(bad))
		assert.ErrorIs(t, err, report.ErrInvalidScenarios, name)
	}
}

func TestRenderSummary(t *testing.T) {
	rep := sample()
	rep.Reference = &compare.Reference{Found: true, Path: []string{"0", "2", "3"}, Cost: fixture.DiamondLowerCost}

	var buf bytes.Buffer
	require.NoError(t, report.RenderSummary(&buf, rep))
	out := buf.String()

	assert.Contains(t, out, "S1: 0 -> 3 (demand 50), 2 runs")
	assert.Contains(t, out, "optimum 3.3863 via 0 -> 2 -> 3")
	assert.Contains(t, out, "SOLVER")
	assert.Contains(t, out, "1/2")
	assert.Contains(t, out, report.NoSolution)
	assert.Contains(t, out, "best aco: 0 -> 2 -> 3")
	assert.NotContains(t, out, "best ga")
}

func TestRenderPath(t *testing.T) {
	p := solvertest.DiamondProblem()
	res, err := dijkstra.New().Solve(context.Background(), p, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.RenderPath(&buf, p.Graph, res))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "cost 3.3863, 2 hops")
	assert.Contains(t, lines[2], "0")
	assert.Contains(t, lines[3], "0.5")
	assert.Contains(t, lines[4], "total")

	res.Path = []string{"0", "3"}
	assert.Error(t, report.RenderPath(&buf, p.Graph, res))
}

func TestExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	files, err := report.Export(dir, sample())
	require.NoError(t, err)
	require.Len(t, files, 3)
	for _, f := range files {
		assert.FileExists(t, f)
	}

	data, err := os.ReadFile(filepath.Join(dir, report.JSONFile))
	require.NoError(t, err)
	var back []compare.Report
	require.NoError(t, json.Unmarshal(data, &back))
	require.Len(t, back, 1)
	assert.Equal(t, "exp-1", back[0].ID)
	assert.True(t, back[0].Summaries[1].NoSolution)
}
