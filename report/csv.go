package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/qosroute/compare"
)

// WriteRunsCSV writes the runs table of all reports, in report order.
func WriteRunsCSV(w io.Writer, reports ...*compare.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RunColumns); err != nil {
		return fmt.Errorf("report: runs header: %w", err)
	}
	for _, rep := range reports {
		for _, rec := range rep.Records {
			row := []string{
				rep.Scenario,
				rep.Source,
				rep.Destination,
				num(rep.Demand),
				rec.Solver,
				strconv.Itoa(rec.Run + 1),
				strconv.FormatInt(rec.Seed, 10),
				string(rec.Status),
				rec.Reason,
				"", "", "", "",
				millis(rec.Elapsed),
				"",
			}
			if rec.OK() {
				m := rec.Result.Metrics
				row[9] = num(m.TotalDelay)
				row[10] = num(m.ReliabilityCost)
				row[11] = num(m.ResourceUsage)
				row[12] = num(rec.Result.Cost)
				row[14] = strings.Join(rec.Result.Path, PathSeparator)
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("report: runs row %s/%d: %w", rec.Solver, rec.Run, err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummaryCSV writes the summary table of all reports. Solvers without
// a successful run have empty cost columns.
func WriteSummaryCSV(w io.Writer, reports ...*compare.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryColumns); err != nil {
		return fmt.Errorf("report: summary header: %w", err)
	}
	for _, rep := range reports {
		for _, s := range rep.Summaries {
			row := []string{
				rep.Scenario,
				s.Solver,
				strconv.Itoa(s.Successes),
				num(s.SuccessRate),
				"", "", "", "", "",
				millis(s.MeanRuntime),
				strconv.Itoa(s.DistinctPaths),
				"",
				strings.Join(s.BestPath, PathSeparator),
			}
			if !s.NoSolution {
				row[4] = num(s.MeanCost)
				row[5] = num(s.StdDevCost)
				row[6] = num(s.BestCost)
				row[7] = num(s.WorstCost)
				row[8] = num(s.MedianCost)
			}
			if s.HasGap {
				row[11] = num(s.BestGap)
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("report: summary row %s: %w", s.Solver, err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadScenarios parses a scenario CSV.
//
// Columns are matched by header name, case-insensitively: S (source) and D
// (destination) are required, scenario_id and B (demand) optional. Blank
// lines are ignored. Weights are left zero, so compare applies its defaults.
func ReadScenarios(r io.Reader) ([]compare.Scenario, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty", ErrInvalidScenarios)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenarios, err)
	}

	col := map[string]int{"scenario_id": -1, "s": -1, "d": -1, "b": -1}
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, ok := col[key]; ok {
			col[key] = i
		}
	}
	if col["s"] < 0 || col["d"] < 0 {
		return nil, fmt.Errorf("%w: header %v lacks S or D", ErrInvalidScenarios, header)
	}

	var out []compare.Scenario
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScenarios, err)
		}
		line, _ := cr.FieldPos(0)
		sc := compare.Scenario{
			Source:      strings.TrimSpace(rec[col["s"]]),
			Destination: strings.TrimSpace(rec[col["d"]]),
		}
		if i := col["scenario_id"]; i >= 0 {
			sc.ID = strings.TrimSpace(rec[i])
		}
		if i := col["b"]; i >= 0 {
			if v := strings.TrimSpace(rec[i]); v != "" {
				if sc.Demand, err = strconv.ParseFloat(v, 64); err != nil {
					return nil, fmt.Errorf("%w: line %d: demand %q", ErrInvalidScenarios, line, v)
				}
			}
		}
		if sc.Source == "" || sc.Destination == "" {
			return nil, fmt.Errorf("%w: line %d: empty endpoint", ErrInvalidScenarios, line)
		}
		out = append(out, sc)
	}

	return out, nil
}

func num(x float64) string { return strconv.FormatFloat(x, 'f', -1, 64) }

func millis(d time.Duration) string {
	return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 3, 64)
}
