// File: compare.go
// Role: Experiment orchestration: validation, pooled runs, aggregation.
// Determinism:
//   - Run r of every solver receives solver.DeriveSeed(BaseSeed, r); records
//     are stored by (solver, run) slot, so the Report does not depend on
//     scheduling order (timings aside).
// Concurrency:
//   - Runs execute on an ants pool of Options.Workers goroutines. Each run
//     writes only its own slot; the Problem is shared read-only.

package compare

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/qosroute/dijkstra"
	"github.com/katalvlaran/qosroute/solver"
)

// Compare runs every solver Options.Runs times on p and aggregates the
// outcomes.
//
// Steps:
//  1. Check the run count, the solver list and the problem; any error here
//     aborts before the first run.
//  2. Optionally solve p exactly (dijkstra) as the reference optimum.
//  3. Submit all (solver, run) pairs to the pool; each run gets its own
//     timeout context and panic guard.
//  4. Summarize per solver.
//
// Failed runs (no route, timeout, panic, solver error) are recorded, never
// returned. A cancelled ctx aborts the experiment with ctx.Err().
func Compare(ctx context.Context, p solver.Problem, solvers []solver.Solver, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Runs < MinRuns {
		return nil, fmt.Errorf("%w: %d < %d", ErrTooFewRuns, o.Runs, MinRuns)
	}
	if err := checkSolvers(solvers); err != nil {
		return nil, err
	}
	if _, err := solver.Compile(p); err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}

	rep := &Report{
		ID:          uuid.NewString(),
		Scenario:    o.Scenario,
		Source:      p.Source,
		Destination: p.Destination,
		Demand:      p.Demand,
		Weights:     p.Weights,
		Runs:        o.Runs,
		BaseSeed:    o.BaseSeed,
		Workers:     o.Workers,
		Started:     time.Now(),
	}
	log := o.Logger.WithFields(logrus.Fields{
		"experiment": rep.ID,
		"source":     p.Source,
		"dest":       p.Destination,
	})
	if o.Scenario != "" {
		log = log.WithField("scenario", o.Scenario)
	}
	if o.HostInfo {
		rep.Host = collectHost(log)
	}
	if o.Reference {
		ref, err := reference(ctx, p)
		if err != nil {
			return nil, err
		}
		rep.Reference = ref
		log.WithFields(logrus.Fields{"found": ref.Found, "cost": ref.Cost}).Info("reference optimum")
	}

	log.WithFields(logrus.Fields{"solvers": len(solvers), "runs": o.Runs, "workers": o.Workers}).Info("experiment started")
	records, err := execute(ctx, p, solvers, o, log)
	if err != nil {
		return nil, err
	}
	rep.Records = records
	rep.Summaries = make([]Summary, len(solvers))
	for i, s := range solvers {
		rep.Summaries[i] = summarize(s.Name(), records[i*o.Runs:(i+1)*o.Runs], rep.Reference)
		logSummary(log, rep.Summaries[i])
	}
	rep.Elapsed = time.Since(rep.Started)
	log.WithField("elapsed", rep.Elapsed).Info("experiment finished")

	return rep, nil
}

func checkSolvers(solvers []solver.Solver) error {
	if len(solvers) == 0 {
		return ErrNoSolvers
	}
	seen := make(map[string]bool, len(solvers))
	for i, s := range solvers {
		if s == nil {
			return fmt.Errorf("%w: solver[%d] is nil", ErrNoSolvers, i)
		}
		if seen[s.Name()] {
			return fmt.Errorf("%w: %q", ErrDuplicateSolver, s.Name())
		}
		seen[s.Name()] = true
	}

	return nil
}

func reference(ctx context.Context, p solver.Problem) (*Reference, error) {
	res, err := dijkstra.New().Solve(ctx, p, 0)
	switch {
	case errors.Is(err, solver.ErrNoPathFound):
		return &Reference{}, nil
	case err != nil:
		return nil, fmt.Errorf("compare: reference: %w", err)
	}

	return &Reference{Found: true, Path: res.Path, Cost: res.Cost}, nil
}

// execute fills one record slot per (solver, run) using the worker pool.
func execute(ctx context.Context, p solver.Problem, solvers []solver.Solver, o Options, log logrus.FieldLogger) ([]RunRecord, error) {
	pool, err := ants.NewPool(o.Workers)
	if err != nil {
		return nil, fmt.Errorf("compare: worker pool: %w", err)
	}
	defer pool.Release()

	records := make([]RunRecord, len(solvers)*o.Runs)
	var wg sync.WaitGroup
	for i, s := range solvers {
		for r := 0; r < o.Runs; r++ {
			var (
				slot = i*o.Runs + r
				slv  = s
				run  = r
				seed = solver.DeriveSeed(o.BaseSeed, uint64(r))
			)
			wg.Add(1)
			task := func() {
				defer wg.Done()
				records[slot] = runOnce(ctx, slv, p, run, seed, o.RunTimeout)
				logRecord(log, records[slot])
			}
			if err = pool.Submit(task); err != nil {
				wg.Done()
				records[slot] = failed(RunRecord{Solver: slv.Name(), Run: run, Seed: seed},
					fmt.Errorf("compare: submit: %w", err))
			}
		}
	}
	wg.Wait()

	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}

	return records, nil
}

// runOnce executes one run under its own timeout and converts every outcome,
// a panic included, into a RunRecord.
func runOnce(ctx context.Context, s solver.Solver, p solver.Problem, run int, seed int64, timeout time.Duration) (rec RunRecord) {
	rec = RunRecord{Solver: s.Name(), Run: run, Seed: seed}
	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	started := time.Now()
	defer func() {
		if v := recover(); v != nil {
			rec = failed(rec, fmt.Errorf("%w: %v", ErrRunPanic, v))
		}
		rec.Elapsed = time.Since(started)
	}()

	res, err := s.Solve(runCtx, p, seed)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = fmt.Errorf("%w after %s: %w", ErrRunTimeout, timeout, err)
		}
		return failed(rec, err)
	}
	res.Run = run
	rec.Status = StatusSuccess
	rec.Result = res

	return rec
}

func failed(rec RunRecord, err error) RunRecord {
	rec.Status = StatusFail
	rec.Reason = Reason(err)
	rec.Error = err.Error()
	rec.Result = solver.Result{}
	rec.err = err

	return rec
}

// Reason classifies a run error for the failure tally.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, solver.ErrNoPathFound):
		return ReasonNoPath
	case errors.Is(err, ErrRunTimeout):
		return ReasonTimeout
	case errors.Is(err, ErrRunPanic):
		return ReasonPanic
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return ReasonCanceled
	default:
		return ReasonError
	}
}

func logRecord(log logrus.FieldLogger, rec RunRecord) {
	entry := log.WithFields(logrus.Fields{
		"solver":  rec.Solver,
		"run":     rec.Run,
		"seed":    rec.Seed,
		"elapsed": rec.Elapsed,
	})
	if !rec.OK() {
		entry.WithField("reason", rec.Reason).Warnf("run failed: %s", rec.Error)
		return
	}
	entry.WithFields(logrus.Fields{"cost": rec.Result.Cost, "hops": rec.Result.Metrics.Hops}).Debug("run finished")
}

func logSummary(log logrus.FieldLogger, s Summary) {
	entry := log.WithFields(logrus.Fields{
		"solver":    s.Solver,
		"successes": s.Successes,
		"runs":      s.Runs,
	})
	if s.NoSolution {
		entry.Warn("no solution found")
		return
	}
	entry.WithFields(logrus.Fields{
		"mean":   s.MeanCost,
		"stddev": s.StdDevCost,
		"best":   s.BestCost,
	}).Info("solver summary")
}
