// Command qosbench compares stochastic QoS routing heuristics.
//
//	qosbench -config qosbench.toml -mode compare
//	qosbench -mode single -algo sa -src 0 -dst 17
//	qosbench -mode batch -out results
//
// Modes: single runs one solver once, compare runs every configured solver
// Runs times on the experiment's source and destination, batch does the same
// for every scenario.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/qosroute/compare"
	"github.com/katalvlaran/qosroute/config"
	"github.com/katalvlaran/qosroute/core"
	"github.com/katalvlaran/qosroute/logging"
	"github.com/katalvlaran/qosroute/report"
	"github.com/katalvlaran/qosroute/solver"
	"github.com/katalvlaran/qosroute/topology"
)

// Run modes.
const (
	modeSingle  = "single"
	modeCompare = "compare"
	modeBatch   = "batch"
)

// noRoute is printed when a single run finds nothing.
const noRoute = "no route found"

var errUsage = errors.New("qosbench: usage")

type flags struct {
	config         string
	mode           string
	algo           string
	source         string
	destination    string
	out            string
	exportTopology string
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("qosbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "qosbench.toml", "configuration file")
	fs.StringVar(&f.mode, "mode", modeCompare, "single | compare | batch")
	fs.StringVar(&f.algo, "algo", "aco", "solver for single mode")
	fs.StringVar(&f.source, "src", "", "override experiment source")
	fs.StringVar(&f.destination, "dst", "", "override experiment destination")
	fs.StringVar(&f.out, "out", "", "result directory (overrides experiment.output)")
	fs.StringVar(&f.exportTopology, "export-topology", "", "write the network to a .yaml/.json file")
	if err := fs.Parse(args); err != nil {
		return f, fmt.Errorf("%w: %w", errUsage, err)
	}
	switch f.mode {
	case modeSingle, modeCompare, modeBatch:
	default:
		return f, fmt.Errorf("%w: unknown mode %q", errUsage, f.mode)
	}

	return f, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run is main without the process concerns: results go to stdout, logs to
// stderr and the configured log file.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	cfg, err := config.Load(f.config)
	if err != nil {
		return err
	}
	if f.source != "" {
		cfg.Experiment.Source = f.source
	}
	if f.destination != "" {
		cfg.Experiment.Destination = f.destination
	}
	if f.out != "" {
		cfg.Experiment.Output = f.out
	}

	log, closer, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	g, err := cfg.BuildGraph()
	if err != nil {
		return fmt.Errorf("qosbench: network: %w", err)
	}
	log.WithFields(logrus.Fields{
		"nodes":    g.VertexCount(),
		"links":    g.EdgeCount(),
		"directed": g.Directed(),
	}).Info("network ready")
	if f.exportTopology != "" {
		if err = topology.Save(f.exportTopology, "qosbench", g); err != nil {
			return err
		}
		log.WithField("file", f.exportTopology).Info("topology exported")
	}

	switch f.mode {
	case modeSingle:
		return runSingle(ctx, cfg, g, f.algo, stdout, log)
	case modeCompare:
		return runCompare(ctx, cfg, g, stdout, log)
	default:
		return runBatch(ctx, cfg, g, stdout, log)
	}
}

func runSingle(ctx context.Context, cfg *config.Config, g *core.Graph, algo string, stdout io.Writer, log logrus.FieldLogger) error {
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	s, err := reg.Get(algo)
	if err != nil {
		return fmt.Errorf("%w: %w (available: %s)", errUsage, err, strings.Join(reg.List(), ", "))
	}

	res, err := s.Solve(ctx, cfg.Problem(g), cfg.Experiment.Seed)
	if errors.Is(err, solver.ErrNoPathFound) {
		log.WithError(err).Warn(noRoute)
		fmt.Fprintln(stdout, noRoute)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "route: %s\n", strings.Join(res.Path, " -> "))

	return report.RenderPath(stdout, g, res)
}

func runCompare(ctx context.Context, cfg *config.Config, g *core.Graph, stdout io.Writer, log logrus.FieldLogger) error {
	solvers, err := cfg.Solvers()
	if err != nil {
		return err
	}
	opts := append(cfg.CompareOptions(), compare.WithLogger(log))
	rep, err := compare.Compare(ctx, cfg.Problem(g), solvers, opts...)
	if err != nil {
		return err
	}
	if err = report.RenderSummary(stdout, rep); err != nil {
		return err
	}

	return export(cfg, stdout, log, rep)
}

func runBatch(ctx context.Context, cfg *config.Config, g *core.Graph, stdout io.Writer, log logrus.FieldLogger) error {
	scenarios, err := cfg.AllScenarios()
	if err != nil {
		return err
	}
	if len(scenarios) == 0 {
		return fmt.Errorf("%w: batch mode needs [[scenario]] entries or experiment.scenario_csv", errUsage)
	}
	solvers, err := cfg.Solvers()
	if err != nil {
		return err
	}

	opts := append(cfg.CompareOptions(), compare.WithLogger(log))
	res, err := compare.Batch(ctx, g, scenarios, solvers, opts...)
	if err != nil {
		return err
	}
	for _, rep := range res.Reports {
		if err = report.RenderSummary(stdout, rep); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
	}
	for _, sk := range res.Skipped {
		fmt.Fprintf(stdout, "skipped %s: %s\n", sk.Scenario.ID, sk.Reason)
	}

	return export(cfg, stdout, log, res.Reports...)
}

func export(cfg *config.Config, stdout io.Writer, log logrus.FieldLogger, reports ...*compare.Report) error {
	dir := cfg.Experiment.Output
	if dir == "" || len(reports) == 0 {
		return nil
	}
	files, err := report.Export(dir, reports...)
	if err != nil {
		return err
	}
	log.WithField("files", files).Info("results written")
	fmt.Fprintf(stdout, "results: %s\n", strings.Join(files, ", "))

	return nil
}
