// Command gridsearch runs BFS, DFS and A* over a set of grid scenarios and
// reports paths, expansion orders and costs side by side.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch/compare"
	"github.com/katalvlaran/gridsearch/internal/config"
	"github.com/katalvlaran/gridsearch/internal/logger"
	"github.com/katalvlaran/gridsearch/internal/metrics"
	"github.com/katalvlaran/gridsearch/render"
	"github.com/katalvlaran/gridsearch/report"
)

func main() {
	// Minimal logger until the configured one is built.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run loads the configuration named by args and executes every scenario,
// writing console output to stdout.
func run(stdout io.Writer, args []string) (err error) {
	fs := flag.NewFlagSet("gridsearch", flag.ContinueOnError)
	fs.SetOutput(stdout)
	configPath := fs.String("config", "", "path to a YAML config file (or set GRIDSEARCH_CONFIG)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	strategies, err := cfg.Strategies()
	if err != nil {
		return err
	}

	log, closer, err := logger.New(cfg.Log.Logger())
	if err != nil {
		return err
	}
	defer closer.Close()

	runID := uuid.NewString()
	log = log.With("run_id", runID)
	log.Info("starting", "scenarios", len(cfg.Scenarios), "strategies", len(strategies), "seed", cfg.Seed)

	scenarios, err := buildScenarios(cfg)
	if err != nil {
		return err
	}

	rec := metrics.New(cfg.Metrics.Namespace)
	if cfg.Metrics.Textfile != "" {
		// Flushed on every exit so failed scenarios are still counted.
		defer func() {
			if werr := rec.WriteTextfile(cfg.Metrics.Textfile); werr != nil {
				err = errors.Join(err, werr)
				return
			}
			log.Info("metrics written", "path", cfg.Metrics.Textfile)
		}()
	}
	exports := make([]report.Scenario, 0, len(scenarios))

	for _, sc := range scenarios {
		outcomes, err := runScenario(cfg, log, sc, strategies)
		if err != nil {
			rec.ScenariosFailed.Inc()
			log.Error("scenario failed", "name", sc.name, "error", err)
			return fmt.Errorf("scenario %q: %w", sc.name, err)
		}

		rec.ObserveGrid(sc.name, sc.grid.Len())
		for _, o := range outcomes {
			rec.Observe(sc.name, o)
		}
		exports = append(exports, report.Scenario{Name: sc.name, Grid: sc.grid, Outcomes: outcomes})

		if err := emit(stdout, cfg, log, sc, outcomes); err != nil {
			return err
		}
	}

	if cfg.Report.XLSXPath != "" {
		if err := report.WriteXLSX(cfg.Report.XLSXPath, runID, exports); err != nil {
			return err
		}
		log.Info("workbook written", "path", cfg.Report.XLSXPath)
	}
	log.Info("finished", "scenarios", len(scenarios))
	return nil
}

func runScenario(cfg *config.Config, log *slog.Logger, sc scenario, strategies []compare.Strategy) ([]compare.Outcome, error) {
	ctx := context.Background()
	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Search.Timeout)
		defer cancel()
	}

	log.Debug("scenario", "name", sc.name, "rows", sc.grid.Rows(), "cols", sc.grid.Cols(),
		"connected", sc.grid.Connected())
	return compare.Run(ctx, sc.grid, strategies, compare.WithLogger(log.With("scenario", sc.name)))
}

// emit writes the console listing, summary table and PNG heatmaps for one
// scenario, as enabled by cfg.
func emit(stdout io.Writer, cfg *config.Config, log *slog.Logger, sc scenario, outcomes []compare.Outcome) error {
	if cfg.Render.Text {
		if _, err := fmt.Fprintf(stdout, "=== %s (%dx%d) ===\n", sc.name, sc.grid.Rows(), sc.grid.Cols()); err != nil {
			return err
		}
		if err := report.Console(stdout, sc.grid, outcomes); err != nil {
			return err
		}
	}
	if cfg.Report.Table {
		if _, err := fmt.Fprintln(stdout); err != nil {
			return err
		}
		if err := report.Table(stdout, outcomes); err != nil {
			return err
		}
	}

	if cfg.Render.PNGDir == "" {
		return nil
	}
	if err := os.MkdirAll(cfg.Render.PNGDir, 0o755); err != nil {
		return fmt.Errorf("create png dir: %w", err)
	}
	for _, o := range outcomes {
		// Only found paths are plotted.
		if !o.Result.Found() {
			continue
		}
		path := filepath.Join(cfg.Render.PNGDir, fmt.Sprintf("%s-%s.png", fileStem(sc.name), o.Strategy))
		opts := render.HeatmapOptions{
			CellSize: cfg.Render.CellSize,
			Title:    fmt.Sprintf("%s path: %s", o.Strategy.Label(), sc.name),
		}
		if err := render.SavePNG(path, sc.grid, o.Result, opts); err != nil {
			return err
		}
		log.Debug("heatmap written", "path", path)
	}
	return nil
}
