package compare

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// Outcome is one strategy's result on one grid.
type Outcome struct {
	Strategy Strategy
	Result   *search.Result
	Summary  search.Summary
	Elapsed  time.Duration
}

// Option configures Run.
type Option func(*runConfig)

type runConfig struct {
	logger     *slog.Logger
	tracer     trace.Tracer
	searchOpts []search.Option
}

// WithLogger routes per-strategy debug logs to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *runConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracer sets the tracer for per-strategy spans. By default the global
// provider's "gridsearch/compare" tracer is used.
func WithTracer(t trace.Tracer) Option {
	return func(c *runConfig) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithSearchOptions forwards opts to every search. Hooks passed here run
// concurrently from several goroutines.
func WithSearchOptions(opts ...search.Option) Option {
	return func(c *runConfig) {
		c.searchOpts = append(c.searchOpts, opts...)
	}
}

// Run searches g from its Start to its Goal once per strategy, each in its
// own goroutine, and returns the outcomes in the order of strategies. An
// empty list runs Strategies(). The first search error cancels the others
// and is returned. A nil ctx is treated as context.Background().
func Run(ctx context.Context, g *gridgraph.Grid, strategies []Strategy, opts ...Option) ([]Outcome, error) {
	if g == nil {
		return nil, search.ErrNilGrid
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if len(strategies) == 0 {
		strategies = Strategies()
	}
	cfg := runConfig{
		logger: slog.Default(),
		tracer: otel.Tracer("gridsearch/compare"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	funcs := make([]SearchFunc, len(strategies))
	for i, s := range strategies {
		fn, err := s.Func()
		if err != nil {
			return nil, err
		}
		funcs[i] = fn
	}

	outcomes := make([]Outcome, len(strategies))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, s := range strategies {
		eg.Go(func() error {
			out, err := cfg.runOne(egCtx, g, s, funcs[i])
			outcomes[i] = out
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

// runOne executes a single strategy inside its own span.
func (c *runConfig) runOne(ctx context.Context, g *gridgraph.Grid, s Strategy, fn SearchFunc) (Outcome, error) {
	ctx, span := c.tracer.Start(ctx, "compare."+s.String(),
		trace.WithAttributes(
			attribute.String("strategy", s.String()),
			attribute.Int("grid.rows", g.Rows()),
			attribute.Int("grid.cols", g.Cols()),
		),
	)
	defer span.End()

	opts := make([]search.Option, 0, len(c.searchOpts)+1)
	opts = append(opts, c.searchOpts...)
	opts = append(opts, search.WithContext(ctx))

	began := time.Now()
	res, err := fn(g, g.Start(), g.Goal(), opts...)
	out := Outcome{
		Strategy: s,
		Result:   res,
		Summary:  search.Summarize(res),
		Elapsed:  time.Since(began),
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		c.logger.Warn("search failed", slog.String("strategy", s.String()), slog.Any("error", err))
		return out, fmt.Errorf("compare: %s: %w", s, err)
	}

	span.SetAttributes(
		attribute.Bool("found", res.Found()),
		attribute.Int("cost", out.Summary.Cost),
		attribute.Int("expanded", out.Summary.Expansions),
	)
	span.SetStatus(codes.Ok, "")
	c.logger.Debug("search finished",
		slog.String("strategy", s.String()),
		slog.Bool("found", res.Found()),
		slog.Int("cost", out.Summary.Cost),
		slog.Int("expanded", out.Summary.Expansions),
		slog.Duration("elapsed", out.Elapsed),
	)
	return out, nil
}
