// Package search defines the result contract, tunable options and error
// definitions shared by the bfs, dfs and astar packages.
package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/gridgraph"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrInvalidCell is returned when start or goal lies outside the grid.
	ErrInvalidCell = errors.New("search: cell out of bounds")
)

// Result is the outcome of one search call.
//
//   - Path: Start→Goal inclusive, or nil when no path exists.
//   - Expanded: cells in the order they were popped from the frontier.
//
// A nil Path is a normal outcome, never an error.
type Result struct {
	Path     []gridgraph.Cell
	Expanded []gridgraph.Cell
}

// Found reports whether a path was found.
func (r *Result) Found() bool {
	return r != nil && r.Path != nil
}

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cooperative cancellation, checked once per pop.
	Ctx context.Context

	// OnExpand is called after a cell is popped and logged. If it returns
	// an error, the search aborts and propagates that error.
	OnExpand func(c gridgraph.Cell) error

	// Heuristic estimates the remaining moves from a cell to the goal.
	// Only informed searches read it; nil selects their default.
	Heuristic func(from, goal gridgraph.Cell) int
}

// DefaultOptions returns Options with a background context and a no-op
// OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnExpand: func(gridgraph.Cell) error { return nil },
	}
}

// Apply builds Options from DefaultOptions and the given opts.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithContext sets a custom context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(c gridgraph.Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// Validate checks the common preconditions of every search:
// g must be non-nil and both endpoints must be in bounds.
func Validate(g *gridgraph.Grid, start, goal gridgraph.Cell) error {
	if g == nil {
		return ErrNilGrid
	}
	if !g.InBounds(start) {
		return fmt.Errorf("%w: start %v in %dx%d grid", ErrInvalidCell, start, g.Rows(), g.Cols())
	}
	if !g.InBounds(goal) {
		return fmt.Errorf("%w: goal %v in %dx%d grid", ErrInvalidCell, goal, g.Rows(), g.Cols())
	}
	return nil
}

// Canceled performs the once-per-pop cancellation check.
func (o *Options) Canceled() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}
