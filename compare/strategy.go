package compare

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/astar"
	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/dfs"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/search"
)

// ErrUnknownStrategy is returned for names or values outside the Strategy set.
var ErrUnknownStrategy = errors.New("compare: unknown strategy")

// Strategy names one search algorithm.
type Strategy uint8

const (
	BFS Strategy = iota
	DFS
	AStar
)

// SearchFunc is the signature shared by bfs.Search, dfs.Search and astar.Search.
type SearchFunc func(g *gridgraph.Grid, start, goal gridgraph.Cell, opts ...search.Option) (*search.Result, error)

// Strategies lists every strategy in display order.
func Strategies() []Strategy { return []Strategy{BFS, DFS, AStar} }

// String returns the lower-case name used in configs and reports.
func (s Strategy) String() string {
	switch s {
	case BFS:
		return "bfs"
	case DFS:
		return "dfs"
	case AStar:
		return "astar"
	}
	return fmt.Sprintf("Strategy(%d)", uint8(s))
}

// Label returns the display name, e.g. "A*".
func (s Strategy) Label() string {
	switch s {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case AStar:
		return "A*"
	}
	return s.String()
}

// Func returns the search implementation for s.
func (s Strategy) Func() (SearchFunc, error) {
	switch s {
	case BFS:
		return bfs.Search, nil
	case DFS:
		return dfs.Search, nil
	case AStar:
		return astar.Search, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, uint8(s))
}

// ParseStrategy accepts "bfs", "dfs", "astar" or "a*" in any case.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "astar", "a*":
		return AStar, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// ParseStrategies parses every name; an empty list selects Strategies().
func ParseStrategies(names []string) ([]Strategy, error) {
	if len(names) == 0 {
		return Strategies(), nil
	}
	out := make([]Strategy, 0, len(names))
	for _, n := range names {
		s, err := ParseStrategy(n)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
