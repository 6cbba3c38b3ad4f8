package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/generator"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/internal/config"
)

// scenario is one named grid ready for searching.
type scenario struct {
	name string
	grid *gridgraph.Grid
}

// buildScenarios turns the configured scenarios into grids. Generated
// scenarios without their own seed draw from a stream derived from the
// top-level seed, so adding a seeded scenario never shifts the others.
func buildScenarios(cfg *config.Config) ([]scenario, error) {
	base := generator.NewSeeded(cfg.Seed)
	out := make([]scenario, 0, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		name := sc.Name
		if name == "" {
			name = fmt.Sprintf("scenario-%d", i+1)
		}
		stream := base.Derive(uint64(i))

		var (
			g   *gridgraph.Grid
			err error
		)
		if !sc.Generated() {
			g, err = gridgraph.Parse(sc.Rows)
		} else {
			gen := stream
			if sc.Seed != 0 {
				gen = generator.NewSeeded(sc.Seed)
			}
			rows, cols := sc.Dimensions()
			g, err = gen.Generate(generator.Options{
				Rows:           rows,
				Cols:           cols,
				PitProbability: sc.PitProbability,
				NoPits:         sc.NoPits,
				EnsurePath:     sc.EnsurePath,
			})
		}
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", name, err)
		}
		out = append(out, scenario{name: name, grid: g})
	}
	return out, nil
}

// fileStem makes a scenario name safe to use in a file name.
func fileStem(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
