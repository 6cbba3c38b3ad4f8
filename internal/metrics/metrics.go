// Package metrics records search outcomes as Prometheus metrics on a
// private registry and exports them in the node_exporter textfile format.
package metrics

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/gridsearch/compare"
)

// Metrics holds the collectors for one process run.
type Metrics struct {
	registry *prometheus.Registry

	SearchesTotal   *prometheus.CounterVec
	SearchDuration  *prometheus.HistogramVec
	CellsExpanded   *prometheus.HistogramVec
	PathCost        *prometheus.GaugeVec
	GridCells       *prometheus.GaugeVec
	ScenariosFailed prometheus.Counter
}

// New registers every collector under namespace on a fresh registry.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,

		SearchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Total number of searches by strategy and whether a path was found",
			},
			[]string{"strategy", "found"},
		),

		SearchDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Wall time of a single search",
				Buckets:   []float64{.00001, .0001, .001, .01, .1, 1, 10},
			},
			[]string{"strategy"},
		),

		CellsExpanded: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "cells_expanded",
				Help:      "Number of frontier pops per search",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"strategy"},
		),

		PathCost: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "path_cost",
				Help:      "Moves on the last path found, or -1 when no path exists",
			},
			[]string{"scenario", "strategy"},
		),

		GridCells: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "grid_cells",
				Help:      "Number of cells in each scenario grid",
			},
			[]string{"scenario"},
		),

		ScenariosFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "scenarios_failed_total",
				Help:      "Scenarios aborted by an error or timeout",
			},
		),
	}
}

// Registry exposes the private registry, e.g. for an HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveGrid records the size of a scenario grid.
func (m *Metrics) ObserveGrid(scenario string, cells int) {
	m.GridCells.WithLabelValues(scenario).Set(float64(cells))
}

// Observe records one outcome of scenario.
func (m *Metrics) Observe(scenario string, o compare.Outcome) {
	strategy := o.Strategy.String()
	found := o.Result.Found()

	m.SearchesTotal.WithLabelValues(strategy, strconv.FormatBool(found)).Inc()
	m.SearchDuration.WithLabelValues(strategy).Observe(o.Elapsed.Seconds())
	m.CellsExpanded.WithLabelValues(strategy).Observe(float64(o.Summary.Expansions))

	cost := float64(o.Summary.Cost)
	if !found {
		cost = -1
	}
	m.PathCost.WithLabelValues(scenario, strategy).Set(cost)
}

// WriteTextfile atomically writes the registry to path in the text
// exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
