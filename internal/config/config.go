// Package config loads gridsearch settings from defaults, an optional YAML
// file and GRIDSEARCH_* environment variables, in that order of priority.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/gridsearch/compare"
	"github.com/katalvlaran/gridsearch/internal/logger"
)

// Config is the root of the configuration tree.
type Config struct {
	// Seed drives every generated scenario without its own seed.
	Seed      int64            `koanf:"seed"`
	Log       LogConfig        `koanf:"log"`
	Search    SearchConfig     `koanf:"search"`
	Scenarios []ScenarioConfig `koanf:"scenarios"`
	Render    RenderConfig     `koanf:"render"`
	Report    ReportConfig     `koanf:"report"`
	Metrics   MetricsConfig    `koanf:"metrics"`
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"` // json, text
	Output     string `koanf:"output"` // stdout, stderr, file
	FilePath   string `koanf:"file_path"`
	MaxSize    int    `koanf:"max_size"` // MB
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// Logger converts the section to logger.Config.
func (l LogConfig) Logger() logger.Config {
	return logger.Config{
		Level:      l.Level,
		Format:     l.Format,
		Output:     l.Output,
		FilePath:   l.FilePath,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	}
}

// SearchConfig selects strategies and bounds each scenario's run.
type SearchConfig struct {
	Strategies []string      `koanf:"strategies"`
	Timeout    time.Duration `koanf:"timeout"` // 0 = no limit
}

// ScenarioConfig is either a literal grid (Rows) or a generated one
// (Size or Height/Width with PitProbability and Seed). A zero
// PitProbability selects the generator default; NoPits asks for a grid
// without obstacles.
type ScenarioConfig struct {
	Name           string   `koanf:"name"`
	Rows           []string `koanf:"rows"`
	Size           int      `koanf:"size"`
	Height         int      `koanf:"height"`
	Width          int      `koanf:"width"`
	PitProbability float64  `koanf:"pit_probability"`
	NoPits         bool     `koanf:"no_pits"`
	Seed           int64    `koanf:"seed"`
	EnsurePath     bool     `koanf:"ensure_path"`
}

// Generated reports whether the scenario is drawn by the generator.
func (s ScenarioConfig) Generated() bool { return len(s.Rows) == 0 }

// Dimensions returns the generated grid size; Size fills whichever of
// Height and Width is zero.
func (s ScenarioConfig) Dimensions() (rows, cols int) {
	rows, cols = s.Height, s.Width
	if rows == 0 {
		rows = s.Size
	}
	if cols == 0 {
		cols = s.Size
	}
	return rows, cols
}

// RenderConfig controls text and PNG output.
type RenderConfig struct {
	Text     bool   `koanf:"text"`
	PNGDir   string `koanf:"png_dir"` // empty = no PNGs
	CellSize int    `koanf:"cell_size"`
}

// ReportConfig controls the summary table and workbook export.
type ReportConfig struct {
	Table    bool   `koanf:"table"`
	XLSXPath string `koanf:"xlsx_path"` // empty = no workbook
}

// MetricsConfig controls the Prometheus textfile export.
type MetricsConfig struct {
	Textfile  string `koanf:"textfile"` // empty = disabled
	Namespace string `koanf:"namespace"`
}

// Strategies parses Search.Strategies.
func (c *Config) Strategies() ([]compare.Strategy, error) {
	return compare.ParseStrategies(c.Search.Strategies)
}

// Validate checks the whole tree and reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, fmt.Sprintf("log.level must be one of: debug, info, warn, error, got %s", c.Log.Level))
	}
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %s", c.Log.Format))
	}
	validOutputs := map[string]bool{"stdout": true, "stderr": true, "file": true}
	if !validOutputs[c.Log.Output] {
		errs = append(errs, fmt.Sprintf("log.output must be one of: stdout, stderr, file, got %s", c.Log.Output))
	}

	if _, err := c.Strategies(); err != nil {
		errs = append(errs, fmt.Sprintf("search.strategies: %v", err))
	}
	if c.Search.Timeout < 0 {
		errs = append(errs, "search.timeout must be non-negative")
	}

	if len(c.Scenarios) == 0 {
		errs = append(errs, "at least one scenario is required")
	}
	for i, s := range c.Scenarios {
		errs = append(errs, s.validate(i)...)
	}

	if c.Render.CellSize < 0 {
		errs = append(errs, "render.cell_size must be non-negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func (s ScenarioConfig) validate(i int) []string {
	var errs []string
	label := fmt.Sprintf("scenarios[%d]", i)
	if s.Name != "" {
		label += " (" + s.Name + ")"
	}
	if !s.Generated() {
		if s.Size != 0 || s.Height != 0 || s.Width != 0 {
			errs = append(errs, label+": rows and size are mutually exclusive")
		}
		if s.NoPits || s.PitProbability != 0 || s.EnsurePath {
			errs = append(errs, label+": pit settings apply only to generated scenarios")
		}
		return errs
	}
	rows, cols := s.Dimensions()
	if rows < 1 || cols < 1 || rows*cols < 2 {
		errs = append(errs, fmt.Sprintf("%s: generated grid needs at least 2 cells, got %dx%d", label, rows, cols))
	}
	if s.PitProbability < 0 || s.PitProbability > 1 {
		errs = append(errs, fmt.Sprintf("%s: pit_probability must be in [0,1], got %v", label, s.PitProbability))
	}
	if s.NoPits && s.PitProbability > 0 {
		errs = append(errs, label+": no_pits and pit_probability are mutually exclusive")
	}
	return errs
}
