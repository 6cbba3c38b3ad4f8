package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix    = "GRIDSEARCH_"
	configEnvVar = "GRIDSEARCH_CONFIG"
)

// Loader assembles a Config from layered sources.
type Loader struct {
	k         *koanf.Koanf
	path      string
	envPrefix string
	lookupEnv func(string) (string, bool)
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile sets the YAML file to load. An empty path falls back to the
// GRIDSEARCH_CONFIG variable; with neither set, only defaults and
// environment apply.
func WithFile(path string) LoaderOption {
	return func(l *Loader) { l.path = path }
}

// WithEnvPrefix overrides the GRIDSEARCH_ prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader returns a Loader with default settings.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: envPrefix,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads, in increasing priority, defaults, the YAML file and the
// environment, then unmarshals and validates the result.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := l.path
	if path == "" {
		path, _ = l.lookupEnv(configEnvVar)
	}
	if path != "" {
		if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// defaults reproduces the classic run: the 4×4 classroom grid followed by
// generated 10×10, 15×15 and 20×20 grids at 10% pits.
func defaults() map[string]any {
	return map[string]any{
		"seed": 42,

		"log.level":       "info",
		"log.format":      "text",
		"log.output":      "stderr",
		"log.max_size":    10,
		"log.max_backups": 3,
		"log.max_age":     7,
		"log.compress":    false,

		"search.strategies": []string{"bfs", "dfs", "astar"},
		"search.timeout":    30 * time.Second,

		"scenarios": []map[string]any{
			{"name": "classroom", "rows": []string{".P.G", "..P.", "....", "A..."}},
			{"name": "random-10", "size": 10, "pit_probability": 0.1},
			{"name": "random-15", "size": 15, "pit_probability": 0.1},
			{"name": "random-20", "size": 20, "pit_probability": 0.1},
		},

		"render.text":      true,
		"render.png_dir":   "",
		"render.cell_size": 32,

		"report.table":     true,
		"report.xlsx_path": "",

		"metrics.textfile":  "",
		"metrics.namespace": "gridsearch",
	}
}

// envKeyMappings maps lower-cased variable names (prefix removed) to keys
// whose segments contain underscores.
var envKeyMappings = map[string]string{
	"log_file_path":     "log.file_path",
	"log_max_size":      "log.max_size",
	"log_max_backups":   "log.max_backups",
	"log_max_age":       "log.max_age",
	"render_png_dir":    "render.png_dir",
	"render_cell_size":  "render.cell_size",
	"report_xlsx_path":  "report.xlsx_path",
	"metrics_textfile":  "metrics.textfile",
	"metrics_namespace": "metrics.namespace",
}

// sliceFields are parsed from comma-separated values.
var sliceFields = map[string]bool{
	"search.strategies": true,
}

func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey, value string) (string, any) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		if key == "config" {
			return "", nil
		}
		if mapped, ok := envKeyMappings[key]; ok {
			key = mapped
		} else {
			key = strings.ReplaceAll(key, "_", ".")
		}
		if sliceFields[key] {
			return key, splitAndTrim(value)
		}
		return key, value
	}), nil)
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load loads configuration from path (may be empty) with default settings.
func Load(path string) (*Config, error) {
	return NewLoader(WithFile(path)).Load()
}
