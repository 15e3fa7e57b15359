// Package config loads the run configuration from a YAML or TOML file,
// an optional .env file and HYPERNET_* environment variables, in that
// order of increasing precedence. CLI flags are applied by the caller last.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypernet/flow"
	"github.com/katalvlaran/hypernet/internal/logging"
	"github.com/katalvlaran/hypernet/projection"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "HYPERNET_"

var (
	// ErrUnknownFormat indicates a config file extension other than .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("config: unknown file format")

	// ErrInvalid indicates a value that fails validation.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the complete run configuration.
type Config struct {
	Input        string   `yaml:"input" toml:"input"`
	OutputDir    string   `yaml:"output_dir" toml:"output_dir"`
	Threshold    float64  `yaml:"threshold" toml:"threshold"`
	DefaultGamma float64  `yaml:"default_gamma" toml:"default_gamma"`
	Workers      int      `yaml:"workers" toml:"workers"`
	Projections  []string `yaml:"projections" toml:"projections"`
	LogLevel     string   `yaml:"log_level" toml:"log_level"`
	LogFormat    string   `yaml:"log_format" toml:"log_format"`
	MetricsFile  string   `yaml:"metrics_file" toml:"metrics_file"`
}

// Default returns the built-in configuration: every projection, output
// under ./output, threshold 1e-10, default gamma 1.
func Default() Config {
	return Config{
		OutputDir:    "output",
		Threshold:    projection.DefaultThreshold,
		DefaultGamma: flow.DefaultGamma,
		LogLevel:     "info",
		LogFormat:    string(logging.FormatAuto),
	}
}

// Load returns Default() overlaid with the file at path (skipped when path
// is empty) and then with the process environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables that are already set.
// Missing files are ignored.
func LoadDotEnv(files ...string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return nil
}

func (c *Config) readFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("config: parse YAML %s: %w", path, err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(c); err != nil {
			return fmt.Errorf("config: parse TOML %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config: %s: %w", path, ErrUnknownFormat)
	}
	return nil
}

// ApplyEnv overrides fields from HYPERNET_* variables found by lookup.
// HYPERNET_PROJECTIONS is a comma-separated list.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) (string, bool) {
		v, ok := lookup(EnvPrefix + key)
		return strings.TrimSpace(v), ok && strings.TrimSpace(v) != ""
	}

	if v, ok := get("INPUT"); ok {
		c.Input = v
	}
	if v, ok := get("OUTPUT_DIR"); ok {
		c.OutputDir = v
	}
	if v, ok := get("THRESHOLD"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %sTHRESHOLD=%q: %w", EnvPrefix, v, ErrInvalid)
		}
		c.Threshold = f
	}
	if v, ok := get("DEFAULT_GAMMA"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %sDEFAULT_GAMMA=%q: %w", EnvPrefix, v, ErrInvalid)
		}
		c.DefaultGamma = f
	}
	if v, ok := get("WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %sWORKERS=%q: %w", EnvPrefix, v, ErrInvalid)
		}
		c.Workers = n
	}
	if v, ok := get("PROJECTIONS"); ok {
		c.Projections = SplitList(v)
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := get("METRICS_FILE"); ok {
		c.MetricsFile = v
	}
	return nil
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	if !finiteNonNegative(c.Threshold) {
		return fmt.Errorf("config: threshold=%g: %w", c.Threshold, ErrInvalid)
	}
	if !finiteNonNegative(c.DefaultGamma) {
		return fmt.Errorf("config: default_gamma=%g: %w", c.DefaultGamma, ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers=%d: %w", c.Workers, ErrInvalid)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: output_dir is empty: %w", ErrInvalid)
	}
	if _, err := c.Kinds(); err != nil {
		return fmt.Errorf("config: projections: %w: %w", ErrInvalid, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalid, err)
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalid, err)
	}
	return nil
}

// Kinds resolves Projections; an empty list selects every kind.
func (c *Config) Kinds() ([]projection.Kind, error) {
	if len(c.Projections) == 0 {
		return projection.AllKinds(), nil
	}
	out := make([]projection.Kind, 0, len(c.Projections))
	seen := make(map[projection.Kind]bool, len(c.Projections))
	for _, name := range c.Projections {
		k, err := projection.ParseKind(name)
		if err != nil {
			return nil, err
		}
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out, nil
}

// SplitList splits a comma-separated list, dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func finiteNonNegative(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f >= 0
}
