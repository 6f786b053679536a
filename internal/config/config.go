// Package config loads the layered siteswap configuration.
package config

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/siteswap/pkg/siteswap"
)

// FileName is the project config file name.
const FileName = ".siteswap.json"

// Value ranges applied by [Clamp]. The height range starts at the
// configured ball count.
const (
	MinBalls      = 1
	MaxBalls      = siteswap.MaxThrow
	MaxHeight     = siteswap.MaxThrow
	MinMaxResults = 5
	MaxMaxResults = 100
	MinMaxLength  = 1
	MaxMaxLength  = 5
	MinMaxSteps   = 1
	MaxMaxSteps   = 50_000_000
)

// Config holds all configuration options.
type Config struct {
	Balls       int    `json:"balls"`
	MaxHeight   int    `json:"max_height"`
	MaxResults  int    `json:"max_results"`
	MaxLength   int    `json:"max_length"`
	Order       string `json:"order"`
	MaxSteps    int    `json:"max_steps"`
	Timeout     string `json:"timeout,omitempty"`
	HistoryFile string `json:"history_file,omitempty"`

	// Resolved values (computed, not serialized)
	EffectiveCwd string  `json:"-"`
	Sources      Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project or explicit config if loaded, empty otherwise
}

// fileConfig is the on-disk shape. Pointers distinguish "absent" from zero.
type fileConfig struct {
	Balls       *int    `json:"balls"`
	MaxHeight   *int    `json:"max_height"`
	MaxResults  *int    `json:"max_results"`
	MaxLength   *int    `json:"max_length"`
	Order       *string `json:"order"`
	MaxSteps    *int    `json:"max_steps"`
	Timeout     *string `json:"timeout"`
	HistoryFile *string `json:"history_file"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Balls:      3,
		MaxHeight:  9,
		MaxResults: 10,
		MaxLength:  3,
		Order:      siteswap.DepthFirst.String(),
		MaxSteps:   siteswap.DefaultMaxSteps,
	}
}

// Warning describes a value that was clamped into range.
type Warning struct {
	Key   string
	Given int
	Used  int
}

func (w Warning) String() string {
	return fmt.Sprintf("%s=%d out of range, using %d", w.Key, w.Given, w.Used)
}

// LoadInput holds the inputs for Load.
type LoadInput struct {
	WorkDir    string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath string            // -c/--config flag value
	Env        map[string]string // environment variables
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/siteswap/config.json or $XDG_CONFIG_HOME/siteswap/config.json)
// 3. Project config file (.siteswap.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty, must exist)
//
// Numeric values are clamped (see [Clamp]); the returned warnings list every
// clamp. Command flags are applied by the caller, which clamps again.
func Load(input LoadInput) (Config, []Warning, error) {
	workDir := input.WorkDir
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, nil, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := Default()
	cfg.EffectiveCwd = workDir

	if globalPath := globalConfigPath(input.Env); globalPath != "" {
		fc, loaded, err := loadFile(globalPath, false)
		if err != nil {
			return Config{}, nil, err
		}

		if loaded {
			cfg = merge(cfg, fc)
			cfg.Sources.Global = globalPath
		}
	}

	projectPath, mustExist := filepath.Join(workDir, FileName), false
	if input.ConfigPath != "" {
		projectPath, mustExist = input.ConfigPath, true
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(workDir, projectPath)
		}
	}

	fc, loaded, err := loadFile(projectPath, mustExist)
	if err != nil {
		return Config{}, nil, err
	}

	if loaded {
		cfg = merge(cfg, fc)
		cfg.Sources.Project = projectPath
	}

	err = Validate(cfg)
	if err != nil {
		return Config{}, nil, err
	}

	cfg.HistoryFile = resolvePath(cfg.HistoryFile, workDir, input.Env)

	cfg, warnings := Clamp(cfg)

	return cfg, warnings, nil
}

// globalConfigPath returns the path to the global config file.
// Returns empty string if neither XDG_CONFIG_HOME nor HOME is set.
func globalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "siteswap", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "siteswap", "config.json")
	}

	return ""
}

// loadFile loads a config file. If mustExist is false, a missing file is not
// an error and reports loaded=false.
func loadFile(path string, mustExist bool) (fileConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case os.IsNotExist(err) && mustExist:
			return fileConfig{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
		case os.IsNotExist(err):
			return fileConfig{}, false, nil
		default:
			return fileConfig{}, false, fmt.Errorf("%w: %s: %w", ErrConfigFileRead, path, err)
		}
	}

	fc, err := parse(data)
	if err != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return fc, true, nil
}

func parse(data []byte) (fileConfig, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var fc fileConfig

	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()

	err = dec.Decode(&fc)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return fc, nil
}

func merge(base Config, overlay fileConfig) Config {
	if overlay.Balls != nil {
		base.Balls = *overlay.Balls
	}

	if overlay.MaxHeight != nil {
		base.MaxHeight = *overlay.MaxHeight
	}

	if overlay.MaxResults != nil {
		base.MaxResults = *overlay.MaxResults
	}

	if overlay.MaxLength != nil {
		base.MaxLength = *overlay.MaxLength
	}

	if overlay.Order != nil {
		base.Order = *overlay.Order
	}

	if overlay.MaxSteps != nil {
		base.MaxSteps = *overlay.MaxSteps
	}

	if overlay.Timeout != nil {
		base.Timeout = *overlay.Timeout
	}

	if overlay.HistoryFile != nil {
		base.HistoryFile = *overlay.HistoryFile
	}

	return base
}

// Validate checks the values that cannot be clamped.
func Validate(cfg Config) error {
	_, err := siteswap.ParseOrder(cfg.Order)
	if err != nil {
		return err
	}

	_, err = cfg.TimeoutDuration()

	return err
}

// TimeoutDuration parses Timeout. An empty Timeout means no timeout (0).
func (c Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Timeout)
	}

	if d < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidTimeout, c.Timeout)
	}

	return d, nil
}

// Clamp forces numeric values into their ranges and reports each change.
func Clamp(cfg Config) (Config, []Warning) {
	var warnings []Warning

	clamp := func(key string, v *int, lo, hi int) {
		used := max(lo, min(*v, hi))
		if used != *v {
			warnings = append(warnings, Warning{Key: key, Given: *v, Used: used})
			*v = used
		}
	}

	clamp("balls", &cfg.Balls, MinBalls, MaxBalls)
	clamp("max_height", &cfg.MaxHeight, cfg.Balls, MaxHeight)
	clamp("max_results", &cfg.MaxResults, MinMaxResults, MaxMaxResults)
	clamp("max_length", &cfg.MaxLength, MinMaxLength, MaxMaxLength)
	clamp("max_steps", &cfg.MaxSteps, MinMaxSteps, MaxMaxSteps)

	return cfg, warnings
}

// SearchParams converts the configuration into search parameters.
func (c Config) SearchParams() (siteswap.SearchParams, error) {
	order, err := siteswap.ParseOrder(c.Order)
	if err != nil {
		return siteswap.SearchParams{}, err
	}

	return siteswap.SearchParams{
		ObjectCount:    c.Balls,
		MaxHeight:      c.MaxHeight,
		MaxExtraLength: c.MaxLength,
		MaxResults:     c.MaxResults,
		Order:          order,
		MaxSteps:       c.MaxSteps,
	}, nil
}

// Context returns ctx bounded by Timeout, if one is set.
func (c Config) Context(ctx context.Context) (context.Context, context.CancelFunc, error) {
	d, err := c.TimeoutDuration()
	if err != nil {
		return nil, nil, err
	}

	if d == 0 {
		ctx, cancel := context.WithCancel(ctx)
		return ctx, cancel, nil
	}

	ctx, cancel := context.WithTimeout(ctx, d)

	return ctx, cancel, nil
}

// resolvePath expands a leading "~/" with HOME and makes relative paths
// absolute against workDir. Empty stays empty.
func resolvePath(path, workDir string, env map[string]string) string {
	if path == "" {
		return ""
	}

	if rest, ok := strings.CutPrefix(path, "~/"); ok && env["HOME"] != "" {
		path = filepath.Join(env["HOME"], rest)
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	return path
}
