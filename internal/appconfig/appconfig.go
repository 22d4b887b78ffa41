// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// legacyConfigPath is the path to the configuration file used in previous versions.
	legacyConfigPath = "config.json"
	// defaultTrials is the number of timed invocations recorded per variant.
	defaultTrials = 10
	// defaultWarmup is the number of untimed invocations run before sampling starts.
	defaultWarmup = 1
	// defaultInputSize is the length of the shared input buffer.
	defaultInputSize = 1_000_000
	// defaultTolerance is the relative error allowed between variant results.
	defaultTolerance = 1e-9
	// defaultCompileTimeout bounds a single toolchain invocation.
	defaultCompileTimeout = 60 * time.Second
)

//go:embed schema.json
var configSchema string

// Config represents the top-level application configuration.
type Config struct {
	Suites         []string `json:"suites,omitempty"`
	Trials         int      `json:"trials,omitempty"`
	Warmup         *int     `json:"warmup,omitempty"`
	InputSize      int      `json:"inputSize,omitempty"`
	Seed           uint64   `json:"seed,omitempty"`
	Tolerance      float64  `json:"tolerance,omitempty"`
	Compiler       string   `json:"compiler,omitempty"`
	WorkDir        string   `json:"workDir,omitempty"`
	CompileTimeout int      `json:"compileTimeout,omitempty"`
	Debug          bool     `json:"debug"`
	JSONMode       bool     `json:"jsonMode"`
	LogFile        string   `json:"logFile,omitempty"`
	ConfigPath     string   `json:"-"`
}

// TrialCount returns the number of timed trials per variant, applying the default if unset.
func (c Config) TrialCount() int {
	if c.Trials <= 0 {
		return defaultTrials
	}
	return c.Trials
}

// WarmupCount returns the number of warmup invocations. Unset applies the
// default; an explicit zero disables warmup.
func (c Config) WarmupCount() int {
	if c.Warmup == nil {
		return defaultWarmup
	}
	if *c.Warmup < 0 {
		return 0
	}
	return *c.Warmup
}

// BufferSize returns the shared input buffer length, applying the default if unset.
func (c Config) BufferSize() int {
	if c.InputSize <= 0 {
		return defaultInputSize
	}
	return c.InputSize
}

// EquivalenceTolerance returns the relative tolerance used when comparing variant results.
func (c Config) EquivalenceTolerance() float64 {
	if c.Tolerance <= 0 {
		return defaultTolerance
	}
	return c.Tolerance
}

// CompilerPath returns the toolchain binary used to build native kernels.
func (c Config) CompilerPath() string {
	if cc := strings.TrimSpace(c.Compiler); cc != "" {
		return cc
	}
	return "cc"
}

// CompileTimeoutDuration returns the timeout for a single toolchain invocation.
func (c Config) CompileTimeoutDuration() time.Duration {
	if c.CompileTimeout <= 0 {
		return defaultCompileTimeout
	}
	return time.Duration(c.CompileTimeout) * time.Second
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "stadion.log"
}

// ResolvePath returns the configuration file to read. A missing default path
// falls back to the legacy location; ok is false when neither file exists.
func ResolvePath(path string) (string, bool) {
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	if path == DefaultConfigPath {
		if _, err := os.Stat(legacyConfigPath); err == nil {
			return legacyConfigPath, true
		}
	}
	return "", false
}

// Load reads the application configuration from the specified path, with fallback to a legacy path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err == nil {
		config.ConfigPath = path
		return config, nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if path == DefaultConfigPath {
			config, legacyErr := loadFromPath(legacyConfigPath)
			if legacyErr == nil {
				config.ConfigPath = legacyConfigPath
				return config, nil
			}
			if errors.Is(legacyErr, os.ErrNotExist) {
				return Config{}, fmt.Errorf("no configuration file found (searched %q and %q)", DefaultConfigPath, legacyConfigPath)
			}
			return Config{}, fmt.Errorf("could not read config file %q: %w", legacyConfigPath, legacyErr)
		}
		return Config{}, fmt.Errorf("no configuration file found at %q", path)
	}

	return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := Validate(data); err != nil {
		return Config{}, fmt.Errorf("config file %q: %w", path, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}

	return config, nil
}
