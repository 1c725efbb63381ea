// Package config handles dspstat configuration via YAML files and environment variables.
//
// Configuration Precedence (highest to lowest):
//  1. Command-line flags (--seed, --sizes, etc.)
//  2. Environment variables (DSPSTAT_*)
//  3. Config file (dspstat.yaml)
//  4. Built-in defaults
//
// Example Usage:
//
//	cfg, err := config.LoadFromFile(config.FindConfigFile())
//	if err != nil {
//		log.Fatalf("Invalid config: %v", err)
//	}
//	config.ApplyEnvVars(cfg)
//
// Environment Variables (all use DSPSTAT_ prefix):
//
// Bench:
//   - DSPSTAT_SIZES="64,256,1024"
//   - DSPSTAT_SIGNAL="gaussian"
//   - DSPSTAT_SEED=42
//   - DSPSTAT_REPEAT=3
//
// Output:
//   - DSPSTAT_PRECISION=7
//
// Logging:
//   - DSPSTAT_LOG_LEVEL="info" or "debug"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/orneryd/dspstat/pkg/samples"
)

// Config holds all dspstat configuration.
//
// Sections:
//   - Bench: synthetic benchmark settings
//   - Output: result formatting
//   - Logging: log verbosity
type Config struct {
	Bench   BenchConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// BenchConfig controls the bench command.
type BenchConfig struct {
	// Sizes are the buffer lengths to benchmark
	Sizes []int
	// Signal is the synthetic signal kind (uniform, gaussian, sine, constant)
	Signal string
	// Seed makes generated buffers reproducible
	Seed int64
	// Repeat runs each size this many times and keeps the fastest
	Repeat int
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	// Precision is the number of significant digits printed for results
	Precision int
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is "info" or "debug"
	Level string
}

// YAMLConfig represents the YAML configuration file structure.
type YAMLConfig struct {
	Bench struct {
		Sizes  []int  `yaml:"sizes"`
		Signal string `yaml:"signal"`
		Seed   *int64 `yaml:"seed"`
		Repeat int    `yaml:"repeat"`
	} `yaml:"bench"`
	Output struct {
		Precision int `yaml:"precision"`
	} `yaml:"output"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadDefaults returns a Config populated with built-in defaults.
func LoadDefaults() *Config {
	return &Config{
		Bench: BenchConfig{
			Sizes:  []int{16, 64, 256, 1024, 4096},
			Signal: string(samples.KindUniform),
			Seed:   42,
			Repeat: 1,
		},
		Output: OutputConfig{
			Precision: 8,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadFromFile loads configuration from a YAML file on top of the defaults.
//
// A missing file (or an empty path) is not an error: the defaults are
// returned. Environment variables are NOT applied; call ApplyEnvVars for that.
//
// Example config.yaml:
//
//	bench:
//	  sizes: [64, 256, 1024]
//	  signal: gaussian
//	  seed: 7
//	output:
//	  precision: 6
//	logging:
//	  level: debug
func LoadFromFile(configPath string) (*Config, error) {
	config := LoadDefaults()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlCfg YAMLConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(yamlCfg.Bench.Sizes) > 0 {
		config.Bench.Sizes = yamlCfg.Bench.Sizes
	}
	if yamlCfg.Bench.Signal != "" {
		config.Bench.Signal = yamlCfg.Bench.Signal
	}
	if yamlCfg.Bench.Seed != nil {
		config.Bench.Seed = *yamlCfg.Bench.Seed
	}
	if yamlCfg.Bench.Repeat > 0 {
		config.Bench.Repeat = yamlCfg.Bench.Repeat
	}
	if yamlCfg.Output.Precision > 0 {
		config.Output.Precision = yamlCfg.Output.Precision
	}
	if yamlCfg.Logging.Level != "" {
		config.Logging.Level = yamlCfg.Logging.Level
	}

	return config, nil
}

// ApplyEnvVars overrides config fields from DSPSTAT_* environment variables.
// Unset or unparsable variables leave the current value in place.
func ApplyEnvVars(config *Config) {
	config.Bench.Sizes = getEnvIntSlice("DSPSTAT_SIZES", config.Bench.Sizes)
	config.Bench.Signal = getEnv("DSPSTAT_SIGNAL", config.Bench.Signal)
	config.Bench.Seed = getEnvInt64("DSPSTAT_SEED", config.Bench.Seed)
	config.Bench.Repeat = getEnvInt("DSPSTAT_REPEAT", config.Bench.Repeat)
	config.Output.Precision = getEnvInt("DSPSTAT_PRECISION", config.Output.Precision)
	config.Logging.Level = getEnv("DSPSTAT_LOG_LEVEL", config.Logging.Level)
}

// Validate checks the configuration for invalid settings.
//
// Returns nil if configuration is valid, or an error describing the problem.
func (c *Config) Validate() error {
	if len(c.Bench.Sizes) == 0 {
		return fmt.Errorf("bench sizes must not be empty")
	}
	for _, n := range c.Bench.Sizes {
		if n < 0 {
			return fmt.Errorf("invalid bench size: %d", n)
		}
	}
	if _, err := samples.ParseKind(c.Bench.Signal); err != nil {
		return fmt.Errorf("invalid bench signal: %w", err)
	}
	if c.Bench.Repeat <= 0 {
		return fmt.Errorf("invalid bench repeat: %d", c.Bench.Repeat)
	}
	if c.Output.Precision <= 0 || c.Output.Precision > 17 {
		return fmt.Errorf("invalid output precision: %d", c.Output.Precision)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "info", "debug":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	return nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.Logging.Level, "debug")
}

// String returns a one-line representation of the Config for logging.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Sizes: %v, Signal: %s, Seed: %d, Repeat: %d, Precision: %d, LogLevel: %s}",
		c.Bench.Sizes, c.Bench.Signal, c.Bench.Seed, c.Bench.Repeat,
		c.Output.Precision, c.Logging.Level,
	)
}

// FindConfigFile returns the first existing config file, or "" if none exist.
//
// Search order:
//  1. ./dspstat.yaml
//  2. ~/.dspstat.yaml
//  3. ~/.config/dspstat/config.yaml
func FindConfigFile() string {
	candidates := []string{"dspstat.yaml"}

	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates,
			filepath.Join(home, ".dspstat.yaml"),
			filepath.Join(home, ".config", "dspstat", "config.yaml"),
		)
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// Helper functions for environment variable parsing

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvIntSlice(key string, defaultVal []int) []int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	var out []int
	for _, part := range strings.Split(val, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i, err := strconv.Atoi(part)
		if err != nil {
			return defaultVal
		}
		out = append(out, i)
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
