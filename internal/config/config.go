// Package config handles configuration loading for blendplan.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Solver SolverConfig `mapstructure:"solver" yaml:"solver"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
}

// SolverConfig holds optimization engine settings. These are passed
// through to the solver adapter opaquely; the planning core never reads
// them.
type SolverConfig struct {
	Provider     string  `mapstructure:"provider"       yaml:"provider"`       // "highs"
	TimeLimitSec int     `mapstructure:"time_limit_sec" yaml:"time_limit_sec"` // 0 = no limit
	MIPGap       float64 `mapstructure:"mip_gap"        yaml:"mip_gap"`        // relative optimality gap
	Verbose      bool    `mapstructure:"verbose"        yaml:"verbose"`        // engine log output
}

// TimeLimit returns the configured solve time limit as a duration.
func (s SolverConfig) TimeLimit() time.Duration {
	return time.Duration(s.TimeLimitSec) * time.Second
}

// OutputConfig holds report rendering settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.blendplan/config.yaml (home directory)
//  3. /etc/blendplan/config.yaml (system)
//
// Environment variables override config file values.
// Format: BLENDPLAN_<SECTION>_<KEY>, e.g., BLENDPLAN_SOLVER_TIME_LIMIT_SEC
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".blendplan"))
	v.AddConfigPath("/etc/blendplan")

	v.SetEnvPrefix("BLENDPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvPrefix("BLENDPLAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("solver.provider", "highs")
	v.SetDefault("solver.time_limit_sec", 30)
	v.SetDefault("solver.mip_gap", 0.0) // prove optimality by default
	v.SetDefault("solver.verbose", false)

	v.SetDefault("output.format", "text")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
