// Package config loads the dashboard configuration from defaults, an
// optional YAML file, and SALESDASH_* environment variables.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

var (
	ErrInvalidAlpha = errors.New("alpha must be strictly between 0 and 1")
	ErrInvalidBins  = errors.New("histogram_bins must not be negative")
)

type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `mapstructure:"addr" yaml:"addr"`
	// Alpha is the significance threshold used for diagnostic verdicts.
	Alpha float64 `mapstructure:"alpha" yaml:"alpha"`
	// HistogramBins fixes the histogram bin count; 0 selects Sturges' rule.
	HistogramBins int `mapstructure:"histogram_bins" yaml:"histogram_bins"`
}

func Default() *Config {
	return &Config{
		Addr:  ":8080",
		Alpha: 0.05,
	}
}

// Load reads configuration from the optional file at path, layered over
// defaults and under SALESDASH_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("addr", ":8080")
	v.SetDefault("alpha", 0.05)
	v.SetDefault("histogram_bins", 0)

	v.SetEnvPrefix("SALESDASH")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s, %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config, %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf("got %g, %w", c.Alpha, ErrInvalidAlpha)
	}
	if c.HistogramBins < 0 {
		return fmt.Errorf("got %d, %w", c.HistogramBins, ErrInvalidBins)
	}
	return nil
}
