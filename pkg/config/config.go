// Package config reads plugin settings from the environment. Command-line
// flags take precedence over every value loaded here.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/vertti/hostcheck/pkg/threshold"
)

// Config holds settings that may be supplied through the environment.
// Threshold fields are left empty when the corresponding check is disabled.
type Config struct {
	AllDisk   string `env:"HOSTCHECK_ALLDISK"`
	LocalDisk string `env:"HOSTCHECK_LOCALDISK"`
	Disk      string `env:"HOSTCHECK_DISK"`
	Memory    string `env:"HOSTCHECK_MEMORY"`
	CPU       string `env:"HOSTCHECK_CPU"`

	WorstWins        bool   `env:"HOSTCHECK_WORST_WINS" envDefault:"false"`
	StrictThresholds bool   `env:"HOSTCHECK_STRICT_THRESHOLDS" envDefault:"false"`
	NoColor          bool   `env:"HOSTCHECK_NO_COLOR" envDefault:"false"`
	LogLevel         string `env:"HOSTCHECK_LOG_LEVEL" envDefault:"warn"`
}

// Load parses the environment and validates threshold formats.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every non-empty threshold against the accepted format.
func (c *Config) Validate() error {
	for _, f := range c.thresholdFields() {
		if f.value == "" {
			continue
		}
		if err := threshold.Validate(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.env, err)
		}
	}
	return nil
}

type field struct {
	env   string
	value string
}

func (c *Config) thresholdFields() []field {
	return []field{
		{"HOSTCHECK_ALLDISK", c.AllDisk},
		{"HOSTCHECK_LOCALDISK", c.LocalDisk},
		{"HOSTCHECK_DISK", c.Disk},
		{"HOSTCHECK_MEMORY", c.Memory},
		{"HOSTCHECK_CPU", c.CPU},
	}
}
