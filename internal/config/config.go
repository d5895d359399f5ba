package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment specifies the current running environment (development, production)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level when set
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// Seed describes where the store's catalog, accounts and scripted activity come from
	Seed struct {
		// Path is the location of the seed YAML file
		Path string `env:"SEED_PATH" env-default:"seed.yml" yaml:"path"`
	} `yaml:"seed"`

	// Metrics contains collector settings
	Metrics struct {
		// Namespace prefixes every metric name
		Namespace string `env:"METRICS_NAMESPACE" env-default:"candystore" yaml:"namespace"`
		// Print dumps the collected metrics after a simulation
		Print bool `env:"METRICS_PRINT" env-default:"false" yaml:"print"`
	} `yaml:"metrics"`
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// LoadEnv fills a Config from environment variables and defaults only. It is
// used when no config file exists.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config from env: %w", err)
	}

	return &cfg, nil
}
