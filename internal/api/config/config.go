package config

import (
	"golang-review-intel/pkg/config"
)

// Scheduler holds the ingestion-schedule polling configuration.
type Scheduler struct {
	PollingInterval string `mapstructure:"polling_interval"`
}

// Config holds the full configuration for the analytics service.
type Config struct {
	App       config.App       `mapstructure:"app"`
	Logger    config.Logger    `mapstructure:"logger"`
	Database  config.Database  `mapstructure:"database"`
	Redis     config.Redis     `mapstructure:"redis"`
	API       config.API       `mapstructure:"api"`
	Analytics config.Analytics `mapstructure:"analytics"`
	Scheduler Scheduler        `mapstructure:"scheduler"`
}

// Load loads the analytics service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
