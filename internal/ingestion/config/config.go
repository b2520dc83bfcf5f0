package config

import (
	"time"

	"golang-review-intel/pkg/config"
)

// Ingestion holds worker-specific configuration.
type Ingestion struct {
	RedisStreamTaskTimeout time.Duration `mapstructure:"redis_stream_task_timeout"`
	FetchTimeout           time.Duration `mapstructure:"fetch_timeout"`
}

// Google holds configuration for the review source APIs.
type Google struct {
	APIKey                 string `mapstructure:"api_key"`
	PlacesBaseURL          string `mapstructure:"places_base_url"`
	BusinessProfileBaseURL string `mapstructure:"business_profile_base_url"`
	MaxRequestPerMinute    int    `mapstructure:"max_request_per_minute"`
	PageSize               int    `mapstructure:"page_size"`
	MaxPages               int    `mapstructure:"max_pages"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// AI holds configuration for the reply suggestion provider.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the ingestion service.
type Config struct {
	App       config.App       `mapstructure:"app"`
	Logger    config.Logger    `mapstructure:"logger"`
	Database  config.Database  `mapstructure:"database"`
	Redis     config.Redis     `mapstructure:"redis"`
	Analytics config.Analytics `mapstructure:"analytics"`
	Ingestion Ingestion        `mapstructure:"ingestion"`
	Google    Google           `mapstructure:"google"`
	Gemini    Gemini           `mapstructure:"gemini"`
	AI        AI               `mapstructure:"ai"`
	Telegram  Telegram         `mapstructure:"telegram"`
}

// Load loads the ingestion service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
