package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Push       PushConfig       `yaml:"push"`
	WorkerPool WorkerPoolConfig `yaml:"worker_pool"`
	Alerts     AlertsConfig     `yaml:"alerts"`
	Forecast   ForecastConfig   `yaml:"forecast"`
	Payments   PaymentsConfig   `yaml:"payments"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	Port            int      `yaml:"port"`
	BaseURL         string   `yaml:"base_url"`
	UploadDir       string   `yaml:"upload_dir"`
	RateLimitPerSec float64  `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int      `yaml:"rate_limit_burst"`
	CacheTTLSeconds int      `yaml:"cache_ttl_seconds"`
	CORSOrigins     []string `yaml:"cors_origins"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"` // "postgres" or "sqlite"
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// AuthConfig holds the JWT signing configuration.
type AuthConfig struct {
	JWTSecret     string `yaml:"jwt_secret"`
	TokenTTLHours int    `yaml:"token_ttl_hours"`
}

// PushConfig holds the VAPID keys for web push notifications.
type PushConfig struct {
	PublicKey  string `yaml:"vapid_public_key"`
	PrivateKey string `yaml:"vapid_private_key"`
	Subject    string `yaml:"subject"`
	TTL        int    `yaml:"ttl"`
}

// WorkerPoolConfig holds the configuration for the notification worker pool.
type WorkerPoolConfig struct {
	Size int `yaml:"size"`
}

// AlertsConfig controls the periodic rental alert sweep.
type AlertsConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Schedule string `yaml:"schedule"` // cron spec, e.g. "@every 30s"
}

// ForecastConfig holds the upstream settings for the beach condition proxies.
type ForecastConfig struct {
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"`
	Weather        WeatherConfig `yaml:"weather"`
	TidesURL       string        `yaml:"tides_url"`
	NewsFeedURL    string        `yaml:"news_feed_url"`
}

// WeatherConfig holds the OpenWeather request parameters.
type WeatherConfig struct {
	APIKey    string  `yaml:"api_key"`
	URL       string  `yaml:"url"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
	Lang      string  `yaml:"lang"`
}

// PaymentsConfig holds the Stripe checkout configuration.
type PaymentsConfig struct {
	StripeAPIKey  string `yaml:"stripe_api_key"`
	WebhookSecret string `yaml:"webhook_secret"`
	Currency      string `yaml:"currency"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8001
	}
	if cfg.Server.UploadDir == "" {
		cfg.Server.UploadDir = "./uploads"
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret must be configured")
	}
	if cfg.Auth.TokenTTLHours <= 0 {
		cfg.Auth.TokenTTLHours = 24
	}

	if cfg.Push.TTL <= 0 {
		cfg.Push.TTL = 3600
	}
	if cfg.WorkerPool.Size <= 0 {
		cfg.WorkerPool.Size = 1
	}

	if cfg.Alerts.Schedule == "" {
		cfg.Alerts.Schedule = "@every 30s"
	}

	if cfg.Forecast.TimeoutSeconds <= 0 {
		cfg.Forecast.TimeoutSeconds = 10
	}
	cfg.Forecast.Timeout = time.Duration(cfg.Forecast.TimeoutSeconds) * time.Second
	if cfg.Forecast.Weather.URL == "" {
		cfg.Forecast.Weather.URL = "https://api.openweathermap.org/data/2.5/weather"
	}
	if cfg.Forecast.Weather.Lang == "" {
		cfg.Forecast.Weather.Lang = "pt_br"
	}
	if cfg.Forecast.Weather.Latitude == 0 && cfg.Forecast.Weather.Longitude == 0 {
		// Praia de Tabatinga, PB
		cfg.Forecast.Weather.Latitude = -7.1195
		cfg.Forecast.Weather.Longitude = -34.8450
	}

	if cfg.Payments.Currency == "" {
		cfg.Payments.Currency = "brl"
	}

	return &cfg, nil
}
