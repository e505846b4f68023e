// Package config provides configuration management for the match oracle.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App        AppConfig        `mapstructure:"app" validate:"required"`
	Prediction PredictionConfig `mapstructure:"prediction" validate:"required"`
	Staking    StakingConfig    `mapstructure:"staking" validate:"required"`
	Cache      CacheConfig      `mapstructure:"cache" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Metrics    MetricsConfig    `mapstructure:"metrics" validate:"required"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// PredictionConfig holds the multiplier bands used to pick candidate options
type PredictionConfig struct {
	MatchBandMin         float64 `mapstructure:"match_band_min" validate:"required,gt=1"`
	MatchBandMax         float64 `mapstructure:"match_band_max" validate:"required,gt=1"`
	SideBandMin          float64 `mapstructure:"side_band_min" validate:"required,gt=1"`
	SideBandMax          float64 `mapstructure:"side_band_max" validate:"required,gt=1"`
	SyntheticSideMarkets bool    `mapstructure:"synthetic_side_markets"`
	UltimateMinOdds      float64 `mapstructure:"ultimate_min_odds" validate:"required,gt=1"`
}

// StakingConfig represents value-bet and stake sizing configuration
type StakingConfig struct {
	DefaultBankroll float64 `mapstructure:"default_bankroll" validate:"required,gt=0"`
	KellyCap        float64 `mapstructure:"kelly_cap" validate:"required,gt=0,lte=1"`
	ValueThreshold  float64 `mapstructure:"value_threshold" validate:"gte=0"`
	MaxValueBets    int     `mapstructure:"max_value_bets" validate:"required,gt=0"`
}

// CacheConfig represents prediction cache configuration
type CacheConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	TTLSeconds int  `mapstructure:"ttl_seconds" validate:"required,gt=0"`
	MaxSize    int  `mapstructure:"max_size" validate:"required,gt=0"`
}

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port                  int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	HealthPort            int      `mapstructure:"health_port" validate:"required,min=1,max=65535"`
	RateLimitRPS          float64  `mapstructure:"rate_limit_rps" validate:"required,gt=0"`
	RateLimitBurst        int      `mapstructure:"rate_limit_burst" validate:"required,gt=0"`
	AllowedOrigins        []string `mapstructure:"allowed_origins" validate:"required,min=1,origins"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required,startswith=/"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// CacheTTL returns the cache entry lifetime
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// RequestTimeout returns the per-request handler timeout
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Server.RequestTimeoutSeconds) * time.Second
}

// ListenAddress returns the API listen address
func (c *Config) ListenAddress() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// HealthAddress returns the health server listen address
func (c *Config) HealthAddress() string {
	return fmt.Sprintf(":%d", c.Server.HealthPort)
}
