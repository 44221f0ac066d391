package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Search    SearchConfig
	Ranking   RankingConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds product catalog configuration
type CatalogConfig struct {
	DataFile string `mapstructure:"data_file"` // JSON file; built-in seed used when empty
}

// SearchConfig holds query validation and result limit settings
type SearchConfig struct {
	MinQueryLength int `mapstructure:"min_query_length"`
	MaxQueryLength int `mapstructure:"max_query_length"`
	DefaultLimit   int `mapstructure:"default_limit"`
	MaxLimit       int `mapstructure:"max_limit"`
}

// RankingConfig holds the scoring weights used by the ranking engine.
// Tuning these does not require touching the ranking logic.
type RankingConfig struct {
	KeywordMatch      float64 `mapstructure:"keyword_match"`
	KeywordCap        float64 `mapstructure:"keyword_cap"`
	ColorMatch        float64 `mapstructure:"color_match"`
	BrandMatch        float64 `mapstructure:"brand_match"`
	CategoryMatch     float64 `mapstructure:"category_match"`
	PriceFit          float64 `mapstructure:"price_fit"`
	OverBudgetPenalty float64 `mapstructure:"over_budget_penalty"`
	RatingMultiplier  float64 `mapstructure:"rating_multiplier"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
	Burst     int `mapstructure:"burst"`
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopscout/")

	// Environment variable settings
	v.SetEnvPrefix("SHOPSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Catalog defaults
	v.SetDefault("catalog.data_file", "")

	// Search defaults
	v.SetDefault("search.min_query_length", 2)
	v.SetDefault("search.max_query_length", 500)
	v.SetDefault("search.default_limit", 3)
	v.SetDefault("search.max_limit", 10)

	// Ranking weight defaults
	v.SetDefault("ranking.keyword_match", 2.0)
	v.SetDefault("ranking.keyword_cap", 10.0)
	v.SetDefault("ranking.color_match", 3.0)
	v.SetDefault("ranking.brand_match", 2.0)
	v.SetDefault("ranking.category_match", 1.0)
	v.SetDefault("ranking.price_fit", 2.0)
	v.SetDefault("ranking.over_budget_penalty", 5.0)
	v.SetDefault("ranking.rating_multiplier", 1.5)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_minute", 10)
	v.SetDefault("ratelimit.burst", 5)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Search.MinQueryLength < 1 {
		return fmt.Errorf("search.min_query_length must be at least 1, got: %d", config.Search.MinQueryLength)
	}

	if config.Search.MaxQueryLength <= config.Search.MinQueryLength {
		return fmt.Errorf("search.max_query_length must exceed min_query_length, got: %d", config.Search.MaxQueryLength)
	}

	if config.Search.DefaultLimit < 1 || config.Search.DefaultLimit > config.Search.MaxLimit {
		return fmt.Errorf("search.default_limit must be in [1, max_limit], got: %d", config.Search.DefaultLimit)
	}

	if config.RateLimit.PerMinute < 1 {
		return fmt.Errorf("ratelimit.per_minute must be positive, got: %d", config.RateLimit.PerMinute)
	}

	return nil
}
