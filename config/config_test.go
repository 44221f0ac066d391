package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	cleanupEnv := func() {
		os.Unsetenv("SHOPSCOUT_SERVER_PORT")
		os.Unsetenv("SHOPSCOUT_SERVER_ENVIRONMENT")
		os.Unsetenv("SHOPSCOUT_CATALOG_DATA_FILE")
		os.Unsetenv("SHOPSCOUT_SEARCH_MIN_QUERY_LENGTH")
		os.Unsetenv("SHOPSCOUT_SEARCH_MAX_QUERY_LENGTH")
		os.Unsetenv("SHOPSCOUT_SEARCH_DEFAULT_LIMIT")
		os.Unsetenv("SHOPSCOUT_RANKING_COLOR_MATCH")
		os.Unsetenv("SHOPSCOUT_RATELIMIT_PER_MINUTE")
		os.Unsetenv("SHOPSCOUT_LOGGING_LEVEL")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Search.MinQueryLength != 2 {
			t.Errorf("Search.MinQueryLength = %d, want 2", cfg.Search.MinQueryLength)
		}
		if cfg.Search.MaxQueryLength != 500 {
			t.Errorf("Search.MaxQueryLength = %d, want 500", cfg.Search.MaxQueryLength)
		}
		if cfg.Search.DefaultLimit != 3 {
			t.Errorf("Search.DefaultLimit = %d, want 3", cfg.Search.DefaultLimit)
		}
		if cfg.Ranking.ColorMatch != 3.0 {
			t.Errorf("Ranking.ColorMatch = %v, want 3.0", cfg.Ranking.ColorMatch)
		}
		if cfg.Ranking.RatingMultiplier != 1.5 {
			t.Errorf("Ranking.RatingMultiplier = %v, want 1.5", cfg.Ranking.RatingMultiplier)
		}
		if cfg.RateLimit.PerMinute != 10 {
			t.Errorf("RateLimit.PerMinute = %d, want 10", cfg.RateLimit.PerMinute)
		}
		if cfg.Catalog.DataFile != "" {
			t.Errorf("Catalog.DataFile = %s, want empty (seed catalog)", cfg.Catalog.DataFile)
		}
		if cfg.Logging.Level != "info" {
			t.Errorf("Logging.Level = %s, want info", cfg.Logging.Level)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SHOPSCOUT_SERVER_PORT", "9090")
		os.Setenv("SHOPSCOUT_SERVER_ENVIRONMENT", "production")
		os.Setenv("SHOPSCOUT_CATALOG_DATA_FILE", "/data/products.json")
		os.Setenv("SHOPSCOUT_RANKING_COLOR_MATCH", "4.5")
		os.Setenv("SHOPSCOUT_RATELIMIT_PER_MINUTE", "60")
		os.Setenv("SHOPSCOUT_LOGGING_LEVEL", "debug")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Catalog.DataFile != "/data/products.json" {
			t.Errorf("Catalog.DataFile = %s, want /data/products.json", cfg.Catalog.DataFile)
		}
		if cfg.Ranking.ColorMatch != 4.5 {
			t.Errorf("Ranking.ColorMatch = %v, want 4.5", cfg.Ranking.ColorMatch)
		}
		if cfg.RateLimit.PerMinute != 60 {
			t.Errorf("RateLimit.PerMinute = %d, want 60", cfg.RateLimit.PerMinute)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Logging.Level = %s, want debug", cfg.Logging.Level)
		}
	})

	t.Run("fails validation for zero min query length", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SHOPSCOUT_SEARCH_MIN_QUERY_LENGTH", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero min query length")
		}
	})

	t.Run("fails validation when max does not exceed min", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SHOPSCOUT_SEARCH_MAX_QUERY_LENGTH", "2")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for max <= min")
		}
	})

	t.Run("fails validation for non-positive rate limit", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("SHOPSCOUT_RATELIMIT_PER_MINUTE", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero rate limit")
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Search: SearchConfig{
				MinQueryLength: 2,
				MaxQueryLength: 500,
				DefaultLimit:   3,
				MaxLimit:       10,
			},
			RateLimit: RateLimitConfig{PerMinute: 10, Burst: 5},
		}
	}

	t.Run("accepts a complete configuration", func(t *testing.T) {
		if err := validate(valid()); err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("rejects default limit above max limit", func(t *testing.T) {
		cfg := valid()
		cfg.Search.DefaultLimit = 20
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for default_limit > max_limit")
		}
	})

	t.Run("rejects zero default limit", func(t *testing.T) {
		cfg := valid()
		cfg.Search.DefaultLimit = 0
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero default_limit")
		}
	})
}
