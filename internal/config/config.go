package config

import (
	"fmt"
	"time"

	"dad-circles-backend/internal/database/models"
	"dad-circles-backend/internal/matching"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// Redis is optional; when empty the matching run lock is process-local
	RedisURL string `mapstructure:"REDIS_URL"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Matching configuration
	MinGroupSize     int     `mapstructure:"MIN_GROUP_SIZE"`
	MaxGroupSize     int     `mapstructure:"MAX_GROUP_SIZE"`
	MaxGapExpecting  float64 `mapstructure:"MAX_GAP_EXPECTING"`
	MaxGapNewborn    float64 `mapstructure:"MAX_GAP_NEWBORN"`
	MaxGapInfant     float64 `mapstructure:"MAX_GAP_INFANT"`
	MaxGapToddler    float64 `mapstructure:"MAX_GAP_TODDLER"`
	ChunkPolicy      string  `mapstructure:"CHUNK_POLICY"`
	MatchParallelism int     `mapstructure:"MATCH_PARALLELISM"`
	MatchInterval    string  `mapstructure:"MATCH_INTERVAL"`

	// Notification configuration
	NotifyTimeoutSec int    `mapstructure:"NOTIFY_TIMEOUT_SEC"`
	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	SMTPUser         string `mapstructure:"SMTP_USER"`
	SMTPPassword     string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom         string `mapstructure:"SMTP_FROM"`
	SiteName         string `mapstructure:"SITE_NAME"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "dad_circles")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("REDIS_URL", "")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Matching defaults
	viper.SetDefault("MIN_GROUP_SIZE", matching.DefaultMinGroupSize)
	viper.SetDefault("MAX_GROUP_SIZE", matching.DefaultMaxGroupSize)
	viper.SetDefault("MAX_GAP_EXPECTING", 6)
	viper.SetDefault("MAX_GAP_NEWBORN", 3)
	viper.SetDefault("MAX_GAP_INFANT", 6)
	viper.SetDefault("MAX_GAP_TODDLER", 12)
	viper.SetDefault("CHUNK_POLICY", "fixed")
	viper.SetDefault("MATCH_PARALLELISM", 4)
	viper.SetDefault("MATCH_INTERVAL", "0s")

	// Notification defaults
	viper.SetDefault("NOTIFY_TIMEOUT_SEC", 10)
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "")
	viper.SetDefault("SITE_NAME", "Dad Circles")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if _, err := config.MatchingSettings(); err != nil {
		return err
	}

	if _, err := config.MatchEvery(); err != nil {
		return err
	}

	return nil
}

// MatchingSettings builds the explicit settings value handed to the matching pipeline
func (c *Config) MatchingSettings() (matching.Settings, error) {
	policy, err := matching.PolicyByName(c.ChunkPolicy)
	if err != nil {
		return matching.Settings{}, err
	}

	settings := matching.Settings{
		MinGroupSize: c.MinGroupSize,
		MaxGroupSize: c.MaxGroupSize,
		MaxGap: map[models.LifeStage]float64{
			models.LifeStageExpecting: c.MaxGapExpecting,
			models.LifeStageNewborn:   c.MaxGapNewborn,
			models.LifeStageInfant:    c.MaxGapInfant,
			models.LifeStageToddler:   c.MaxGapToddler,
		},
		Policy: policy,
	}
	if err := settings.Validate(); err != nil {
		return matching.Settings{}, err
	}
	return settings, nil
}

// MatchEvery returns the scheduler interval; zero disables scheduled passes
func (c *Config) MatchEvery() (time.Duration, error) {
	if c.MatchInterval == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.MatchInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid MATCH_INTERVAL %q: %w", c.MatchInterval, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("MATCH_INTERVAL must not be negative")
	}
	return d, nil
}

// NotifyTimeout bounds each introduction email
func (c *Config) NotifyTimeout() time.Duration {
	if c.NotifyTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.NotifyTimeoutSec) * time.Second
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
