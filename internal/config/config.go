package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Engine   EngineConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// EngineConfig holds the time accounting engine settings. Timezone is the
// single fixed civil timezone every calendar date boundary is computed in.
type EngineConfig struct {
	Timezone                    string
	Location                    *time.Location
	DiscrepancyThresholdMinutes int
	IssueClearRetentionDays     int
}

func Load() (*Config, error) {
	// A missing .env file is fine in deployed environments; the process
	// env is authoritative.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timecore"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Engine configuration
	threshold, err := strconv.Atoi(getEnv("DISCREPANCY_THRESHOLD_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid DISCREPANCY_THRESHOLD_MINUTES: %w", err)
	}
	retention, err := strconv.Atoi(getEnv("ISSUE_CLEAR_RETENTION_DAYS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid ISSUE_CLEAR_RETENTION_DAYS: %w", err)
	}

	timezone := getEnv("TIMEZONE", "Asia/Jakarta")
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", timezone, err)
	}

	config.Engine = EngineConfig{
		Timezone:                    timezone,
		Location:                    location,
		DiscrepancyThresholdMinutes: threshold,
		IssueClearRetentionDays:     retention,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Engine.DiscrepancyThresholdMinutes <= 0 {
		return fmt.Errorf("DISCREPANCY_THRESHOLD_MINUTES must be positive")
	}
	if c.Engine.IssueClearRetentionDays <= 0 {
		return fmt.Errorf("ISSUE_CLEAR_RETENTION_DAYS must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
