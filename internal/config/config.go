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
	MaxConns int32
	MinConns int32
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

// EngineConfig holds tunables for the attendance/grading engine.
type EngineConfig struct {
	RecomputeWorkers  int           // background recompute queue workers
	RecomputeQueueCap int           // pending task buffer before tasks are dropped
	RecomputeTimeout  time.Duration // per-task budget for batch recomputations
	DetectionWindow   int           // trailing calendar days scanned by absence detection
}

func Load() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.Atoi(getEnv("DB_MAX_CONNS", "25"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}
	dbMinConns, err := strconv.Atoi(getEnv("DB_MIN_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "teamready"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
		MinConns: int32(dbMinConns),
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
	recomputeWorkers, err := strconv.Atoi(getEnv("RECOMPUTE_WORKERS", "4"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECOMPUTE_WORKERS: %w", err)
	}
	recomputeQueueCap, err := strconv.Atoi(getEnv("RECOMPUTE_QUEUE_CAP", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECOMPUTE_QUEUE_CAP: %w", err)
	}
	recomputeTimeout, err := time.ParseDuration(getEnv("RECOMPUTE_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECOMPUTE_TIMEOUT: %w", err)
	}
	detectionWindow, err := strconv.Atoi(getEnv("ABSENCE_DETECTION_WINDOW_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid ABSENCE_DETECTION_WINDOW_DAYS: %w", err)
	}

	config.Engine = EngineConfig{
		RecomputeWorkers:  recomputeWorkers,
		RecomputeQueueCap: recomputeQueueCap,
		RecomputeTimeout:  recomputeTimeout,
		DetectionWindow:   detectionWindow,
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
	if c.Database.MaxConns < 1 || c.Database.MinConns < 0 || c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("DB_MIN_CONNS/DB_MAX_CONNS must satisfy 0 <= min <= max, max >= 1")
	}
	if c.Engine.RecomputeWorkers < 1 {
		return fmt.Errorf("RECOMPUTE_WORKERS must be at least 1")
	}
	if c.Engine.DetectionWindow < 1 {
		return fmt.Errorf("ABSENCE_DETECTION_WINDOW_DAYS must be at least 1")
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
