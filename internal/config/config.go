package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	apperrors "analytics-assessment/internal/errors"
)

type Config struct {
	Database DatabaseConfig
	Loader   LoaderConfig
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LoaderConfig struct {
	TransactionsPath string
	UsersPath        string
	// BatchSize controls how many rows go into one insert round trip.
	// It is a throughput knob only; output is identical for any value >= 1.
	BatchSize int
}

func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "analytics_user"),
			Password:        getEnv("DB_PASSWORD", "analytics_password"),
			Name:            getEnv("DB_NAME", "analytics_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Loader: LoaderConfig{
			TransactionsPath: getEnv("TRANSACTIONS_CSV", "data/transactions.csv"),
			UsersPath:        getEnv("USERS_CSV", "data/users.csv"),
			BatchSize:        getIntEnv("LOADER_BATCH_SIZE", 500),
		},
	}
}

// Validate rejects configuration values no run can proceed with. It runs in
// the binaries right after Load, before any connection is attempted.
func (c *Config) Validate() error {
	if c.Database.Host == "" || c.Database.User == "" || c.Database.Name == "" {
		return apperrors.Wrap(apperrors.ConfigMissingVariable,
			fmt.Errorf("database host, user and name must all be set"))
	}

	if _, err := strconv.Atoi(c.Database.Port); err != nil {
		return apperrors.Wrap(apperrors.ConfigInvalidValue,
			fmt.Errorf("DB_PORT %q is not a port number", c.Database.Port))
	}

	if c.Loader.UsersPath == "" || c.Loader.TransactionsPath == "" {
		return apperrors.Wrap(apperrors.ConfigMissingVariable,
			fmt.Errorf("users and transactions CSV paths must both be set"))
	}

	if c.Loader.BatchSize < 1 {
		return apperrors.Wrap(apperrors.ConfigInvalidValue,
			fmt.Errorf("LOADER_BATCH_SIZE must be at least 1, got %d", c.Loader.BatchSize))
	}

	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
