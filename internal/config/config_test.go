package config

import (
	"testing"
	"time"

	apperrors "analytics-assessment/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 25, cfg.Database.MaxConnections)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "data/transactions.csv", cfg.Loader.TransactionsPath)
	assert.Equal(t, "data/users.csv", cfg.Loader.UsersPath)
	assert.Equal(t, 500, cfg.Loader.BatchSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "exercise")
	t.Setenv("LOADER_BATCH_SIZE", "100")
	t.Setenv("DB_CONN_MAX_LIFETIME", "30m")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "exercise", cfg.Database.Name)
	assert.Equal(t, 100, cfg.Loader.BatchSize)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestLoad_IgnoresMalformedNumericEnv(t *testing.T) {
	t.Setenv("LOADER_BATCH_SIZE", "lots")

	cfg := Load()

	assert.Equal(t, 500, cfg.Loader.BatchSize)
}

func TestValidate_DefaultsPass(t *testing.T) {
	cfg := Load()

	assert.NoError(t, cfg.Validate())
}

func TestValidate_MissingHost(t *testing.T) {
	cfg := Load()
	cfg.Database.Host = ""

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Equal(t, apperrors.ConfigMissingVariable, apperrors.CodeOf(err))
}

func TestValidate_NonNumericPort(t *testing.T) {
	t.Setenv("DB_PORT", "fivefourthreetwo")

	err := Load().Validate()

	assert.Error(t, err)
	assert.Equal(t, apperrors.ConfigInvalidValue, apperrors.CodeOf(err))
}

func TestValidate_ZeroBatchSize(t *testing.T) {
	t.Setenv("LOADER_BATCH_SIZE", "0")

	err := Load().Validate()

	assert.Error(t, err)
	assert.Equal(t, apperrors.ConfigInvalidValue, apperrors.CodeOf(err))
}

func TestValidate_MissingCSVPath(t *testing.T) {
	cfg := Load()
	cfg.Loader.UsersPath = ""

	err := cfg.Validate()

	assert.Error(t, err)
	assert.Equal(t, apperrors.ConfigMissingVariable, apperrors.CodeOf(err))
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "u",
		Password: "p",
		Name:     "analytics",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=analytics sslmode=disable", cfg.DSN())
}
