package database

import (
	"testing"
	"time"

	"analytics-assessment/internal/config"
	apperrors "analytics-assessment/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestInitialize_UnreachableDatabaseCarriesConnectionCode(t *testing.T) {
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Host:            "127.0.0.1",
			Port:            "1",
			User:            "nobody",
			Password:        "nothing",
			Name:            "nowhere",
			SSLMode:         "disable",
			MaxConnections:  1,
			MaxIdleConns:    1,
			ConnMaxLifetime: time.Minute,
		},
	}

	db, err := Initialize(cfg)

	assert.Nil(t, db)
	assert.Error(t, err)
	assert.Equal(t, apperrors.DatabaseConnectionFailed, apperrors.CodeOf(err))
}
