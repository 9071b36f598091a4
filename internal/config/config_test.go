package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	cfg, err := ProcessEnvironmentVariables()
	assert.NoError(t, err)

	assert.Equal(t, "9446", cfg.Port)
	assert.Equal(t, "localhost", cfg.PostgresAddress)
	assert.Equal(t, "5433", cfg.PostgresPort)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("POSTGRES_ADDRESS", "db.internal")
	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	t.Setenv("SESSION_TTL", "24h")

	cfg, err := ProcessEnvironmentVariables()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db.internal", cfg.PostgresAddress)
	assert.Equal(t, "s3cret", cfg.PostgresPassword)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestProcessEnvironmentVariables_BadSessionTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "not-a-duration")

	_, err := ProcessEnvironmentVariables()
	assert.Error(t, err)
}

func TestConnectionString(t *testing.T) {
	cfg := &Config{
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "finance",
		PostgresUsername: "postgres",
		PostgresPassword: "pw",
	}

	assert.Equal(t,
		"postgres://postgres:pw@localhost:5433/finance?sslmode=disable",
		cfg.ConnectionString())
}
