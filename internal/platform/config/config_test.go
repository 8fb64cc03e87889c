package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TOKEN_SECRET", "secret")
	t.Setenv("BCRYPT_PASSWORD", "pepper")
	t.Setenv("SALT_ROUNDS", "10")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.StrictErrors)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 10, cfg.SaltRounds)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9999")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_DB", "storefront_test")
	t.Setenv("STRICT_ERRORS", "true")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "storefront_test", cfg.Database.Name)
	assert.True(t, cfg.StrictErrors)
}

func TestLoad_MissingSaltRounds(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "secret")
	t.Setenv("BCRYPT_PASSWORD", "pepper")
	t.Setenv("SALT_ROUNDS", "")

	_, err := Load(context.Background())
	assert.Error(t, err, "absent cost factor is a startup error, not a per-request one")
}

func TestLoad_NonNumericSaltRounds(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "secret")
	t.Setenv("BCRYPT_PASSWORD", "pepper")
	t.Setenv("SALT_ROUNDS", "ten")

	_, err := Load(context.Background())
	assert.Error(t, err)
}

func TestLoad_SaltRoundsOutsideBcryptRange(t *testing.T) {
	setRequired(t)
	t.Setenv("SALT_ROUNDS", "99")

	_, err := Load(context.Background())
	assert.Error(t, err)
}
