package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentnest/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "host=localhost user=rentnest dbname=rentnest")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 7090, cfg.HTTP.Port)
	assert.Equal(t, config.ExclusivityOneActivePerPair, cfg.Agreements.ExclusivityRule)
	assert.Equal(t, "serializable", cfg.Agreements.IsolationLevel)
}

func TestLoadRequiresDSNAndSecret(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("DB_DSN", "host=localhost")
	t.Setenv("JWT_ACCESS_SECRET", "")
	_, err = config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsInvalidAgreementOptions(t *testing.T) {
	t.Setenv("DB_DSN", "host=localhost")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	t.Setenv("AGREEMENTS_EXCLUSIVITY_RULE", "everything-goes")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("AGREEMENTS_EXCLUSIVITY_RULE", config.ExclusivityOverlapOnly)
	t.Setenv("AGREEMENTS_ISOLATION_LEVEL", "chaotic")
	_, err = config.Load()
	assert.Error(t, err)

	t.Setenv("AGREEMENTS_ISOLATION_LEVEL", "default")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.ExclusivityOverlapOnly, cfg.Agreements.ExclusivityRule)
}

func TestLoadParsesOriginList(t *testing.T) {
	t.Setenv("DB_DSN", "host=localhost")
	t.Setenv("JWT_ACCESS_SECRET", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://rentnest.app, https://staging.rentnest.app")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://rentnest.app", "https://staging.rentnest.app"}, cfg.HTTP.AllowedOrigins)
}
