package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, ":8000", cfg.Addr())
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, DefaultTokenTTL, cfg.TokenTTL)
	assert.Equal(t, DefaultCORSOrigins, cfg.CORSOrigins)
	assert.Equal(t, DefaultAdminPassword, cfg.DefaultAdminPassword)
	assert.Len(t, cfg.SecretKey, 64)
	assert.False(t, cfg.IsProduction())
}

func TestFromLookup_Overrides(t *testing.T) {
	cfg, err := FromLookup(lookupFrom(map[string]string{
		"PORT":                 "9090",
		"DATABASE_URL":         "postgres://u:p@db:5432/cattery",
		"SECRET_KEY":           "s3cret",
		"JWT_EXPIRATION_HOURS": "2",
		"CORS_ORIGINS":         "https://a.example, https://b.example ,",
		"ENVIRONMENT":          "production",
		"SITE_URL":             "https://cats.example/",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgresql://u:p@db:5432/cattery", cfg.DatabaseURL)
	assert.Equal(t, "s3cret", cfg.SecretKey)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "https://cats.example", cfg.SiteURL)
	assert.True(t, cfg.IsProduction())
}

func TestFromLookup_RejectsBadExpiration(t *testing.T) {
	_, err := FromLookup(lookupFrom(map[string]string{"JWT_EXPIRATION_HOURS": "zero"}))
	require.Error(t, err)

	_, err = FromLookup(lookupFrom(map[string]string{"JWT_EXPIRATION_HOURS": "-1"}))
	require.Error(t, err)
}
