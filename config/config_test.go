package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("90d")
	require.NoError(t, err)
	assert.Equal(t, 90*24*time.Hour, d)

	d, err = ParseDuration("15m")
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, d)

	_, err = ParseDuration("xd")
	assert.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 90*24*time.Hour, cfg.JWTExpiresIn)
	assert.True(t, cfg.AllowAllOrigins())
	assert.False(t, cfg.CloudinaryEnabled())
}

func TestValidate_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg := Load()
	assert.Empty(t, cfg.JWTSecret)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)

	cfg.JWTSecret = "   "
	assert.ErrorIs(t, cfg.Validate(), ErrMissingJWTSecret)

	t.Setenv("JWT_SECRET", "s3cret")
	assert.NoError(t, Load().Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "2h")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 2*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.False(t, cfg.AllowAllOrigins())
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
}
