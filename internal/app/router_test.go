//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medpak/webster-service/config"
)

func TestInitializeRouter_WithoutDatabase(t *testing.T) {
	cfg := config.Config{
		Server: config.ServerConfig{
			RateLimit:   50,
			RateWindow:  30 * time.Second,
			CORSOrigins: []string{"http://localhost:3000"},
		},
		Auth: config.AuthConfig{Enabled: false, JWTSecretKey: "unused"},
	}

	components := InitializeRouter(nil, nil, cfg)
	require.NotNil(t, components)
	require.NotNil(t, components.HealthHandler)

	assert.Equal(t, 50, components.Config.RateLimit)
	assert.Equal(t, 30*time.Second, components.Config.RateWindow)
	assert.True(t, components.Config.EnableIdempotency)
	assert.Empty(t, components.Config.JWTSecret)
	assert.Nil(t, components.Config.Workflow)
	assert.Nil(t, components.Config.PackService)
}

func TestInitializeRouter_AuthEnabled(t *testing.T) {
	cfg := config.Config{
		Auth: config.AuthConfig{Enabled: true, JWTSecretKey: "pharmacy-secret"},
	}

	components := InitializeRouter(nil, nil, cfg)
	require.NotNil(t, components)

	assert.Equal(t, "pharmacy-secret", components.Config.JWTSecret)
}

func TestInitializeServices_NilDatabase(t *testing.T) {
	cfg := config.Config{Cache: config.CacheConfig{Size: 100, TTL: time.Minute}}

	assert.Nil(t, InitializeServices(cfg, nil))
}
