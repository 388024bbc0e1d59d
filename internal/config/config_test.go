package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 30*time.Second, cfg.Sync.RefreshInterval)
	assert.Equal(t, "default", cfg.UI.Theme)
	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.NotEmpty(t, cfg.Cache.Dir)
	assert.NotEmpty(t, cfg.Logging.File)

	assert.Empty(t, cfg.Server.URL)
	assert.Empty(t, cfg.Server.Token)
}

func TestIsConfigured(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		token string
		want  bool
	}{
		{"both set", "http://backend:5000", "tok", true},
		{"missing token", "http://backend:5000", "", false},
		{"missing url", "", "tok", false},
		{"neither", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Server.URL = tt.url
			cfg.Server.Token = tt.token
			assert.Equal(t, tt.want, cfg.IsConfigured())
		})
	}
}
