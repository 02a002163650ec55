package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pfrederiksen/library-events/internal/logger"
	"github.com/pfrederiksen/library-events/internal/storage"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "~/.local/share/library-events", cfg.DataDir)
	assert.Equal(t, storage.KindFile, cfg.Backend)
	assert.Equal(t, logger.LevelInfo, cfg.Level())
	assert.Equal(t, 5, cfg.RecentLimit)
	assert.Equal(t, 5, cfg.TopLimit)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("LIBRARY_EVENTS_DATA_DIR", "/var/lib/library-events")
	t.Setenv("LIBRARY_EVENTS_BACKEND", "badger")
	t.Setenv("LIBRARY_EVENTS_LOG_LEVEL", "debug")
	t.Setenv("LIBRARY_EVENTS_TOP_LIMIT", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/library-events", cfg.DataDir)
	assert.Equal(t, storage.KindBadger, cfg.Backend)
	assert.Equal(t, logger.LevelDebug, cfg.Level())
	assert.Equal(t, 3, cfg.TopLimit)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"non-numeric limit", "LIBRARY_EVENTS_RECENT_LIMIT", "many", "parse env:"},
		{"unknown backend", "LIBRARY_EVENTS_BACKEND", "postgres", "invalid backend"},
		{"unknown level", "LIBRARY_EVENTS_LOG_LEVEL", "loud", "unknown log level"},
		{"negative limit", "LIBRARY_EVENTS_TOP_LIMIT", "-1", "must not be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), "got %v", err)
		})
	}
}
