package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(path)

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultFeedURL, cfg.Feed.URL)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.Debounce.Duration)
	assert.Equal(t, SuccessInline, cfg.Contact.SuccessStyle)
}

func TestSaveThenLoadKeepsDurations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Feed.URL = "https://example.test/feed"
	cfg.UI.Debounce = Duration{150 * time.Millisecond}
	cfg.Contact.SuccessStyle = SuccessReplace
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "150ms")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/feed", loaded.Feed.URL)
	assert.Equal(t, 150*time.Millisecond, loaded.UI.Debounce.Duration)
	assert.Equal(t, SuccessReplace, loaded.Contact.SuccessStyle)
}

func TestLoadFromPathFillsOmittedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `version = 1

[contact]
action = "https://forms.example.test/f/abc"
success_style = "bogus"

[ui]
debounce = "0s"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigService("").LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "https://forms.example.test/f/abc", cfg.Contact.Action)
	assert.Equal(t, SuccessInline, cfg.Contact.SuccessStyle)
	assert.Equal(t, 300*time.Millisecond, cfg.UI.Debounce.Duration)
	assert.Equal(t, DefaultFeedURL, cfg.Feed.URL)
	assert.True(t, cfg.UI.AltScreen)
}

func TestLoadFromPathRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[feed]\ntimeout = \"soon\"\n"), 0644))

	_, err := NewConfigService(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestPrefsDir(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, filepath.Join(Dir(), "prefs"), cfg.PrefsDir())

	cfg.Storage.Dir = "/tmp/elsewhere"
	assert.Equal(t, "/tmp/elsewhere", cfg.PrefsDir())
}
