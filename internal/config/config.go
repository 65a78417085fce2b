package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"tooldeck/internal/eventbus"
)

// DefaultFeedURL is the catalog endpoint the directory is published at
const DefaultFeedURL = "https://script.google.com/macros/s/AKfycbwjsI-s78wz8R4kD9zOkTBtTyot67TIP7l1Xc_Li5YppCnFWpvmV7csONK7OzmhBK8O-g/exec"

// Contact success styles
const (
	SuccessInline  = "inline"  // notice above the form, form cleared
	SuccessReplace = "replace" // form replaced by a thank-you panel
)

// Config represents the application configuration
type Config struct {
	Version int             `toml:"version"`
	Feed    FeedSettings    `toml:"feed"`
	Contact ContactSettings `toml:"contact"`
	UI      UISettings      `toml:"ui"`
	Storage StorageSettings `toml:"storage"`
	Log     LogSettings     `toml:"log"`
}

// FeedSettings describes the remote directory endpoint
type FeedSettings struct {
	URL     string   `toml:"url"`
	Timeout Duration `toml:"timeout"`
}

// ContactSettings describes the contact form endpoint
type ContactSettings struct {
	Action       string   `toml:"action"`
	SuccessStyle string   `toml:"success_style"`
	Timeout      Duration `toml:"timeout"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Debounce  Duration `toml:"debounce"`
	AltScreen bool     `toml:"alt_screen"`
}

// StorageSettings locates the preference store
type StorageSettings struct {
	Dir string `toml:"dir"` // empty means <config dir>/prefs
}

// LogSettings configures the log file
type LogSettings struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Duration is a time.Duration written as a Go duration string ("300ms")
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the tooldeck configuration directory
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "tooldeck")
}

// NewConfigService creates a config service for the default location,
// or for path when it is not empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(Dir(), "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file. A missing file yields defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:    cs.filePath,
			FeedURL: cfg.Feed.URL,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so omitted keys keep sane values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// PrefsDir returns the directory for the preference store
func (c *Config) PrefsDir() string {
	if c.Storage.Dir != "" {
		return c.Storage.Dir
	}
	return filepath.Join(Dir(), "prefs")
}

// normalize repairs values a hand-edited file may have broken
func (c *Config) normalize() {
	defaults := DefaultConfig()
	if c.Feed.URL == "" {
		c.Feed.URL = defaults.Feed.URL
	}
	if c.Feed.Timeout.Duration <= 0 {
		c.Feed.Timeout = defaults.Feed.Timeout
	}
	if c.Contact.Timeout.Duration <= 0 {
		c.Contact.Timeout = defaults.Contact.Timeout
	}
	if c.Contact.SuccessStyle != SuccessInline && c.Contact.SuccessStyle != SuccessReplace {
		c.Contact.SuccessStyle = SuccessInline
	}
	if c.UI.Debounce.Duration <= 0 {
		c.UI.Debounce = defaults.UI.Debounce
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Feed: FeedSettings{
			URL:     DefaultFeedURL,
			Timeout: Duration{15 * time.Second},
		},
		Contact: ContactSettings{
			SuccessStyle: SuccessInline,
			Timeout:      Duration{15 * time.Second},
		},
		UI: UISettings{
			Debounce:  Duration{300 * time.Millisecond},
			AltScreen: true,
		},
		Log: LogSettings{
			File:  filepath.Join(Dir(), "tooldeck.log"),
			Level: "info",
		},
	}
}
