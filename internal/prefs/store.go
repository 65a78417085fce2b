// Package prefs persists the visitor's theme and palette between sessions.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/peterbourgon/diskv/v3"

	"tooldeck/internal/theme"
)

// Keys under which preferences are stored
const (
	KeyTheme   = "theme"
	KeyPalette = "colorPalette"
)

// Preferences is the persisted visitor state
type Preferences struct {
	Theme   theme.Mode
	Palette string
}

// Defaults returns the preferences used on first start
func Defaults() Preferences {
	return Preferences{Theme: theme.DefaultMode, Palette: theme.DefaultPalette}
}

// Store is a small string key/value store on disk
type Store struct {
	mu sync.Mutex // keeps the theme and palette of one Save together
	d  *diskv.Diskv
}

// Open returns a store rooted at dir. Nothing is created until the first write.
func Open(dir string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 4 * 1024,
	})}
}

// Get returns the stored value for key and whether it exists
func (s *Store) Get(key string) (string, bool, error) {
	val, err := s.d.Read(key)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", key, err)
	}
	return string(val), true, nil
}

// Set stores value under key
func (s *Store) Set(key, value string) error {
	if err := s.d.Write(key, []byte(value)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Load reads the preferences, substituting defaults for missing or unknown values
func (s *Store) Load() (Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Defaults()

	raw, ok, err := s.Get(KeyTheme)
	if err != nil {
		return p, err
	}
	if ok {
		if mode, valid := theme.ParseMode(raw); valid {
			p.Theme = mode
		}
	}

	raw, ok, err = s.Get(KeyPalette)
	if err != nil {
		return p, err
	}
	if ok {
		if _, valid := theme.Lookup(raw); valid {
			p.Palette = raw
		}
	}

	return p, nil
}

// Save writes both preferences
func (s *Store) Save(p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Set(KeyTheme, string(p.Theme)); err != nil {
		return err
	}
	return s.Set(KeyPalette, p.Palette)
}
