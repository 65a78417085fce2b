package commands

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"tooldeck/internal/eventbus"
	"tooldeck/internal/prefs"
	"tooldeck/internal/theme"
	"tooldeck/internal/ui"
)

// runUI opens the interactive directory and blocks until it is closed
func runUI(ctx context.Context, e *env) error {
	store := e.newStore()

	writer := newPrefsWriter(e.prefs)
	unsubscribe := subscribePreferences(e, writer)

	model := ui.NewModel(store, e.bus, e.cfg,
		ui.WithPreferences(e.loadPrefs()),
		ui.WithLogger(e.logger))

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if e.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(model, opts...)
	model.SetProgram(program)

	_, err := program.Run()

	// The bus drops events still queued on close. The final choice outranks
	// any change event still in flight.
	unsubscribe()
	if _, saveErr := writer.save(math.MaxUint64, model.Preferences()); saveErr != nil {
		e.logger.Warn("could not save preferences", zap.Error(saveErr))
	}

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// prefsWriter serialises preference writes. A write older than the last
// one applied is dropped.
type prefsWriter struct {
	mu    sync.Mutex
	store *prefs.Store
	last  uint64
}

func newPrefsWriter(store *prefs.Store) *prefsWriter {
	return &prefsWriter{store: store}
}

// save writes p unless a change with a higher seq was already written
func (w *prefsWriter) save(seq uint64, p prefs.Preferences) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if seq <= w.last {
		return false, nil
	}
	w.last = seq
	return true, w.store.Save(p)
}

// subscribePreferences writes every theme or palette change to the store
func subscribePreferences(e *env, w *prefsWriter) func() {
	return e.bus.Subscribe(eventbus.EventPreferencesChanged, func(ev eventbus.DomainEvent) {
		pc, ok := ev.(eventbus.PreferencesChangedEvent)
		if !ok {
			return
		}
		mode, _ := theme.ParseMode(pc.Theme)
		p := prefs.Preferences{Theme: mode, Palette: theme.Resolve(pc.Palette).Key}
		written, err := w.save(pc.Seq, p)
		if err != nil {
			e.logger.Warn("could not save preferences", zap.Error(err))
			return
		}
		if !written {
			e.logger.Debug("stale preferences change dropped", zap.Uint64("seq", pc.Seq))
			return
		}
		e.logger.Debug("preferences saved", zap.String("theme", string(p.Theme)), zap.String("palette", p.Palette))
	})
}
