// Package directory owns the catalog and the filter predicate applied to it.
package directory

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tooldeck/internal/domain"
	"tooldeck/internal/eventbus"
	"tooldeck/internal/feed"
	"tooldeck/internal/logic"
)

// Fetcher retrieves the catalog in feed order
type Fetcher interface {
	Fetch(ctx context.Context) ([]domain.Entry, error)
}

// State is the page-lifetime directory state. It is only changed through
// Store, which keeps Visible equal to the filter of All.
type State struct {
	All        []domain.Entry
	Visible    []domain.Entry
	SearchTerm string
	Category   string
	Categories []string
}

// Store holds the catalog and recomputes the visible subset on every change.
// It is not safe for concurrent use; the UI loop owns it.
type Store struct {
	fetcher   Fetcher
	bus       eventbus.EventBus
	logger    *zap.Logger
	onLoading func(bool)

	state    State
	inflight int
}

// Option configures a Store
type Option func(*Store)

// WithBus publishes directory events on bus
func WithBus(bus eventbus.EventBus) Option {
	return func(s *Store) { s.bus = bus }
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger.Named("directory") }
}

// WithLoadingIndicator is called with true when the first load starts and
// with false when the last outstanding load finishes
func WithLoadingIndicator(fn func(bool)) Option {
	return func(s *Store) { s.onLoading = fn }
}

// NewStore creates an empty store
func NewStore(fetcher Fetcher, opts ...Option) *Store {
	s := &Store{
		fetcher: fetcher,
		logger:  zap.NewNop(),
		state: State{
			All:        []domain.Entry{},
			Visible:    []domain.Entry{},
			Categories: []string{},
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the catalog and replaces it on success. The loading indicator
// is shown for the duration of the call on every exit path.
func (s *Store) Load(ctx context.Context) error {
	s.BeginLoad()
	entries, err := s.Fetch(ctx)
	return s.FinishLoad(entries, err)
}

// Fetch runs the fetcher without touching state, so it can run off the UI loop
func (s *Store) Fetch(ctx context.Context) ([]domain.Entry, error) {
	if s.fetcher == nil {
		return nil, &feed.FetchError{Err: errors.New("no fetcher configured")}
	}
	return s.fetcher.Fetch(ctx)
}

// BeginLoad marks a load as outstanding
func (s *Store) BeginLoad() {
	s.inflight++
	if s.inflight == 1 && s.onLoading != nil {
		s.onLoading(true)
	}
}

// FinishLoad applies the result of a fetch started with BeginLoad.
// A failed or empty fetch leaves the catalog untouched and returns an error
// matching feed.ErrFetchFailure. Completions are applied in arrival order,
// so the last one wins.
func (s *Store) FinishLoad(entries []domain.Entry, err error) error {
	if s.inflight > 0 {
		s.inflight--
		if s.inflight == 0 && s.onLoading != nil {
			s.onLoading(false)
		}
	}

	if err == nil && len(entries) == 0 {
		err = feed.ErrEmptyFeed
	}
	if err != nil {
		if !errors.Is(err, feed.ErrFetchFailure) {
			err = &feed.FetchError{Err: err}
		}
		s.logger.Warn("directory load failed", zap.Error(err))
		s.publish(eventbus.DirectoryFetchFailedEvent{Err: err})
		return fmt.Errorf("load directory: %w", err)
	}

	s.Replace(entries)
	s.logger.Info("directory loaded",
		zap.Int("entries", len(s.state.All)),
		zap.Int("categories", len(s.state.Categories)))
	s.publish(eventbus.DirectoryLoadedEvent{
		Count:      len(s.state.All),
		Categories: len(s.state.Categories),
	})
	return nil
}

// Replace installs a catalog given in feed order, newest last
func (s *Store) Replace(entries []domain.Entry) {
	all := make([]domain.Entry, len(entries))
	for i, e := range entries {
		all[len(entries)-1-i] = e
	}
	s.state.All = all
	s.state.Categories = logic.DeriveCategories(all)
	s.recompute()
}

// SetSearchTerm normalizes raw input and recomputes the visible subset
func (s *Store) SetSearchTerm(raw string) {
	s.state.SearchTerm = logic.NormalizeSearch(raw)
	s.recompute()
}

// SetCategory selects a category ("" for all) and recomputes
func (s *Store) SetCategory(category string) {
	s.state.Category = category
	s.recompute()
}

func (s *Store) recompute() {
	s.state.Visible = logic.Filter(s.state.All, s.state.SearchTerm, s.state.Category)
	s.publish(eventbus.FilterChangedEvent{
		SearchTerm: s.state.SearchTerm,
		Category:   s.state.Category,
		Visible:    len(s.state.Visible),
		Total:      len(s.state.All),
	})
}

func (s *Store) publish(e eventbus.DomainEvent) {
	if s.bus != nil {
		s.bus.Publish(e)
	}
}

// Visible returns the entries passing the current predicate
func (s *Store) Visible() []domain.Entry { return s.state.Visible }

// All returns the full catalog, latest first
func (s *Store) All() []domain.Entry { return s.state.All }

// Categories returns the distinct categories of the catalog
func (s *Store) Categories() []string { return s.state.Categories }

// SearchTerm returns the normalized search term
func (s *Store) SearchTerm() string { return s.state.SearchTerm }

// Category returns the selected category
func (s *Store) Category() string { return s.state.Category }

// Loading reports whether a load is outstanding
func (s *Store) Loading() bool { return s.inflight > 0 }
