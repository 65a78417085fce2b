// Package commands builds the tooldeck command line.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tooldeck/internal/config"
	"tooldeck/internal/directory"
	"tooldeck/internal/eventbus"
	"tooldeck/internal/feed"
	"tooldeck/internal/logging"
	"tooldeck/internal/prefs"
)

// New returns the root command. Without a subcommand it opens the browser UI.
func New() *cobra.Command {
	ro := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tooldeck",
		Short: "Browse the AI tools directory from the terminal.",
		Example: `
tooldeck
tooldeck --config ./tooldeck.toml
tooldeck list --search code --category Writing
tooldeck export -o tools.html
`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := ro.environment()
			if err != nil {
				return err
			}
			defer e.Close()
			return runUI(cmd.Context(), e)
		},
	}
	AddRootArgs(cmd, ro)

	AddCommands(cmd, ro)
	return cmd
}

// AddCommands registers the subcommands
func AddCommands(topLevel *cobra.Command, ro *RootOptions) {
	addList(topLevel, ro)
	addExport(topLevel, ro)
	addContact(topLevel, ro)
}

// Execute runs the command line until it finishes or a signal arrives
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return New().ExecuteContext(ctx)
}

// env is what every command needs once flags are parsed
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	bus    eventbus.EventBus
	prefs  *prefs.Store
}

func (ro *RootOptions) environment() (*env, error) {
	svc := config.NewConfigService(ro.ConfigPath)
	_, statErr := os.Stat(svc.Path())
	firstRun := errors.Is(statErr, fs.ErrNotExist)

	cfg, err := svc.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.File, levelOr(ro.LogLevel, cfg.Log.Level))
	if err != nil {
		return nil, err
	}
	bus := eventbus.New(logger)

	// A missing file is written back so there is something to edit
	if firstRun {
		if err := config.NewConfigServiceWithBus(svc.Path(), bus).Save(cfg); err != nil {
			logger.Warn("could not write default config", zap.Error(err))
		}
	}
	bus.Publish(eventbus.ConfigLoadedEvent{Path: svc.Path(), FeedURL: cfg.Feed.URL})

	if ro.FeedURL != "" {
		cfg.Feed.URL = ro.FeedURL
	}
	logger.Info("starting tooldeck", zap.String("feed", cfg.Feed.URL))

	return &env{
		cfg:    cfg,
		logger: logger,
		bus:    bus,
		prefs:  prefs.Open(cfg.PrefsDir()),
	}, nil
}

func levelOr(override, level string) string {
	if override != "" {
		return override
	}
	return level
}

// Close stops the bus and flushes the log
func (e *env) Close() {
	e.bus.Close()
	_ = e.logger.Sync()
}

// newStore builds a directory store reading the configured feed
func (e *env) newStore() *directory.Store {
	client := feed.NewClient(e.cfg.Feed.URL, e.cfg.Feed.Timeout.Duration, feed.WithLogger(e.logger))
	return directory.NewStore(client,
		directory.WithBus(e.bus),
		directory.WithLogger(e.logger))
}

// loadPrefs returns the stored preferences, or the defaults when the store is unreadable
func (e *env) loadPrefs() prefs.Preferences {
	p, err := e.prefs.Load()
	if err != nil {
		e.logger.Warn("could not read preferences", zap.Error(err))
	}
	return p
}
