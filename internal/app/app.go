package app

import (
	"context"
	"fmt"

	"github.com/five82/easel/internal/artic"
	"github.com/five82/easel/internal/config"
	"github.com/five82/easel/internal/logging"
	"github.com/five82/easel/internal/prefs"
	"github.com/five82/easel/internal/selection"
	"github.com/five82/easel/internal/state"
	"github.com/five82/easel/internal/ui"
)

// Options configure the easel application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/easel/prefs.toml
	StartPage  int    // 1-based; zero starts on page 1
	Debug      bool
}

// Run boots the easel TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger, err := logging.New(logging.Options{
		File:  cfg.LogFile,
		Level: cfg.LogLevel,
		Debug: opts.Debug,
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Close()

	client, err := artic.NewClient(cfg.APIURL, artic.ClientOptions{
		PageSize: cfg.PageSize,
		Timeout:  cfg.RequestTimeout,
	})
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	startPage := max(opts.StartPage, 1)
	logger.Info().
		Str("api", cfg.APIURL).
		Int("page_size", cfg.PageSize).
		Int("start_page", startPage).
		Msg("easel starting")

	pages := &state.Store{}
	loader := NewLoader(client, pages, logger.Component("loader"), LoaderOptions{
		Attempts: cfg.Retries,
	})
	picks := selection.NewStore()

	err = ui.Run(ui.Options{
		Context:    ctx,
		Loader:     loader,
		Pages:      pages,
		Selection:  picks,
		Reconciler: selection.NewReconciler(picks, logger.Component("selection")),
		RetryDelay: RetryDelay,
		StartPage:  startPage,
		ThemeName:  userPrefs.Theme,
		Compact:    userPrefs.Compact,
		PrefsPath:  opts.PrefsPath,
		LogPath:    logger.Path,
		Logger:     logger.Component("ui"),
	})
	logger.Info().Int("selected", picks.TotalSelectedCount()).Msg("easel exiting")
	return err
}
