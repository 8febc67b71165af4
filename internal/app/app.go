package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/clueboard/internal/config"
	"github.com/five82/clueboard/internal/game"
	"github.com/five82/clueboard/internal/logging"
	"github.com/five82/clueboard/internal/prefs"
	"github.com/five82/clueboard/internal/trivia"
	"github.com/five82/clueboard/internal/ui"
	"github.com/five82/clueboard/internal/web"
)

// Options configure the clueboard application.
type Options struct {
	Config    config.Config
	PrefsPath string // empty uses default ~/.config/clueboard/prefs.toml
	Verbose   bool
	Version   string
}

// Run boots the terminal board until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := logging.OpenFile(cfg.LogFile, opts.Verbose)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	client, err := newClient(cfg, opts.Version)
	if err != nil {
		return err
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger.Info("clueboard started",
		slog.String("mode", "terminal"),
		slog.String("version", opts.Version),
		slog.String("api_base", client.BaseURL()),
	)

	return ui.Run(ui.Options{
		Context:   ctx,
		Game:      newGame(cfg, client, logger),
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}

// Serve runs the browser front end until the context is cancelled. Each
// connected tab gets its own game.
func Serve(ctx context.Context, opts Options) error {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.NewStderr(opts.Verbose)

	client, err := newClient(cfg, opts.Version)
	if err != nil {
		return err
	}

	srv, err := web.New(web.Options{
		Listen:  cfg.Listen,
		Version: opts.Version,
		Logger:  logger,
		NewGame: func() *game.Game {
			return newGame(cfg, client, logger)
		},
	})
	if err != nil {
		return err
	}

	logger.Info("clueboard started",
		slog.String("mode", "serve"),
		slog.String("version", opts.Version),
		slog.String("api_base", client.BaseURL()),
	)
	return srv.Run(ctx)
}

func newClient(cfg config.Config, version string) (*trivia.Client, error) {
	clientOpts := []trivia.Option{trivia.WithTimeout(cfg.RequestTimeout)}
	if version != "" {
		clientOpts = append(clientOpts, trivia.WithUserAgent("clueboard/"+version))
	}
	client, err := trivia.NewClient(cfg.APIBase, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("init trivia client: %w", err)
	}
	return client, nil
}

func newGame(cfg config.Config, client *trivia.Client, logger *slog.Logger) *game.Game {
	return game.New(client, settingsFromConfig(cfg), game.WithLogger(logger))
}

func settingsFromConfig(cfg config.Config) game.Settings {
	return game.Settings{
		CategoryCount:    cfg.CategoryCount,
		CluesPerCategory: cfg.CluesPerCategory,
		PoolSize:         cfg.PoolSize,
		LoadTimeout:      cfg.LoadTimeout,
	}
}
