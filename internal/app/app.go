package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/five82/jester/internal/config"
	"github.com/five82/jester/internal/dashboard"
	"github.com/five82/jester/internal/jokeapi"
	"github.com/five82/jester/internal/logging"
	"github.com/five82/jester/internal/prefs"
	"github.com/five82/jester/internal/ui"
)

// Options configure a jester run.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/jester/prefs.toml
	Category   string // overrides default_category when set
	Verbose    bool   // forces debug logging

	// LogWriter, when set, receives human-readable logs instead of the
	// configured log file.
	LogWriter io.Writer
}

// Session bundles the wired components shared by the TUI, the one-shot
// printer and the MCP server.
type Session struct {
	Config     config.Config
	Logger     *logging.Logger
	Controller *dashboard.Controller
}

// Close releases the log file.
func (s *Session) Close() error {
	return s.Logger.Close()
}

// Open loads configuration and preferences and wires the controller.
func Open(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Options{
		Level:         level,
		Writer:        opts.LogWriter,
		HumanReadable: opts.LogWriter != nil,
		Path:          cfg.LogFile,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	session, err := wire(cfg, opts, logger)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	return session, nil
}

func wire(cfg config.Config, opts Options, logger *logging.Logger) (*Session, error) {
	category := cfg.Category()
	if raw := strings.TrimSpace(opts.Category); raw != "" {
		parsed, err := jokeapi.ParseCategory(raw)
		if err != nil {
			return nil, err
		}
		category = parsed
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := jokeapi.NewClient(jokeapi.ClientOptions{
		BaseURL:   cfg.APIURL,
		Blacklist: cfg.BlacklistFlags,
		Timeout:   cfg.RequestTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("init joke client: %w", err)
	}

	ctrl, err := dashboard.New(dashboard.Options{
		Fetcher:  client,
		Prefs:    prefs.File{Path: opts.PrefsPath},
		Logger:   logger,
		Category: category,
		DarkMode: userPrefs.DarkMode,
	})
	if err != nil {
		return nil, fmt.Errorf("init dashboard: %w", err)
	}

	logger.Info("jester session ready",
		logging.F("api_url", cfg.APIURL),
		logging.F("category", category.String()),
		logging.F("dark_mode", userPrefs.DarkMode),
	)
	return &Session{Config: cfg, Logger: logger, Controller: ctrl}, nil
}

// Run boots the dashboard TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	session, err := Open(opts)
	if err != nil {
		return err
	}
	defer session.Close()

	return ui.Run(ui.Options{
		Context:    ctx,
		Controller: session.Controller,
		Logger:     session.Logger,
	})
}

// PrintJoke fetches one joke for the configured category and writes it to w.
// Failures surface the same message the dashboard would show.
func PrintJoke(ctx context.Context, opts Options, w io.Writer) error {
	session, err := Open(opts)
	if err != nil {
		return err
	}
	defer session.Close()

	ctrl := session.Controller
	if err := ctrl.FetchJoke(ctx, ctrl.Snapshot().SelectedCategory); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return errors.New(ctrl.Snapshot().Error)
	}
	return WriteJoke(w, *ctrl.Snapshot().Joke)
}

// WriteJoke renders a joke as plain text: a header line, then the joke.
func WriteJoke(w io.Writer, joke jokeapi.Joke) error {
	_, err := fmt.Fprintf(w, "[%s #%d]\n%s\n", joke.Category, joke.ID, joke.Text())
	return err
}
