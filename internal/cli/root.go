// Package cli defines Cobra command definitions for the zen CLI.
// This file contains the root command and the shared startup sequence.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jwulff/zen/internal/app"
	"github.com/jwulff/zen/internal/config"
	"github.com/jwulff/zen/internal/db"
	"github.com/jwulff/zen/internal/iching"
)

var version = "dev" // set via ldflags at build time

// options holds persistent flag values.
type options struct {
	configPath string
	overlay    string
	seed       uint64
	logFile    string
	debug      bool
}

// env is what every command gets after startup: the catalog is complete
// before any draw can happen.
type env struct {
	cfg     *config.Config
	logger  *slog.Logger
	engine  *iching.Engine
	notice  string
	closers []io.Closer

	// overlayPath is the overlay every command reads and writes: the
	// configured path, or db.DefaultDBPath().
	overlayPath string
}

// close releases resources opened by setup. Safe to call more than once.
func (e *env) close() {
	for _, c := range e.closers {
		c.Close()
	}
	e.closers = nil
}

// newRootCmd builds the command tree. The returned env must be closed after
// Execute returns, whether or not the command failed.
func newRootCmd() (*cobra.Command, *env) {
	opts := &options{}
	e := &env{}

	root := &cobra.Command{
		Use:   "zen",
		Short: "The Zen of Changes: a random I Ching divination",
		Long: `zen draws a lower trigram, an upper trigram and a moving line,
composes the hexagram and shows its judgment, line texts and commentaries.
Run without a subcommand on a terminal to open the interactive view.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd, opts, e)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// When no subcommand is provided, launch TUI if TTY, show help otherwise
			if !IsTTY() {
				return cmd.Help()
			}
			var appOpts []app.Option
			appOpts = append(appOpts, app.WithLogger(e.logger))
			if e.notice != "" {
				appOpts = append(appOpts, app.WithNotice(e.notice))
			}
			p := tea.NewProgram(app.New(e.engine, appOpts...), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to config.yaml")
	pf.StringVar(&opts.overlay, "overlay", "", "SQLite overlay of extra hexagram texts (default from config)")
	pf.Uint64Var(&opts.seed, "seed", 0, "Seed for reproducible draws (0 uses system entropy)")
	pf.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	root.AddCommand(newDrawCmd(e))
	root.AddCommand(newLookupCmd(e))
	root.AddCommand(newTrigramsCmd())
	root.AddCommand(newMCPCmd(e))
	root.AddCommand(newOverlayCmd(e))

	return root, e
}

// Execute runs the root command. Called from main.
func Execute() {
	root, e := newRootCmd()
	err := root.Execute()
	e.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// IsTTY returns true if stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// setup loads config, applies flag overrides, configures logging and builds
// the engine. Overlay problems never stop startup.
func setup(cmd *cobra.Command, opts *options, e *env) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, cfg)
	e.cfg = cfg

	logger, closer, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if closer != nil {
		e.closers = append(e.closers, closer)
	}
	e.logger = logger
	slog.SetDefault(logger)

	e.overlayPath = cfg.Catalog.OverlayDB
	if e.overlayPath == "" {
		e.overlayPath = db.DefaultDBPath()
	}
	entries, err := db.LoadEntries(e.overlayPath)
	if err != nil {
		e.notice = fmt.Sprintf("overlay ignored: %v", err)
		logger.Warn("overlay load failed, using built-in catalog", "path", e.overlayPath, "error", err)
		entries = nil
	}
	catalog := iching.NewCatalog(entries...)
	logger.Debug("catalog ready", "hexagrams", catalog.Len(), "overlay", len(entries))

	var src iching.Source
	if cfg.Draw.Seed != 0 {
		src = iching.NewRandSource(cfg.Draw.Seed)
	}
	e.engine = iching.NewEngine(catalog, src)
	return nil
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command, opts *options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("overlay") {
		cfg.Catalog.OverlayDB = opts.overlay
	}
	if flags.Changed("seed") {
		cfg.Draw.Seed = opts.seed
	}
	if flags.Changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if flags.Changed("debug") {
		cfg.Log.Debug = opts.debug
	}
}

// newLogger returns a text logger writing to the configured file. With no
// file, logs are discarded unless debug is on, in which case they go to
// stderr.
func newLogger(lc config.LogConfig, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	level := slog.LevelInfo
	if lc.Debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if lc.File != "" {
		f, err := os.OpenFile(lc.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, opts)), f, nil
	}
	if lc.Debug {
		return slog.New(slog.NewTextHandler(stderr, opts)), nil, nil
	}
	return slog.New(slog.NewTextHandler(io.Discard, opts)), nil, nil
}
