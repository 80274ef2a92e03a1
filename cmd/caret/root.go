package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/dshills/caret/internal/config"
	"github.com/dshills/caret/internal/engine"
	"github.com/dshills/caret/internal/host/terminal"
	"github.com/dshills/caret/internal/logging"
	"github.com/dshills/caret/internal/plugin/lua"
)

// options holds command line flags.
type options struct {
	configPath   string
	logLevel     string
	logFile      string
	hookPath     string
	tabSize      int
	insertSpaces bool
	noTab        bool
	print        bool
}

func newRootCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "caret [file]",
		Short: "Plain-text editor with smart indentation and undo history",
		Long: `caret is a small terminal text editor. Tab indents, Backspace removes a
whole indent, Enter keeps the current indentation, and Ctrl+Z / Ctrl+Shift+Z
(or Ctrl+Y) walk a word-grouped undo history.

The file argument is read as the initial text. caret never writes it back;
use --print to send the final text to stdout.`,
		Example: `  caret                       Start with an empty buffer
  caret notes.txt             Start with the contents of notes.txt
  caret --tab-size 4 a.txt    Indent by four spaces
  caret --hook hooks.lua      Run Lua callbacks on every change`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a TOML or YAML config file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.hookPath, "hook", "", "Lua script registering caret.on_change callbacks")
	flags.IntVarP(&opts.tabSize, "tab-size", "t", 0, "indent width")
	flags.BoolVar(&opts.insertSpaces, "insert-spaces", true, "indent with spaces")
	flags.BoolVar(&opts.noTab, "no-tab", false, "leave the Tab key to the terminal")
	flags.BoolVarP(&opts.print, "print", "p", false, "print the final text to stdout on exit")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "caret %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", commit)
			fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", date)
		},
	}
}

func run(cmd *cobra.Command, opts options, args []string) error {
	configPath := opts.configPath
	if configPath == "" {
		configPath = defaultConfigPath()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cmd, opts, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Logging.Level, opts.logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	initial, err := readInitial(args)
	if err != nil {
		return err
	}

	area := terminal.NewTextArea(initial)
	session := engine.New(area,
		engine.WithConfig(cfg.Editor.Transform()),
		engine.WithHistoryLimit(cfg.History.Limit),
		engine.WithHistoryTimeGap(cfg.History.TimeGap),
		engine.WithLogger(logger),
	)
	defer session.Close()
	logger.Info("session %s started", session.ID())

	if opts.hookPath != "" {
		hooks, err := lua.LoadFile(opts.hookPath, logger)
		if err != nil {
			return err
		}
		defer hooks.Close()
		hooks.Attach(session)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	finished := false
	defer func() {
		if !finished {
			screen.Fini()
		}
	}()

	app := terminal.NewApp(screen, area, session, terminal.WithLogger(logger))

	if configPath != "" && fileExists(configPath) {
		reloader, err := config.Watch(configPath, func(c config.Config) {
			_ = app.Post(func() {
				applyFlags(cmd, opts, &c)
				session.SetConfig(c.Editor.Transform())
				session.SetHistoryLimit(c.History.Limit)
				if level, err := logging.ParseLevel(c.Logging.Level); err == nil {
					logger.SetLevel(level)
				}
				app.Notice("config reloaded")
				logger.Info("config reloaded from %s", configPath)
			})
		}, func(err error) {
			logger.Warn("config reload failed: %v", err)
		})
		if err != nil {
			logger.Warn("watching %s: %v", configPath, err)
		} else {
			defer reloader.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		return err
	}

	screen.Fini()
	finished = true

	if opts.print {
		fmt.Fprint(cmd.OutOrStdout(), area.Value())
	}
	return nil
}

// applyFlags overrides cfg with flags given on the command line.
func applyFlags(cmd *cobra.Command, opts options, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("tab-size") {
		cfg.Editor.TabSize = opts.tabSize
	}
	if flags.Changed("insert-spaces") {
		cfg.Editor.InsertSpaces = opts.insertSpaces
	}
	if flags.Changed("no-tab") {
		cfg.Editor.IgnoreTabKey = opts.noTab
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
}

// newLogger writes to logFile, or discards output when there is none so
// the screen is not corrupted.
func newLogger(level, logFile string) (*logging.Logger, func(), error) {
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if logFile == "" {
		return logging.Null(), func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	cfg := logging.DefaultConfig()
	cfg.Level = lvl
	cfg.Output = f
	return logging.New(cfg), func() { _ = f.Close() }, nil
}

// readInitial returns the contents of the file argument, or "" when there
// is no argument or the file does not exist yet.
func readInitial(args []string) (string, error) {
	if len(args) == 0 {
		return "", nil
	}
	data, err := os.ReadFile(args[0])
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

// defaultConfigPath returns the first existing config file in the user
// config directory, or "".
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		path := filepath.Join(dir, "caret", name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

