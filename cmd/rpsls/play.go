package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/rpsls/internal/config"
	"github.com/lox/rpsls/internal/console"
	"github.com/lox/rpsls/internal/display"
	"github.com/lox/rpsls/internal/game"
	"github.com/lox/rpsls/internal/progress"
	"github.com/lox/rpsls/internal/shell"
)

// Run loads configuration, wires the game together and runs the menu loop
// on stdin and stdout.
func (c *CLI) Run() error {
	cfg, err := c.config()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLog(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := log.NewWithOptions(logOut, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "rpsls",
	})
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(level)

	seed := time.Now().UnixNano()
	if cfg.Random.Seed != nil {
		seed = *cfg.Random.Seed
	}
	logger.Debug("Starting", "seed", seed, "config", c.Config, "theme", cfg.Display.Theme)

	term := console.New(os.Stdin, os.Stdout)
	printer, err := display.NewPrinter(term.Writer(), cfg.Display.Theme)
	if err != nil {
		return err
	}
	if err := printer.Title(); err != nil {
		return err
	}

	clock := quartz.NewReal()
	opts := []shell.Option{
		shell.WithLogger(logger),
		shell.WithClock(clock),
		shell.WithDefaultName(cfg.Player.Name),
	}
	if cfg.ShowProgress() {
		opts = append(opts, shell.WithAnimator(progress.New(term.Writer(), clock)))
	}

	sh := shell.New(term, printer, game.NewRandomPicker(seed), opts...)
	if err := sh.Run(); err != nil {
		return err
	}
	logger.Debug("Exited", "sessions", sh.Sessions())
	return nil
}

// config loads the HCL file and applies flag overrides
func (c *CLI) config() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if c.Seed != nil {
		cfg.Random.Seed = c.Seed
	}
	if c.LogFile != "" {
		cfg.Log.File = c.LogFile
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.Theme != "" {
		cfg.Display.Theme = c.Theme
	}
	if c.NoProgress {
		off := false
		cfg.Display.Progress = &off
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
