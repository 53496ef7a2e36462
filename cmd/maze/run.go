package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/kula-app/trampoline-maze/internal/config"
	"github.com/kula-app/trampoline-maze/internal/logging"
	"github.com/kula-app/trampoline-maze/internal/maze"
	"github.com/kula-app/trampoline-maze/internal/report"
)

var (
	errMissingPath = errors.New("requires one path argument")
	errExtraArgs   = errors.New("unexpected extra arguments")
)

// The run function is like the main function, except that it takes in operating system fundamentals as arguments, and returns an error.
//
// If the run function returns an error, nothing has been written to stdout.
func run(_ context.Context, args []string, getenv func(key string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, getenv, stderr)
	if err != nil {
		return err
	}

	logger := slog.New(logging.NewTerminalHandler(stderr, cfg.LogLevel))
	logger.Debug("maze configuration loaded",
		"path", cfg.Path,
		"log_level", cfg.LogLevel,
		"max_steps", cfg.MaxSteps)

	offsets, err := load(cfg.Path, stdin, logger)
	if err != nil {
		return fmt.Errorf("failed to load offsets: %w", err)
	}

	simulator := maze.NewSimulator(logger, cfg.MaxSteps)
	steps, err := simulator.Run(offsets)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	return report.Write(stdout, steps)
}

// parseConfig builds the configuration from flags, positional arguments and the environment
func parseConfig(args []string, getenv func(key string) string, stderr io.Writer) (*config.Config, error) {
	cfg := config.DefaultConfig()

	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: %s [flags] <path>\n", flags.Name())
		flags.PrintDefaults()
	}
	logLevel := flags.String("log-level", "", fmt.Sprintf("Log level: debug, info, warn, error (default warn, or $%s)", config.EnvLogLevel))
	maxSteps := flags.Uint64("max-steps", 0, "Give up after this many jumps (0 = unlimited)")
	if err := flags.Parse(args[1:]); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Flag wins over the environment
	levelName := *logLevel
	if levelName == "" {
		levelName = getenv(config.EnvLogLevel)
	}
	if levelName != "" {
		level, err := config.ParseLogLevel(levelName)
		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
		cfg.LogLevel = level
	}
	cfg.MaxSteps = *maxSteps

	switch flags.NArg() {
	case 0:
		return nil, errMissingPath
	case 1:
		cfg.Path = flags.Arg(0)
	default:
		return nil, fmt.Errorf("%w: %q", errExtraArgs, flags.Args()[1:])
	}

	return cfg, nil
}

// load reads the offsets from path, or from stdin when path is "-"
func load(path string, stdin io.Reader, logger *slog.Logger) ([]int64, error) {
	if path == config.StdinPath {
		offsets, err := maze.Read(stdin)
		if err != nil {
			return nil, err
		}
		logger.Debug("offsets loaded", "path", "stdin", "offsets", len(offsets))
		return offsets, nil
	}

	offsets, err := maze.LoadFile(path)
	if err != nil {
		return nil, err
	}

	attrs := []any{"path", path, "offsets", len(offsets)}
	if info, err := os.Stat(path); err == nil {
		attrs = append(attrs, "size", humanize.Bytes(uint64(info.Size())))
	}
	logger.Debug("offsets loaded", attrs...)
	return offsets, nil
}
