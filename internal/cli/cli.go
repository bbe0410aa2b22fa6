// SPDX-License-Identifier: MIT

// Package cli maps seqscan subcommands onto the scanner packages.
// Results go to Stdout, one value per line; structured logs go to Stderr.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Environment fallbacks for the global flags.
const (
	EnvLogLevel  = "SEQSCAN_LOG_LEVEL"
	EnvLogFormat = "SEQSCAN_LOG_FORMAT"
)

// errUsage marks invocation mistakes (bad flags, wrong arguments).
var errUsage = errors.New("invalid usage")

// App holds the process streams and an optional preconfigured logger.
type App struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger, when non-nil, replaces the logger built from -log-level/-log-format.
	Logger *zap.Logger

	// Getenv reads environment fallbacks; nil disables them.
	Getenv func(string) string
}

// report summarizes one command run for the completion log record.
type report struct {
	inputLen int
	results  int
}

type command struct {
	name  string
	args  string
	brief string
	run   func(a *App, args []string) (report, error)
}

func commands() []command {
	return []command{
		{"unique", "[-runes] [-window] TEXT", "longest run without a repeated symbol", runUnique},
		{"concat", "[-rolling] TEXT WORD...", "offsets where all words appear concatenated", runConcat},
		{"minwindow", "[-window] TARGET N...", "shortest run whose sum reaches TARGET", runMinWindow},
		{"kgram", "[-k 10] [-min 2] [-sorted] [-dna] TEXT", "k-grams occurring more than once", runKGram},
	}
}

func lookup(name string) (command, bool) {
	for _, c := range commands() {
		if c.name == name {
			return c, true
		}
	}

	return command{}, false
}

// Run parses args (without the program name), executes one subcommand and
// returns the process exit code.
func (a *App) Run(args []string) int {
	global := flag.NewFlagSet("seqscan", flag.ContinueOnError)
	global.SetOutput(a.Stderr)
	level := global.String("log-level", a.env(EnvLogLevel, "info"), "log level: debug, info, warn, error")
	format := global.String("log-format", a.env(EnvLogFormat, "json"), "log format: json or console")
	global.Usage = func() { a.usage(global) }
	if err := global.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}

		return ExitUsage
	}

	rest := global.Args()
	if len(rest) == 0 {
		a.usage(global)
		return ExitUsage
	}
	cmd, ok := lookup(rest[0])
	if !ok {
		fmt.Fprintf(a.Stderr, "seqscan: unknown command %q\n", rest[0])
		a.usage(global)
		return ExitUsage
	}

	logger := a.Logger
	if logger == nil {
		l, err := NewLogger(*level, *format, a.Stderr)
		if err != nil {
			fmt.Fprintln(a.Stderr, "seqscan:", err)
			return ExitUsage
		}
		logger = l
		defer func() { _ = logger.Sync() }()
	}
	log := logger.With(zap.String("run_id", uuid.NewString()), zap.String("command", cmd.name))

	start := time.Now()
	rep, err := cmd.run(a, rest[1:])
	switch {
	case errors.Is(err, flag.ErrHelp):
		return ExitOK
	case errors.Is(err, errUsage):
		fmt.Fprintf(a.Stderr, "seqscan %s: %v\nusage: seqscan %s %s\n", cmd.name, err, cmd.name, cmd.args)
		log.Warn("invalid invocation", zap.Error(err))
		return ExitUsage
	case err != nil:
		log.Error("scan failed", zap.Error(err))
		return ExitFailure
	}
	log.Info("scan complete",
		zap.Int("input_len", rep.inputLen),
		zap.Int("results", rep.results),
		zap.Duration("elapsed", time.Since(start)),
	)

	return ExitOK
}

// NewLogger builds a zap logger writing to w.
// format "json" uses the production encoder, "console" the development one.
func NewLogger(level, format string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	var enc zapcore.Encoder
	switch strings.ToLower(format) {
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console":
		enc = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("log format: unknown %q (want json or console)", format)
	}

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)), nil
}

func (a *App) env(key, fallback string) string {
	if a.Getenv == nil {
		return fallback
	}
	if v := a.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func (a *App) usage(global *flag.FlagSet) {
	fmt.Fprintln(a.Stderr, "usage: seqscan [global flags] <command> [flags] args...")
	fmt.Fprintln(a.Stderr, "\ncommands:")
	for _, c := range commands() {
		fmt.Fprintf(a.Stderr, "  %-10s %-40s %s\n", c.name, c.args, c.brief)
	}
	fmt.Fprintln(a.Stderr, "\nglobal flags:")
	global.PrintDefaults()
	fmt.Fprintln(a.Stderr, "\nTEXT may be - to read it from stdin.")
}
