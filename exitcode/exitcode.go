// Package exitcode maps errors returned by [cmdline.Parser.Parse] to process exit statuses and
// terminates the process with them. The cmdline package itself never exits; this package is meant
// for main functions only.
//
// Exit codes:
//   - 0: parsing succeeded
//   - 1: parse failure (unknown flag or argument, missing required argument, other errors)
//   - 2: a value could not be converted to the argument's type
//   - 3: a value-taking argument was not followed by any value
//
// Example:
//
//	p := cmdline.New(os.Args, "copy files", "1.0.0")
//	// declare arguments...
//	exitcode.Exit(p.Parse())
package exitcode

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pressly/cmdline"
)

const (
	OK            = 0
	ParseFailure  = 1
	InvalidValue  = 2
	MissingValues = 3
)

// osExit is a variable that can be mocked in tests.
var osExit = os.Exit

func exit(code int) { osExit(code) }

// For returns the exit status for err. A nil error maps to [OK].
func For(err error) int {
	if err == nil {
		return OK
	}
	var valueErr *cmdline.ValueError
	if errors.As(err, &valueErr) {
		return InvalidValue
	}
	var missingErr *cmdline.MissingValuesError
	if errors.As(err, &missingErr) {
		return MissingValues
	}
	return ParseFailure
}

// Exit reports err, if any, and terminates the process with the status returned by [For]. When err
// is nil the process exits with [OK] only if WithExitOnSuccess is given; otherwise Exit returns.
func Exit(err error, opts ...Option) {
	cfg := config{
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err == nil {
		if cfg.exitOnSuccess {
			exit(OK)
		}
		return
	}
	code := For(err)
	if cfg.logger != nil {
		cfg.logger.Error("parse failed", slog.Any("error", err), slog.Int("code", code))
	} else {
		_, _ = fmt.Fprintf(cfg.stderr, "error: %v\n", err)
	}
	exit(code)
}

// Option configures [Exit].
type Option func(*config)

type config struct {
	stderr        io.Writer
	logger        *slog.Logger
	exitOnSuccess bool
}

// WithStderr sets the writer for error output. Defaults to os.Stderr if not specified. If a logger
// is configured via WithLogger, the logger takes precedence over stderr.
func WithStderr(w io.Writer) Option {
	return func(c *config) {
		c.stderr = w
	}
}

// WithLogger sets an optional slog.Logger used instead of stderr to report the error.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithExitOnSuccess makes Exit terminate the process with [OK] when err is nil.
func WithExitOnSuccess() Option {
	return func(c *config) {
		c.exitOnSuccess = true
	}
}
