package cmdline

import (
	"io"
	"log/slog"
	"os"
)

// Option configures a [Parser].
type Option func(*config)

type config struct {
	separator string
	stdout    io.Writer
	logger    *slog.Logger
}

// WithSeparator sets the string placed between fields of the help and version text. The default is
// a single space.
func WithSeparator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// WithOutput sets the writer that help and version text is written to. If w is nil, [os.Stdout] is
// used.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.stdout = w
	}
}

// WithLogger sets a logger that receives a debug record for every matched parameter.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

func checkAndSetConfig(opts []Option) config {
	cfg := config{
		separator: " ",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.stdout == nil {
		cfg.stdout = os.Stdout
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return cfg
}
