package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/qakit/pkg/environment"
	"github.com/dmitrymomot/qakit/pkg/sanitizer"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs one JSON object per line for CI log collectors.
	FormatJSON Format = "json"
	// FormatText outputs key=value lines for reading in a terminal.
	FormatText Format = "text"
)

// ParseFormat accepts "text" or "json" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
}

// ParseLevel accepts slog level names such as "debug", "INFO" or "warn+2".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return l, nil
}

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets output format.
// Panics for invalid formats: a misconfigured logger should stop the suite
// before the first test runs.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("%w %q: must be %q or %q", ErrInvalidFormat, f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) {
		c.format = FormatText
	}
}

func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = FormatJSON
	}
}

// WithOutput sets the destination for every record. Unless WithErrorOutput is
// also given, error records go to the same writer. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithErrorOutput sends records at slog.LevelError and above to w.
// Nil writers are ignored.
func WithErrorOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.errOutput = w
		}
	}
}

// WithHandlerOptions allows fine-grained control over slog behavior.
// Nil options are ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithName tags every record with the logger name.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.attrs = append(c.attrs, Name(name))
		}
	}
}

// WithRunID tags every record with the process-wide run identifier so that
// lines of one suite run can be correlated across loggers.
func WithRunID() Option {
	return func(c *config) {
		c.attrs = append(c.attrs, RunIDAttr(RunID()))
	}
}

// WithSensitiveKeys adds key names whose values are masked, on top of
// sanitizer.DefaultSensitiveKeys.
func WithSensitiveKeys(keys ...string) Option {
	return func(c *config) {
		for _, k := range keys {
			if k = strings.TrimSpace(k); k != "" {
				c.sensitiveKeys = append(c.sensitiveKeys, k)
			}
		}
	}
}

// WithTruncateLimit sets the number of characters kept from long values.
// A limit <= 0 disables truncation.
func WithTruncateLimit(n int) Option {
	return func(c *config) { c.truncateLimit = n }
}

// WithContextExtractors registers functions that inject dynamic attributes from context.
// Nil extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue adds an extractor that logs ctx.Value(key) under name.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithDevelopment configures development defaults: text output at debug level.
func WithDevelopment(service string) Option {
	return preset(environment.Development, slog.LevelDebug, FormatText, service)
}

// WithStaging configures staging defaults: JSON output at info level.
func WithStaging(service string) Option {
	return preset(environment.Staging, slog.LevelInfo, FormatJSON, service)
}

// WithProduction configures production defaults: JSON output at info level.
func WithProduction(service string) Option {
	return preset(environment.Production, slog.LevelInfo, FormatJSON, service)
}

// WithEnvironment picks a preset by environment name. Unknown names use the
// development preset.
func WithEnvironment(env string, service string) Option {
	switch environment.Parse(env) {
	case environment.Production:
		return WithProduction(service)
	case environment.Staging:
		return WithStaging(service)
	default:
		return WithDevelopment(service)
	}
}

func preset(env environment.Environment, level slog.Level, format Format, service string) Option {
	return func(c *config) {
		c.level = level
		c.format = format
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
		c.attrs = append(c.attrs, slog.String("env", env.String()))
	}
}

type config struct {
	level          slog.Level
	format         Format
	output         io.Writer
	errOutput      io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
	sensitiveKeys  []string
	truncateLimit  int
}

// defaultConfig writes text at info level, info and below to stdout and
// errors to stderr.
func defaultConfig() *config {
	return &config{
		level:         slog.LevelInfo,
		format:        FormatText,
		sensitiveKeys: slices.Clone(sanitizer.DefaultSensitiveKeys),
		truncateLimit: sanitizer.DefaultTruncateLimit,
	}
}

// New creates a configured slog.Logger.
// The handler chain, outermost first: context extraction, masking and
// truncation of attributes, routing by level, then the text or JSON handler.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := cfg.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: cfg.level}
	}

	newHandler := func(w io.Writer) slog.Handler {
		if cfg.format == FormatText {
			return slog.NewTextHandler(w, handlerOpts)
		}
		return slog.NewJSONHandler(w, handlerOpts)
	}

	var handler slog.Handler
	switch {
	case cfg.errOutput != nil:
		out := cfg.output
		if out == nil {
			out = os.Stdout
		}
		handler = NewLevelSplitHandler(newHandler(out), newHandler(cfg.errOutput), slog.LevelError)
	case cfg.output != nil:
		handler = newHandler(cfg.output)
	default:
		handler = NewLevelSplitHandler(newHandler(os.Stdout), newHandler(os.Stderr), slog.LevelError)
	}

	handler = NewRedactHandler(handler, NewRedactor(cfg.truncateLimit, cfg.sensitiveKeys...))

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewLogHandlerDecorator(handler, cfg.extractors...))
}

var runID = sync.OnceValue(uuid.NewString)

// RunID returns the identifier shared by every logger of this process.
func RunID() string {
	return runID()
}
