package logger

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/dmitrymomot/qakit/pkg/sanitizer"
)

// Category is the literal token that starts every Writer line, so logs can
// be filtered by category with plain text search.
type Category string

const (
	CategoryAction      Category = "ACTION"
	CategoryError       Category = "ERROR"
	CategoryPerformance Category = "PERFORMANCE"
	CategoryData        Category = "DATA"
	CategoryAPIRequest  Category = "API REQUEST"
	CategoryAPIResponse Category = "API RESPONSE"
	CategoryUIAction    Category = "UI ACTION"
	CategoryTestStart   Category = "TEST START"
	CategoryTestEnd     Category = "TEST END"
	CategoryConfig      Category = "CONFIG"
)

const badKey = "!BADKEY"

// Writer emits one categorized line per call. Values pass through a
// Redactor before they reach the logger, whatever handler the logger uses.
// For loggers built by New that is the logger's own Redactor, so its
// sensitive keys and truncation limit apply; other loggers get the defaults.
//
// Trailing args follow the slog convention: alternating string keys and
// values, or slog.Attr values.
type Writer struct {
	log      *slog.Logger
	redactor Redactor
}

// NewWriter binds a Writer to l. A nil l means the logger returned by
// Default at the time of each call.
func NewWriter(l *slog.Logger) *Writer {
	return &Writer{log: l, redactor: NewRedactor(sanitizer.DefaultTruncateLimit)}
}

var std = NewWriter(nil)

func (w *Writer) logger() *slog.Logger {
	if w.log != nil {
		return w.log
	}
	return Default()
}

// Action logs a test step.
func (w *Writer) Action(action string, args ...any) {
	w.emit(slog.LevelInfo, CategoryAction, action, nil, args)
}

// Error logs a failure with both message and err.Error(). A nil err is
// logged as "null".
func (w *Writer) Error(message string, err error, args ...any) {
	w.emit(slog.LevelError, CategoryError, message, []slog.Attr{slog.Any("error", err)}, args)
}

// Performance logs how long an operation took.
func (w *Writer) Performance(operation string, d time.Duration, args ...any) {
	w.emit(slog.LevelInfo, CategoryPerformance, operation, []slog.Attr{Duration(d), DurationMS(d)}, args)
}

// Data logs a single named value, e.g. a generated fixture.
func (w *Writer) Data(key string, value any, args ...any) {
	w.emit(slog.LevelInfo, CategoryData, key, []slog.Attr{slog.Any(key, value)}, args)
}

// APIRequest logs an outgoing request. body may be nil.
func (w *Writer) APIRequest(method, url string, body any, args ...any) {
	w.emit(slog.LevelInfo, CategoryAPIRequest, method+" "+url,
		[]slog.Attr{Method(method), URL(url), slog.Any("body", body)}, args)
}

// APIResponse logs a received response. Statuses of 400 and above are
// logged at warn level.
func (w *Writer) APIResponse(status int, body any, d time.Duration, args ...any) {
	level := slog.LevelInfo
	if status >= 400 {
		level = slog.LevelWarn
	}
	w.emit(level, CategoryAPIResponse, "status "+strconv.Itoa(status),
		[]slog.Attr{StatusCode(status), Duration(d), slog.Any("body", body)}, args)
}

// UIAction logs an interaction with a page element.
func (w *Writer) UIAction(action, element string, args ...any) {
	w.emit(slog.LevelInfo, CategoryUIAction, action, []slog.Attr{Element(element)}, args)
}

func (w *Writer) TestStart(name string, args ...any) {
	w.emit(slog.LevelInfo, CategoryTestStart, name, []slog.Attr{TestName(name)}, args)
}

// TestEnd logs the outcome of a test. Failed tests are logged at warn level.
func (w *Writer) TestEnd(name string, passed bool, d time.Duration, args ...any) {
	level := slog.LevelInfo
	if !passed {
		level = slog.LevelWarn
	}
	w.emit(level, CategoryTestEnd, name, []slog.Attr{TestName(name), Status(passed), Duration(d)}, args)
}

// Configuration logs one configuration entry. Sensitive keys are masked.
func (w *Writer) Configuration(key string, value any, args ...any) {
	w.emit(slog.LevelInfo, CategoryConfig, key, []slog.Attr{slog.Any(key, value)}, args)
}

func (w *Writer) emit(level slog.Level, cat Category, description string, fixed []slog.Attr, args []any) {
	l := w.logger()
	ctx := context.Background()
	if !l.Enabled(ctx, level) {
		return
	}

	red := w.redactor
	if hr, ok := redactorOf(l.Handler()); ok {
		red = hr
	}

	attrs := make([]slog.Attr, 0, 1+len(fixed)+len(args))
	attrs = append(attrs, CategoryAttr(cat))
	for _, a := range fixed {
		attrs = append(attrs, red.Attr(a))
	}
	for _, a := range argsToAttrs(args) {
		attrs = append(attrs, red.Attr(a))
	}

	l.LogAttrs(ctx, level, "["+string(cat)+"] "+red.Text(description), attrs...)
}

// argsToAttrs mirrors how slog turns loose key/value arguments into attributes.
func argsToAttrs(args []any) []slog.Attr {
	var attrs []slog.Attr
	for len(args) > 0 {
		switch x := args[0].(type) {
		case string:
			if len(args) == 1 {
				attrs = append(attrs, slog.String(badKey, x))
				args = nil
				continue
			}
			attrs = append(attrs, slog.Any(x, args[1]))
			args = args[2:]
		case slog.Attr:
			attrs = append(attrs, x)
			args = args[1:]
		default:
			attrs = append(attrs, slog.Any(badKey, x))
			args = args[1:]
		}
	}
	return attrs
}

// Package-level functions write through Default.

func LogAction(action string, args ...any) { std.Action(action, args...) }

func LogError(message string, err error, args ...any) { std.Error(message, err, args...) }

func LogPerformance(operation string, d time.Duration, args ...any) {
	std.Performance(operation, d, args...)
}

func LogData(key string, value any, args ...any) { std.Data(key, value, args...) }

func LogAPIRequest(method, url string, body any, args ...any) {
	std.APIRequest(method, url, body, args...)
}

func LogAPIResponse(status int, body any, d time.Duration, args ...any) {
	std.APIResponse(status, body, d, args...)
}

func LogUIAction(action, element string, args ...any) { std.UIAction(action, element, args...) }

func LogTestStart(name string, args ...any) { std.TestStart(name, args...) }

func LogTestEnd(name string, passed bool, d time.Duration, args ...any) {
	std.TestEnd(name, passed, d, args...)
}

func LogConfiguration(key string, value any, args ...any) { std.Configuration(key, value, args...) }
