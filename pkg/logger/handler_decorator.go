package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor extracts a slog attribute from context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// LogHandlerDecorator wraps a slog.Handler and adds attributes pulled from
// the context of every record.
type LogHandlerDecorator struct {
	next       slog.Handler
	extractors []ContextExtractor
}

// NewLogHandlerDecorator creates a new decorated handler. Nil extractors are dropped.
func NewLogHandlerDecorator(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	clean := make([]ContextExtractor, 0, len(extractors))
	for _, ex := range extractors {
		if ex != nil {
			clean = append(clean, ex)
		}
	}
	return &LogHandlerDecorator{next: next, extractors: clean}
}

func (h *LogHandlerDecorator) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

// Handle runs the extractors against ctx on every call, so request or test
// scoped values are always current.
func (h *LogHandlerDecorator) Handle(ctx context.Context, rec slog.Record) error {
	if ctx != nil {
		for _, ex := range h.extractors {
			if attr, ok := ex(ctx); ok {
				rec.AddAttrs(attr)
			}
		}
	}
	return h.next.Handle(ctx, rec)
}

func (h *LogHandlerDecorator) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogHandlerDecorator{next: h.next.WithAttrs(attrs), extractors: h.extractors}
}

func (h *LogHandlerDecorator) WithGroup(name string) slog.Handler {
	return &LogHandlerDecorator{next: h.next.WithGroup(name), extractors: h.extractors}
}

// LevelSplitHandler sends records at or above threshold to one handler and
// everything below it to another, e.g. errors to stderr and the rest to stdout.
type LevelSplitHandler struct {
	low       slog.Handler
	high      slog.Handler
	threshold slog.Level
}

func NewLevelSplitHandler(low, high slog.Handler, threshold slog.Level) slog.Handler {
	return &LevelSplitHandler{low: low, high: high, threshold: threshold}
}

func (h *LevelSplitHandler) pick(level slog.Level) slog.Handler {
	if level >= h.threshold {
		return h.high
	}
	return h.low
}

func (h *LevelSplitHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.pick(level).Enabled(ctx, level)
}

func (h *LevelSplitHandler) Handle(ctx context.Context, rec slog.Record) error {
	return h.pick(rec.Level).Handle(ctx, rec)
}

func (h *LevelSplitHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LevelSplitHandler{low: h.low.WithAttrs(attrs), high: h.high.WithAttrs(attrs), threshold: h.threshold}
}

func (h *LevelSplitHandler) WithGroup(name string) slog.Handler {
	return &LevelSplitHandler{low: h.low.WithGroup(name), high: h.high.WithGroup(name), threshold: h.threshold}
}
