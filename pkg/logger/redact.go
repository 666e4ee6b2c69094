package logger

import (
	"context"
	"encoding"
	"encoding/json"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/qakit/pkg/sanitizer"
)

// NullText is what a nil value renders as.
const NullText = "null"

// Redactor prepares attribute values for output. It masks values of sensitive
// keys, truncates long text and renders nil as NullText, in that order.
type Redactor struct {
	keys  []string
	limit int
}

// NewRedactor returns a Redactor that truncates after limit characters and
// masks the given keys, or sanitizer.DefaultSensitiveKeys when none are given.
func NewRedactor(limit int, keys ...string) Redactor {
	if len(keys) == 0 {
		keys = sanitizer.DefaultSensitiveKeys
	}
	return Redactor{keys: slices.Clone(keys), limit: limit}
}

// maxDepth bounds how far nested maps and structs are walked.
const maxDepth = 8

// Attr returns a sanitized copy of a. Groups are sanitized recursively; a
// group under a sensitive key is masked as a whole. Maps with string keys and
// structs are turned into groups so that their keys are masked as well.
func (r Redactor) Attr(a slog.Attr) slog.Attr {
	return r.attr(a, 0)
}

func (r Redactor) attr(a slog.Attr, depth int) slog.Attr {
	if a.Equal(slog.Attr{}) {
		return a
	}
	if sanitizer.IsSensitiveKey(a.Key, r.keys...) {
		return slog.String(a.Key, sanitizer.Masked)
	}

	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindGroup:
		group := v.Group()
		out := make([]slog.Attr, 0, len(group))
		for _, ga := range group {
			out = append(out, r.attr(ga, depth+1))
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	case slog.KindString:
		return slog.String(a.Key, sanitizer.Truncate(v.String(), r.limit))
	case slog.KindAny:
		return slog.Attr{Key: a.Key, Value: r.anyValue(v.Any(), depth)}
	default:
		return slog.Attr{Key: a.Key, Value: v}
	}
}

// Text sanitizes a value that has no key, such as a log message.
func (r Redactor) Text(s string) string {
	return sanitizer.Truncate(s, r.limit)
}

func (r Redactor) anyValue(x any, depth int) slog.Value {
	if sanitizer.IsNil(x) {
		return slog.StringValue(NullText)
	}
	if depth < maxDepth {
		if fields, ok := fieldsOf(x); ok {
			out := make([]slog.Attr, 0, len(fields))
			for _, f := range fields {
				out = append(out, r.attr(f, depth+1))
			}
			return slog.GroupValue(out...)
		}
	}
	if r.limit <= 0 {
		return slog.AnyValue(x)
	}

	var text string
	switch t := x.(type) {
	case error:
		text = t.Error()
	case fmt.Stringer:
		text = t.String()
	case []byte:
		text = string(t)
	default:
		text = fmt.Sprint(t)
	}
	if utf8.RuneCountInString(text) > r.limit {
		return slog.StringValue(sanitizer.Truncate(text, r.limit))
	}
	return slog.AnyValue(x)
}

// fieldsOf lists the entries of a non-empty map with string keys, sorted by
// key, or the exported fields of a struct named by their json tag when
// present. Pointers are followed. Values that render themselves as text or
// JSON are left alone.
func fieldsOf(x any) ([]slog.Attr, bool) {
	switch x.(type) {
	case error, fmt.Stringer, encoding.TextMarshaler, json.Marshaler:
		return nil, false
	}

	rv := reflect.ValueOf(x)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String || rv.Len() == 0 {
			return nil, false
		}
		keys := rv.MapKeys()
		slices.SortFunc(keys, func(a, b reflect.Value) int {
			return strings.Compare(a.String(), b.String())
		})
		attrs := make([]slog.Attr, 0, len(keys))
		for _, k := range keys {
			attrs = append(attrs, slog.Any(k.String(), rv.MapIndex(k).Interface()))
		}
		return attrs, true
	case reflect.Struct:
		t := rv.Type()
		attrs := make([]slog.Attr, 0, t.NumField())
		for i := range t.NumField() {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name := f.Name
			if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag == "-" {
				continue
			} else if tag != "" {
				name = tag
			}
			attrs = append(attrs, slog.Any(name, rv.Field(i).Interface()))
		}
		if len(attrs) == 0 {
			return nil, false
		}
		return attrs, true
	}
	return nil, false
}

// redactorOf returns the Redactor of the RedactHandler that New places in
// h's chain.
func redactorOf(h slog.Handler) (Redactor, bool) {
	for {
		switch x := h.(type) {
		case *RedactHandler:
			return x.redactor, true
		case *LogHandlerDecorator:
			h = x.next
		default:
			return Redactor{}, false
		}
	}
}

// RedactHandler applies a Redactor to every attribute before passing the
// record on, including attributes bound with WithAttrs.
type RedactHandler struct {
	next     slog.Handler
	redactor Redactor
}

func NewRedactHandler(next slog.Handler, r Redactor) slog.Handler {
	return &RedactHandler{next: next, redactor: r}
}

func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *RedactHandler) Handle(ctx context.Context, rec slog.Record) error {
	clean := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(h.redactor.Attr(a))
		return true
	})
	return h.next.Handle(ctx, clean)
}

func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		clean = append(clean, h.redactor.Attr(a))
	}
	return &RedactHandler{next: h.next.WithAttrs(clean), redactor: h.redactor}
}

func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{next: h.next.WithGroup(name), redactor: h.redactor}
}
