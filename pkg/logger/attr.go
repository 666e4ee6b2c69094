package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// CategoryAttr records the category token under the key "category".
func CategoryAttr(c Category) slog.Attr {
	return slog.String("category", string(c))
}

// Name records the logger name under the key "logger".
func Name(name string) slog.Attr {
	return slog.String("logger", name)
}

// RunIDAttr records the suite run identifier under the key "run_id".
func RunIDAttr(id string) slog.Attr {
	return slog.String("run_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// DurationMS records a duration in whole milliseconds under "duration_ms".
func DurationMS(d time.Duration) slog.Attr {
	return slog.Int64("duration_ms", d.Milliseconds())
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Method records an HTTP method under the key "method".
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// URL records a request URL under the key "url".
func URL(u string) slog.Attr {
	return slog.String("url", u)
}

// StatusCode records an HTTP status code under the key "status_code".
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// Element records a UI element locator under the key "element".
func Element(locator string) slog.Attr {
	return slog.String("element", locator)
}

// TestName records a test name under the key "test".
func TestName(name string) slog.Attr {
	return slog.String("test", name)
}

// Status records a test outcome under the key "status".
func Status(passed bool) slog.Attr {
	if passed {
		return slog.String("status", "PASSED")
	}
	return slog.String("status", "FAILED")
}
