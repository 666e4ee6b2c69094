package logger

import (
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
)

// DefaultName is the registry key of the process-wide default logger.
const DefaultName = "qakit"

// registry memoizes one logger per name for the life of the process.
// Handles are created once and never replaced or evicted.
type registry struct {
	mu      sync.RWMutex
	loggers map[string]*slog.Logger
	opts    []Option
}

var (
	handles = &registry{loggers: make(map[string]*slog.Logger)}

	defaultLogger atomic.Pointer[slog.Logger]
)

// Get returns the logger registered under name, creating it on first use.
// Every call with the same name returns the same *slog.Logger, including
// concurrent first calls.
func Get(name string) *slog.Logger {
	handles.mu.RLock()
	l, ok := handles.loggers[name]
	handles.mu.RUnlock()
	if ok {
		return l
	}

	handles.mu.Lock()
	defer handles.mu.Unlock()

	if l, ok := handles.loggers[name]; ok {
		return l
	}
	l = New(append(slices.Clone(handles.opts), WithName(name))...)
	handles.loggers[name] = l
	return l
}

// For returns the logger registered under the type identity of T,
// e.g. "github.com/acme/suite/pages.LoginPage".
func For[T any]() *slog.Logger {
	return Get(typeName[T]())
}

// Configure sets the options applied to loggers created by Get from now on.
// Loggers that already exist keep their configuration.
func Configure(opts ...Option) {
	handles.mu.Lock()
	handles.opts = slices.Clone(opts)
	handles.mu.Unlock()
}

// SetAsDefault makes l the logger used by the package-level Log functions and
// by slog's top-level functions. Nil is ignored.
func SetAsDefault(l *slog.Logger) {
	if l == nil {
		return
	}
	defaultLogger.Store(l)
	slog.SetDefault(l)
}

// Default returns the logger installed with SetAsDefault, or the registry
// logger named DefaultName.
func Default() *slog.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}
	return Get(DefaultName)
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() != "" && t.Name() != "" {
		return t.PkgPath() + "." + t.Name()
	}
	return t.String()
}
