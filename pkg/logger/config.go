package logger

import (
	appconfig "github.com/dmitrymomot/qakit/pkg/config"
)

// Config is the environment-driven logger configuration.
// Empty Level and Format leave the environment preset in charge.
type Config struct {
	Level         string   `env:"LOG_LEVEL"`
	Format        string   `env:"LOG_FORMAT"`
	Env           string   `env:"APP_ENV" envDefault:"development"`
	Service       string   `env:"SERVICE_NAME" envDefault:"qakit"`
	TruncateLimit int      `env:"LOG_TRUNCATE_LIMIT" envDefault:"100"`
	SensitiveKeys []string `env:"LOG_SENSITIVE_KEYS" envSeparator:","`
	RunID         bool     `env:"LOG_RUN_ID" envDefault:"true"`
}

// LoadConfig reads Config from the environment and the optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := appconfig.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Options translates the configuration into factory options. Explicit level
// and format come after the environment preset so they take precedence.
func (c Config) Options() ([]Option, error) {
	opts := []Option{
		WithEnvironment(c.Env, c.Service),
		WithTruncateLimit(c.TruncateLimit),
	}
	if c.Level != "" {
		level, err := ParseLevel(c.Level)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithLevel(level))
	}
	if c.Format != "" {
		format, err := ParseFormat(c.Format)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithFormat(format))
	}
	if len(c.SensitiveKeys) > 0 {
		opts = append(opts, WithSensitiveKeys(c.SensitiveKeys...))
	}
	if c.RunID {
		opts = append(opts, WithRunID())
	}
	return opts, nil
}
