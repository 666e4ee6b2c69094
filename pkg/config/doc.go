// Package config loads configuration structs from environment variables.
//
// It wraps `github.com/joho/godotenv` for .env files and
// `github.com/caarlos0/env/v11` for tag-driven parsing:
//
//	type LogConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg LogConfig
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// The default .env in the working directory is read once, if it exists.
// Additional files can be read up front with LoadEnv. Variables already set in
// the process environment always take precedence over file values.
//
// Each configuration type is parsed at most once per process, even under
// concurrent first use; later Load calls copy the cached value. ResetCache
// drops the cache and is meant for tests that change the environment.
//
// # Error Handling
//
// Sentinel errors can be compared with errors.Is:
//
//   - ErrParsingConfig – env vars could not be parsed into the struct
//   - ErrLoadingEnvFile – an explicitly requested .env file could not be read
//   - ErrNilPointer – nil pointer passed to Load
package config
