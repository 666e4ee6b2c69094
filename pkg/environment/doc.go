// Package environment names the stages a test suite can run against
// (development, staging, production) and parses them from configuration.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	if env.IsProduction() {
//	    // keep logs terse
//	}
package environment
