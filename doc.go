// Package qakit is a toolkit for test-automation suites: validators that
// collect every failure of a value or record into one result, and a logging
// layer that writes one categorized, sanitized line per event.
//
// Packages:
//
//   - pkg/validator – field rules (not null, not empty, length, numeric
//     range, email, phone, URL, username), Result aggregation and composite
//     validators for user and post records
//   - pkg/logger – slog factory, per-name logger registry and the category
//     Writer (ACTION, ERROR, PERFORMANCE, DATA, API REQUEST, API RESPONSE,
//     UI ACTION, TEST START, TEST END, CONFIG)
//   - pkg/sanitizer – masking of sensitive keys and truncation of long text
//   - pkg/config – environment and .env loading into tagged structs
//   - pkg/environment – environment names used by logger presets
//
// Basic usage:
//
//	var log = logger.For[LoginPage]()
//
//	res := validator.ValidateUser(u.Name, u.Username, u.Email, u.Phone, u.Website)
//	if !res.IsValid() {
//		logger.NewWriter(log).Error("invalid user fixture", res.Err())
//	}
//
// The cmd/qakit command exposes the validators on the command line.
package qakit
