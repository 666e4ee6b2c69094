// Package validator checks the primitive values that test suites feed to, and
// read back from, the system under test, and aggregates the outcome into a
// Result.
//
// Every check is available as a Rule, a small value holding a Check function
// and the ValidationError reported when it fails. Rules are evaluated either
// with Apply, which returns a ValidationErrors error, or appended to a Result
// with Result.Check. The ValidateX helpers wrap a rule into a fresh Result and
// the IsValidX helpers return only the validity bit.
//
// # Result
//
// A Result is valid exactly when it holds no errors. Errors are kept in the
// order they were added and are never deduplicated:
//
//	res := validator.ValidateUser(name, username, email, phone, website)
//	if res.HasErrors() {
//	    logger.LogError("user payload rejected", res.Err())
//	}
//
// ErrorMessage returns the first message, which is what single-check call
// sites want. AllErrorsAsString is the view to use when several checks may
// have failed.
//
// # Invalid input
//
// Invalid domain input is never returned as a Go error from a check and never
// panics; it always ends up as a message inside a Result. Err converts a
// failed Result into ValidationErrors for code that prefers error returns.
//
// # Grammars
//
// The format checks are plain regular expressions:
//
//   - email: local part of letters, digits and . _ % + -, "@", then two or more
//     dot-separated labels
//   - phone: optional "+", digits with "-", "(", ")" and spaces, 7 to 15 digits
//   - URL: http, https or ftp, "://", then a non-empty remainder
//   - username: 3 to 20 letters, digits, "_" or "-"
//
// Go strings cannot be nil, so an empty string takes the place of a missing
// value for these checks and is always invalid. ValidateNotEmpty and
// ValidateNotEmptySlice do see nil and report it separately from empty input.
package validator
