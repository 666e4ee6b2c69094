// Package sanitizer prepares values for log output.
//
// Two rules are provided and callers apply them in this order:
//
//   - masking: a value whose key contains a sensitive name such as "password"
//     or "token" (case-insensitive) is replaced entirely by Masked;
//   - truncation: text longer than a limit keeps its first characters and gets
//     TruncatedMarker appended, so the full original never reaches the output.
//
//	v := sanitizer.MaskSensitive("password", "password123") // "***MASKED***"
//	v = sanitizer.Truncate(strings.Repeat("a", 150), sanitizer.DefaultTruncateLimit)
//
// Lengths are counted in characters, not bytes, and a cut never splits a
// multi-byte character. The package is stateless and safe for concurrent use.
package sanitizer
