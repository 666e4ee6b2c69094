package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
)

// Masked replaces the whole value of a sensitive field.
const Masked = "***MASKED***"

// DefaultSensitiveKeys are matched as case-insensitive substrings of a key,
// so "userPassword" and "X-Auth-Token" are both sensitive.
var DefaultSensitiveKeys = []string{
	"password",
	"passwd",
	"secret",
	"token",
	"api_key",
	"apikey",
	"authorization",
	"cookie",
	"credential",
}

// IsSensitiveKey reports whether key contains any of keys after case folding.
// DefaultSensitiveKeys is used when no keys are given.
func IsSensitiveKey(key string, keys ...string) bool {
	if key == "" {
		return false
	}
	if len(keys) == 0 {
		keys = DefaultSensitiveKeys
	}
	// Casers keep state, so each call gets its own.
	folded := cases.Fold().String(key)
	for _, k := range keys {
		if k == "" {
			continue
		}
		if strings.Contains(folded, cases.Fold().String(k)) {
			return true
		}
	}
	return false
}

// MaskSensitive returns Masked when key is sensitive and value unchanged otherwise.
func MaskSensitive(key, value string, keys ...string) string {
	if IsSensitiveKey(key, keys...) {
		return Masked
	}
	return value
}
