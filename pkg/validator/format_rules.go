package validator

import (
	"net/url"
	"regexp"
)

var (
	// Email: local part of letters, digits and . _ % + -, then "@" and at
	// least two dot-separated domain labels.
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)+$`)

	// Phone: optional leading "+", then digits mixed with "-", "(", ")" and spaces.
	phoneRegex = regexp.MustCompile(`^\+?[0-9() -]+$`)

	// URL: http, https or ftp scheme, "://" and a non-empty remainder without whitespace.
	urlRegex = regexp.MustCompile(`^(?i)(https?|ftp)://\S+$`)

	// Username: 3 to 20 letters, digits, "_" or "-".
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{3,20}$`)
)

const (
	phoneMinDigits = 7
	phoneMaxDigits = 15
)

// ValidEmail validates an address of the form local@domain.tld.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid email format",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidPhone validates a phone number with 7 to 15 digits and common separators.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !phoneRegex.MatchString(value) {
				return false
			}
			digits := 0
			for _, r := range value {
				if r >= '0' && r <= '9' {
					digits++
				}
			}
			return digits >= phoneMinDigits && digits <= phoneMaxDigits
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid phone number format",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidURL validates an absolute http, https or ftp URL.
func ValidURL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if !urlRegex.MatchString(value) {
				return false
			}
			_, err := url.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid URL format",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ValidUsername(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return usernameRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "Invalid username format (3-20 characters, letters, digits, _ and -)",
			TranslationKey: "validation.username",
			TranslationValues: map[string]any{
				"field": field,
				"min":   3,
				"max":   20,
			},
		},
	}
}

func IsValidEmail(value string) bool {
	return ValidEmail("email", value).Check()
}

func IsValidPhone(value string) bool {
	return ValidPhone("phone", value).Check()
}

func IsValidURL(value string) bool {
	return ValidURL("url", value).Check()
}

func IsValidUsername(value string) bool {
	return ValidUsername("username", value).Check()
}

func ValidateEmail(field, value string) *Result {
	return Success().Check(ValidEmail(field, value))
}

func ValidatePhone(field, value string) *Result {
	return Success().Check(ValidPhone(field, value))
}

func ValidateURL(field, value string) *Result {
	return Success().Check(ValidURL(field, value))
}

func ValidateUsername(field, value string) *Result {
	return Success().Check(ValidUsername(field, value))
}
