package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/qakit/pkg/sanitizer"
)

// NotNil fails for nil and for typed nil pointers, slices and maps.
func NotNil(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return !sanitizer.IsNil(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s cannot be null", field),
			TranslationKey: "validation.not_null",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NotBlank fails when the text form of value is empty after trimming.
// Nil values count as blank.
func NotBlank(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(textOf(value)) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s cannot be empty", field),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return NotBlank(field, value)
}

// MinLen counts characters, not bytes.
func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s length must be minimum %d characters", field, min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLen counts characters, not bytes.
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("%s length must be maximum %d characters", field, max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// ValidateNotEmpty reports "cannot be null" for nil input and
// "cannot be empty" for blank input. Only one of the two is ever reported.
func ValidateNotEmpty(field string, value any) *Result {
	if sanitizer.IsNil(value) {
		return Success().Check(NotNil(field, value))
	}
	return Success().Check(NotBlank(field, value))
}

// ValidateLength checks min <= length(value) <= max.
func ValidateLength(field, value string, min, max int) *Result {
	return Success().Check(
		MinLen(field, value, min),
		MaxLen(field, value, max),
	)
}

func textOf(value any) string {
	if sanitizer.IsNil(value) {
		return ""
	}
	switch v := value.(type) {
	case string:
		return v
	case *string:
		return *v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
