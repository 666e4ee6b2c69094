package validator

import "fmt"

// NotNilSlice fails only for a nil slice; an empty non-nil slice passes.
func NotNilSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return value != nil
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

func RequiredSlice[T any](field string, value []T) Rule {
	return Rule{
		Check: func() bool {
			return len(value) > 0
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

// ValidateNotEmptySlice reports "cannot be null" for a nil slice and
// "cannot be empty" for a slice without elements.
func ValidateNotEmptySlice[T any](field string, value []T) *Result {
	if value == nil {
		return Success().Check(NotNilSlice(field, value))
	}
	return Success().Check(RequiredSlice(field, value))
}
