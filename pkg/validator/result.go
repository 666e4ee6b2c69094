package validator

import "strings"

// Result aggregates the outcome of one or more checks.
// A result is valid exactly when it holds no errors; there is no separate flag
// that could drift out of sync. A nil *Result reads as valid; mutators called
// on nil return a new Result holding the added errors.
type Result struct {
	errs ValidationErrors
}

// Success returns a valid result with no errors.
func Success() *Result {
	return &Result{}
}

// Fail returns an invalid result holding a single message.
func Fail(message string) *Result {
	return Success().AddError(message)
}

// AddError appends a message that is not tied to a field.
func (r *Result) AddError(message string) *Result {
	if r == nil {
		r = Success()
	}
	r.errs.Add(ValidationError{Message: message})
	return r
}

// AddFieldError appends a fully described error.
func (r *Result) AddFieldError(err ValidationError) *Result {
	if r == nil {
		r = Success()
	}
	r.errs.Add(err)
	return r
}

// Check evaluates the rules and appends the error of every failed rule.
func (r *Result) Check(rules ...Rule) *Result {
	if r == nil {
		r = Success()
	}
	for _, rule := range rules {
		if !rule.Check() {
			r.errs.Add(rule.Error)
		}
	}
	return r
}

// Merge appends all errors of other, keeping their order.
func (r *Result) Merge(other *Result) *Result {
	if r == nil {
		r = Success()
	}
	if other != nil {
		r.errs = append(r.errs, other.errs...)
	}
	return r
}

func (r *Result) IsValid() bool {
	return r == nil || len(r.errs) == 0
}

func (r *Result) HasErrors() bool {
	return !r.IsValid()
}

func (r *Result) ErrorCount() int {
	if r == nil {
		return 0
	}
	return len(r.errs)
}

// ErrorMessage returns the first recorded message, or an empty string for a
// valid result.
func (r *Result) ErrorMessage() string {
	if r.IsValid() {
		return ""
	}
	return r.errs[0].Message
}

// AllErrorsAsString joins every message with "; " in the order they were added.
func (r *Result) AllErrorsAsString() string {
	if r.IsValid() {
		return ""
	}
	return strings.Join(r.errs.Messages(), "; ")
}

// Errors returns a copy of all messages.
func (r *Result) Errors() []string {
	if r == nil {
		return nil
	}
	return r.errs.Messages()
}

// FieldErrors returns a copy of the detailed errors.
func (r *Result) FieldErrors() ValidationErrors {
	if r.IsValid() {
		return nil
	}
	out := make(ValidationErrors, len(r.errs))
	copy(out, r.errs)
	return out
}

// Err returns the errors as ValidationErrors, or nil when the result is valid.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	return r.FieldErrors()
}

func (r *Result) String() string {
	if r.IsValid() {
		return "valid"
	}
	return r.AllErrorsAsString()
}
