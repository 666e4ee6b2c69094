package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qakit/pkg/validator"
)

func TestValidatePositiveNumber(t *testing.T) {
	t.Parallel()

	t.Run("zero is not positive", func(t *testing.T) {
		res := validator.ValidatePositiveNumber("User ID", 0)
		assert.False(t, res.IsValid())
		assert.Equal(t, "User ID must be a positive number", res.ErrorMessage())
	})

	t.Run("negative is not positive", func(t *testing.T) {
		assert.False(t, validator.ValidatePositiveNumber("User ID", -1).IsValid())
	})

	t.Run("positive", func(t *testing.T) {
		assert.True(t, validator.ValidatePositiveNumber("User ID", 5).IsValid())
	})

	t.Run("floats", func(t *testing.T) {
		assert.True(t, validator.ValidatePositiveNumber("Price", 0.01).IsValid())
		assert.False(t, validator.ValidatePositiveNumber("Price", -0.5).IsValid())
	})

	t.Run("unsigned zero", func(t *testing.T) {
		assert.False(t, validator.ValidatePositiveNumber("Count", uint(0)).IsValid())
	})
}

func TestValidateNumberRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value int
		valid bool
	}{
		{name: "below range", value: 0},
		{name: "above range", value: 11},
		{name: "inside range", value: 5, valid: true},
		{name: "lower bound", value: 1, valid: true},
		{name: "upper bound", value: 10, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := validator.ValidateNumberRange("N", tt.value, 1, 10)
			assert.Equal(t, tt.valid, res.IsValid())
			if !tt.valid {
				assert.Contains(t, res.ErrorMessage(), "1 to 10")
				assert.Equal(t, "N must be in range from 1 to 10", res.ErrorMessage())
			}
		})
	}
}

func TestMinMaxNum(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.MinNum("Age", 18, 18).Check())
	assert.False(t, validator.MinNum("Age", 17, 18).Check())
	assert.True(t, validator.MaxNum("Retries", 3, 3).Check())

	rule := validator.MaxNum("Retries", 4, 3)
	assert.False(t, rule.Check())
	assert.Equal(t, "Retries must be at most 3", rule.Error.Message)
	assert.Equal(t, "validation.max", rule.Error.TranslationKey)
}
