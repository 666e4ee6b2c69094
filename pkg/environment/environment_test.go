package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qakit/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected environment.Environment
	}{
		{name: "production", input: "production", expected: environment.Production},
		{name: "prod alias", input: "prod", expected: environment.Production},
		{name: "staging", input: "staging", expected: environment.Staging},
		{name: "stage alias", input: "stage", expected: environment.Staging},
		{name: "development", input: "development", expected: environment.Development},
		{name: "case and spaces", input: "  PROD ", expected: environment.Production},
		{name: "empty defaults to development", input: "", expected: environment.Development},
		{name: "unknown defaults to development", input: "qa", expected: environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, environment.Parse(tt.input))
		})
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, environment.Production.IsProduction())
	assert.False(t, environment.Production.IsDevelopment())
	assert.True(t, environment.Staging.IsStaging())
	assert.True(t, environment.Development.IsDevelopment())
	assert.Equal(t, "staging", environment.Staging.String())
}
