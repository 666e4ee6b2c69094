package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qakit/pkg/logger"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func decode(t *testing.T, line string) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	return entry
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		valid   bool
		message string
	}{
		{name: "valid email", args: []string{"email", "user@example.com"}, valid: true},
		{name: "invalid email", args: []string{"email", "user@"}, message: "Invalid email format"},
		{name: "valid phone", args: []string{"phone", "+1 (555) 123-4567"}, valid: true},
		{name: "invalid phone", args: []string{"phone", "12ab"}, message: "Invalid phone number format"},
		{name: "valid url", args: []string{"url", "https://example.com/path"}, valid: true},
		{name: "invalid url", args: []string{"url", "example.com"}, message: "Invalid URL format"},
		{name: "valid username", args: []string{"username", "john_doe"}, valid: true},
		{name: "invalid username", args: []string{"username", "jo"}, message: "Invalid username format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--log-format", "json", "validate"}, tt.args...)
			stdout, stderr, err := execute(t, args...)

			if tt.valid {
				require.NoError(t, err)
				assert.Empty(t, stderr)
				entry := decode(t, stdout)
				assert.Equal(t, "DATA", entry["category"])
				assert.Equal(t, true, entry["valid"])
				assert.Equal(t, tt.args[0], entry["subject"])
				return
			}

			require.ErrorIs(t, err, errInvalid)
			assert.Empty(t, stdout)
			entry := decode(t, stderr)
			assert.Equal(t, "ERROR", entry["category"])
			assert.Equal(t, "ERROR", entry["level"])
			assert.Contains(t, entry["error"], tt.message)
		})
	}
}

func TestValidateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		stdout, _, err := execute(t, "validate", "user",
			"--name", "Leanne Graham",
			"--username", "Bret",
			"--email", "Sincere@april.biz",
			"--phone", "1-770-736-8031",
			"--website", "http://hildegard.org",
		)
		require.NoError(t, err)
		assert.Contains(t, stdout, "[DATA]")
		assert.Contains(t, stdout, "valid=true")
	})

	t.Run("collects every failure", func(t *testing.T) {
		_, stderr, err := execute(t, "validate", "user",
			"--username", "x",
			"--email", "bad",
			"--phone", "1",
			"--website", "nope",
		)
		require.ErrorIs(t, err, errInvalid)
		assert.Contains(t, stderr, "[ERROR]")
		assert.Contains(t, stderr, "Name cannot be empty")
		assert.Contains(t, stderr, "Invalid email format")
		assert.Contains(t, stderr, "error_count=5")
	})
}

func TestValidatePost(t *testing.T) {
	_, _, err := execute(t, "validate", "post", "--user-id", "1", "--title", "Hello", "--body", "World")
	require.NoError(t, err)

	_, stderr, err := execute(t, "validate", "post", "--user-id", "0", "--title", "Hello")
	require.ErrorIs(t, err, errInvalid)
	assert.Contains(t, stderr, "User ID must be a positive number")
	assert.Contains(t, stderr, "Body cannot be empty")
}

func TestLogFlags(t *testing.T) {
	t.Run("invalid level", func(t *testing.T) {
		_, _, err := execute(t, "--log-level", "loud", "validate", "email", "a@b.co")
		assert.ErrorIs(t, err, logger.ErrInvalidLevel)
	})

	t.Run("invalid format", func(t *testing.T) {
		_, _, err := execute(t, "--log-format", "xml", "validate", "email", "a@b.co")
		assert.ErrorIs(t, err, logger.ErrInvalidFormat)
	})

	t.Run("level hides data line", func(t *testing.T) {
		stdout, _, err := execute(t, "--log-level", "error", "validate", "email", "a@b.co")
		require.NoError(t, err)
		assert.Empty(t, stdout)
	})
}

func TestValidate_Args(t *testing.T) {
	_, _, err := execute(t, "validate", "email")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errInvalid)
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "qakit v"+Version))
}
