package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/qakit/pkg/sanitizer"
)

func TestIsSensitiveKey(t *testing.T) {
	tests := []struct {
		key       string
		sensitive bool
	}{
		{key: "password", sensitive: true},
		{key: "PASSWORD", sensitive: true},
		{key: "userPassword", sensitive: true},
		{key: "access_token", sensitive: true},
		{key: "X-Auth-Token", sensitive: true},
		{key: "Authorization", sensitive: true},
		{key: "client_secret", sensitive: true},
		{key: "username", sensitive: false},
		{key: "email", sensitive: false},
		{key: "", sensitive: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.sensitive, sanitizer.IsSensitiveKey(tt.key))
		})
	}
}

func TestIsSensitiveKey_CustomKeys(t *testing.T) {
	assert.True(t, sanitizer.IsSensitiveKey("SessionID", "sessionid"))
	assert.False(t, sanitizer.IsSensitiveKey("password", "sessionid"))
	assert.False(t, sanitizer.IsSensitiveKey("anything", ""))
}

func TestMaskSensitive(t *testing.T) {
	assert.Equal(t, sanitizer.Masked, sanitizer.MaskSensitive("password", "password123"))
	assert.Equal(t, "***MASKED***", sanitizer.MaskSensitive("token", ""))
	assert.Equal(t, "john", sanitizer.MaskSensitive("username", "john"))
}
