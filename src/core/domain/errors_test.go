package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		kind   ErrorKind
		code   string
		status int
		msg    string
	}{
		{"unauthorized default", NewUnauthorized(""), KindUnauthorized, "AUTH.UNAUTHORIZED", http.StatusUnauthorized, "Unauthorized"},
		{"not found default", NewNotFound("", nil), KindNotFound, "RESOURCE.NOT_FOUND", http.StatusNotFound, "Not found"},
		{"validation default", NewValidation("", nil), KindValidation, "INPUT.VALIDATION", http.StatusUnprocessableEntity, "Invalid input"},
		{"system fault", NewSystemFault(errors.New("boom")), KindSystemFault, "SYS.UNKNOWN", http.StatusInternalServerError, "Internal server error"},
		{"custom message kept", NewNotFound("Article not found", nil), KindNotFound, "RESOURCE.NOT_FOUND", http.StatusNotFound, "Article not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.msg, tt.err.Message)
		})
	}
}

func TestCodesAreUnique(t *testing.T) {
	codes := []string{CodeUnauthorized, CodeNotFound, CodeValidation, CodeSystemFault}
	seen := map[string]bool{}
	for _, c := range codes {
		assert.False(t, seen[c], "duplicate code %s", c)
		seen[c] = true
	}
}

func TestSystemFaultKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewSystemFault(cause)

	assert.ErrorIs(t, err, cause)
	require.NotNil(t, err.Details)
	assert.Equal(t, "connection refused", err.Details["message"])
}

func TestAsErrorThroughWrapping(t *testing.T) {
	inner := NewNotFound("User not found", map[string]any{"userId": "abc"})
	wrapped := fmt.Errorf("loading profile: %w", inner)

	de, ok := AsError(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, de.Kind)
	assert.Equal(t, "abc", de.Details["userId"])

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
}

func TestAsErrorPlainError(t *testing.T) {
	_, ok := AsError(errors.New("boom"))
	assert.False(t, ok)
	assert.False(t, IsNotFound(errors.New("boom")))
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, IsUnauthorized(NewUnauthorized("")))
	assert.True(t, IsValidation(NewValidation("", nil)))
	assert.True(t, IsSystemFault(NewSystemFault(nil)))
}
