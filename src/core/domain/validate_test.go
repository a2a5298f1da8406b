package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFailuresAggregatesAll(t *testing.T) {
	err := FromFailures([]FieldFailure{
		{Path: []string{"title"}, Message: "title is required", Received: nil},
		{Path: []string{"author"}, Message: "author must be at least 2 characters long", Received: "x"},
	})

	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "Validation failed", err.Message)
	require.Len(t, err.Details, 2)

	title, ok := err.Details["title"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "title is required", title["message"])

	author, ok := err.Details["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "x", author["received"])
}

func TestFromFailuresDottedPath(t *testing.T) {
	err := FromFailures([]FieldFailure{
		{Path: []string{"profile", "email"}, Message: "Invalid email format", Received: "nope"},
	})
	require.Contains(t, err.Details, "profile.email")
}

func TestFromFailuresFirstWins(t *testing.T) {
	err := FromFailures([]FieldFailure{
		{Path: []string{"email"}, Message: "first", Received: "a"},
		{Path: []string{"email"}, Message: "second", Received: "b"},
	})

	require.Len(t, err.Details, 1)
	detail := err.Details["email"].(map[string]any)
	assert.Equal(t, "first", detail["message"])
	assert.Equal(t, "a", detail["received"])
}

func TestFromFailuresEmptyPath(t *testing.T) {
	err := FromFailures([]FieldFailure{
		{Path: nil, Message: "invalid JSON", Received: nil},
	})
	require.Contains(t, err.Details, "body")
}

func TestFromFailuresEmptyList(t *testing.T) {
	err := FromFailures(nil)
	assert.Equal(t, KindValidation, err.Kind)
	assert.Empty(t, err.Details)
}
