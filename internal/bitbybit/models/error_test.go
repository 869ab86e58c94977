package models

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "error key", body: `{"error": "This topic has no notes to generate from."}`, want: "This topic has no notes to generate from."},
		{name: "detail key", body: `{"detail": "Not found."}`, want: "Not found."},
		{name: "non field errors", body: `{"non_field_errors": ["Invalid exam."]}`, want: "Invalid exam."},
		{name: "field errors", body: `{"title": ["This field may not be blank."]}`, want: "title: This field may not be blank."},
		{name: "plain text", body: "Bad Gateway\n", want: "Bad Gateway"},
		{name: "empty", body: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewAPIError(http.StatusBadRequest, "/api/banners/", []byte(tt.body))
			assert.Equal(t, tt.want, err.Message)
		})
	}
}

func TestAPIErrorPredicates(t *testing.T) {
	wrapped := fmt.Errorf("failed to delete banner: %w", NewAPIError(http.StatusNotFound, "/api/banners/9/", nil))
	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidationError(wrapped))
	assert.False(t, IsAuthenticationError(wrapped))
	assert.Equal(t, "failed to delete banner: API error: 404 Not Found (/api/banners/9/)", wrapped.Error())

	assert.True(t, IsAuthenticationError(NewAPIError(http.StatusForbidden, "/", nil)))
	assert.True(t, IsAuthenticationError(NewAPIError(http.StatusUnauthorized, "/", nil)))
	assert.True(t, IsValidationError(NewAPIError(http.StatusBadRequest, "/", nil)))
	assert.False(t, IsNotFound(fmt.Errorf("plain")))
}

func TestDifficultyValid(t *testing.T) {
	assert.True(t, DifficultyHard.Valid())
	assert.False(t, Difficulty("Brutal").Valid())
}
