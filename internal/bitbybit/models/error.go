package models

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// APIError represents a non-2xx response from the BitByBit API
type APIError struct {
	StatusCode int
	Path       string
	Message    string
}

// NewAPIError builds an APIError from a response status and raw body.
// The backend answers with {"error": ...}, {"detail": ...} or a map of
// field errors depending on which layer rejected the request.
func NewAPIError(statusCode int, path string, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Path:       path,
		Message:    extractMessage(body),
	}
}

func extractMessage(body []byte) string {
	if len(body) == 0 || !gjson.ValidBytes(body) {
		return strings.TrimSpace(string(body))
	}

	parsed := gjson.ParseBytes(body)
	for _, key := range []string{"error", "detail", "message", "non_field_errors.0"} {
		if v := parsed.Get(key); v.Exists() && v.String() != "" {
			return v.String()
		}
	}

	// Field validation errors: {"title": ["This field is required."]}
	var messages []string
	parsed.ForEach(func(field, value gjson.Result) bool {
		if value.IsArray() {
			for _, msg := range value.Array() {
				messages = append(messages, fmt.Sprintf("%s: %s", field.String(), msg.String()))
			}
		}
		return true
	})
	if len(messages) > 0 {
		return strings.Join(messages, "; ")
	}

	return parsed.Raw
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error: %d %s (%s)", e.StatusCode, http.StatusText(e.StatusCode), e.Path)
	}
	return fmt.Sprintf("API error: %d %s (%s): %s", e.StatusCode, http.StatusText(e.StatusCode), e.Path, e.Message)
}

func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

func (e *APIError) IsValidationError() bool {
	return e.StatusCode == http.StatusBadRequest
}

func (e *APIError) IsAuthenticationError() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsNotFound()
	}
	return false
}

func IsValidationError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsValidationError()
	}
	return false
}

func IsAuthenticationError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.IsAuthenticationError()
	}
	return false
}
