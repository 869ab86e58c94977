package bitbybit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/credentials"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/models"
	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/config"
)

// Client represents a BitByBit API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      credentials.Store
}

// New creates a new BitByBit API client. Paths passed to the client are
// relative to baseURL, e.g. "banners/".
func New(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		baseURL = config.DefaultAPIURL
	}

	// Relative paths are appended, so the base must end with a slash
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	client := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: config.DefaultHTTPTimeout,
		},
		store: credentials.NewMemoryStore(""),
	}

	for _, opt := range opts {
		if err := opt(client); err != nil {
			return nil, fmt.Errorf("failed to apply client option: %w", err)
		}
	}

	return client, nil
}

// BaseURL returns the address every request path is resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Store returns the credential store the client reads tokens from
func (c *Client) Store() credentials.Store {
	return c.store
}

// cacheHeaders disable caching by browsers and intermediaries on every request
var cacheHeaders = map[string]string{
	"Cache-Control": "no-cache, no-store, must-revalidate",
	"Pragma":        "no-cache",
	"Expires":       "0",
}

// RequestOption customizes a single request before it is intercepted
type RequestOption func(*http.Request)

// WithHeader sets a header on a single request. Setting Authorization this way
// takes precedence over the stored token.
func WithHeader(key, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(key, value)
	}
}

// NewRequest builds a request against the API base with the default headers applied
func (c *Client) NewRequest(ctx context.Context, method, path string, body interface{}, opts ...RequestOption) (*http.Request, error) {
	var bodyReader io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(body); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+strings.TrimPrefix(path, "/"), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range cacheHeaders {
		req.Header.Set(key, value)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, opt := range opts {
		opt(req)
	}

	return req, nil
}

// Do intercepts req with the stored credential, sends it and decodes a JSON
// response into out when out is non-nil. Non-2xx responses are returned as
// *models.APIError alongside the response.
func (c *Client) Do(req *http.Request, out interface{}) (*http.Response, error) {
	if err := c.authenticateRequest(req); err != nil {
		return nil, err
	}

	ctx := req.Context()
	tflog.Debug(ctx, "sending BitByBit API request", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, fmt.Errorf("failed to read response body: %w", err)
	}

	tflog.Debug(ctx, "received BitByBit API response", map[string]interface{}{
		"method": req.Method,
		"url":    req.URL.String(),
		"status": resp.StatusCode,
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, models.NewAPIError(resp.StatusCode, req.URL.Path, respBody)
	}

	if out != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp, fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	return resp, nil
}

// doRequest builds, intercepts and sends a request in one step
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, out interface{}, opts ...RequestOption) (*http.Response, error) {
	req, err := c.NewRequest(ctx, method, path, body, opts...)
	if err != nil {
		return nil, err
	}

	return c.Do(req, out)
}
