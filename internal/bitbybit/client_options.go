package bitbybit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/credentials"
)

// ClientOption defines a function type for configuring the Client
type ClientOption func(*Client) error

// WithHTTPClient allows setting a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) error {
		if httpClient == nil {
			return fmt.Errorf("HTTP client cannot be nil")
		}
		c.httpClient = httpClient
		return nil
	}
}

// WithTimeout sets the timeout of the underlying HTTP client
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) error {
		if timeout <= 0 {
			return fmt.Errorf("timeout must be positive")
		}
		c.httpClient.Timeout = timeout
		return nil
	}
}

// WithCredentialStore sets the store the access token is read from
func WithCredentialStore(store credentials.Store) ClientOption {
	return func(c *Client) error {
		if store == nil {
			return fmt.Errorf("credential store cannot be nil")
		}
		c.store = store
		return nil
	}
}
