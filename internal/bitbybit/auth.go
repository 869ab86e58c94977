package bitbybit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/terraform-plugin-log/tflog"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/bitbybit/helpers"
)

// AuthScheme is the prefix the backend expects in front of the access token
const AuthScheme = "JWT"

// authenticateRequest attaches the stored token unless the caller already set
// an Authorization header. A header set right after login carries the fresh
// token and must not be replaced by whatever the store still holds.
func (c *Client) authenticateRequest(req *http.Request) error {
	if req.Header.Get("Authorization") != "" {
		return nil
	}

	token, err := c.store.Token(req.Context())
	if err != nil {
		return fmt.Errorf("failed to read access token: %w", err)
	}
	if token == "" {
		return nil
	}

	warnIfExpired(req, token)

	req.Header.Set("Authorization", AuthScheme+" "+token)
	return nil
}

// warnIfExpired logs when the stored token is a JWT past its expiry. The
// request is still sent; the server has the final say.
func warnIfExpired(req *http.Request, token string) {
	expiresAt, err := helpers.ParseJWTExpiration(token)
	if err != nil || expiresAt.IsZero() {
		return
	}

	if time.Now().After(expiresAt) {
		tflog.Warn(req.Context(), "stored access token has expired", map[string]interface{}{
			"expired_at": expiresAt.Format(time.RFC3339),
			"path":       req.URL.Path,
		})
	}
}
