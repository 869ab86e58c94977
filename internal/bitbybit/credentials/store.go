package credentials

import (
	"context"
	"fmt"
	"io"

	"github.com/bitbybit-edu/terraform-provider-bitbybit/internal/config"
)

// TokenKey is the fixed key the access token is persisted under
const TokenKey = "access_token"

// Store holds the access token written by the login flow and read by the API client.
// An empty token with a nil error means no token is stored.
type Store interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// Open selects a store from the configuration: Redis when an address is set,
// otherwise the JSON token file. A configured access token is written into
// the store before it is returned.
func Open(ctx context.Context, cfg config.CredentialsConfig) (Store, error) {
	var store Store
	switch {
	case cfg.Redis.Addr != "":
		store = NewRedisStore(cfg.Redis)
	case cfg.TokenFile != "":
		store = NewFileStore(cfg.TokenFile)
	default:
		store = NewMemoryStore("")
	}

	if cfg.AccessToken != "" {
		if err := store.SetToken(ctx, cfg.AccessToken); err != nil {
			return nil, fmt.Errorf("failed to store access token: %w", err)
		}
	}

	return store, nil
}

// Close releases the connections held by a store, if it holds any
func Close(store Store) error {
	if c, ok := store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
