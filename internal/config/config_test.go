package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BITBYBIT_API_URL", DefaultAPIURL)
	t.Setenv("BITBYBIT_HTTP_TIMEOUT", "not-a-number")
	t.Setenv("BITBYBIT_REDIS_DB", "")

	cfg := LoadConfig()

	assert.Equal(t, DefaultAPIURL, cfg.API.URL)
	assert.Equal(t, DefaultHTTPTimeout, cfg.API.Timeout)
	assert.Equal(t, 0, cfg.Credentials.Redis.DB)
	assert.NotEmpty(t, cfg.Credentials.TokenFile)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("BITBYBIT_API_URL", "http://localhost:8000/api/")
	t.Setenv("BITBYBIT_HTTP_TIMEOUT", "5")
	t.Setenv("BITBYBIT_ACCESS_TOKEN", "abc")
	t.Setenv("BITBYBIT_TOKEN_FILE", "/tmp/creds.json")
	t.Setenv("BITBYBIT_REDIS_ADDR", "localhost:6379")
	t.Setenv("BITBYBIT_REDIS_DB", "3")
	t.Setenv("BITBYBIT_DRAFT_FILE", "draft.json")

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:8000/api/", cfg.API.URL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "abc", cfg.Credentials.AccessToken)
	assert.Equal(t, "/tmp/creds.json", cfg.Credentials.TokenFile)
	assert.Equal(t, "localhost:6379", cfg.Credentials.Redis.Addr)
	assert.Equal(t, 3, cfg.Credentials.Redis.DB)
	assert.Equal(t, "draft.json", cfg.Draft.Path)
}

func TestLoadConfigTimeoutFallback(t *testing.T) {
	for _, value := range []string{"0", "-5", ""} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("BITBYBIT_HTTP_TIMEOUT", value)
			assert.Equal(t, DefaultHTTPTimeout, LoadConfig().API.Timeout)
		})
	}
}
