package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// DefaultAPIURL is the hosted BitByBit API used when no override is configured
const DefaultAPIURL = "https://bitbybit-p3ym.onrender.com/api/"

// DefaultHTTPTimeout bounds every API request unless overridden
const DefaultHTTPTimeout = 30 * time.Second

type Config struct {
	API         APIConfig
	Credentials CredentialsConfig
	Draft       DraftConfig
}

type APIConfig struct {
	URL     string
	Timeout time.Duration
}

type CredentialsConfig struct {
	// AccessToken, when set, is written into the selected store on startup
	AccessToken string
	TokenFile   string
	Redis       RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DraftConfig struct {
	Path string
}

func LoadConfig() *Config {
	return &Config{
		API: APIConfig{
			URL:     loadEnv("BITBYBIT_API_URL", DefaultAPIURL),
			Timeout: loadEnvAsSeconds("BITBYBIT_HTTP_TIMEOUT", DefaultHTTPTimeout),
		},
		Credentials: CredentialsConfig{
			AccessToken: loadEnv("BITBYBIT_ACCESS_TOKEN", ""),
			TokenFile:   loadEnv("BITBYBIT_TOKEN_FILE", defaultTokenFile()),
			Redis: RedisConfig{
				Addr:     loadEnv("BITBYBIT_REDIS_ADDR", ""),
				Password: loadEnv("BITBYBIT_REDIS_PASSWORD", ""),
				DB:       loadEnvAsInt("BITBYBIT_REDIS_DB", 0),
			},
		},
		Draft: DraftConfig{
			Path: loadEnv("BITBYBIT_DRAFT_FILE", "bitbybit-draft.json"),
		},
	}
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".bitbybit", "credentials.json")
	}
	return filepath.Join(home, ".bitbybit", "credentials.json")
}

func loadEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func loadEnvAsInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

// loadEnvAsSeconds reads a whole number of seconds; values below one fall back
// to the default
func loadEnvAsSeconds(key string, defaultVal time.Duration) time.Duration {
	if seconds := loadEnvAsInt(key, 0); seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return defaultVal
}
