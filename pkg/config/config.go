package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	AppEnv   string
	LogLevel string
	LogFile  string

	HTTPPort    int
	CORSOrigins []string

	// CatalogURL is empty unless overridden; the catalog client owns the default.
	CatalogURL     string
	CatalogTimeout time.Duration
}

// Load reads an optional .env file from the working directory, then the
// process environment. Variables already set in the environment win.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:         getEnv("APP_ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", ""),
		HTTPPort:       getEnvInt("HTTP_PORT", 8080),
		CORSOrigins:    getEnvList("CORS_ORIGINS", []string{"*"}),
		CatalogURL:     getEnv("CATALOG_URL", ""),
		CatalogTimeout: getEnvDuration("CATALOG_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	n, err := cast.ToIntE(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return def
	}

	return n
}

// getEnvDuration accepts Go durations ("5s") and bare integers, which cast
// reads as nanoseconds; anything under a millisecond falls back to def.
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	d, err := cast.ToDurationE(strings.TrimSpace(v))
	if err != nil || d < time.Millisecond {
		return def
	}

	return d
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}

	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
