// config/config.go
package config

import (
	"os"
	"strings"
)

// Config holds all process configuration. It is built once at startup and
// passed down explicitly; nothing else in the call graph reads the
// environment.
type Config struct {
	TemporalAddress   string
	TemporalNamespace string
	TemporalAPIKey    string // empty means unauthenticated
	TemporalTLS       bool

	TaskQueue string

	AppPort string
	DBPath  string
}

// FromEnv reads the configuration from environment variables, applying
// defaults for anything unset.
func FromEnv() Config {
	return Config{
		TemporalAddress:   getenv("TEMPORAL_ADDRESS", "localhost:7233"),
		TemporalNamespace: getenv("TEMPORAL_NAMESPACE", "default"),
		TemporalAPIKey:    os.Getenv("TEMPORAL_API_KEY"),
		TemporalTLS:       strings.EqualFold(os.Getenv("TEMPORAL_TLS"), "true"),
		TaskQueue:         getenv("PYTHON_CHILD_TASK_QUEUE", "python-child"),
		AppPort:           getenv("APP_PORT", "3000"),
		DBPath:            getenv("GREETER_DB_PATH", "./greeter.db"),
	}
}

// HasAPIKey reports whether an API key was supplied. Callers must not set a
// credential field when this is false.
func (c Config) HasAPIKey() bool {
	return c.TemporalAPIKey != ""
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
