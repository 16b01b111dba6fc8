package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"greeter/config"
	"greeter/temporal"
)

func baseConfig() config.Config {
	return config.Config{
		TemporalAddress:   "temporal.example.com:7233",
		TemporalNamespace: "greetings",
	}
}

func TestNewClientOptionsBase(t *testing.T) {
	opts := temporal.NewClientOptions(baseConfig())

	assert.Equal(t, "temporal.example.com:7233", opts.HostPort)
	assert.Equal(t, "greetings", opts.Namespace)
	assert.Nil(t, opts.ConnectionOptions.TLS)
	assert.Nil(t, opts.Credentials)
	assert.NotNil(t, opts.Logger)
}

func TestNewClientOptionsTLS(t *testing.T) {
	cfg := baseConfig()
	cfg.TemporalTLS = true

	opts := temporal.NewClientOptions(cfg)

	assert.NotNil(t, opts.ConnectionOptions.TLS)
	assert.Nil(t, opts.Credentials)
}

func TestNewClientOptionsAPIKey(t *testing.T) {
	cfg := baseConfig()
	cfg.TemporalAPIKey = "secret-token"

	opts := temporal.NewClientOptions(cfg)

	assert.NotNil(t, opts.Credentials)
	assert.Nil(t, opts.ConnectionOptions.TLS)
}
