// temporal/client.go
package temporal

import (
	"crypto/tls"
	"fmt"
	"log"
	"os"

	"go.temporal.io/sdk/client"

	"greeter/config"
)

// NewClientOptions builds the Temporal client options from the process
// configuration. TLS and API-key credentials are applied only when
// configured; an unset API key leaves the credentials field empty rather
// than passing an empty token.
func NewClientOptions(cfg config.Config) client.Options {
	opts := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    NewSDKLogger(log.New(os.Stderr, "TEMPORAL_CLIENT: ", log.LstdFlags)),
	}

	if cfg.TemporalTLS {
		opts.ConnectionOptions.TLS = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	if cfg.HasAPIKey() {
		opts.Credentials = client.NewAPIKeyStaticCredentials(cfg.TemporalAPIKey)
	}

	return opts
}

// NewClient dials the Temporal service. A connectivity or authentication
// failure is returned to the caller; startup does not retry.
func NewClient(cfg config.Config) (client.Client, error) {
	c, err := client.Dial(NewClientOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("unable to create Temporal client: %w", err)
	}
	return c, nil
}

// --- Temporal Logger Adapter ---
// Wraps Go's standard logger for Temporal SDK compatibility.

type SDKLogger struct {
	logger *log.Logger
}

func NewSDKLogger(l *log.Logger) *SDKLogger {
	return &SDKLogger{logger: l}
}

func (l *SDKLogger) Debug(msg string, keyvals ...interface{}) {
	l.logger.Printf("DEBUG: %s %v\n", msg, keyvals)
}

func (l *SDKLogger) Info(msg string, keyvals ...interface{}) {
	l.logger.Printf("INFO: %s %v\n", msg, keyvals)
}

func (l *SDKLogger) Warn(msg string, keyvals ...interface{}) {
	l.logger.Printf("WARN: %s %v\n", msg, keyvals)
}

func (l *SDKLogger) Error(msg string, keyvals ...interface{}) {
	l.logger.Printf("ERROR: %s %v\n", msg, keyvals)
}
