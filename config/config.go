// Package config loads runtime configuration from the environment, with an
// optional .env file for development. Precedence: environment variables, then
// .env, then defaults.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the process-level configuration for a connector.
type Config struct {
	// Application credentials. Either set these directly or point
	// CredentialsFile at a JSON file holding them.
	ClientID        string `env:"CTRADER_CLIENT_ID"`
	ClientSecret    string `env:"CTRADER_CLIENT_SECRET"`
	CredentialsFile string `env:"CTRADER_CREDENTIALS_FILE"`

	// HostType selects the proxy environment: "demo" or "live".
	HostType string `env:"CTRADER_HOST" envDefault:"demo"`

	// AccountID is the trading account to bind after app auth. Zero means
	// the caller picks one from AccountsByAccessToken.
	AccountID int64 `env:"CTRADER_ACCOUNT_ID"`

	// OAuth redirect and token storage.
	RedirectURI string `env:"CTRADER_REDIRECT_URI" envDefault:"http://localhost:8080/redirect"`
	TokenFile   string `env:"CTRADER_TOKEN_FILE" envDefault:"tokens.json"`

	// Transport selects "tcp" (length-prefixed TLS) or "websocket".
	Transport string `env:"CTRADER_TRANSPORT" envDefault:"tcp"`
	// Port overrides the transport's default port when non-zero.
	Port int `env:"CTRADER_PORT"`

	ConnectTimeout    time.Duration `env:"CTRADER_CONNECT_TIMEOUT" envDefault:"10s"`
	ResponseTimeout   time.Duration `env:"CTRADER_RESPONSE_TIMEOUT" envDefault:"30s"`
	HeartbeatIdle     time.Duration `env:"CTRADER_HEARTBEAT_IDLE" envDefault:"20s"`
	MessagesPerSecond float64       `env:"CTRADER_MESSAGES_PER_SECOND" envDefault:"5"`

	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	MetricsAddr string `env:"METRICS_ADDR"`
}

// Load reads the environment into a Config. A missing .env file is not an
// error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the connector cannot run with.
func (c *Config) Validate() error {
	switch c.HostType {
	case "demo", "live":
	default:
		return fmt.Errorf("CTRADER_HOST must be demo or live, got %q", c.HostType)
	}
	switch c.Transport {
	case "tcp", "websocket":
	default:
		return fmt.Errorf("CTRADER_TRANSPORT must be tcp or websocket, got %q", c.Transport)
	}
	if c.MessagesPerSecond <= 0 {
		return fmt.Errorf("CTRADER_MESSAGES_PER_SECOND must be > 0, got %g", c.MessagesPerSecond)
	}
	if c.HeartbeatIdle <= 0 {
		return fmt.Errorf("CTRADER_HEARTBEAT_IDLE must be > 0, got %s", c.HeartbeatIdle)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("CTRADER_PORT out of range: %d", c.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	return nil
}
