package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HostType != "demo" {
		t.Fatalf("host = %q", cfg.HostType)
	}
	if cfg.Transport != "tcp" {
		t.Fatalf("transport = %q", cfg.Transport)
	}
	if cfg.HeartbeatIdle != 20*time.Second {
		t.Fatalf("heartbeat idle = %s", cfg.HeartbeatIdle)
	}
	if cfg.MessagesPerSecond != 5 {
		t.Fatalf("messages per second = %g", cfg.MessagesPerSecond)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CTRADER_HOST", "live")
	t.Setenv("CTRADER_TRANSPORT", "websocket")
	t.Setenv("CTRADER_MESSAGES_PER_SECOND", "2.5")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HostType != "live" || cfg.Transport != "websocket" || cfg.MessagesPerSecond != 2.5 {
		t.Fatalf("config = %+v", cfg)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"host", func(c *Config) { c.HostType = "staging" }},
		{"transport", func(c *Config) { c.Transport = "quic" }},
		{"rate", func(c *Config) { c.MessagesPerSecond = 0 }},
		{"heartbeat", func(c *Config) { c.HeartbeatIdle = 0 }},
		{"port", func(c *Config) { c.Port = 70000 }},
		{"loglevel", func(c *Config) { c.LogLevel = "trace2" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{
				HostType:          "demo",
				Transport:         "tcp",
				MessagesPerSecond: 5,
				HeartbeatIdle:     20 * time.Second,
				LogLevel:          "info",
			}
			tc.mut(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
