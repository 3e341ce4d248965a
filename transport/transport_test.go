package transport

import (
	"errors"
	"net"
	"testing"

	"github.com/paxelcool/ctrader-open-api-async/framing/protoframe"
)

func TestTCPConnRoundTrip(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	left := NewTCPConn(a, 0)
	right := NewTCPConn(b, 0)

	done := make(chan error, 1)
	go func() { done <- left.WriteEnvelope([]byte("envelope")) }()

	got, err := right.ReadEnvelope()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "envelope" {
		t.Fatalf("payload = %q", got)
	}
	if err := <-done; err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestTCPConnFrameLimit(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()
	defer b.Close()

	right := NewTCPConn(b, 8)

	go func() {
		_ = protoframe.WriteFrame(a, make([]byte, 64), 0)
	}()

	if _, err := right.ReadEnvelope(); !errors.Is(err, protoframe.ErrFrameTooLarge) {
		t.Fatalf("expected frame too large, got %v", err)
	}
}

func TestTCPConnCloseUnblocksRead(t *testing.T) {
	a, b := net.Pipe()
	defer a.Close()

	right := NewTCPConn(b, 0)
	done := make(chan error, 1)
	go func() {
		_, err := right.ReadEnvelope()
		done <- err
	}()
	if err := right.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := <-done; err == nil {
		t.Fatalf("expected read error after close")
	}
}

func TestConfigDefaults(t *testing.T) {
	var cfg Config
	if cfg.maxFrame() != protoframe.DefaultMaxFrameBytes {
		t.Fatalf("max frame = %d", cfg.maxFrame())
	}
	if !cfg.tlsConfig().InsecureSkipVerify {
		t.Fatalf("expected verification off by default")
	}
	cfg.VerifyPeer = true
	if cfg.tlsConfig().InsecureSkipVerify {
		t.Fatalf("expected verification on")
	}
}
