package client

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/paxelcool/ctrader-open-api-async/internal/defaults"
	"github.com/paxelcool/ctrader-open-api-async/observability"
	"github.com/paxelcool/ctrader-open-api-async/openapi"
)

// Transport selects the wire transport used by Connect.
type Transport string

const (
	// TransportTCP speaks length-prefixed frames over TLS (port 5035).
	TransportTCP Transport = "tcp"
	// TransportWebSocket speaks one envelope per binary message (port 5036).
	TransportWebSocket Transport = "websocket"
)

// Option configures dialing, timeouts, limits, and callbacks.
//
// Omit an option to use the library default. For timeouts, a value of 0
// disables the timeout.
type Option func(*options) error

type options struct {
	transportKind Transport
	port          int
	verifyPeer    bool

	connectTimeout  time.Duration
	responseTimeout time.Duration
	heartbeatIdle   time.Duration

	messagesPerSecond float64
	maxFrameBytes     int

	logger   zerolog.Logger
	observer observability.ClientObserver

	onMessage    func(msg openapi.Message, env *openapi.ProtoMessage)
	onDisconnect func(err error)
}

func defaultOptions() options {
	return options{
		transportKind:     TransportTCP,
		connectTimeout:    defaults.ConnectTimeout,
		responseTimeout:   defaults.ResponseTimeout,
		heartbeatIdle:     defaults.HeartbeatIdle,
		messagesPerSecond: defaults.MessagesPerSecond,
		maxFrameBytes:     defaults.MaxFrameBytes,
		logger:            zerolog.Nop(),
		observer:          observability.NoopClientObserver,
	}
}

func applyOptions(opts []Option) (options, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return options{}, err
		}
	}
	return cfg, nil
}

// WithTransport selects TCP (default) or WebSocket framing.
func WithTransport(t Transport) Option {
	return func(cfg *options) error {
		switch t {
		case TransportTCP, TransportWebSocket:
			cfg.transportKind = t
			return nil
		default:
			return fmt.Errorf("unknown transport %q", t)
		}
	}
}

// WithPort overrides the destination port; 0 uses the transport's default.
func WithPort(port int) Option {
	return func(cfg *options) error {
		if port < 0 || port > 65535 {
			return fmt.Errorf("port out of range")
		}
		cfg.port = port
		return nil
	}
}

// WithVerifyPeer enables TLS certificate verification.
func WithVerifyPeer(verify bool) Option {
	return func(cfg *options) error {
		cfg.verifyPeer = verify
		return nil
	}
}

// WithConnectTimeout sets the dial timeout; 0 disables the timeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(cfg *options) error {
		if d < 0 {
			return fmt.Errorf("connect timeout must be >= 0")
		}
		cfg.connectTimeout = d
		return nil
	}
}

// WithResponseTimeout sets the default wait for a correlated response; 0 disables the timeout.
func WithResponseTimeout(d time.Duration) Option {
	return func(cfg *options) error {
		if d < 0 {
			return fmt.Errorf("response timeout must be >= 0")
		}
		cfg.responseTimeout = d
		return nil
	}
}

// WithHeartbeatIdle sets the write-inactivity window before a heartbeat is sent; 0 disables heartbeats.
func WithHeartbeatIdle(d time.Duration) Option {
	return func(cfg *options) error {
		if d < 0 {
			return fmt.Errorf("heartbeat idle must be >= 0")
		}
		cfg.heartbeatIdle = d
		return nil
	}
}

// WithMessagesPerSecond sets the outbound dispatch rate for queued sends.
func WithMessagesPerSecond(n float64) Option {
	return func(cfg *options) error {
		if n <= 0 {
			return fmt.Errorf("messages per second must be > 0")
		}
		cfg.messagesPerSecond = n
		return nil
	}
}

// WithMaxFrameBytes bounds a single inbound envelope.
func WithMaxFrameBytes(n int) Option {
	return func(cfg *options) error {
		if n <= 0 {
			return fmt.Errorf("max frame bytes must be > 0")
		}
		cfg.maxFrameBytes = n
		return nil
	}
}

// WithLogger sets the structured logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *options) error {
		cfg.logger = l
		return nil
	}
}

// WithObserver sets the metrics observer.
func WithObserver(obs observability.ClientObserver) Option {
	return func(cfg *options) error {
		if obs == nil {
			obs = observability.NoopClientObserver
		}
		cfg.observer = obs
		return nil
	}
}

// WithOnMessage registers the callback invoked, in receive order, for every
// uncorrelated server message. The callback runs on the receive goroutine;
// blocking in it stalls the connection.
func WithOnMessage(fn func(msg openapi.Message, env *openapi.ProtoMessage)) Option {
	return func(cfg *options) error {
		cfg.onMessage = fn
		return nil
	}
}

// WithOnDisconnect registers the callback invoked once when the connection ends.
func WithOnDisconnect(fn func(err error)) Option {
	return func(cfg *options) error {
		cfg.onDisconnect = fn
		return nil
	}
}
