package defaults

import "time"

const (
	// ConnectTimeout is the default timeout for establishing the TLS connection.
	ConnectTimeout = 10 * time.Second
	// ResponseTimeout is the default per-request wait for a correlated response.
	ResponseTimeout = 30 * time.Second
	// HeartbeatIdle is the write-inactivity window after which a heartbeat is emitted.
	HeartbeatIdle = 20 * time.Second
)

const (
	// MessagesPerSecond is the default outbound dispatch rate.
	MessagesPerSecond = 5
	// MaxFrameBytes is the largest inbound frame the client accepts.
	//
	// Frames above this limit are a connection-fatal decode error.
	MaxFrameBytes = 15_000_000
)

const (
	// TokenRefreshSkew is how long before expiry a token is considered expiring.
	TokenRefreshSkew = 5 * time.Minute
	// OAuthScope is the default scope requested on the authorization URL.
	OAuthScope = "trading"
)
