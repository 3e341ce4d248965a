// Package endpoints holds the well-known cTrader Open API endpoints.
package endpoints

const (
	// AuthURI is the browser-facing OAuth2 authorization UI.
	AuthURI = "https://openapi.ctrader.com/apps/auth"
	// TokenURI is the OAuth2 token exchange endpoint.
	TokenURI = "https://openapi.ctrader.com/apps/token"

	DemoHost = "demo.ctraderapi.com"
	LiveHost = "live.ctraderapi.com"

	// ProtobufPort serves length-prefixed protobuf over TLS.
	ProtobufPort = 5035
	// WebSocketPort serves the same envelopes as binary WebSocket messages.
	WebSocketPort = 5036
)

// HostFor maps a host type ("live" or anything else, treated as demo) to a hostname.
func HostFor(hostType string) string {
	if hostType == "live" {
		return LiveHost
	}
	return DemoHost
}
