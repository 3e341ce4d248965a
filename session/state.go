package session

// State is the session lifecycle position.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateAppAuthenticated
	StateAccountAuthenticated
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateAppAuthenticated:
		return "app_authenticated"
	case StateAccountAuthenticated:
		return "account_authenticated"
	case StateClosing:
		return "closing"
	default:
		return "unknown"
	}
}
