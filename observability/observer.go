package observability

import (
	"sync"
	"sync/atomic"
	"time"
)

type CallResult string

const (
	CallResultOK             CallResult = "ok"
	CallResultServerError    CallResult = "server_error"
	CallResultTimeout        CallResult = "timeout"
	CallResultCanceled       CallResult = "canceled"
	CallResultTransportError CallResult = "transport_error"
)

type CloseReason string

const (
	CloseReasonPeerClosed    CloseReason = "peer_closed"
	CloseReasonFrameTooLarge CloseReason = "frame_too_large"
	CloseReasonDecodeError   CloseReason = "decode_error"
	CloseReasonReadError     CloseReason = "read_error"
	CloseReasonClientClosed  CloseReason = "client_closed"
)

type FrameDirection string

const (
	FrameRead  FrameDirection = "read"
	FrameWrite FrameDirection = "write"
)

// ClientObserver receives connection-level metric events.
type ClientObserver interface {
	Connected()
	Disconnected(reason CloseReason)
	Call(result CallResult, d time.Duration)
	FrameError(direction FrameDirection)
	HeartbeatSent()
	EventReceived(payloadType uint32)
	SendQueueDepth(n int)
}

type noopClientObserver struct{}

func (noopClientObserver) Connected()                        {}
func (noopClientObserver) Disconnected(CloseReason)          {}
func (noopClientObserver) Call(CallResult, time.Duration)    {}
func (noopClientObserver) FrameError(FrameDirection)         {}
func (noopClientObserver) HeartbeatSent()                    {}
func (noopClientObserver) EventReceived(uint32)              {}
func (noopClientObserver) SendQueueDepth(int)                {}

// NoopClientObserver is a zero-cost observer used when metrics are disabled.
var NoopClientObserver ClientObserver = noopClientObserver{}

// AtomicClientObserver swaps its delegate at runtime.
type AtomicClientObserver struct {
	once sync.Once
	v    atomic.Value
}

type clientObserverHolder struct {
	obs ClientObserver
}

// NewAtomicClientObserver returns an initialized atomic observer.
func NewAtomicClientObserver() *AtomicClientObserver {
	a := &AtomicClientObserver{}
	a.once.Do(func() { a.v.Store(&clientObserverHolder{obs: NoopClientObserver}) })
	return a
}

// Set replaces the delegate, falling back to the no-op observer on nil.
func (a *AtomicClientObserver) Set(obs ClientObserver) {
	if obs == nil {
		obs = NoopClientObserver
	}
	a.once.Do(func() { a.v.Store(&clientObserverHolder{obs: NoopClientObserver}) })
	a.v.Store(&clientObserverHolder{obs: obs})
}

func (a *AtomicClientObserver) load() ClientObserver {
	a.once.Do(func() { a.v.Store(&clientObserverHolder{obs: NoopClientObserver}) })
	return a.v.Load().(*clientObserverHolder).obs
}

func (a *AtomicClientObserver) Connected()                         { a.load().Connected() }
func (a *AtomicClientObserver) Disconnected(r CloseReason)         { a.load().Disconnected(r) }
func (a *AtomicClientObserver) Call(r CallResult, d time.Duration) { a.load().Call(r, d) }
func (a *AtomicClientObserver) FrameError(d FrameDirection)        { a.load().FrameError(d) }
func (a *AtomicClientObserver) HeartbeatSent()                     { a.load().HeartbeatSent() }
func (a *AtomicClientObserver) EventReceived(pt uint32)            { a.load().EventReceived(pt) }
func (a *AtomicClientObserver) SendQueueDepth(n int)               { a.load().SendQueueDepth(n) }
