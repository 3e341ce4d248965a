// Package client maintains one duplex Open API connection: it frames and
// serializes envelopes, schedules outbound messages through a rate limiter,
// keeps the link alive with heartbeats, and correlates responses to requests
// by client message ID.
package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/paxelcool/ctrader-open-api-async/cterrors"
	"github.com/paxelcool/ctrader-open-api-async/endpoints"
	"github.com/paxelcool/ctrader-open-api-async/framing/protoframe"
	"github.com/paxelcool/ctrader-open-api-async/internal/contextutil"
	"github.com/paxelcool/ctrader-open-api-async/observability"
	"github.com/paxelcool/ctrader-open-api-async/openapi"
	"github.com/paxelcool/ctrader-open-api-async/transport"
)

// Client is a connection to one Open API proxy.
//
// All methods are safe for concurrent use. A Client is single-shot: after
// Close or a connection loss, build a new one to reconnect.
type Client struct {
	host string
	cfg  options
	log  zerolog.Logger
	obs  observability.ClientObserver

	writeMu sync.Mutex // serializes frame writes (queue and instant paths)

	mu      sync.Mutex
	conn    transport.FrameConn
	pending map[string]chan *openapi.ProtoMessage
	closed  bool
	lossErr error

	queue   chan *openapi.ProtoMessage
	limiter *rate.Limiter

	lastWrite atomic.Int64 // unix nanos of the last frame write

	startOnce sync.Once
	stop      chan struct{}
	loops     sync.WaitGroup

	disconnectOnce sync.Once
}

// New builds a client for the given proxy host ("demo.ctraderapi.com" or
// "live.ctraderapi.com"). It does not connect; call Connect.
func New(host string, opts ...Option) (*Client, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, cterrors.Wrap(cterrors.StageValidate, cterrors.CodeInvalidOption, err)
	}
	if host == "" {
		return nil, cterrors.Wrap(cterrors.StageValidate, cterrors.CodeInvalidOption, fmt.Errorf("empty host"))
	}
	return &Client{
		host:    host,
		cfg:     cfg,
		log:     cfg.logger.With().Str("component", "client").Str("host", host).Logger(),
		obs:     cfg.observer,
		pending: make(map[string]chan *openapi.ProtoMessage),
		queue:   make(chan *openapi.ProtoMessage, 256),
		limiter: rate.NewLimiter(rate.Limit(cfg.messagesPerSecond), 1),
		stop:    make(chan struct{}),
	}, nil
}

// Connect dials the proxy and starts the send and receive loops.
func (c *Client) Connect(ctx context.Context) error {
	dialCtx, cancel := contextutil.WithTimeout(ctx, c.cfg.connectTimeout)
	defer cancel()

	tcfg := transport.Config{
		VerifyPeer:    c.cfg.verifyPeer,
		MaxFrameBytes: c.cfg.maxFrameBytes,
	}
	var (
		conn transport.FrameConn
		err  error
	)
	switch c.cfg.transportKind {
	case TransportWebSocket:
		port := c.cfg.port
		if port == 0 {
			port = endpoints.WebSocketPort
		}
		conn, err = transport.DialWebSocket(dialCtx, c.host, port, tcfg)
	default:
		port := c.cfg.port
		if port == 0 {
			port = endpoints.ProtobufPort
		}
		conn, err = transport.DialTCP(dialCtx, fmt.Sprintf("%s:%d", c.host, port), tcfg)
	}
	if err != nil {
		return cterrors.Wrap(cterrors.StageConnect, cterrors.CodeDialFailed, err)
	}
	if err := c.attach(conn); err != nil {
		_ = conn.Close()
		return err
	}
	c.log.Debug().Str("transport", string(c.cfg.transportKind)).Msg("connected")
	c.obs.Connected()
	return nil
}

// attach installs an established connection and starts the loops.
func (c *Client) attach(conn transport.FrameConn) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return cterrors.Wrap(cterrors.StageConnect, cterrors.CodeConnectionClosed, ErrConnectionClosed)
	}
	if c.conn != nil {
		c.mu.Unlock()
		return cterrors.Wrap(cterrors.StageConnect, cterrors.CodeInvalidOption, ErrAlreadyConnected)
	}
	c.conn = conn
	c.mu.Unlock()

	c.lastWrite.Store(time.Now().UnixNano())
	c.startOnce.Do(func() {
		c.loops.Add(2)
		go c.sendLoop()
		go c.readLoop()
	})
	return nil
}

// Send wraps msg in an envelope with a fresh client message ID, schedules it
// through the rate limiter, and waits for the correlated response.
//
// The wait is bounded by ctx and by the configured response timeout,
// whichever ends first. On timeout the pending entry is evicted; a response
// arriving later is dropped.
func (c *Client) Send(ctx context.Context, msg openapi.Message) (*openapi.ProtoMessage, error) {
	start := time.Now()
	res, err := c.send(ctx, msg)
	c.observeCall(err, time.Since(start))
	return res, err
}

func (c *Client) send(ctx context.Context, msg openapi.Message) (*openapi.ProtoMessage, error) {
	env, err := openapi.Wrap(msg, uuid.NewString())
	if err != nil {
		return nil, cterrors.Wrap(cterrors.StageCodec, cterrors.CodeMalformedPayload, err)
	}
	ch, err := c.reserve(env.ClientMsgID)
	if err != nil {
		return nil, err
	}
	defer c.release(env.ClientMsgID)

	waitCtx, cancel := contextutil.WithTimeout(ctx, c.cfg.responseTimeout)
	defer cancel()

	select {
	case c.queue <- env:
		c.obs.SendQueueDepth(len(c.queue))
	case <-waitCtx.Done():
		return nil, c.waitErr(waitCtx, ctx)
	case <-c.stop:
		return nil, c.lossError()
	}

	select {
	case resp, ok := <-ch:
		if !ok {
			return nil, c.lossError()
		}
		return resp, nil
	case <-waitCtx.Done():
		return nil, c.waitErr(waitCtx, ctx)
	}
}

// SendEvent schedules an uncorrelated message (an event from the client's
// side, e.g. a heartbeat) without waiting for any response.
func (c *Client) SendEvent(ctx context.Context, msg openapi.Message) error {
	env, err := openapi.Wrap(msg, "")
	if err != nil {
		return cterrors.Wrap(cterrors.StageCodec, cterrors.CodeMalformedPayload, err)
	}
	select {
	case c.queue <- env:
		c.obs.SendQueueDepth(len(c.queue))
		return nil
	case <-ctx.Done():
		return cterrors.Wrap(cterrors.StageSend, cterrors.CodeCanceled, ctx.Err())
	case <-c.stop:
		return c.lossError()
	}
}

// waitErr maps a wait cancellation to timeout or canceled.
func (c *Client) waitErr(waitCtx, ctx context.Context) error {
	if ctx.Err() != nil {
		return cterrors.Wrap(cterrors.StageSend, cterrors.CodeCanceled, ctx.Err())
	}
	if errors.Is(waitCtx.Err(), context.DeadlineExceeded) {
		return cterrors.Wrap(cterrors.StageSend, cterrors.CodeTimeout, ErrResponseTimeout)
	}
	return cterrors.Wrap(cterrors.StageSend, cterrors.CodeCanceled, waitCtx.Err())
}

func (c *Client) reserve(id string) (chan *openapi.ProtoMessage, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, cterrors.Wrap(cterrors.StageSend, cterrors.CodeConnectionClosed, ErrConnectionClosed)
	}
	if c.conn == nil {
		return nil, cterrors.Wrap(cterrors.StageSend, cterrors.CodeNotConnected, ErrNotConnected)
	}
	ch := make(chan *openapi.ProtoMessage, 1)
	c.pending[id] = ch
	return ch, nil
}

func (c *Client) release(id string) {
	c.mu.Lock()
	if ch, ok := c.pending[id]; ok {
		delete(c.pending, id)
		close(ch)
	}
	c.mu.Unlock()
}

// sendLoop drains the queue at the configured rate and emits heartbeats when
// the writer has been idle for the heartbeat window.
func (c *Client) sendLoop() {
	defer c.loops.Done()

	var idle *time.Ticker
	var idleC <-chan time.Time
	if c.cfg.heartbeatIdle > 0 {
		idle = time.NewTicker(c.cfg.heartbeatIdle / 2)
		idleC = idle.C
		defer idle.Stop()
	}

	limitCtx, cancelLimit := context.WithCancel(context.Background())
	defer cancelLimit()
	go func() {
		<-c.stop
		cancelLimit()
	}()

	for {
		select {
		case <-c.stop:
			return
		case env := <-c.queue:
			if err := c.limiter.Wait(limitCtx); err != nil {
				return
			}
			if err := c.writeEnvelope(env); err != nil {
				c.obs.FrameError(observability.FrameWrite)
				c.teardown(err, observability.CloseReasonPeerClosed)
				return
			}
			c.obs.SendQueueDepth(len(c.queue))
		case <-idleC:
			if time.Since(time.Unix(0, c.lastWrite.Load())) < c.cfg.heartbeatIdle {
				continue
			}
			if err := c.sendHeartbeat(); err != nil {
				c.obs.FrameError(observability.FrameWrite)
				c.teardown(err, observability.CloseReasonPeerClosed)
				return
			}
		}
	}
}

// sendHeartbeat writes a heartbeat immediately, bypassing the queue and the
// rate limiter so keepalives cannot starve behind queued requests.
func (c *Client) sendHeartbeat() error {
	env, err := openapi.Wrap(&openapi.HeartbeatEvent{}, "")
	if err != nil {
		return err
	}
	if err := c.writeEnvelope(env); err != nil {
		return err
	}
	c.obs.HeartbeatSent()
	c.log.Trace().Msg("heartbeat sent")
	return nil
}

func (c *Client) writeEnvelope(env *openapi.ProtoMessage) error {
	b, err := env.MarshalBinary()
	if err != nil {
		return err
	}
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}
	c.writeMu.Lock()
	err = conn.WriteEnvelope(b)
	c.writeMu.Unlock()
	if err != nil {
		return err
	}
	c.lastWrite.Store(time.Now().UnixNano())
	return nil
}

// readLoop reads frames until the connection fails, resolving correlated
// responses and dispatching everything else to the message callback in
// arrival order.
func (c *Client) readLoop() {
	defer c.loops.Done()

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return
	}
	for {
		b, err := conn.ReadEnvelope()
		if err != nil {
			reason := observability.CloseReasonReadError
			if errors.Is(err, protoframe.ErrFrameTooLarge) {
				reason = observability.CloseReasonFrameTooLarge
			}
			c.obs.FrameError(observability.FrameRead)
			c.teardown(err, reason)
			return
		}
		env, err := openapi.DecodeEnvelope(b)
		if err != nil {
			// Decode failures are logged and skipped; only transport errors
			// tear the connection down.
			c.log.Warn().Err(err).Msg("envelope not decoded")
			continue
		}
		c.dispatch(env)
	}
}

func (c *Client) dispatch(env *openapi.ProtoMessage) {
	if env.PayloadType == openapi.PayloadTypeHeartbeatEvent {
		// Answer the server's keepalive right away.
		if err := c.sendHeartbeat(); err != nil {
			c.log.Debug().Err(err).Msg("heartbeat reply failed")
		}
		return
	}

	if env.ClientMsgID == "" {
		c.obs.EventReceived(uint32(env.PayloadType))
	}
	c.invokeOnMessage(env)

	if env.ClientMsgID == "" {
		return
	}
	c.mu.Lock()
	ch := c.pending[env.ClientMsgID]
	c.mu.Unlock()
	if ch != nil {
		select {
		case ch <- env:
		default:
		}
		return
	}
	// Evicted on timeout before the response arrived; drop it.
	c.log.Debug().Str("client_msg_id", env.ClientMsgID).Msg("late response dropped")
}

// invokeOnMessage runs the callback on the receive goroutine so handlers see
// messages in wire order. A panicking handler is logged, never fatal.
func (c *Client) invokeOnMessage(env *openapi.ProtoMessage) {
	if c.cfg.onMessage == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.Error().Interface("panic", r).Msg("message callback panicked")
		}
	}()
	msg, err := openapi.Extract(env)
	if err != nil {
		// Unknown payload types still reach the callback as a raw envelope.
		c.log.Debug().Uint32("payload_type", uint32(env.PayloadType)).Err(err).Msg("message not decoded")
		c.cfg.onMessage(nil, env)
		return
	}
	c.cfg.onMessage(msg, env)
}

// teardown fails every pending request and runs the disconnect callback once.
func (c *Client) teardown(cause error, reason observability.CloseReason) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.lossErr = cause
	conn := c.conn
	for id, ch := range c.pending {
		delete(c.pending, id)
		close(ch)
	}
	c.mu.Unlock()

	close(c.stop)
	if conn != nil {
		_ = conn.Close()
	}
	c.obs.Disconnected(reason)
	c.log.Debug().Err(cause).Str("reason", string(reason)).Msg("disconnected")
	if c.cfg.onDisconnect != nil {
		c.disconnectOnce.Do(func() { c.cfg.onDisconnect(cause) })
	}
}

func (c *Client) lossError() error {
	c.mu.Lock()
	cause := c.lossErr
	c.mu.Unlock()
	if cause == nil {
		cause = ErrConnectionLost
	}
	return cterrors.Wrap(cterrors.StageTransport, cterrors.CodeConnectionLost, cause)
}

func (c *Client) observeCall(err error, d time.Duration) {
	switch {
	case err == nil:
		c.obs.Call(observability.CallResultOK, d)
	case hasCode(err, cterrors.CodeTimeout):
		c.obs.Call(observability.CallResultTimeout, d)
	case hasCode(err, cterrors.CodeCanceled):
		c.obs.Call(observability.CallResultCanceled, d)
	default:
		c.obs.Call(observability.CallResultTransportError, d)
	}
}

func hasCode(err error, code cterrors.Code) bool {
	var ce *cterrors.Error
	return errors.As(err, &ce) && ce.Code == code
}

// Connected reports whether the connection is established and not torn down.
func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil && !c.closed
}

// Close tears the connection down and fails all pending requests.
func (c *Client) Close() error {
	c.teardown(ErrConnectionClosed, observability.CloseReasonClientClosed)
	c.loops.Wait()
	return nil
}
