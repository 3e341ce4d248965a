package client

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/paxelcool/ctrader-open-api-async/cterrors"
	"github.com/paxelcool/ctrader-open-api-async/openapi"
	"github.com/paxelcool/ctrader-open-api-async/transport"
)

// harness wires a client to an in-memory peer acting as the server.
type harness struct {
	c    *Client
	peer transport.FrameConn
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()
	a, b := net.Pipe()
	c, err := New("demo.ctraderapi.com", opts...)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := c.attach(transport.NewTCPConn(a, 0)); err != nil {
		t.Fatalf("attach: %v", err)
	}
	h := &harness{c: c, peer: transport.NewTCPConn(b, 0)}
	t.Cleanup(func() {
		_ = c.Close()
		_ = h.peer.Close()
	})
	return h
}

func (h *harness) readEnvelope(t *testing.T) *openapi.ProtoMessage {
	t.Helper()
	b, err := h.peer.ReadEnvelope()
	if err != nil {
		t.Fatalf("peer read: %v", err)
	}
	env, err := openapi.DecodeEnvelope(b)
	if err != nil {
		t.Fatalf("peer decode: %v", err)
	}
	return env
}

func (h *harness) writeMessage(t *testing.T, msg openapi.Message, clientMsgID string) {
	t.Helper()
	b, err := openapi.Encode(msg, clientMsgID)
	if err != nil {
		t.Fatalf("peer encode: %v", err)
	}
	if err := h.peer.WriteEnvelope(b); err != nil {
		t.Fatalf("peer write: %v", err)
	}
}

func TestSendCorrelatesResponse(t *testing.T) {
	h := newHarness(t)

	go func() {
		env, err := h.peer.ReadEnvelope()
		if err != nil {
			return
		}
		req, _ := openapi.DecodeEnvelope(env)
		b, _ := openapi.Encode(&openapi.VersionRes{Version: "99"}, req.ClientMsgID)
		_ = h.peer.WriteEnvelope(b)
	}()

	resp, err := h.c.Send(context.Background(), &openapi.VersionReq{})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	msg, err := openapi.Extract(resp)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	res, ok := msg.(*openapi.VersionRes)
	if !ok || res.Version != "99" {
		t.Fatalf("response = %#v", msg)
	}
}

func TestSendOutOfOrderResponses(t *testing.T) {
	h := newHarness(t)

	// The peer holds both requests and answers them in reverse order; each
	// waiter must still complete with the envelope carrying its own id.
	go func() {
		var reqs []*openapi.ProtoMessage
		for i := 0; i < 2; i++ {
			b, err := h.peer.ReadEnvelope()
			if err != nil {
				return
			}
			req, err := openapi.DecodeEnvelope(b)
			if err != nil {
				return
			}
			reqs = append(reqs, req)
		}
		for i := len(reqs) - 1; i >= 0; i-- {
			// Echo the request id in the version so a cross-wired waiter is
			// detectable from the payload alone.
			b, _ := openapi.Encode(&openapi.VersionRes{Version: reqs[i].ClientMsgID}, reqs[i].ClientMsgID)
			_ = h.peer.WriteEnvelope(b)
		}
	}()

	type result struct {
		id  string
		env *openapi.ProtoMessage
		err error
	}
	results := make(chan result, 2)
	for i := 0; i < 2; i++ {
		go func() {
			env, err := h.c.Send(context.Background(), &openapi.VersionReq{})
			id := ""
			if env != nil {
				id = env.ClientMsgID
			}
			results <- result{id: id, env: env, err: err}
		}()
	}

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		var r result
		select {
		case r = <-results:
		case <-time.After(time.Second):
			t.Fatalf("send %d did not complete", i)
		}
		if r.err != nil {
			t.Fatalf("send: %v", r.err)
		}
		msg, err := openapi.Extract(r.env)
		if err != nil {
			t.Fatalf("extract: %v", err)
		}
		res, ok := msg.(*openapi.VersionRes)
		if !ok {
			t.Fatalf("response = %#v", msg)
		}
		if res.Version != r.id {
			t.Fatalf("waiter for %q got response %q", r.id, res.Version)
		}
		if seen[r.id] {
			t.Fatalf("two waiters resolved with id %q", r.id)
		}
		seen[r.id] = true
	}
}

func TestSendTimesOutAndEvicts(t *testing.T) {
	h := newHarness(t, WithResponseTimeout(50*time.Millisecond))

	done := make(chan *openapi.ProtoMessage, 1)
	go func() {
		env, err := h.peer.ReadEnvelope()
		if err != nil {
			return
		}
		req, _ := openapi.DecodeEnvelope(env)
		done <- req
	}()

	_, err := h.c.Send(context.Background(), &openapi.VersionReq{})
	var ce *cterrors.Error
	if !errors.As(err, &ce) || ce.Code != cterrors.CodeTimeout {
		t.Fatalf("expected timeout, got %v", err)
	}

	// A response arriving after eviction must be dropped without disturbing
	// the connection.
	req := <-done
	h.writeMessage(t, &openapi.VersionRes{Version: "late"}, req.ClientMsgID)
	time.Sleep(20 * time.Millisecond)
	if !h.c.Connected() {
		t.Fatalf("connection torn down by late response")
	}
}

func TestSendCanceledContext(t *testing.T) {
	h := newHarness(t)

	go func() {
		_, _ = h.peer.ReadEnvelope()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := h.c.Send(ctx, &openapi.VersionReq{})
	var ce *cterrors.Error
	if !errors.As(err, &ce) || ce.Code != cterrors.CodeCanceled {
		t.Fatalf("expected canceled, got %v", err)
	}
}

func TestHeartbeatOnWriteIdle(t *testing.T) {
	h := newHarness(t, WithHeartbeatIdle(40*time.Millisecond))

	env := h.readEnvelope(t)
	if env.PayloadType != openapi.PayloadTypeHeartbeatEvent {
		t.Fatalf("payload type = %d", env.PayloadType)
	}
	if env.ClientMsgID != "" {
		t.Fatalf("heartbeat carries client msg id %q", env.ClientMsgID)
	}
}

func TestHeartbeatEchoed(t *testing.T) {
	h := newHarness(t, WithHeartbeatIdle(0))

	h.writeMessage(t, &openapi.HeartbeatEvent{}, "")
	env := h.readEnvelope(t)
	if env.PayloadType != openapi.PayloadTypeHeartbeatEvent {
		t.Fatalf("expected heartbeat reply, got payload type %d", env.PayloadType)
	}
}

func TestConnectionLossFailsPending(t *testing.T) {
	lost := make(chan error, 1)
	h := newHarness(t, WithOnDisconnect(func(err error) { lost <- err }))

	go func() {
		_, _ = h.peer.ReadEnvelope()
		_ = h.peer.Close()
	}()

	_, err := h.c.Send(context.Background(), &openapi.VersionReq{})
	var ce *cterrors.Error
	if !errors.As(err, &ce) || ce.Code != cterrors.CodeConnectionLost {
		t.Fatalf("expected connection lost, got %v", err)
	}
	select {
	case <-lost:
	case <-time.After(time.Second):
		t.Fatalf("disconnect callback not invoked")
	}
	if h.c.Connected() {
		t.Fatalf("still connected after loss")
	}
}

func TestEventsDispatchedInOrder(t *testing.T) {
	got := make(chan int64, 2)
	h := newHarness(t, WithOnMessage(func(msg openapi.Message, _ *openapi.ProtoMessage) {
		if ev, ok := msg.(*openapi.SpotEvent); ok {
			got <- ev.SymbolID
		}
	}))

	h.writeMessage(t, &openapi.SpotEvent{CtidTraderAccountID: 1, SymbolID: 10}, "")
	h.writeMessage(t, &openapi.SpotEvent{CtidTraderAccountID: 1, SymbolID: 20}, "")

	for _, want := range []int64{10, 20} {
		select {
		case id := <-got:
			if id != want {
				t.Fatalf("symbol id = %d, want %d", id, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("event not dispatched")
		}
	}
}

func TestUnknownEventReachesCallbackRaw(t *testing.T) {
	got := make(chan *openapi.ProtoMessage, 1)
	h := newHarness(t, WithOnMessage(func(msg openapi.Message, env *openapi.ProtoMessage) {
		if msg == nil {
			got <- env
		}
	}))

	raw := &openapi.ProtoMessage{PayloadType: 9999, Payload: []byte{}}
	b, err := raw.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := h.peer.WriteEnvelope(b); err != nil {
		t.Fatalf("peer write: %v", err)
	}

	select {
	case env := <-got:
		if env.PayloadType != 9999 {
			t.Fatalf("payload type = %d", env.PayloadType)
		}
	case <-time.After(time.Second):
		t.Fatalf("raw event not dispatched")
	}
}

func TestSendAfterClose(t *testing.T) {
	h := newHarness(t)
	_ = h.c.Close()

	_, err := h.c.Send(context.Background(), &openapi.VersionReq{})
	var ce *cterrors.Error
	if !errors.As(err, &ce) || ce.Code != cterrors.CodeConnectionClosed {
		t.Fatalf("expected connection closed, got %v", err)
	}
}

func TestRateLimiterSpacesWrites(t *testing.T) {
	h := newHarness(t, WithMessagesPerSecond(20), WithResponseTimeout(0))

	for i := 0; i < 3; i++ {
		go func() {
			_, _ = h.c.Send(context.Background(), &openapi.VersionReq{})
		}()
	}

	start := time.Now()
	for i := 0; i < 3; i++ {
		h.readEnvelope(t)
	}
	// Burst of 1 at 20 msg/s: the 3rd write cannot land before ~100ms.
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Fatalf("3 writes in %v, limiter not applied", elapsed)
	}
}

func TestInvalidOptions(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Fatalf("expected error for empty host")
	}
	if _, err := New("demo.ctraderapi.com", WithMessagesPerSecond(0)); err == nil {
		t.Fatalf("expected error for zero rate")
	}
	if _, err := New("demo.ctraderapi.com", WithTransport("carrier-pigeon")); err == nil {
		t.Fatalf("expected error for unknown transport")
	}
}
