// Package transport dials the Open API endpoints and moves envelope bytes.
//
// Two wire transports carry the same envelopes: length-prefixed frames over
// TLS TCP (port 5035) and binary WebSocket messages (port 5036, one envelope
// per message, no length prefix).
package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/paxelcool/ctrader-open-api-async/framing/protoframe"
	"github.com/paxelcool/ctrader-open-api-async/transport/ws"
)

// FrameConn moves whole envelopes over an established connection.
//
// ReadEnvelope and WriteEnvelope may each be used from one goroutine at a
// time; a reader and a writer may run concurrently. Close unblocks both.
type FrameConn interface {
	ReadEnvelope() ([]byte, error)
	WriteEnvelope(payload []byte) error
	Close() error
}

// Config carries the dial knobs shared by both transports.
type Config struct {
	// VerifyPeer enables TLS certificate verification. The proxies sit behind
	// hostnames whose certificates do not always chain on client platforms, so
	// verification is off unless asked for.
	VerifyPeer bool

	// MaxFrameBytes bounds a single inbound envelope. Zero means
	// protoframe.DefaultMaxFrameBytes.
	MaxFrameBytes int
}

func (c Config) maxFrame() int {
	if c.MaxFrameBytes > 0 {
		return c.MaxFrameBytes
	}
	return protoframe.DefaultMaxFrameBytes
}

func (c Config) tlsConfig() *tls.Config {
	return &tls.Config{InsecureSkipVerify: !c.VerifyPeer}
}

// DialTCP opens a TLS connection to addr ("host:port") and returns a framed
// connection speaking the length-prefixed protocol.
func DialTCP(ctx context.Context, addr string, cfg Config) (FrameConn, error) {
	d := &tls.Dialer{
		NetDialer: &net.Dialer{},
		Config:    cfg.tlsConfig(),
	}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewTCPConn(conn, cfg.maxFrame()), nil
}

// NewTCPConn wraps an established stream connection with envelope framing.
func NewTCPConn(conn net.Conn, maxFrameBytes int) FrameConn {
	if maxFrameBytes <= 0 {
		maxFrameBytes = protoframe.DefaultMaxFrameBytes
	}
	return &tcpConn{conn: conn, maxFrame: maxFrameBytes}
}

type tcpConn struct {
	conn     net.Conn
	maxFrame int
}

func (c *tcpConn) ReadEnvelope() ([]byte, error) {
	return protoframe.ReadFrame(c.conn, c.maxFrame)
}

func (c *tcpConn) WriteEnvelope(payload []byte) error {
	return protoframe.WriteFrame(c.conn, payload, c.maxFrame)
}

func (c *tcpConn) Close() error { return c.conn.Close() }

// DialWebSocket opens a wss:// connection to host and returns a framed
// connection carrying one envelope per binary message.
func DialWebSocket(ctx context.Context, host string, port int, cfg Config) (FrameConn, error) {
	d := &websocket.Dialer{TLSClientConfig: cfg.tlsConfig()}
	u := fmt.Sprintf("wss://%s:%d", host, port)
	conn, _, err := ws.Dial(ctx, u, ws.DialOptions{Header: http.Header{}, Dialer: d})
	if err != nil {
		return nil, err
	}
	conn.SetReadLimit(int64(cfg.maxFrame()))
	return &wsConn{conn: conn}, nil
}

type wsConn struct {
	conn *ws.Conn
}

func (c *wsConn) ReadEnvelope() ([]byte, error) {
	for {
		mt, b, err := c.conn.ReadMessage(context.Background())
		if err != nil {
			return nil, err
		}
		// The proxies only send binary messages; skip anything else.
		if mt == websocket.BinaryMessage {
			return b, nil
		}
	}
}

func (c *wsConn) WriteEnvelope(payload []byte) error {
	return c.conn.WriteMessage(context.Background(), websocket.BinaryMessage, payload)
}

func (c *wsConn) Close() error { return c.conn.Close() }
