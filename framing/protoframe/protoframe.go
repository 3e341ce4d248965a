// Package protoframe reads and writes the length-prefixed frames the Open API
// proxies speak over TCP: a 4-byte big-endian length followed by the envelope
// bytes.
package protoframe

import (
	"errors"
	"io"

	"github.com/paxelcool/ctrader-open-api-async/internal/bin"
)

var ErrFrameTooLarge = errors.New("frame too large")

// DefaultMaxFrameBytes matches the server-side frame limit. A length prefix
// above it means the stream is desynchronized or the peer is not an Open API
// proxy, so readers treat it as fatal.
const DefaultMaxFrameBytes = 15_000_000

// WriteFrame writes one length-prefixed envelope to the writer. A positive
// maxLen caps the payload size; maxLen<=0 disables the cap.
func WriteFrame(w io.Writer, payload []byte, maxLen int) error {
	if maxLen > 0 && len(payload) > maxLen {
		return ErrFrameTooLarge
	}
	var hdr [4]byte
	bin.PutU32BE(hdr[:], uint32(len(payload)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// ReadFrame reads one length-prefixed envelope with a maximum size guard.
//
// Callers MUST pass a positive maxLen when reading from untrusted peers.
// Passing maxLen<=0 disables the guard and can result in large allocations.
func ReadFrame(r io.Reader, maxLen int) ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	n := int(bin.U32BE(hdr[:]))
	if n < 0 {
		return nil, ErrFrameTooLarge
	}
	if maxLen > 0 && n > maxLen {
		return nil, ErrFrameTooLarge
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadFrameDefaultMax is a convenience wrapper around ReadFrame using DefaultMaxFrameBytes.
func ReadFrameDefaultMax(r io.Reader) ([]byte, error) {
	return ReadFrame(r, DefaultMaxFrameBytes)
}
