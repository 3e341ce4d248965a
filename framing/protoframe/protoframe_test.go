package protoframe

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) { return 0, errors.New("write failed") }

func TestFrameRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteFrame(buf, []byte("envelope"), DefaultMaxFrameBytes); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadFrame(buf, DefaultMaxFrameBytes)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "envelope" {
		t.Fatalf("payload = %q", got)
	}
}

func TestReadFrameTooLarge(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.Write([]byte{0, 0, 0, 5})
	buf.Write([]byte("hello"))
	if _, err := ReadFrame(buf, 4); !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("expected frame too large, got %v", err)
	}
}

func TestReadFrameShortPayload(t *testing.T) {
	buf := &bytes.Buffer{}
	buf.Write([]byte{0, 0, 0, 10})
	buf.Write([]byte("short"))
	if _, err := ReadFrame(buf, 0); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("expected unexpected EOF, got %v", err)
	}
}

func TestReadFrameEmptyPayload(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteFrame(buf, nil, DefaultMaxFrameBytes); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadFrameDefaultMax(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("payload = %d bytes", len(got))
	}
}

func TestWriteFrameHonorsConfiguredLimit(t *testing.T) {
	payload := []byte("0123456789")

	buf := &bytes.Buffer{}
	if err := WriteFrame(buf, payload, 4); !errors.Is(err, ErrFrameTooLarge) {
		t.Fatalf("expected frame too large, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("oversize frame partially written: %d bytes", buf.Len())
	}

	if err := WriteFrame(buf, payload, len(payload)); err != nil {
		t.Fatalf("write within limit: %v", err)
	}
	got, err := ReadFrame(buf, len(payload))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("payload = %q", got)
	}
}

func TestWriteFrameWriteError(t *testing.T) {
	if err := WriteFrame(errWriter{}, []byte("x"), 0); err == nil {
		t.Fatalf("expected write error")
	}
}
