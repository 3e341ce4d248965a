package openapi

import (
	"errors"
	"testing"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	raw, err := Encode(&ApplicationAuthReq{ClientID: "id", ClientSecret: "secret"}, "msg-1")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	env, err := DecodeEnvelope(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.PayloadType != PayloadTypeApplicationAuthReq {
		t.Fatalf("payload type = %d", env.PayloadType)
	}
	if env.ClientMsgID != "msg-1" {
		t.Fatalf("client msg id = %q", env.ClientMsgID)
	}
	m, err := Extract(env)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	req, ok := m.(*ApplicationAuthReq)
	if !ok {
		t.Fatalf("extracted %T", m)
	}
	if req.ClientID != "id" || req.ClientSecret != "secret" {
		t.Fatalf("round trip mismatch: %+v", req)
	}
}

func TestHeartbeatSerializesEmpty(t *testing.T) {
	env, err := Wrap(&HeartbeatEvent{}, "")
	if err != nil {
		t.Fatalf("wrap: %v", err)
	}
	if len(env.Payload) != 0 {
		t.Fatalf("heartbeat payload = %d bytes", len(env.Payload))
	}
	if _, err := Extract(env); err != nil {
		t.Fatalf("extract: %v", err)
	}
}

func TestExtractUnknownPayloadType(t *testing.T) {
	env := &ProtoMessage{PayloadType: 9999}
	if _, err := Extract(env); !errors.Is(err, ErrUnknownPayloadType) {
		t.Fatalf("expected unknown payload type, got %v", err)
	}
}

func TestExtractMalformedPayload(t *testing.T) {
	env := &ProtoMessage{
		PayloadType: PayloadTypeErrorRes,
		Payload:     []byte{0x12, 0xff}, // length-delimited field truncated
	}
	if _, err := Extract(env); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected malformed payload, got %v", err)
	}
}

func TestDecodeEnvelopeMalformed(t *testing.T) {
	if _, err := DecodeEnvelope([]byte{0xff, 0xff}); !errors.Is(err, ErrMalformedPayload) {
		t.Fatalf("expected malformed payload, got %v", err)
	}
}

func TestUnknownFieldsSkipped(t *testing.T) {
	// ErrorRes with an extra varint field 15 the schema does not know.
	var b []byte
	b = appendString(b, 2, "CH_CLIENT_AUTH_FAILURE")
	b = appendInt64(b, 15, 42)
	b = appendString(b, 3, "invalid secret")

	var res ErrorRes
	if err := res.UnmarshalBinary(b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.ErrorCode != "CH_CLIENT_AUTH_FAILURE" || res.Description != "invalid secret" {
		t.Fatalf("decoded %+v", res)
	}
}

func TestRegistryCoversAllPayloadTypes(t *testing.T) {
	for pt, f := range registry {
		if got := f().PayloadType(); got != pt {
			t.Fatalf("registry entry %d builds message with payload type %d", pt, got)
		}
	}
	if New(PayloadTypeHeartbeatEvent) == nil {
		t.Fatalf("heartbeat not registered")
	}
}
