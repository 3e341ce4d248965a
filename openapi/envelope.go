package openapi

import "fmt"

// ProtoMessage is the outer envelope every wire message travels in.
//
// A correlated response carries the same ClientMsgID as its request; server
// pushed events leave it empty.
type ProtoMessage struct {
	PayloadType PayloadType
	Payload     []byte
	ClientMsgID string
}

// MarshalBinary serializes the envelope to protobuf bytes.
func (m *ProtoMessage) MarshalBinary() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, uint32(m.PayloadType))
	b = appendBytes(b, 2, m.Payload)
	if m.ClientMsgID != "" {
		b = appendString(b, 3, m.ClientMsgID)
	}
	return b, nil
}

// UnmarshalBinary parses an envelope from protobuf bytes.
func (m *ProtoMessage) UnmarshalBinary(data []byte) error {
	d := newDecoder(data)
	for d.next() {
		switch d.num {
		case 1:
			m.PayloadType = PayloadType(d.uint32Val())
		case 2:
			m.Payload = d.bytesVal()
		case 3:
			m.ClientMsgID = d.stringVal()
		}
	}
	return d.err()
}

// Wrap builds an envelope around an inner message.
func Wrap(inner Message, clientMsgID string) (*ProtoMessage, error) {
	payload, err := inner.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return &ProtoMessage{
		PayloadType: inner.PayloadType(),
		Payload:     payload,
		ClientMsgID: clientMsgID,
	}, nil
}

// Encode serializes an inner message straight to envelope bytes.
func Encode(inner Message, clientMsgID string) ([]byte, error) {
	env, err := Wrap(inner, clientMsgID)
	if err != nil {
		return nil, err
	}
	return env.MarshalBinary()
}

// DecodeEnvelope parses envelope bytes, failing with ErrMalformedPayload on
// anything that is not a valid ProtoMessage.
func DecodeEnvelope(data []byte) (*ProtoMessage, error) {
	env := &ProtoMessage{}
	if err := env.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("%w: envelope: %v", ErrMalformedPayload, err)
	}
	return env, nil
}
