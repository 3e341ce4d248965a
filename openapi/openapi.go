// Package openapi implements the cTrader Open API message schema and the
// outer envelope codec.
//
// Messages are encoded with the protobuf wire format directly (proto2
// semantics: unknown fields are skipped, absent optionals stay at their zero
// value). The registry maps every known payload type to a message factory so
// inbound envelopes can be extracted without the caller naming the type.
package openapi

import (
	"errors"
	"fmt"
)

// PayloadType is the integer tag identifying an inner message schema.
type PayloadType uint32

// Message is implemented by every schema message that can travel inside an envelope.
type Message interface {
	PayloadType() PayloadType
	MarshalBinary() ([]byte, error)
	UnmarshalBinary(data []byte) error
}

var (
	ErrUnknownPayloadType = errors.New("unknown payload type")
	ErrMalformedPayload   = errors.New("malformed payload")
)

var registry = map[PayloadType]func() Message{}

func register(factories ...func() Message) {
	for _, f := range factories {
		pt := f().PayloadType()
		if _, dup := registry[pt]; dup {
			panic(fmt.Sprintf("openapi: duplicate payload type %d", pt))
		}
		registry[pt] = f
	}
}

// New returns a fresh message for the payload type, or nil when unknown.
func New(pt PayloadType) Message {
	f := registry[pt]
	if f == nil {
		return nil
	}
	return f()
}

// Extract parses the inner message carried by an envelope.
//
// It fails with ErrUnknownPayloadType when the payload type is not in the
// registry and with ErrMalformedPayload when the inner bytes do not parse.
func Extract(env *ProtoMessage) (Message, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: nil envelope", ErrMalformedPayload)
	}
	m := New(env.PayloadType)
	if m == nil {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPayloadType, env.PayloadType)
	}
	if err := m.UnmarshalBinary(env.Payload); err != nil {
		return nil, fmt.Errorf("%w: payload type %d: %v", ErrMalformedPayload, env.PayloadType, err)
	}
	return m, nil
}
