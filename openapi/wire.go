package openapi

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Append helpers. Fields are written in tag order by the callers; proto2
// parsers accept any order, so this is a readability convention only.

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendInt64(b []byte, num protowire.Number, v int64) []byte {
	return appendVarint(b, num, uint64(v))
}

func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	return appendVarint(b, num, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	var u uint64
	if v {
		u = 1
	}
	return appendVarint(b, num, u)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendBytes(b []byte, num protowire.Number, p []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, p)
}

func appendMessage(b []byte, num protowire.Number, m interface {
	MarshalBinary() ([]byte, error)
}) ([]byte, error) {
	inner, err := m.MarshalBinary()
	if err != nil {
		return b, err
	}
	return appendBytes(b, num, inner), nil
}

// decoder is a cursor over a protobuf-encoded buffer.
//
// Callers loop on next() and switch on num; values for wire types the caller
// does not recognize are consumed and skipped, which gives proto2
// unknown-field semantics for free.
type decoder struct {
	data []byte
	num  protowire.Number
	typ  protowire.Type

	varint uint64
	fix64  uint64
	buf    []byte

	fail error
}

func newDecoder(data []byte) *decoder {
	return &decoder{data: data}
}

func (d *decoder) next() bool {
	if d.fail != nil || len(d.data) == 0 {
		return false
	}
	num, typ, n := protowire.ConsumeTag(d.data)
	if n < 0 {
		d.fail = protowire.ParseError(n)
		return false
	}
	d.data = d.data[n:]
	d.num, d.typ = num, typ

	switch typ {
	case protowire.VarintType:
		v, n := protowire.ConsumeVarint(d.data)
		if n < 0 {
			d.fail = protowire.ParseError(n)
			return false
		}
		d.varint = v
		d.data = d.data[n:]
	case protowire.Fixed64Type:
		v, n := protowire.ConsumeFixed64(d.data)
		if n < 0 {
			d.fail = protowire.ParseError(n)
			return false
		}
		d.fix64 = v
		d.data = d.data[n:]
	case protowire.Fixed32Type:
		v, n := protowire.ConsumeFixed32(d.data)
		if n < 0 {
			d.fail = protowire.ParseError(n)
			return false
		}
		d.fix64 = uint64(v)
		d.data = d.data[n:]
	case protowire.BytesType:
		v, n := protowire.ConsumeBytes(d.data)
		if n < 0 {
			d.fail = protowire.ParseError(n)
			return false
		}
		d.buf = v
		d.data = d.data[n:]
	default:
		d.fail = fmt.Errorf("unsupported wire type %d for field %d", typ, num)
		return false
	}
	return true
}

func (d *decoder) err() error { return d.fail }

func (d *decoder) badType(want protowire.Type) {
	if d.fail == nil {
		d.fail = fmt.Errorf("field %d: wire type %d, want %d", d.num, d.typ, want)
	}
}

func (d *decoder) uint64Val() uint64 {
	if d.typ != protowire.VarintType {
		d.badType(protowire.VarintType)
		return 0
	}
	return d.varint
}

func (d *decoder) int64Val() int64 { return int64(d.uint64Val()) }

func (d *decoder) uint32Val() uint32 { return uint32(d.uint64Val()) }

func (d *decoder) int32Val() int32 { return int32(d.uint64Val()) }

func (d *decoder) boolVal() bool { return d.uint64Val() != 0 }

func (d *decoder) doubleVal() float64 {
	if d.typ != protowire.Fixed64Type {
		d.badType(protowire.Fixed64Type)
		return 0
	}
	return math.Float64frombits(d.fix64)
}

func (d *decoder) stringVal() string {
	if d.typ != protowire.BytesType {
		d.badType(protowire.BytesType)
		return ""
	}
	return string(d.buf)
}

func (d *decoder) bytesVal() []byte {
	if d.typ != protowire.BytesType {
		d.badType(protowire.BytesType)
		return nil
	}
	out := make([]byte, len(d.buf))
	copy(out, d.buf)
	return out
}

// int64List appends one element (unpacked) or every element of a packed run.
func (d *decoder) int64List(dst []int64) []int64 {
	switch d.typ {
	case protowire.VarintType:
		return append(dst, int64(d.varint))
	case protowire.BytesType:
		data := d.buf
		for len(data) > 0 {
			v, n := protowire.ConsumeVarint(data)
			if n < 0 {
				if d.fail == nil {
					d.fail = protowire.ParseError(n)
				}
				return dst
			}
			dst = append(dst, int64(v))
			data = data[n:]
		}
		return dst
	default:
		d.badType(protowire.VarintType)
		return dst
	}
}

func (d *decoder) messageVal(m interface{ UnmarshalBinary([]byte) error }) {
	if d.typ != protowire.BytesType {
		d.badType(protowire.BytesType)
		return
	}
	if err := m.UnmarshalBinary(d.buf); err != nil && d.fail == nil {
		d.fail = fmt.Errorf("field %d: %w", d.num, err)
	}
}

func ptr[T any](v T) *T { return &v }
