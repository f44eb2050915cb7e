// Package rpc carries the CalendarService wire contract. Messages are
// encoded by hand with protowire against fixed field numbers; there is no
// generated code to keep in sync with a .proto file.
package rpc

import (
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// message is implemented by every wire type in this package.
type message interface {
	marshal() []byte
	unmarshal(b []byte) error
}

// Codec plugs the hand-rolled messages into grpc. The name must be
// "proto" so standard gRPC and gRPC-Web clients negotiate it.
type Codec struct{}

func (Codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(message)
	if !ok {
		return nil, fmt.Errorf("rpc codec: %T is not a wire message", v)
	}
	return m.marshal(), nil
}

func (Codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(message)
	if !ok {
		return fmt.Errorf("rpc codec: %T is not a wire message", v)
	}
	return m.unmarshal(data)
}

func (Codec) Name() string { return "proto" }

// timestamps travel as the well-known {seconds=1, nanos=2} shape

func appendTime(out []byte, num protowire.Number, t time.Time) []byte {
	if t.IsZero() {
		return out
	}
	var inner []byte
	if s := t.Unix(); s != 0 {
		inner = protowire.AppendTag(inner, 1, protowire.VarintType)
		inner = protowire.AppendVarint(inner, uint64(s))
	}
	if ns := t.Nanosecond(); ns != 0 {
		inner = protowire.AppendTag(inner, 2, protowire.VarintType)
		inner = protowire.AppendVarint(inner, uint64(ns))
	}
	out = protowire.AppendTag(out, num, protowire.BytesType)
	out = protowire.AppendBytes(out, inner)
	return out
}

func parseTime(b []byte) (time.Time, error) {
	var secs int64
	var nanos int64
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return time.Time{}, protowire.ParseError(n)
		}
		b = b[n:]
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return time.Time{}, protowire.ParseError(n)
			}
			secs = int64(v)
			b = b[n:]
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return time.Time{}, protowire.ParseError(n)
			}
			nanos = int64(v)
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return time.Time{}, protowire.ParseError(n)
			}
			b = b[n:]
		}
	}
	if secs == 0 && nanos == 0 {
		return time.Time{}, nil
	}
	return time.Unix(secs, nanos), nil
}

func appendString(out []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.BytesType)
	out = protowire.AppendString(out, s)
	return out
}

func appendMessage(out []byte, num protowire.Number, m message) []byte {
	out = protowire.AppendTag(out, num, protowire.BytesType)
	out = protowire.AppendBytes(out, m.marshal())
	return out
}

func appendDouble(out []byte, num protowire.Number, f float64) []byte {
	if f == 0 {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.Fixed64Type)
	out = protowire.AppendFixed64(out, math.Float64bits(f))
	return out
}

func appendInt32(out []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return out
	}
	out = protowire.AppendTag(out, num, protowire.VarintType)
	out = protowire.AppendVarint(out, uint64(uint32(v)))
	return out
}
