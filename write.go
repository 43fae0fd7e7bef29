package bitstream

import (
	"fmt"
	"math"
	"reflect"
)

// Typed fast-path writers. These never fail: the buffer grows as
// needed, and the value's type fixes its width.

// WriteBool appends v as a single bit.
func (s *Stream) WriteBool(v bool) {
	s.buf.WriteBit(v)
}

// WriteBools appends one bit per element of v.
func (s *Stream) WriteBools(v []bool) {
	for _, b := range v {
		s.buf.WriteBit(b)
	}
}

// WriteUint8 appends 8 bits.
func (s *Stream) WriteUint8(v uint8) {
	s.buf.WriteByte(v)
}

// WriteUint8s appends 8 bits per element.
func (s *Stream) WriteUint8s(v []uint8) {
	s.buf.WriteBytes(v)
}

// WriteInt8 appends 8 bits, two's complement.
func (s *Stream) WriteInt8(v int8) {
	s.buf.WriteByte(byte(v))
}

// WriteInt8s appends 8 bits per element, two's complement.
func (s *Stream) WriteInt8s(v []int8) {
	for _, e := range v {
		s.buf.WriteByte(byte(e))
	}
}

// WriteUint16 appends 16 bits, big-endian.
func (s *Stream) WriteUint16(v uint16) {
	s.buf.WriteUintBE(uint64(v), 16)
}

// WriteUint16s appends 16 bits per element, big-endian.
func (s *Stream) WriteUint16s(v []uint16) {
	for _, e := range v {
		s.buf.WriteUintBE(uint64(e), 16)
	}
}

// WriteInt16 appends 16 bits, big-endian two's complement.
func (s *Stream) WriteInt16(v int16) {
	s.buf.WriteUintBE(uint64(uint16(v)), 16)
}

// WriteInt16s appends 16 bits per element, big-endian two's complement.
func (s *Stream) WriteInt16s(v []int16) {
	for _, e := range v {
		s.buf.WriteUintBE(uint64(uint16(e)), 16)
	}
}

// WriteUint32 appends 32 bits, big-endian.
func (s *Stream) WriteUint32(v uint32) {
	s.buf.WriteUintBE(uint64(v), 32)
}

// WriteUint32s appends 32 bits per element, big-endian.
func (s *Stream) WriteUint32s(v []uint32) {
	for _, e := range v {
		s.buf.WriteUintBE(uint64(e), 32)
	}
}

// WriteInt32 appends 32 bits, big-endian two's complement.
func (s *Stream) WriteInt32(v int32) {
	s.buf.WriteUintBE(uint64(uint32(v)), 32)
}

// WriteInt32s appends 32 bits per element, big-endian two's complement.
func (s *Stream) WriteInt32s(v []int32) {
	for _, e := range v {
		s.buf.WriteUintBE(uint64(uint32(e)), 32)
	}
}

// WriteUint64 appends 64 bits, big-endian.
func (s *Stream) WriteUint64(v uint64) {
	s.buf.WriteUintBE(v, 64)
}

// WriteUint64s appends 64 bits per element, big-endian.
func (s *Stream) WriteUint64s(v []uint64) {
	for _, e := range v {
		s.buf.WriteUintBE(e, 64)
	}
}

// WriteInt64 appends 64 bits, big-endian two's complement.
func (s *Stream) WriteInt64(v int64) {
	s.buf.WriteUintBE(uint64(v), 64)
}

// WriteInt64s appends 64 bits per element, big-endian two's complement.
func (s *Stream) WriteInt64s(v []int64) {
	for _, e := range v {
		s.buf.WriteUintBE(uint64(e), 64)
	}
}

// WriteFloat64 appends the IEEE-754 big-endian 8-byte layout of v.
func (s *Stream) WriteFloat64(v float64) {
	s.buf.WriteUintBE(math.Float64bits(v), 64)
}

// WriteFloat64s appends 64 bits per element, IEEE-754 big-endian.
func (s *Stream) WriteFloat64s(v []float64) {
	for _, e := range v {
		s.buf.WriteUintBE(math.Float64bits(e), 64)
	}
}

// WriteBytes appends the bytes of p, 8 bits each.
func (s *Stream) WriteBytes(p []byte) {
	s.buf.WriteBytes(p)
}

// WriteString appends the bytes of v, 8 bits each.
func (s *Stream) WriteString(v string) {
	s.buf.WriteBytes([]byte(v))
}

// WriteStream appends src's remaining bits, consuming them from src:
// whatever remains as a multiple of 8 bits is transferred as whole
// bytes, followed by the trailing (<8) bits individually. Pass
// src.Copy() to keep src intact.
func (s *Stream) WriteStream(src *Stream) {
	p, _ := src.buf.ReadBytes(int(src.Len() / 8))
	s.buf.WriteBytes(p)
	for src.Len() > 0 {
		bit, _ := src.buf.ReadBit()
		s.buf.WriteBit(bit)
	}
}

// Write appends v, inferring the type identifier from its dynamic
// type: a bool maps to the boolean codec, a slice to the codec of its
// element type (an empty slice is a no-op), and anything else to its
// own type, resolved through the registry. Built-in fixed-width types
// take a fast path that bypasses the registry.
func (s *Stream) Write(v any) error {
	switch x := v.(type) {
	case bool:
		s.WriteBool(x)
	case []bool:
		s.WriteBools(x)
	case uint8:
		s.WriteUint8(x)
	case []uint8:
		s.WriteUint8s(x)
	case int8:
		s.WriteInt8(x)
	case []int8:
		s.WriteInt8s(x)
	case uint16:
		s.WriteUint16(x)
	case []uint16:
		s.WriteUint16s(x)
	case int16:
		s.WriteInt16(x)
	case []int16:
		s.WriteInt16s(x)
	case uint32:
		s.WriteUint32(x)
	case []uint32:
		s.WriteUint32s(x)
	case int32:
		s.WriteInt32(x)
	case []int32:
		s.WriteInt32s(x)
	case uint64:
		s.WriteUint64(x)
	case []uint64:
		s.WriteUint64s(x)
	case int64:
		s.WriteInt64(x)
	case []int64:
		s.WriteInt64s(x)
	case float64:
		s.WriteFloat64(x)
	case []float64:
		s.WriteFloat64s(x)
	case string:
		s.WriteString(x)
	case *Stream:
		s.WriteStream(x)
	default:
		return s.writeRegistered(v)
	}
	return nil
}

func (s *Stream) writeRegistered(v any) error {
	t := reflect.TypeOf(v)
	if t == nil {
		return &UnsupportedTypeError{Identifier: "<nil>"}
	}
	if t.Kind() == reflect.Slice {
		if reflect.ValueOf(v).Len() == 0 {
			return nil
		}
		w, err := s.reg.writerFor(t.Elem())
		if err != nil {
			return err
		}
		return w(s, v)
	}
	w, err := s.reg.writerFor(t)
	if err != nil {
		return err
	}
	return w(s, v)
}

// WriteAs appends v under an explicit identifier: one of the built-in
// type tokens (Bool, Uint8, ..., Bytes), a reflect.Type registered with
// Register, or a factory instance such as Uint{Bits: 5} whose class was
// registered with RegisterFactory. A nil identifier defers to Write.
func (s *Stream) WriteAs(v any, identifier any) error {
	if identifier == nil {
		return s.Write(v)
	}
	if t, ok := identifier.(reflect.Type); ok {
		handled, err := s.writeBuiltin(v, t)
		if handled {
			return err
		}
		w, err := s.reg.writerFor(t)
		if err != nil {
			return err
		}
		return w(s, v)
	}
	w, err := s.reg.writerFor(identifier)
	if err != nil {
		return err
	}
	return w(s, v)
}

// writeBuiltin dispatches v to the fixed-width engine when t is a
// built-in token. Untyped-looking int values are accepted for the
// numeric tokens and wrap modulo 2^width.
func (s *Stream) writeBuiltin(v any, t reflect.Type) (bool, error) {
	invalid := func() error {
		return &WriteError{
			Kind:   WriteInvalidValue,
			Reason: fmt.Sprintf("cannot encode %T as %s", v, t),
		}
	}
	switch t {
	case Bool:
		switch x := v.(type) {
		case bool:
			s.WriteBool(x)
		case []bool:
			s.WriteBools(x)
		default:
			return true, invalid()
		}
	case Uint8:
		switch x := v.(type) {
		case uint8:
			s.WriteUint8(x)
		case []uint8:
			s.WriteUint8s(x)
		case int:
			s.WriteUint8(uint8(x))
		default:
			return true, invalid()
		}
	case Int8:
		switch x := v.(type) {
		case int8:
			s.WriteInt8(x)
		case []int8:
			s.WriteInt8s(x)
		case int:
			s.WriteInt8(int8(x))
		default:
			return true, invalid()
		}
	case Uint16:
		switch x := v.(type) {
		case uint16:
			s.WriteUint16(x)
		case []uint16:
			s.WriteUint16s(x)
		case int:
			s.WriteUint16(uint16(x))
		default:
			return true, invalid()
		}
	case Int16:
		switch x := v.(type) {
		case int16:
			s.WriteInt16(x)
		case []int16:
			s.WriteInt16s(x)
		case int:
			s.WriteInt16(int16(x))
		default:
			return true, invalid()
		}
	case Uint32:
		switch x := v.(type) {
		case uint32:
			s.WriteUint32(x)
		case []uint32:
			s.WriteUint32s(x)
		case int:
			s.WriteUint32(uint32(x))
		default:
			return true, invalid()
		}
	case Int32:
		switch x := v.(type) {
		case int32:
			s.WriteInt32(x)
		case []int32:
			s.WriteInt32s(x)
		case int:
			s.WriteInt32(int32(x))
		default:
			return true, invalid()
		}
	case Uint64:
		switch x := v.(type) {
		case uint64:
			s.WriteUint64(x)
		case []uint64:
			s.WriteUint64s(x)
		case int:
			s.WriteUint64(uint64(x))
		default:
			return true, invalid()
		}
	case Int64:
		switch x := v.(type) {
		case int64:
			s.WriteInt64(x)
		case []int64:
			s.WriteInt64s(x)
		case int:
			s.WriteInt64(int64(x))
		default:
			return true, invalid()
		}
	case Float64:
		switch x := v.(type) {
		case float64:
			s.WriteFloat64(x)
		case []float64:
			s.WriteFloat64s(x)
		case int:
			s.WriteFloat64(float64(x))
		default:
			return true, invalid()
		}
	case Bytes:
		switch x := v.(type) {
		case []byte:
			s.WriteBytes(x)
		case string:
			s.WriteString(x)
		default:
			return true, invalid()
		}
	default:
		return false, nil
	}
	return true, nil
}
