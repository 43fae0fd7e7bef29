package bitstream

import (
	"fmt"
	"reflect"
)

// Uint is a factory identifier selecting an unsigned integer codec of
// an arbitrary bit width:
//
//	s.WriteAs(uint64(5), bitstream.Uint{Bits: 3})
//
// Written values wrap modulo 2^Bits. Read values come back as uint64.
type Uint struct {
	Bits uint
}

// Int is the two's-complement counterpart of Uint. Read values come
// back as int64, sign-extended from bit Bits.
type Int struct {
	Bits uint
}

func init() {
	DefaultRegistry.RegisterFactory(reflect.TypeOf(Uint{}), uintReaderFactory, uintWriterFactory)
	DefaultRegistry.RegisterFactory(reflect.TypeOf(Int{}), intReaderFactory, intWriterFactory)
}

func checkBits(bits uint) error {
	if bits < 1 || bits > 64 {
		return &WriteError{
			Kind:   WriteInvalidValue,
			Reason: fmt.Sprintf("invalid `Bits`; expected: 1..64, given: %d", bits),
		}
	}
	return nil
}

func uintWriterFactory(param any) (WriterFunc, error) {
	u := param.(Uint)
	if err := checkBits(u.Bits); err != nil {
		return nil, err
	}
	return func(s *Stream, v any) error {
		switch x := v.(type) {
		case uint64:
			s.buf.WriteUintBE(x, u.Bits)
		case uint:
			s.buf.WriteUintBE(uint64(x), u.Bits)
		case int:
			s.buf.WriteUintBE(uint64(int64(x)), u.Bits)
		case []uint64:
			for _, e := range x {
				s.buf.WriteUintBE(e, u.Bits)
			}
		default:
			return &WriteError{
				Kind:   WriteInvalidValue,
				Reason: fmt.Sprintf("cannot encode %T as a %d-bit unsigned integer", v, u.Bits),
			}
		}
		return nil
	}, nil
}

func uintReaderFactory(param any) (ReaderFunc, error) {
	u := param.(Uint)
	if err := checkBits(u.Bits); err != nil {
		return nil, err
	}
	return func(s *Stream, count int) (any, error) {
		if count < 0 {
			v, err := s.buf.ReadUintBE(u.Bits)
			return v, asReadError(err)
		}
		if need := uint64(count) * uint64(u.Bits); need > s.Len() {
			return nil, &ReadError{Kind: ReadUnderflow, Requested: need, Available: s.Len()}
		}
		out := make([]uint64, count)
		for i := range out {
			out[i], _ = s.buf.ReadUintBE(u.Bits)
		}
		return out, nil
	}, nil
}

func intWriterFactory(param any) (WriterFunc, error) {
	i := param.(Int)
	if err := checkBits(i.Bits); err != nil {
		return nil, err
	}
	return func(s *Stream, v any) error {
		switch x := v.(type) {
		case int64:
			s.buf.WriteUintBE(uint64(x), i.Bits)
		case int:
			s.buf.WriteUintBE(uint64(int64(x)), i.Bits)
		case []int64:
			for _, e := range x {
				s.buf.WriteUintBE(uint64(e), i.Bits)
			}
		default:
			return &WriteError{
				Kind:   WriteInvalidValue,
				Reason: fmt.Sprintf("cannot encode %T as a %d-bit signed integer", v, i.Bits),
			}
		}
		return nil
	}, nil
}

func intReaderFactory(param any) (ReaderFunc, error) {
	i := param.(Int)
	if err := checkBits(i.Bits); err != nil {
		return nil, err
	}
	signExtend := func(v uint64) int64 {
		if i.Bits < 64 && v&(1<<(i.Bits-1)) != 0 {
			v |= ^uint64(0) << i.Bits
		}
		return int64(v)
	}
	return func(s *Stream, count int) (any, error) {
		if count < 0 {
			v, err := s.buf.ReadUintBE(i.Bits)
			if err != nil {
				return nil, asReadError(err)
			}
			return signExtend(v), nil
		}
		if need := uint64(count) * uint64(i.Bits); need > s.Len() {
			return nil, &ReadError{Kind: ReadUnderflow, Requested: need, Available: s.Len()}
		}
		out := make([]int64, count)
		for j := range out {
			v, _ := s.buf.ReadUintBE(i.Bits)
			out[j] = signExtend(v)
		}
		return out, nil
	}, nil
}
