package bitstream

import (
	"math"
	"reflect"
)

// Typed readers. Slice readers check the full item count up front, so a
// failed call leaves the cursor where it was; mixing typed reads with
// custom codecs that fail mid-way is the case Save/Restore exists for.

// ReadBool consumes a single bit.
func (s *Stream) ReadBool() (bool, error) {
	v, err := s.buf.ReadBit()
	return v, asReadError(err)
}

// ReadBools consumes n bits.
func (s *Stream) ReadBools(n int) ([]bool, error) {
	if uint64(n) > s.Len() {
		return nil, &ReadError{Kind: ReadUnderflow, Requested: uint64(n), Available: s.Len()}
	}
	out := make([]bool, n)
	for i := range out {
		out[i], _ = s.buf.ReadBit()
	}
	return out, nil
}

// ReadUint8 consumes 8 bits.
func (s *Stream) ReadUint8() (uint8, error) {
	v, err := s.buf.ReadByte()
	return v, asReadError(err)
}

// ReadUint8s consumes 8 bits per element.
func (s *Stream) ReadUint8s(n int) ([]uint8, error) {
	return s.ReadBytes(n)
}

// ReadInt8 consumes 8 bits, two's complement.
func (s *Stream) ReadInt8() (int8, error) {
	v, err := s.buf.ReadByte()
	return int8(v), asReadError(err)
}

// ReadInt8s consumes 8 bits per element, two's complement.
func (s *Stream) ReadInt8s(n int) ([]int8, error) {
	p, err := s.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	out := make([]int8, n)
	for i, b := range p {
		out[i] = int8(b)
	}
	return out, nil
}

// ReadUint16 consumes 16 bits, big-endian.
func (s *Stream) ReadUint16() (uint16, error) {
	v, err := s.buf.ReadUintBE(16)
	return uint16(v), asReadError(err)
}

// ReadUint16s consumes 16 bits per element, big-endian.
func (s *Stream) ReadUint16s(n int) ([]uint16, error) {
	if err := s.checkItems(n, 16); err != nil {
		return nil, err
	}
	out := make([]uint16, n)
	for i := range out {
		v, _ := s.buf.ReadUintBE(16)
		out[i] = uint16(v)
	}
	return out, nil
}

// ReadInt16 consumes 16 bits, big-endian two's complement.
func (s *Stream) ReadInt16() (int16, error) {
	v, err := s.buf.ReadUintBE(16)
	return int16(uint16(v)), asReadError(err)
}

// ReadInt16s consumes 16 bits per element, big-endian two's complement.
func (s *Stream) ReadInt16s(n int) ([]int16, error) {
	if err := s.checkItems(n, 16); err != nil {
		return nil, err
	}
	out := make([]int16, n)
	for i := range out {
		v, _ := s.buf.ReadUintBE(16)
		out[i] = int16(uint16(v))
	}
	return out, nil
}

// ReadUint32 consumes 32 bits, big-endian.
func (s *Stream) ReadUint32() (uint32, error) {
	v, err := s.buf.ReadUintBE(32)
	return uint32(v), asReadError(err)
}

// ReadUint32s consumes 32 bits per element, big-endian.
func (s *Stream) ReadUint32s(n int) ([]uint32, error) {
	if err := s.checkItems(n, 32); err != nil {
		return nil, err
	}
	out := make([]uint32, n)
	for i := range out {
		v, _ := s.buf.ReadUintBE(32)
		out[i] = uint32(v)
	}
	return out, nil
}

// ReadInt32 consumes 32 bits, big-endian two's complement.
func (s *Stream) ReadInt32() (int32, error) {
	v, err := s.buf.ReadUintBE(32)
	return int32(uint32(v)), asReadError(err)
}

// ReadInt32s consumes 32 bits per element, big-endian two's complement.
func (s *Stream) ReadInt32s(n int) ([]int32, error) {
	if err := s.checkItems(n, 32); err != nil {
		return nil, err
	}
	out := make([]int32, n)
	for i := range out {
		v, _ := s.buf.ReadUintBE(32)
		out[i] = int32(uint32(v))
	}
	return out, nil
}

// ReadUint64 consumes 64 bits, big-endian.
func (s *Stream) ReadUint64() (uint64, error) {
	v, err := s.buf.ReadUintBE(64)
	return v, asReadError(err)
}

// ReadUint64s consumes 64 bits per element, big-endian.
func (s *Stream) ReadUint64s(n int) ([]uint64, error) {
	if err := s.checkItems(n, 64); err != nil {
		return nil, err
	}
	out := make([]uint64, n)
	for i := range out {
		out[i], _ = s.buf.ReadUintBE(64)
	}
	return out, nil
}

// ReadInt64 consumes 64 bits, big-endian two's complement.
func (s *Stream) ReadInt64() (int64, error) {
	v, err := s.buf.ReadUintBE(64)
	return int64(v), asReadError(err)
}

// ReadInt64s consumes 64 bits per element, big-endian two's complement.
func (s *Stream) ReadInt64s(n int) ([]int64, error) {
	if err := s.checkItems(n, 64); err != nil {
		return nil, err
	}
	out := make([]int64, n)
	for i := range out {
		v, _ := s.buf.ReadUintBE(64)
		out[i] = int64(v)
	}
	return out, nil
}

// ReadFloat64 consumes 64 bits as an IEEE-754 big-endian double.
func (s *Stream) ReadFloat64() (float64, error) {
	v, err := s.buf.ReadUintBE(64)
	return math.Float64frombits(v), asReadError(err)
}

// ReadFloat64s consumes 64 bits per element, IEEE-754 big-endian.
func (s *Stream) ReadFloat64s(n int) ([]float64, error) {
	if err := s.checkItems(n, 64); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		v, _ := s.buf.ReadUintBE(64)
		out[i] = math.Float64frombits(v)
	}
	return out, nil
}

// ReadBytes consumes n bytes.
func (s *Stream) ReadBytes(n int) ([]byte, error) {
	p, err := s.buf.ReadBytes(n)
	return p, asReadError(err)
}

// ReadRemainingBytes consumes everything left in the stream as bytes.
// It fails with a ReadMisaligned error unless the remaining length is a
// multiple of 8 bits.
func (s *Stream) ReadRemainingBytes() ([]byte, error) {
	if s.Len()%8 != 0 {
		return nil, &ReadError{Kind: ReadMisaligned, Available: s.Len()}
	}
	return s.ReadBytes(int(s.Len() / 8))
}

// ReadString consumes n bytes as a string.
func (s *Stream) ReadString(n int) (string, error) {
	p, err := s.ReadBytes(n)
	return string(p), err
}

// ReadStream consumes the next numBits bits into a new compact stream
// sharing this stream's registry.
func (s *Stream) ReadStream(numBits uint64) (*Stream, error) {
	if numBits > s.Len() {
		return nil, &ReadError{Kind: ReadUnderflow, Requested: numBits, Available: s.Len()}
	}
	out := NewWithRegistry(s.reg)
	p, _ := s.buf.ReadBytes(int(numBits / 8))
	out.buf.WriteBytes(p)
	for i := uint64(0); i < numBits%8; i++ {
		bit, _ := s.buf.ReadBit()
		out.buf.WriteBit(bit)
	}
	return out, nil
}

// ReadRemaining consumes everything left in the stream into a new
// compact stream.
func (s *Stream) ReadRemaining() (*Stream, error) {
	return s.ReadStream(s.Len())
}

func (s *Stream) checkItems(n int, width uint64) error {
	if need := uint64(n) * width; need > s.Len() {
		return &ReadError{Kind: ReadUnderflow, Requested: need, Available: s.Len()}
	}
	return nil
}

// Read consumes values under an explicit identifier, mirroring WriteAs.
// count is the number of items, or -1 when unspecified: built-in
// numeric identifiers then return a single value, Bytes returns the
// whole remaining stream as bytes, and a nil identifier returns the
// remaining bits as a new *Stream. With count >= 0 the built-in
// identifiers return a slice of count items (count bytes for Bytes).
func (s *Stream) Read(identifier any, count int) (any, error) {
	if identifier == nil {
		if count < 0 {
			return s.ReadRemaining()
		}
		return s.ReadStream(uint64(count))
	}
	if t, ok := identifier.(reflect.Type); ok {
		if v, handled, err := s.readBuiltin(t, count); handled {
			return v, err
		}
		r, err := s.reg.readerFor(t)
		if err != nil {
			return nil, err
		}
		return r(s, count)
	}
	r, err := s.reg.readerFor(identifier)
	if err != nil {
		return nil, err
	}
	return r(s, count)
}

func (s *Stream) readBuiltin(t reflect.Type, count int) (any, bool, error) {
	single := count < 0
	var v any
	var err error
	switch t {
	case Bool:
		if single {
			v, err = s.ReadBool()
		} else {
			v, err = s.ReadBools(count)
		}
	case Uint8:
		if single {
			v, err = s.ReadUint8()
		} else {
			v, err = s.ReadUint8s(count)
		}
	case Int8:
		if single {
			v, err = s.ReadInt8()
		} else {
			v, err = s.ReadInt8s(count)
		}
	case Uint16:
		if single {
			v, err = s.ReadUint16()
		} else {
			v, err = s.ReadUint16s(count)
		}
	case Int16:
		if single {
			v, err = s.ReadInt16()
		} else {
			v, err = s.ReadInt16s(count)
		}
	case Uint32:
		if single {
			v, err = s.ReadUint32()
		} else {
			v, err = s.ReadUint32s(count)
		}
	case Int32:
		if single {
			v, err = s.ReadInt32()
		} else {
			v, err = s.ReadInt32s(count)
		}
	case Uint64:
		if single {
			v, err = s.ReadUint64()
		} else {
			v, err = s.ReadUint64s(count)
		}
	case Int64:
		if single {
			v, err = s.ReadInt64()
		} else {
			v, err = s.ReadInt64s(count)
		}
	case Float64:
		if single {
			v, err = s.ReadFloat64()
		} else {
			v, err = s.ReadFloat64s(count)
		}
	case Bytes:
		if single {
			v, err = s.ReadRemainingBytes()
		} else {
			v, err = s.ReadBytes(count)
		}
	default:
		return nil, false, nil
	}
	return v, true, err
}
