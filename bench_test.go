package bitstream_test

import (
	"testing"

	"github.com/boisgera/bitstream"
)

func BenchmarkWriteBool(b *testing.B) {
	s := bitstream.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.WriteBool(i%2 == 0)
	}
}

func BenchmarkWriteBools8(b *testing.B) {
	s := bitstream.New()
	bits := []bool{true, false, true, true, false, false, true, false}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.WriteBools(bits)
	}
}

func BenchmarkWriteUint8Aligned(b *testing.B) {
	s := bitstream.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.WriteUint8(uint8(i))
	}
}

func BenchmarkWriteUint8Unaligned(b *testing.B) {
	s := bitstream.New()
	s.WriteBool(true)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.WriteUint8(uint8(i))
	}
}

func BenchmarkWriteFloat64(b *testing.B) {
	s := bitstream.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.WriteFloat64(3.14)
	}
}

func BenchmarkWriteBytes1K(b *testing.B) {
	s := bitstream.New()
	p := make([]byte, 1024)
	b.SetBytes(1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.WriteBytes(p)
	}
}

func BenchmarkWriteBytes1KUnaligned(b *testing.B) {
	s := bitstream.New()
	s.WriteBool(true)
	p := make([]byte, 1024)
	b.SetBytes(1024)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s.WriteBytes(p)
	}
}

func BenchmarkReadUint64(b *testing.B) {
	s := bitstream.New()
	for i := 0; i < b.N; i++ {
		s.WriteUint64(uint64(i))
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = s.ReadUint64()
	}
}

func BenchmarkWriteDispatch(b *testing.B) {
	s := bitstream.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.Write(uint8(i))
	}
}

func BenchmarkFactoryUint5(b *testing.B) {
	s := bitstream.New()
	ident := bitstream.Uint{Bits: 5}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = s.WriteAs(uint64(i), ident)
	}
}
