package bitstream

import (
	"encoding/binary"

	"github.com/spacemeshos/sha256-simd"
)

// Equal reports whether the two streams hold identical remaining bit
// sequences. Content already consumed (before each stream's own read
// cursor) is irrelevant, as is how the content happens to be aligned in
// memory.
func (s *Stream) Equal(o *Stream) bool {
	n := s.Len()
	if n != o.Len() {
		return false
	}
	so, oo := s.buf.ReadOffset(), o.buf.ReadOffset()
	whole := n / 8
	for i := uint64(0); i < whole; i++ {
		if s.buf.ByteAt(so+8*i) != o.buf.ByteAt(oo+8*i) {
			return false
		}
	}
	for i := 8 * whole; i < n; i++ {
		if s.buf.BitAt(so+i) != o.buf.BitAt(oo+i) {
			return false
		}
	}
	return true
}

// Digest returns a cryptographic digest of the remaining bit sequence:
// the maximal run of whole bytes, followed by the trailing bit count
// and the trailing bits themselves. Streams that compare Equal produce
// identical digests.
func (s *Stream) Digest() []byte {
	h := sha256.New()
	n := s.Len()
	off := s.buf.ReadOffset()
	whole := n / 8

	chunk := make([]byte, 0, 512)
	for i := uint64(0); i < whole; i++ {
		chunk = append(chunk, s.buf.ByteAt(off+8*i))
		if len(chunk) == cap(chunk) {
			h.Write(chunk)
			chunk = chunk[:0]
		}
	}
	h.Write(chunk)

	tail := make([]byte, 1, 9)
	tail[0] = byte(n % 8)
	for i := 8 * whole; i < n; i++ {
		if s.buf.BitAt(off + i) {
			tail = append(tail, 1)
		} else {
			tail = append(tail, 0)
		}
	}
	h.Write(tail)

	return h.Sum(nil)
}

// Hash returns a 64-bit hash derived from Digest, consistent with
// Equal.
func (s *Stream) Hash() uint64 {
	return binary.BigEndian.Uint64(s.Digest()[:8])
}
