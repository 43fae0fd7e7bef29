// Package bitstream implements a bit-addressable binary container:
// data is appended at one end and consumed from the other, in order, at
// single-bit granularity, with pluggable typed codecs.
//
// The binary layout is big-endian throughout: multi-byte integers and
// doubles are packed most-significant byte first, and bits are packed
// most-significant bit first within each byte.
//
// A Stream is single-owner state; concurrent use from multiple
// goroutines is outside the contract and must be serialized externally.
package bitstream

import (
	"strings"

	"github.com/boisgera/bitstream/bitbuf"
)

// streamID hands out stream identities for snapshot ownership checks.
// No synchronization, per the single-owner contract.
var streamID uint64

// Stream is a bit-addressable container. Writes append at the write
// cursor, reads consume at the read cursor. Bits below the read cursor
// stay in memory until discarded through a compacting Copy, so memory
// usage follows total bits ever written, not live content.
type Stream struct {
	buf   bitbuf.Buffer
	reg   *Registry
	id    uint64
	seq   uint64
	snaps []Snapshot
}

// New returns an empty stream using DefaultRegistry for codec dispatch.
func New() *Stream {
	return NewWithRegistry(DefaultRegistry)
}

// NewWithRegistry returns an empty stream dispatching through reg.
// A nil reg falls back to DefaultRegistry.
func NewWithRegistry(reg *Registry) *Stream {
	if reg == nil {
		reg = DefaultRegistry
	}
	streamID++
	s := &Stream{reg: reg, id: streamID}
	s.snaps = append(s.snaps, Snapshot{stream: s.id})
	return s
}

// FromBytes returns a new stream holding the bits of p.
func FromBytes(p []byte) *Stream {
	s := New()
	s.WriteBytes(p)
	return s
}

// Len returns the number of unread bits in the stream.
func (s *Stream) Len() uint64 {
	return s.buf.Len()
}

// Copy returns a compact, independent stream holding the remaining
// bits. The source's content and cursors are unchanged, but write
// history before the read cursor is not carried over.
func (s *Stream) Copy() *Stream {
	c, _ := s.CopyBits(s.Len())
	return c
}

// CopyBits returns a compact, independent stream holding the first n
// remaining bits. It performs a destructive extraction bracketed by a
// snapshot, leaving the source's cursors where they were.
func (s *Stream) CopyBits(n uint64) (*Stream, error) {
	snap := s.Save()
	c, err := s.ReadStream(n)
	if rerr := s.Restore(snap); rerr != nil {
		return nil, rerr
	}
	return c, err
}

// String renders the remaining bits as '0'/'1' characters,
// most-significant bit first within each byte.
func (s *Stream) String() string {
	var sb strings.Builder
	sb.Grow(int(s.buf.Len()))
	for off := s.buf.ReadOffset(); off < s.buf.WriteOffset(); off++ {
		if s.buf.BitAt(off) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
