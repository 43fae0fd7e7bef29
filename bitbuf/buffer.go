package bitbuf

// Buffer owns a growable byte array addressed by two absolute bit
// cursors. Bits are appended at the write cursor and consumed at the
// read cursor; both cursors only move forward, except when reset
// through SetOffsets. The backing array grows (never shrinks) and is
// never compacted in place, so bits below the read cursor stay
// physically present until a higher layer copies the live range out.
//
// Invariant: 0 <= ReadOffset <= WriteOffset <= 8*capacity.
//
// The zero value is an empty buffer ready for use. A Buffer is not
// safe for concurrent use.
type Buffer struct {
	data     []byte
	readOff  uint64
	writeOff uint64
}

// Len returns the number of unread bits between the cursors.
func (b *Buffer) Len() uint64 {
	return b.writeOff - b.readOff
}

// ReadOffset returns the absolute bit index of the read cursor.
func (b *Buffer) ReadOffset() uint64 {
	return b.readOff
}

// WriteOffset returns the absolute bit index of the write cursor.
func (b *Buffer) WriteOffset() uint64 {
	return b.writeOff
}

// SetOffsets moves both cursors to previously observed positions.
// The caller must pass offsets that satisfy the buffer invariant;
// snapshot restoration is the intended use. Buffer contents are left
// untouched, so bits between the new and old write cursor remain in
// memory until overwritten by later writes.
func (b *Buffer) SetOffsets(read, write uint64) {
	b.readOff = read
	b.writeOff = write
}

// Bytes returns the backing bytes covering the write cursor. The slice
// aliases the buffer and is invalidated by the next mutating call,
// since growth may relocate the backing array.
func (b *Buffer) Bytes() []byte {
	return b.data[:(b.writeOff+7)/8]
}

// EnsureCapacity guarantees the backing array can hold extraBits more
// bits past the write cursor, growing it with amortized doubling.
// Grown space is zero-filled.
func (b *Buffer) EnsureCapacity(extraBits uint64) {
	needBytes := (b.writeOff + extraBits + 7) / 8
	if needBytes <= uint64(len(b.data)) {
		return
	}
	newCap := uint64(2 * len(b.data))
	if newCap < needBytes {
		newCap = needBytes
	}
	grown := make([]byte, newCap)
	copy(grown, b.data)
	b.data = grown
}

// bitAt returns the bit at absolute offset off. The caller must
// guarantee off < WriteOffset.
func (b *Buffer) bitAt(off uint64) bool {
	return b.data[off/8]&(0x80>>(off%8)) != 0
}

// byteAt reconstructs the 8 bits starting at absolute offset off,
// combining the low bits of the addressed byte with the high bits of
// the next one when off is not byte-aligned. The caller must guarantee
// off+8 <= WriteOffset.
func (b *Buffer) byteAt(off uint64) byte {
	byt, bit := off/8, off%8
	if bit == 0 {
		return b.data[byt]
	}
	return b.data[byt]<<bit | b.data[byt+1]>>(8-bit)
}

// BitAt returns the bit at absolute offset off without moving the read
// cursor. The caller must guarantee off < WriteOffset.
func (b *Buffer) BitAt(off uint64) bool {
	return b.bitAt(off)
}

// ByteAt returns the 8 bits starting at absolute offset off without
// moving the read cursor. The caller must guarantee off+8 <= WriteOffset.
func (b *Buffer) ByteAt(off uint64) byte {
	return b.byteAt(off)
}
