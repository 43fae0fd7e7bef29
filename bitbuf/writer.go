package bitbuf

// putByte packs v at absolute bit offset off, regardless of the
// alignment. If off is not byte-aligned the value is spliced across the
// byte boundary: the high 8-bit bits of v land in the low bits of the
// addressed byte and the remaining low bits in the high bits of the
// next one, preserving the untouched regions of both.
func (b *Buffer) putByte(off uint64, v byte) {
	byt, bit := off/8, off%8
	if bit == 0 {
		b.data[byt] = v
		return
	}
	b.data[byt] = b.data[byt]&(0xFF<<(8-bit)) | v>>bit
	b.data[byt+1] = b.data[byt+1]&(0xFF>>bit) | v<<(8-bit)
}

// WriteBit appends a single bit at the write cursor.
func (b *Buffer) WriteBit(bit bool) {
	b.EnsureCapacity(1)
	mask := byte(0x80) >> (b.writeOff % 8)
	if bit {
		b.data[b.writeOff/8] |= mask
	} else {
		b.data[b.writeOff/8] &^= mask
	}
	b.writeOff++
}

// WriteByte appends 8 bits at the write cursor. The returned error is
// always nil; the signature matches io.ByteWriter.
func (b *Buffer) WriteByte(v byte) error {
	b.EnsureCapacity(8)
	b.putByte(b.writeOff, v)
	b.writeOff += 8
	return nil
}

// WriteBytes appends the bytes of p in order, most-significant bit
// first within each byte.
func (b *Buffer) WriteBytes(p []byte) {
	b.EnsureCapacity(8 * uint64(len(p)))
	if b.writeOff%8 == 0 {
		copy(b.data[b.writeOff/8:], p)
		b.writeOff += 8 * uint64(len(p))
		return
	}
	for _, v := range p {
		b.putByte(b.writeOff, v)
		b.writeOff += 8
	}
}

// WriteUintBE appends the numBits least-significant bits of v in
// big-endian byte order. numBits must be in 1..64; the remaining high
// bits of v are discarded, so out-of-range values wrap modulo
// 2^numBits.
func (b *Buffer) WriteUintBE(v uint64, numBits uint) {
	b.EnsureCapacity(uint64(numBits))

	// Eliminate unnecessary MS bits.
	v <<= 64 - numBits

	// Write bytes in Big-Endian order.
	for numBits >= 8 {
		b.putByte(b.writeOff, byte(v>>56))
		b.writeOff += 8
		v <<= 8
		numBits -= 8
	}

	// Write the remaining bits.
	for numBits > 0 {
		b.WriteBit(v>>63 == 1)
		v <<= 1
		numBits--
	}
}
