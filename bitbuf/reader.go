package bitbuf

// ReadBit consumes the next bit at the read cursor.
func (b *Buffer) ReadBit() (bool, error) {
	if b.Len() < 1 {
		return false, &UnderflowError{Requested: 1, Available: 0}
	}
	bit := b.bitAt(b.readOff)
	b.readOff++
	return bit, nil
}

// ReadByte consumes the next 8 bits, regardless of the alignment.
func (b *Buffer) ReadByte() (byte, error) {
	if b.Len() < 8 {
		return 0, &UnderflowError{Requested: 8, Available: b.Len()}
	}
	v := b.byteAt(b.readOff)
	b.readOff += 8
	return v, nil
}

// ReadBytes consumes the next 8*n bits and returns them as n bytes.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	numBits := 8 * uint64(n)
	if b.Len() < numBits {
		return nil, &UnderflowError{Requested: numBits, Available: b.Len()}
	}
	data := make([]byte, n)
	if b.readOff%8 == 0 {
		copy(data, b.data[b.readOff/8:])
		b.readOff += numBits
		return data, nil
	}
	for i := range data {
		data[i] = b.byteAt(b.readOff)
		b.readOff += 8
	}
	return data, nil
}

// ReadUintBE consumes the next numBits bits as an unsigned integer in
// big-endian byte order. numBits must be in 1..64.
func (b *Buffer) ReadUintBE(numBits uint) (uint64, error) {
	if b.Len() < uint64(numBits) {
		return 0, &UnderflowError{Requested: uint64(numBits), Available: b.Len()}
	}

	var v uint64
	for numBits >= 8 {
		v = uint64(b.byteAt(b.readOff)) | v<<8
		b.readOff += 8
		numBits -= 8
	}
	for numBits > 0 {
		v <<= 1
		if b.bitAt(b.readOff) {
			v |= 1
		}
		b.readOff++
		numBits--
	}
	return v, nil
}
