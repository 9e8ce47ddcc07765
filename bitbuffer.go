package qrmatrix

// BitBuffer is an append only bit sequence, packed most significant bit
// first.
type BitBuffer struct {
	numBits int
	bits    []byte
}

// Put appends the low length bits of value, most significant first.
func (b *BitBuffer) Put(value uint32, length int) {
	if length < 0 || length > 32 {
		panic("qrmatrix: bit length out of range 0-32")
	}
	for i := length - 1; i >= 0; i-- {
		b.PutBit(value&(1<<uint(i)) != 0)
	}
}

// PutBit appends a single bit.
func (b *BitBuffer) PutBit(bit bool) {
	if len(b.bits) <= b.numBits/8 {
		b.bits = append(b.bits, 0)
	}
	if bit {
		b.bits[b.numBits/8] |= 0x80 >> uint(b.numBits%8)
	}
	b.numBits++
}

// Get returns bit index.
func (b *BitBuffer) Get(index int) bool {
	if index < 0 || index >= b.numBits {
		panic("qrmatrix: bit index out of range")
	}
	return (b.bits[index/8]>>uint(7-index%8))&1 == 1
}

// Len returns the number of bits written.
func (b *BitBuffer) Len() int {
	return b.numBits
}

// Bytes returns the backing bytes. A trailing partial byte is zero padded.
func (b *BitBuffer) Bytes() []byte {
	return b.bits
}
