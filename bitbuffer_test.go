package qrmatrix

import (
	"testing"

	"github.com/skip2/go-qrcode/bitset"
	"github.com/stretchr/testify/assert"
)

func TestBitBuffer(t *testing.T) {
	t.Run("put and get", func(t *testing.T) {
		var b BitBuffer
		b.Put(0b1101, 4)
		b.Put(0b011, 3)
		assert.Equal(t, 7, b.Len())
		want := []bool{true, true, false, true, false, true, true}
		for i, v := range want {
			assert.Equal(t, v, b.Get(i), "bit %d", i)
		}
	})

	t.Run("length grows by put length", func(t *testing.T) {
		var b BitBuffer
		for n := 0; n <= 32; n++ {
			before := b.Len()
			b.Put(0xffffffff, n)
			assert.Equal(t, before+n, b.Len())
		}
	})

	t.Run("msb first packing", func(t *testing.T) {
		var b BitBuffer
		b.Put(0b0100, 4)
		b.Put(5, 8)
		assert.Equal(t, []byte{0x40, 0x50}, b.Bytes())
		b.PutBit(true)
		b.PutBit(true)
		b.PutBit(true)
		b.PutBit(true)
		assert.Equal(t, []byte{0x40, 0x5f}, b.Bytes())
		b.PutBit(true)
		assert.Equal(t, []byte{0x40, 0x5f, 0x80}, b.Bytes())
	})

	t.Run("zero length put", func(t *testing.T) {
		var b BitBuffer
		b.Put(0xff, 0)
		assert.Equal(t, 0, b.Len())
		assert.Empty(t, b.Bytes())
	})

	t.Run("out of range", func(t *testing.T) {
		var b BitBuffer
		assert.Panics(t, func() { b.Get(0) })
		b.PutBit(false)
		assert.Panics(t, func() { b.Get(1) })
		assert.Panics(t, func() { b.Get(-1) })
		assert.Panics(t, func() { b.Put(0, 33) })
	})
}

func TestBitBufferMatchesBitset(t *testing.T) {
	values := []struct {
		v uint32
		n int
	}{
		{4, 4}, {17, 8}, {0xffff, 16}, {0, 3}, {0x12345678, 32}, {1, 1}, {0xec, 8}, {0x11, 8},
	}

	var b BitBuffer
	ref := bitset.New()
	for _, tt := range values {
		b.Put(tt.v, tt.n)
		ref.AppendUint32(tt.v, tt.n)
	}

	assert.Equal(t, ref.Len(), b.Len())
	for i, v := range ref.Bits() {
		assert.Equal(t, v, b.Get(i), "bit %d", i)
	}
	for i := 0; i+8 <= b.Len(); i += 8 {
		assert.Equal(t, ref.ByteAt(i), b.Bytes()[i/8], "byte %d", i/8)
	}
}
