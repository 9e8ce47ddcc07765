package qrmatrix

import (
	"fmt"

	"github.com/yyyoichi/bitstream-go"
)

// Matrix is a finished symbol: a square grid of dark and light modules.
// Modules are stored row by row in a packed bit stream.
type Matrix struct {
	version int
	level   Level
	mask    int
	size    int
	reader  *bitstream.BitReader[uint64]
}

func newMatrix(s *symbol) (*Matrix, error) {
	w := bitstream.NewBitWriter[uint64](0, 0)
	for row := 0; row < s.size; row++ {
		for col := 0; col < s.size; col++ {
			if s.empty(row, col) {
				return nil, fmt.Errorf("%w: %d,%d", ErrUnsetModule, row, col)
			}
			w.WriteBool(s.isDark(row, col))
		}
	}

	reader := bitstream.NewBitReader(w.Data(), 0, 0)
	reader.SetBits(w.Bits())
	return &Matrix{
		version: s.version,
		level:   s.level,
		mask:    s.mask,
		size:    s.size,
		reader:  reader,
	}, nil
}

// Size returns the number of modules per side.
func (m *Matrix) Size() int {
	return m.size
}

// Version returns the symbol version.
func (m *Matrix) Version() int {
	return m.version
}

// Level returns the error correction level.
func (m *Matrix) Level() Level {
	return m.level
}

// Mask returns the applied mask pattern.
func (m *Matrix) Mask() int {
	return m.mask
}

// IsDark reports whether the module at row, col is dark.
func (m *Matrix) IsDark(row, col int) (bool, error) {
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		return false, fmt.Errorf("%w: %d,%d", ErrOutOfRange, row, col)
	}
	return m.dark(row, col), nil
}

func (m *Matrix) dark(row, col int) bool {
	v, _ := m.reader.ReadBitAt(row*m.size + col)
	return v
}

// Bitmap returns the modules as rows of booleans, true for dark.
func (m *Matrix) Bitmap() [][]bool {
	bitmap := make([][]bool, m.size)
	for row := range bitmap {
		bitmap[row] = make([]bool, m.size)
		for col := range bitmap[row] {
			bitmap[row][col] = m.dark(row, col)
		}
	}
	return bitmap
}
