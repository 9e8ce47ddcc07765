package qrmatrix

import "math/bits"

type module uint8

const (
	unset module = iota
	light
	dark
)

const (
	finderPatternSize = 7

	formatInfoLengthBits  = 15
	versionInfoLengthBits = 18

	formatInfoGenerator  = 0x537 // 1335
	formatInfoMask       = 0x5412
	versionInfoGenerator = 0x1f25 // 7973

	versionInfoMinVersion = 7
)

// alignmentPatternCenter lists the alignment pattern coordinates per version.
var alignmentPatternCenter = [][]int{
	{}, // Version 0 doesn't exist.
	{}, // Version 1 doesn't use alignment patterns.
	{6, 18},
	{6, 22},
	{6, 26},
	{6, 30},
	{6, 34},
	{6, 22, 38},
	{6, 24, 42},
	{6, 26, 46},
	{6, 28, 50},
}

// symbol is a module grid under construction. In test mode the format and
// version regions are reserved but left light.
type symbol struct {
	version int
	level   Level
	mask    int
	test    bool
	size    int
	modules [][]module
}

func symbolSize(version int) int {
	return version*4 + 17
}

func buildSymbol(version int, level Level, mask int, data []byte, test bool) *symbol {
	s := &symbol{
		version: version,
		level:   level,
		mask:    mask,
		test:    test,
		size:    symbolSize(version),
	}
	s.modules = make([][]module, s.size)
	for i := range s.modules {
		s.modules[i] = make([]module, s.size)
	}

	s.addFinderPattern(0, 0)
	s.addFinderPattern(s.size-finderPatternSize, 0)
	s.addFinderPattern(0, s.size-finderPatternSize)
	s.addAlignmentPatterns()
	s.addTimingPatterns()
	s.addFormatInfo()
	if s.version >= versionInfoMinVersion {
		s.addVersionInfo()
	}
	s.addData(data)
	return s
}

func (s *symbol) empty(row, col int) bool {
	return s.modules[row][col] == unset
}

func (s *symbol) isDark(row, col int) bool {
	return s.modules[row][col] == dark
}

func (s *symbol) set(row, col int, v bool) {
	if v {
		s.modules[row][col] = dark
		return
	}
	s.modules[row][col] = light
}

func (s *symbol) setIfEmpty(row, col int, v bool) {
	if s.empty(row, col) {
		s.set(row, col, v)
	}
}

func (s *symbol) inside(row, col int) bool {
	return row >= 0 && row < s.size && col >= 0 && col < s.size
}

// addFinderPattern places a finder pattern with its one module separator,
// clipped to the grid.
func (s *symbol) addFinderPattern(row, col int) {
	for r := -1; r <= finderPatternSize; r++ {
		for c := -1; c <= finderPatternSize; c++ {
			if !s.inside(row+r, col+c) {
				continue
			}
			on := (0 <= r && r <= 6 && (c == 0 || c == 6)) ||
				(0 <= c && c <= 6 && (r == 0 || r == 6)) ||
				(2 <= r && r <= 4 && 2 <= c && c <= 4)
			s.setIfEmpty(row+r, col+c, on)
		}
	}
}

func (s *symbol) addAlignmentPatterns() {
	pos := alignmentPatternCenter[s.version]
	for _, row := range pos {
		for _, col := range pos {
			if !s.empty(row, col) {
				continue
			}
			for r := -2; r <= 2; r++ {
				for c := -2; c <= 2; c++ {
					on := r == -2 || r == 2 || c == -2 || c == 2 || (r == 0 && c == 0)
					s.setIfEmpty(row+r, col+c, on)
				}
			}
		}
	}
}

func (s *symbol) addTimingPatterns() {
	for i := finderPatternSize + 1; i < s.size-finderPatternSize-1; i++ {
		s.setIfEmpty(i, finderPatternSize-1, i%2 == 0)
		s.setIfEmpty(finderPatternSize-1, i, i%2 == 0)
	}
}

func (s *symbol) addFormatInfo() {
	f := bchFormatInfo(int(s.level)<<3 | s.mask)
	for i := 0; i < formatInfoLengthBits; i++ {
		on := !s.test && (f>>uint(i))&1 == 1

		switch {
		case i < 6:
			s.set(i, 8, on)
		case i < 8:
			s.set(i+1, 8, on)
		default:
			s.set(s.size-formatInfoLengthBits+i, 8, on)
		}

		switch {
		case i < 8:
			s.set(8, s.size-i-1, on)
		case i < 9:
			s.set(8, formatInfoLengthBits-i, on)
		default:
			s.set(8, formatInfoLengthBits-i-1, on)
		}
	}

	// Always dark, next to the lower left finder.
	s.set(s.size-8, 8, !s.test)
}

func (s *symbol) addVersionInfo() {
	v := bchVersionInfo(s.version)
	for i := 0; i < versionInfoLengthBits; i++ {
		on := !s.test && (v>>uint(i))&1 == 1
		s.set(i/3, i%3+s.size-8-3, on)
		s.set(i%3+s.size-8-3, i/3, on)
	}
}

// addData maps data into the free modules, two columns at a time in a
// zigzag from the lower right corner, skipping the vertical timing
// pattern. Missing bits are zero.
func (s *symbol) addData(data []byte) {
	inc := -1
	row := s.size - 1
	bitIndex := 7
	byteIndex := 0

	for col := s.size - 1; col > 0; col -= 2 {
		if col == finderPatternSize-1 {
			col--
		}

		for {
			for c := 0; c < 2; c++ {
				if !s.empty(row, col-c) {
					continue
				}

				on := false
				if byteIndex < len(data) {
					on = (data[byteIndex]>>uint(bitIndex))&1 == 1
				}

				// != is equivalent to XOR.
				s.set(row, col-c, on != maskBit(s.mask, row, col-c))

				bitIndex--
				if bitIndex == -1 {
					byteIndex++
					bitIndex = 7
				}
			}

			row += inc
			if row < 0 || row >= s.size {
				row -= inc
				inc = -inc
				break
			}
		}
	}
}

func bchDigit(v int) int {
	return bits.Len(uint(v))
}

// bchFormatInfo returns the 15 bit BCH(15,5) format information for the
// 5 bit level and mask value.
func bchFormatInfo(data int) int {
	d := data << 10
	for bchDigit(d)-bchDigit(formatInfoGenerator) >= 0 {
		d ^= formatInfoGenerator << uint(bchDigit(d)-bchDigit(formatInfoGenerator))
	}
	return ((data << 10) | d) ^ formatInfoMask
}

// bchVersionInfo returns the 18 bit BCH(18,6) version information.
func bchVersionInfo(version int) int {
	d := version << 12
	for bchDigit(d)-bchDigit(versionInfoGenerator) >= 0 {
		d ^= versionInfoGenerator << uint(bchDigit(d)-bchDigit(versionInfoGenerator))
	}
	return (version << 12) | d
}
