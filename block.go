package qrmatrix

import (
	"fmt"
	"strings"
)

// Level is an error correction level. The ordinal values are the two
// format information bits, they do not sort by protection strength.
type Level int

const (
	LevelM Level = iota // ~15% recovery
	LevelL              // ~7% recovery
	LevelH              // ~30% recovery
	LevelQ              // ~25% recovery
)

// String returns the conventional single letter name of the level.
func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelM:
		return "M"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel parses "L", "M", "Q" or "H" (case insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL, nil
	case "M":
		return LevelM, nil
	case "Q":
		return LevelQ, nil
	case "H":
		return LevelH, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// slot maps a level to its column in rsBlockTable, which is ordered L, M, Q, H.
func (l Level) slot() (int, bool) {
	switch l {
	case LevelL:
		return 0, true
	case LevelM:
		return 1, true
	case LevelQ:
		return 2, true
	case LevelH:
		return 3, true
	}
	return 0, false
}

// MaxVersion is the highest symbol version the tables cover.
const MaxVersion = 10

// RSBlock is one Reed-Solomon block of a symbol.
type RSBlock struct {
	TotalCount int
	DataCount  int
}

// ECCount returns the number of error correction codewords of the block.
func (b RSBlock) ECCount() int {
	return b.TotalCount - b.DataCount
}

// rsBlockTable holds repeated (count, total codewords, data codewords)
// groups, four rows per version in L, M, Q, H order.
var rsBlockTable = [][]int{
	// 1
	{1, 26, 19},
	{1, 26, 16},
	{1, 26, 13},
	{1, 26, 9},
	// 2
	{1, 44, 34},
	{1, 44, 28},
	{1, 44, 22},
	{1, 44, 16},
	// 3
	{1, 70, 55},
	{1, 70, 44},
	{2, 35, 17},
	{2, 35, 13},
	// 4
	{1, 100, 80},
	{2, 50, 32},
	{2, 50, 24},
	{4, 25, 9},
	// 5
	{1, 134, 108},
	{2, 67, 43},
	{2, 33, 15, 2, 34, 16},
	{2, 33, 11, 2, 34, 12},
	// 6
	{2, 86, 68},
	{4, 43, 27},
	{4, 43, 19},
	{4, 43, 15},
	// 7
	{2, 98, 78},
	{4, 49, 31},
	{2, 32, 14, 4, 33, 15},
	{4, 39, 13, 1, 40, 14},
	// 8
	{2, 121, 97},
	{2, 60, 38, 2, 61, 39},
	{4, 40, 18, 2, 41, 19},
	{4, 40, 14, 2, 41, 15},
	// 9
	{2, 146, 116},
	{3, 58, 36, 2, 59, 37},
	{4, 36, 16, 4, 37, 17},
	{4, 36, 12, 4, 37, 13},
	// 10
	{2, 86, 68, 2, 87, 69},
	{4, 69, 43, 1, 70, 44},
	{6, 43, 19, 2, 44, 20},
	{6, 43, 15, 2, 44, 16},
}

// RSBlocks expands the block layout of a version and level, in
// interleaving order.
func RSBlocks(version int, level Level) ([]RSBlock, error) {
	slot, ok := level.slot()
	if !ok || version < 1 || version > MaxVersion {
		return nil, fmt.Errorf("%w: version %d, level %v", ErrUnsupportedVersion, version, level)
	}

	row := rsBlockTable[(version-1)*4+slot]
	var blocks []RSBlock
	for i := 0; i+2 < len(row); i += 3 {
		for j := 0; j < row[i]; j++ {
			blocks = append(blocks, RSBlock{TotalCount: row[i+1], DataCount: row[i+2]})
		}
	}
	return blocks, nil
}

// DataCapacity returns the number of data codewords of a version and level.
func DataCapacity(version int, level Level) (int, error) {
	blocks, err := RSBlocks(version, level)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, b := range blocks {
		n += b.DataCount
	}
	return n, nil
}
