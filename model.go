package qrmatrix

import (
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"paepcke.de/qrmatrix/internal/gf"
)

const (
	numMasks = 8

	modeByte     = 1 << 2
	modeBitCount = 4

	padByte0 = 0xec
	padByte1 = 0x11
)

// Model builds the module matrix of one QR symbol with a fixed version and
// error correction level. Text is queued with AddData and turned into a
// symbol by Make. A Model is not safe for concurrent use.
type Model struct {
	version   int
	level     Level
	dataList  []string
	dataCache []byte
	matrix    *Matrix
	logger    *slog.Logger
}

// New returns an empty Model. The version and level are validated by Make.
func New(version int, level Level, opts ...Option) *Model {
	m := &Model{
		version: version,
		level:   level,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddData queues text as one byte mode segment. Each rune contributes its
// low 8 bits, so only runes up to U+00FF encode faithfully. Bytes that are
// not valid UTF-8, such as raw Latin-1 input, are encoded unchanged.
func (m *Model) AddData(text string) {
	m.dataList = append(m.dataList, text)
	m.dataCache = nil
}

// Make builds the symbol with the mask pattern of lowest penalty.
func (m *Model) Make() error {
	data, err := m.codewords()
	if err != nil {
		return err
	}

	start := time.Now()
	penalties := maskPenalties(m.version, m.level, data)
	best := 0
	for mask, p := range penalties {
		m.logger.Debug("mask trial",
			slog.Int("mask", mask),
			slog.Float64("penalty", p),
		)
		if p < penalties[best] {
			best = mask
		}
	}

	if err := m.finalize(best, data); err != nil {
		return err
	}
	m.logger.Info("symbol built",
		slog.Int("version", m.version),
		slog.String("level", m.level.String()),
		slog.Int("mask", best),
		slog.Float64("penalty", penalties[best]),
		slog.Int("codewords", len(data)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// MakeWithMask builds the symbol with a fixed mask pattern.
func (m *Model) MakeWithMask(mask int) error {
	if mask < 0 || mask >= numMasks {
		return fmt.Errorf("%w: %d", ErrInvalidMask, mask)
	}
	data, err := m.codewords()
	if err != nil {
		return err
	}
	return m.finalize(mask, data)
}

// IsDark reports whether the module at row, col is dark.
func (m *Model) IsDark(row, col int) (bool, error) {
	if m.matrix == nil {
		return false, fmt.Errorf("%w: %d,%d", ErrOutOfRange, row, col)
	}
	return m.matrix.IsDark(row, col)
}

// ModuleCount returns the side length of the built symbol, or 0 before
// the first successful Make.
func (m *Model) ModuleCount() int {
	if m.matrix == nil {
		return 0
	}
	return m.matrix.Size()
}

// MaskPattern returns the mask of the built symbol, or -1.
func (m *Model) MaskPattern() int {
	if m.matrix == nil {
		return -1
	}
	return m.matrix.Mask()
}

// Matrix returns the built symbol, or nil before the first successful Make.
func (m *Model) Matrix() *Matrix {
	return m.matrix
}

func (m *Model) finalize(mask int, data []byte) error {
	matrix, err := newMatrix(buildSymbol(m.version, m.level, mask, data, false))
	if err != nil {
		return err
	}
	m.matrix = matrix
	return nil
}

func (m *Model) codewords() ([]byte, error) {
	if m.dataCache != nil {
		return m.dataCache, nil
	}
	data, err := createData(m.version, m.level, m.dataList)
	if err != nil {
		return nil, err
	}
	m.dataCache = data
	return data, nil
}

// maskPenalties scores a trial symbol for every mask pattern.
func maskPenalties(version int, level Level, data []byte) [numMasks]float64 {
	var penalties [numMasks]float64
	for mask := range penalties {
		penalties[mask] = buildSymbol(version, level, mask, data, true).penaltyScore()
	}
	return penalties
}

// lengthInBits returns the width of the byte mode character count field.
func lengthInBits(version int) int {
	switch {
	case version < 10:
		return 8
	default:
		return 16
	}
}

// createData encodes the segments and returns the interleaved data and
// error correction codewords.
func createData(version int, level Level, dataList []string) ([]byte, error) {
	blocks, err := RSBlocks(version, level)
	if err != nil {
		return nil, err
	}

	buffer := &BitBuffer{}
	for _, text := range dataList {
		payload := byteData(text)
		buffer.Put(modeByte, modeBitCount)
		buffer.Put(uint32(len(payload)), lengthInBits(version))
		for _, b := range payload {
			buffer.Put(uint32(b), 8)
		}
	}

	totalDataCount := 0
	for _, b := range blocks {
		totalDataCount += b.DataCount
	}
	capacity := totalDataCount * 8

	if buffer.Len() > capacity {
		return nil, fmt.Errorf("%w: %d > %d bits (version %d, level %v)",
			ErrCapacityOverflow, buffer.Len(), capacity, version, level)
	}
	if buffer.Len()+4 <= capacity {
		buffer.Put(0, 4)
	}
	for buffer.Len()%8 != 0 {
		buffer.PutBit(false)
	}
	for pad := uint32(padByte0); buffer.Len() < capacity; {
		buffer.Put(pad, 8)
		pad ^= padByte0 ^ padByte1
	}

	return createBytes(buffer, blocks), nil
}

// byteData maps text to its byte mode payload. A rune contributes its low
// 8 bits, a byte that is not valid UTF-8 is copied as is.
func byteData(text string) []byte {
	payload := make([]byte, 0, len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			payload = append(payload, text[i])
		} else {
			payload = append(payload, byte(r))
		}
		i += size
	}
	return payload
}

// createBytes splits the data codewords into blocks, appends the
// Reed-Solomon codewords and interleaves everything column by column.
func createBytes(buffer *BitBuffer, blocks []RSBlock) []byte {
	dcdata := make([][]byte, len(blocks))
	ecdata := make([][]byte, len(blocks))
	maxDcCount, maxEcCount := 0, 0
	totalCount := 0
	offset := 0

	for r, b := range blocks {
		dcCount := b.DataCount
		ecCount := b.ECCount()
		maxDcCount = max(maxDcCount, dcCount)
		maxEcCount = max(maxEcCount, ecCount)
		totalCount += b.TotalCount

		dcdata[r] = buffer.Bytes()[offset : offset+dcCount]
		offset += dcCount
		ecdata[r] = gf.Remainder(dcdata[r], ecCount)
	}

	data := make([]byte, 0, totalCount)
	for i := 0; i < maxDcCount; i++ {
		for r := range blocks {
			if i < len(dcdata[r]) {
				data = append(data, dcdata[r][i])
			}
		}
	}
	for i := 0; i < maxEcCount; i++ {
		for r := range blocks {
			if i < len(ecdata[r]) {
				data = append(data, ecdata[r][i])
			}
		}
	}
	return data
}
