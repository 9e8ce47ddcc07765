package qrmatrix

import (
	"fmt"
	"io"
	"strings"
)

const (
	_blank      = " "
	_block      = "█"
	_blank_x2   = "  "
	_block_x2   = "██"
	_block_down = "▄"
	_block_up   = "▀"
	_lf         = "\n"

	_ansi_dark  = "\x1b[40m  \x1b[0m"
	_ansi_light = "\x1b[47m  \x1b[0m"
	_ansi_clear = "\x1b[2J\x1b[0f"
)

// TermStyle selects how modules map to terminal cells.
type TermStyle int

const (
	// StyleANSI paints every module as two cells with a black or white
	// background.
	StyleANSI TermStyle = iota
	// StyleBlocks draws light modules as two full blocks, for dark
	// terminals.
	StyleBlocks
	// StyleHalfBlocks packs two module rows into one line with half
	// blocks, for dark terminals.
	StyleHalfBlocks
)

// ParseTermStyle parses "ansi", "blocks" or "half".
func ParseTermStyle(s string) (TermStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ansi":
		return StyleANSI, nil
	case "blocks":
		return StyleBlocks, nil
	case "half":
		return StyleHalfBlocks, nil
	}
	return 0, fmt.Errorf("qrmatrix: unknown terminal style %q", s)
}

// TermDrawer writes matrices as text to a terminal.
type TermDrawer struct {
	w         io.Writer
	quietZone int
	style     TermStyle
}

var _ Drawer = (*TermDrawer)(nil)

// NewTermDrawer returns a TermDrawer surrounding the symbol with quietZone
// light modules.
func NewTermDrawer(w io.Writer, quietZone int, style TermStyle) *TermDrawer {
	return &TermDrawer{w: w, quietZone: max(quietZone, 0), style: style}
}

// Draw writes the matrix.
func (t *TermDrawer) Draw(m *Matrix) error {
	if m == nil {
		return ErrNotBuilt
	}
	var out string
	switch t.style {
	case StyleBlocks:
		out = t.blocks(m)
	case StyleHalfBlocks:
		out = t.halfBlocks(m)
	default:
		out = t.ansi(m)
	}
	_, err := io.WriteString(t.w, out)
	return err
}

// Clear resets the terminal screen.
func (t *TermDrawer) Clear() error {
	_, err := io.WriteString(t.w, _ansi_clear)
	return err
}

// dark treats the quiet zone as light.
func (t *TermDrawer) dark(m *Matrix, row, col int) bool {
	if row < 0 || row >= m.size || col < 0 || col >= m.size {
		return false
	}
	return m.dark(row, col)
}

func (t *TermDrawer) ansi(m *Matrix) string {
	var buf strings.Builder
	buf.WriteString(_lf)
	for row := -t.quietZone; row < m.size+t.quietZone; row++ {
		for col := -t.quietZone; col < m.size+t.quietZone; col++ {
			if t.dark(m, row, col) {
				buf.WriteString(_ansi_dark)
				continue
			}
			buf.WriteString(_ansi_light)
		}
		buf.WriteString(_lf)
	}
	buf.WriteString(_lf)
	return buf.String()
}

func (t *TermDrawer) blocks(m *Matrix) string {
	var buf strings.Builder
	for row := -t.quietZone; row < m.size+t.quietZone; row++ {
		for col := -t.quietZone; col < m.size+t.quietZone; col++ {
			if t.dark(m, row, col) {
				buf.WriteString(_blank_x2)
				continue
			}
			buf.WriteString(_block_x2)
		}
		buf.WriteString(_lf)
	}
	return buf.String()
}

func (t *TermDrawer) halfBlocks(m *Matrix) string {
	var buf strings.Builder
	end := m.size + t.quietZone
	for row := -t.quietZone; row < end; row += 2 {
		for col := -t.quietZone; col < end; col++ {
			top := t.dark(m, row, col)
			bottom := row+1 < end && t.dark(m, row+1, col)
			if row+1 >= end {
				// Odd line count, the missing lower half stays blank.
				if top {
					buf.WriteString(_blank)
					continue
				}
				buf.WriteString(_block_up)
				continue
			}
			if top == bottom {
				if top {
					buf.WriteString(_blank)
					continue
				}
				buf.WriteString(_block)
				continue
			}
			if top {
				buf.WriteString(_block_down)
				continue
			}
			buf.WriteString(_block_up)
		}
		buf.WriteString(_lf)
	}
	return buf.String()
}
