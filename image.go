package qrmatrix

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ImageDrawer paints matrices onto an RGBA image.
type ImageDrawer struct {
	Width, Height int
	// Margin is a blank border in pixels, QuietZone one in modules.
	Margin    int
	QuietZone int
	Dark      color.Color
	Light     color.Color
	// Roundness in [0, 1] rounds module and finder corners.
	Roundness float64
	// PixelSize in (0, 1] scales data modules inside their tile.
	PixelSize float64

	img *image.RGBA
}

var _ Drawer = (*ImageDrawer)(nil)

// NewImageDrawer returns an ImageDrawer with black on white square modules.
func NewImageDrawer(width, height int) *ImageDrawer {
	return &ImageDrawer{
		Width:     width,
		Height:    height,
		Margin:    10,
		QuietZone: 4,
		Dark:      color.Black,
		Light:     color.White,
		PixelSize: 1,
	}
}

// Draw paints the matrix, replacing any previous drawing.
func (d *ImageDrawer) Draw(m *Matrix) error {
	if m == nil {
		return ErrNotBuilt
	}
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("qrmatrix: invalid image size %dx%d", d.Width, d.Height)
	}

	d.img = image.NewRGBA(image.Rect(0, 0, d.Width, d.Height))
	draw.Draw(d.img, d.img.Bounds(), image.NewUniform(d.Light), image.Point{}, draw.Src)

	count := m.Size()
	available := float32(min(d.Width, d.Height) - 2*d.Margin)
	tile := available / float32(count+2*d.QuietZone)
	pixelSize := float32(d.PixelSize)
	if pixelSize <= 0 || pixelSize > 1 {
		pixelSize = 1
	}
	roundness := float32(d.Roundness)
	origin := func(v int) float32 {
		return float32(d.Margin) + float32(v+d.QuietZone)*tile
	}

	z := vector.NewRasterizer(d.Width, d.Height)
	for row := 0; row < count; row++ {
		for col := 0; col < count; col++ {
			if !m.dark(row, col) || isFinderModule(row, col, count) {
				continue
			}
			size := tile * pixelSize
			offset := (tile - size) / 2
			roundRect(z, origin(col)+offset, origin(row)+offset, size, size, size/2*roundness, false)
		}
	}
	for _, f := range [][2]int{{0, 0}, {0, count - finderPatternSize}, {count - finderPatternSize, 0}} {
		finder(z, origin(f[1]), origin(f[0]), tile, roundness)
	}
	z.Draw(d.img, d.img.Bounds(), image.NewUniform(d.Dark), image.Point{})
	return nil
}

// Clear repaints the image with the light color.
func (d *ImageDrawer) Clear() error {
	if d.img != nil {
		draw.Draw(d.img, d.img.Bounds(), image.NewUniform(d.Light), image.Point{}, draw.Src)
	}
	return nil
}

// Image returns the last drawing, or nil.
func (d *ImageDrawer) Image() image.Image {
	if d.img == nil {
		return nil
	}
	return d.img
}

// WritePNG encodes the last drawing as PNG.
func (d *ImageDrawer) WritePNG(w io.Writer) error {
	if d.img == nil {
		return ErrNotBuilt
	}
	return png.Encode(w, d.img)
}

func isFinderModule(row, col, count int) bool {
	return (row < finderPatternSize && col < finderPatternSize) ||
		(row < finderPatternSize && col >= count-finderPatternSize) ||
		(row >= count-finderPatternSize && col < finderPatternSize)
}

// finder adds a finder pattern at x, y as one path: the 7x7 outline with a
// reversed 5x5 hole and the 3x3 center.
func finder(z *vector.Rasterizer, x, y, s, roundness float32) {
	roundRect(z, x, y, 7*s, 7*s, 7*s*0.2*roundness, false)
	roundRect(z, x+s, y+s, 5*s, 5*s, 5*s*0.15*roundness, true)
	roundRect(z, x+2*s, y+2*s, 3*s, 3*s, 3*s/2*roundness, false)
}

// roundRect adds a closed rectangle with corners of radius r. Reversed
// paths cancel the coverage of the shapes they overlap.
func roundRect(z *vector.Rasterizer, x, y, w, h, r float32, reverse bool) {
	r = min(r, w/2, h/2)
	if reverse {
		z.MoveTo(x+r, y)
		z.QuadTo(x, y, x, y+r)
		z.LineTo(x, y+h-r)
		z.QuadTo(x, y+h, x+r, y+h)
		z.LineTo(x+w-r, y+h)
		z.QuadTo(x+w, y+h, x+w, y+h-r)
		z.LineTo(x+w, y+r)
		z.QuadTo(x+w, y, x+w-r, y)
		z.ClosePath()
		return
	}
	z.MoveTo(x+r, y)
	z.LineTo(x+w-r, y)
	z.QuadTo(x+w, y, x+w, y+r)
	z.LineTo(x+w, y+h-r)
	z.QuadTo(x+w, y+h, x+w-r, y+h)
	z.LineTo(x+r, y+h)
	z.QuadTo(x, y+h, x, y+h-r)
	z.LineTo(x, y+r)
	z.QuadTo(x, y, x+r, y)
	z.ClosePath()
}

// ParseHexColor parses a #rrggbb or #rgb color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
