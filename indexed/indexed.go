/*
Package indexed implements the 16 color indexed image format used by the
Gamebuino Meta.

An image is written as two C arrays. The first holds the 16 palette entries as
RGB565 values. The second starts with an eight byte header; width, height,
frame count (always 1), three bytes of animation settings, the color mode
and the transparent color index. The pixels follow, two per byte, with the
leftmost pixel of each pair in the upper nibble. There is no padding so the
image width must be even.
*/
package indexed

import (
	"image"
	"image/color"
)

const (
	// ColorsPerPalette is the number of entries in a palette
	ColorsPerPalette = 16

	// ModeIndexed is the color mode value for 4 bpp indexed images
	ModeIndexed = 1

	headerSize = 8
	frames     = 1
)

// Palette holds the colors of an image
type Palette [ColorsPerPalette]color.NRGBA

// Image is an in-memory 4 bpp indexed image. It implements image.Image and
// image.PalettedImage.
type Image struct {
	// Pix holds one palette index per pixel
	Pix     []uint8
	Stride  int
	Rect    image.Rectangle
	Palette Palette
}

// New returns a new Image with the given bounds and palette
func New(r image.Rectangle, p Palette) *Image {
	return &Image{
		Pix:     make([]uint8, r.Dx()*r.Dy()),
		Stride:  r.Dx(),
		Rect:    r,
		Palette: p,
	}
}

func (m *Image) ColorModel() color.Model {
	p := make(color.Palette, ColorsPerPalette)
	for i, c := range m.Palette {
		p[i] = c
	}
	return p
}

func (m *Image) Bounds() image.Rectangle {
	return m.Rect
}

func (m *Image) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Rect)) {
		return m.Palette[0]
	}
	return m.Palette[m.ColorIndexAt(x, y)&0x0f]
}

func (m *Image) PixOffset(x, y int) int {
	return (y-m.Rect.Min.Y)*m.Stride + (x - m.Rect.Min.X)
}

func (m *Image) ColorIndexAt(x, y int) uint8 {
	if !(image.Point{x, y}.In(m.Rect)) {
		return 0
	}
	return m.Pix[m.PixOffset(x, y)]
}

func (m *Image) SetColorIndex(x, y int, index uint8) {
	if !(image.Point{x, y}.In(m.Rect)) {
		return
	}
	m.Pix[m.PixOffset(x, y)] = index
}
