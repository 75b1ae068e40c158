package indexed

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ericpauley/go-quantize/quantize"
)

// Decoders often pad the palette of a 16 color image to 256 entries, the
// extra entries are dropped
func padPalette(cp color.Palette) (p Palette) {
	for i := range p {
		if i < len(cp) {
			p[i] = color.NRGBAModel.Convert(cp[i]).(color.NRGBA)
		} else {
			p[i] = color.NRGBA{0, 0, 0, 0xff}
		}
	}
	return
}

func fromPaletted(pm *image.Paletted) (*Image, error) {
	b := pm.Bounds()

	// Adjust image so that top-left corner is at (0, 0)
	dst := New(b.Sub(b.Min), padPalette(pm.Palette))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := pm.ColorIndexAt(x, y)
			if i >= ColorsPerPalette {
				return nil, &EncodingError{X: x - b.Min.X, Y: y - b.Min.Y, Err: ErrBadIndex}
			}
			dst.SetColorIndex(x-b.Min.X, y-b.Min.Y, i)
		}
	}

	return dst, nil
}

// FromImage converts the paletted image m into an Image keeping its indices.
// Every pixel must use one of the first 16 palette entries.
func FromImage(m image.Image) (*Image, error) {
	pm, ok := m.(*image.Paletted)
	if !ok {
		return nil, &EncodingError{X: -1, Y: -1, Err: ErrNotIndexed}
	}
	return fromPaletted(pm)
}

// Reduce converts any image into an Image by choosing a new 16 color
// palette, optionally with Floyd-Steinberg error diffusion
func Reduce(m image.Image, dither bool) (*Image, error) {
	b := m.Bounds()

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, ColorsPerPalette), m))

	var d draw.Drawer = draw.Src
	if dither {
		d = draw.FloydSteinberg
	}
	d.Draw(pm, b, m, b.Min)

	return fromPaletted(pm)
}
