package fixup

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referencePalette() color.Palette {
	p := make(color.Palette, 16)
	for i := range p {
		p[i] = color.RGBA{uint8(i*16 + 7), uint8(255 - i*16), uint8(i*5 + 3), 0xff}
	}
	return p
}

func testSheet(frames int) *image.Paletted {
	m := image.NewPaletted(image.Rect(0, 0, FrameWidth, FrameHeight*frames), referencePalette())
	for i := range m.Pix {
		m.Pix[i] = uint8(i*3) & 0x0f
	}
	return m
}

func masked(c color.Color) color.RGBA {
	r, g, b, _ := c.RGBA()
	return color.RGBA{uint8(r>>8) & 0xf8, uint8(g>>8) & 0xfc, uint8(b>>8) & 0xf8, 0xff}
}

func TestRemapReference(t *testing.T) {
	sheet := testSheet(2)
	ref := referencePalette()

	dst, err := Remap(sheet, ref, nil)
	require.Nil(t, err)
	require.Equal(t, sheet.Bounds(), dst.Bounds())

	for y := 0; y < sheet.Bounds().Dy(); y++ {
		for x := 0; x < FrameWidth; x++ {
			assert.Equal(t, masked(ref[sheet.ColorIndexAt(x, y)]), dst.RGBAAt(x, y))
		}
	}
}

func TestRemapProfile(t *testing.T) {
	sheet := testSheet(3)
	ref := referencePalette()

	p, err := Lookup("spaceshoot-gameplay")
	require.Nil(t, err)

	dst, err := Remap(sheet, ref, p)
	require.Nil(t, err)

	for f := 0; f < 3; f++ {
		for py := 0; py < FrameHeight; py++ {
			y := f*FrameHeight + py
			palette := ref
			if o := p(py); o != nil {
				palette = o
			}
			for x := 0; x < FrameWidth; x++ {
				assert.Equal(t, masked(palette[sheet.ColorIndexAt(x, y)]), dst.RGBAAt(x, y))
			}
		}
	}

	// The same row of every frame is identical
	for py := 0; py < FrameHeight; py++ {
		for x := 0; x < FrameWidth; x++ {
			if sheet.ColorIndexAt(x, py) == sheet.ColorIndexAt(x, FrameHeight+py) {
				assert.Equal(t, dst.RGBAAt(x, py), dst.RGBAAt(x, FrameHeight+py))
			}
		}
	}
}

func TestRemapOffsetBounds(t *testing.T) {
	ref := referencePalette()
	sheet := image.NewPaletted(image.Rect(5, 7, 5+FrameWidth, 7+FrameHeight), ref)
	sheet.SetColorIndex(5, 7, 9)

	dst, err := Remap(sheet, ref, nil)
	require.Nil(t, err)
	assert.Equal(t, image.Rect(0, 0, FrameWidth, FrameHeight), dst.Bounds())
	assert.Equal(t, masked(ref[9]), dst.RGBAAt(0, 0))
}

func TestRemapErrors(t *testing.T) {
	ref := referencePalette()

	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 128, 160),
		image.Rect(0, 0, FrameWidth, 0),
		image.Rect(0, 0, FrameWidth, 200),
	} {
		_, err := Remap(image.NewPaletted(r, ref), ref, nil)
		var pe *PreconditionError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, r.Dx(), pe.Width)
		assert.Equal(t, r.Dy(), pe.Height)
		assert.True(t, errors.Is(err, ErrSheetSize))
	}

	_, err := Remap(testSheet(1), nil, nil)
	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.True(t, errors.Is(err, ErrNoPalette))

	sheet := image.NewPaletted(image.Rect(0, 0, FrameWidth, FrameHeight), ref)
	sheet.SetColorIndex(3, 2, 4)
	_, err = Remap(sheet, ref[:4], nil)
	var ee *EncodingError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 3, ee.X)
	assert.Equal(t, 2, ee.Y)
	assert.Equal(t, uint8(4), ee.Index)

	// Override palettes are only 16 entries long
	sheet = testSheet(1)
	sheet.Palette = make(color.Palette, 32)
	sheet.SetColorIndex(0, 0, 20)
	_, err = Remap(sheet, make(color.Palette, 32), spaceshootGameplay)
	assert.True(t, errors.Is(err, ErrBadIndex))
}
