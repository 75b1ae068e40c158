package indexed

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/bodgit/gbmconv/rgb565"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPalette() (p Palette) {
	for i := range p {
		p[i] = color.NRGBA{uint8(i * 16), uint8(255 - i*16), uint8(i * 8), 0xff}
	}
	return
}

func TestBlocks(t *testing.T) {
	m := New(image.Rect(0, 0, 2, 1), testPalette())
	m.SetColorIndex(0, 0, 3)
	m.SetColorIndex(1, 0, 9)

	palette, pixels, err := Blocks(m)
	require.Nil(t, err)

	assert.Equal(t, []byte{2, 1, 1, 0, 0, 0, ModeIndexed, 0, 0x39}, pixels)
	for i, c := range testPalette() {
		assert.Equal(t, rgb565.FromRGB(c.R, c.G, c.B), palette[i])
	}
}

func TestBlocksUnpack(t *testing.T) {
	for _, w := range []int{2, 4, 16, 160} {
		m := New(image.Rect(0, 0, w, 3), testPalette())
		for i := range m.Pix {
			m.Pix[i] = uint8(i*7) & 0x0f
		}

		_, pixels, err := Blocks(m)
		require.Nil(t, err)
		require.Len(t, pixels, headerSize+w*3/2)

		for y := 0; y < 3; y++ {
			for x := 0; x < w; x += 2 {
				p := pixels[headerSize+(y*w+x)/2]
				assert.Equal(t, m.ColorIndexAt(x, y), p>>4)
				assert.Equal(t, m.ColorIndexAt(x+1, y), p&0x0f)
			}
		}
	}
}

func TestBlocksOffsetBounds(t *testing.T) {
	m := New(image.Rect(10, 20, 12, 21), testPalette())
	m.SetColorIndex(10, 20, 0xa)
	m.SetColorIndex(11, 20, 0x5)

	_, pixels, err := Blocks(m)
	require.Nil(t, err)
	assert.Equal(t, []byte{2, 1, 1, 0, 0, 0, ModeIndexed, 0, 0xa5}, pixels)
}

func TestBlocksErrors(t *testing.T) {
	_, _, err := Blocks(New(image.Rect(0, 0, 3, 2), testPalette()))
	assert.True(t, errors.Is(err, ErrOddWidth))

	_, _, err = Blocks(New(image.Rect(0, 0, 256, 2), testPalette()))
	assert.True(t, errors.Is(err, ErrTooLarge))

	m := New(image.Rect(0, 0, 4, 2), testPalette())
	m.SetColorIndex(3, 1, 16)
	_, _, err = Blocks(m)
	require.True(t, errors.Is(err, ErrBadIndex))

	var ee *EncodingError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 3, ee.X)
	assert.Equal(t, 1, ee.Y)
	assert.Equal(t, "indexed: invalid palette index at (3, 1)", err.Error())
}

func TestBlocksTranslucentPalette(t *testing.T) {
	var p Palette
	p[0] = color.NRGBA{0xff, 0x80, 0x40, 0x00}

	palette, _, err := Blocks(New(image.Rect(0, 0, 2, 1), p))
	require.Nil(t, err)
	assert.Equal(t, rgb565.FromRGB(0xff, 0x80, 0x40), palette[0])
}

func TestEncode(t *testing.T) {
	var p Palette
	p[1] = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	m := New(image.Rect(0, 0, 4, 1), p)
	m.SetColorIndex(0, 0, 1)
	m.SetColorIndex(3, 0, 1)

	b := new(bytes.Buffer)
	require.Nil(t, Encode(b, m, "logo"))

	want := strings.Join([]string{
		"const uint16_t logoPalette[16] = {",
		"    0x0000, 0xffff, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,",
		"    0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000",
		"};",
		"const uint8_t logoData[] = {",
		"    4, 1, 1, 0, 0, 0, (uint8_t)ColorMode::index, 0,",
		"    0x10, 0x01",
		"};",
		"",
	}, "\n")
	assert.Equal(t, want, b.String())
}

func TestEncodeDefaultName(t *testing.T) {
	b := new(bytes.Buffer)
	require.Nil(t, Encode(b, New(image.Rect(0, 0, 2, 2), testPalette()), ""))
	assert.True(t, strings.HasPrefix(b.String(), "const uint16_t imagePalette[16] = {"))
	assert.Contains(t, b.String(), "const uint8_t imageData[] = {")
}

func TestEncodeOddWidth(t *testing.T) {
	b := new(bytes.Buffer)
	err := Encode(b, New(image.Rect(0, 0, 5, 2), testPalette()), "odd")
	assert.True(t, errors.Is(err, ErrOddWidth))
	assert.Equal(t, 0, b.Len())
}
