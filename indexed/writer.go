package indexed

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/bodgit/gbmconv/rgb565"
)

var (
	ErrOddWidth = errors.New("indexed: image width is not even")
	ErrTooLarge = errors.New("indexed: image dimensions do not fit in a byte")
	ErrBadIndex = errors.New("indexed: invalid palette index")

	ErrNotIndexed = errors.New("indexed: image is not paletted")
)

// EncodingError records the pixel that could not be encoded. A negative
// coordinate means the error is about the image as a whole.
type EncodingError struct {
	X, Y int
	Err  error
}

func (e *EncodingError) Error() string {
	if e.X < 0 || e.Y < 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at (%d, %d)", e.Err, e.X, e.Y)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}

// Blocks returns the RGB565 palette and the pixel data, including the header,
// for the image m
func Blocks(m *Image) ([ColorsPerPalette]rgb565.Color, []byte, error) {
	var palette [ColorsPerPalette]rgb565.Color

	b := m.Bounds()
	if b.Dx()&1 != 0 {
		return palette, nil, &EncodingError{X: -1, Y: -1, Err: ErrOddWidth}
	}
	if b.Dx() > 0xff || b.Dy() > 0xff {
		return palette, nil, &EncodingError{X: -1, Y: -1, Err: ErrTooLarge}
	}

	for i, c := range m.Palette {
		palette[i] = rgb565.Model.Convert(c).(rgb565.Color)
	}

	pixels := make([]byte, 0, headerSize+b.Dx()*b.Dy()>>1)
	pixels = append(pixels, byte(b.Dx()), byte(b.Dy()), frames, 0, 0, 0, ModeIndexed, 0)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x += 2 {
			px1, px2 := m.ColorIndexAt(x, y), m.ColorIndexAt(x+1, y)
			if px1 >= ColorsPerPalette {
				return palette, nil, &EncodingError{X: x - b.Min.X, Y: y - b.Min.Y, Err: ErrBadIndex}
			}
			if px2 >= ColorsPerPalette {
				return palette, nil, &EncodingError{X: x + 1 - b.Min.X, Y: y - b.Min.Y, Err: ErrBadIndex}
			}
			pixels = append(pixels, px1<<4|px2)
		}
	}

	return palette, pixels, nil
}

// Encode writes the image m to w as a pair of C arrays, <name>Palette and
// <name>Data
func Encode(w io.Writer, m *Image, name string) error {
	if name == "" {
		name = "image"
	}

	palette, pixels, err := Blocks(m)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "const uint16_t %sPalette[%d] = {", name, ColorsPerPalette)
	for i, c := range palette {
		if i%8 == 0 {
			bw.WriteString("\n    ")
		} else {
			bw.WriteString(" ")
		}
		fmt.Fprintf(bw, "0x%04x", uint16(c))
		if i < len(palette)-1 {
			bw.WriteString(",")
		}
	}
	bw.WriteString("\n};\n")

	// The color mode is written symbolically so it tracks the firmware
	fmt.Fprintf(bw, "const uint8_t %sData[] = {", name)
	fmt.Fprintf(bw, "\n    %d, %d, %d, %d, %d, %d, (uint8_t)ColorMode::index, %d,", pixels[0], pixels[1], pixels[2], pixels[3], pixels[4], pixels[5], pixels[7])
	for i, p := range pixels[headerSize:] {
		if i%16 == 0 {
			bw.WriteString("\n    ")
		} else {
			bw.WriteString(" ")
		}
		fmt.Fprintf(bw, "0x%02x", p)
		if i < len(pixels)-headerSize-1 {
			bw.WriteString(",")
		}
	}
	bw.WriteString("\n};\n")

	return bw.Flush()
}
