package font

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

var errBadGlyph = errors.New("font: glyph width does not match cell width")

func (f *Font) validate() error {
	if f.Width < 1 || f.Height < 1 || f.Height > MaxHeight || f.Width > 0xff {
		return ErrCellSize
	}
	for _, g := range f.Glyphs {
		if g != nil && len(g) != f.Width {
			return errBadGlyph
		}
	}
	return nil
}

// MarshalBinary returns the font as it is laid out in memory; the cell width
// and height followed by every column of every glyph
func (f *Font) MarshalBinary() ([]byte, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	b := new(bytes.Buffer)
	b.Grow(2 + NumGlyphs*f.Width)
	b.WriteByte(byte(f.Width))
	b.WriteByte(byte(f.Height))
	for _, g := range f.Glyphs {
		if g == nil {
			// Blank glyph
			g = make(Glyph, f.Width)
		}
		b.Write(g)
	}

	return b.Bytes(), nil
}

func printable(code int) bool {
	return code >= ' ' && code < NumGlyphs-1
}

// Encode writes the font f to w as a C array named fontData
func Encode(w io.Writer, f *Font) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "const uint8_t fontData[] = {%d, %d, \n", b[0], b[1])
	for code := 0; code < NumGlyphs; code++ {
		bw.WriteString("    ")
		for _, c := range b[2+code*f.Width : 2+(code+1)*f.Width] {
			fmt.Fprintf(bw, "0x%02x, ", c)
		}
		if printable(code) {
			fmt.Fprintf(bw, " // 0x%02x / %c\n", code, code)
		} else {
			fmt.Fprintf(bw, " // 0x%02x\n", code)
		}
	}
	bw.WriteString("};\n")

	return bw.Flush()
}
