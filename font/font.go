/*
Package font implements a monospaced bitmap font encoder for the Gamebuino
Meta.

Fonts are authored as text. The first line holds the cell width and height,
then every glyph is a header line naming the character followed by one line
per row of the cell where X (or x) marks ink:

	5 3
	A
	X.X.X
	X.X.X
	XXXXX

The header is the character itself; only its first rune is used. A header
starting with # is followed by the character code in hexadecimal, so #41,
#0x41 and #+41 are all the same as A, and ## names the # character itself.
Data rows are scanned character by character, not byte by byte. A font can therefore
never describe a glyph using a header such as "#x" where x is meant
literally; use the hexadecimal form instead.

The encoded font is a table of 128 glyphs, one per code point, each stored as
one byte per column where bit n is row n of the cell. Characters that were not
defined are left blank.
*/
package font

const (
	// NumGlyphs is the number of code points in a font
	NumGlyphs = 128

	// MaxHeight is the tallest cell that fits in a column byte
	MaxHeight = 8

	escape = '#'
)

// Glyph is the bitmap for a single character, one mask per column
type Glyph []uint8

// Font is a complete glyph table indexed by code point
type Font struct {
	Width  int
	Height int
	Glyphs [NumGlyphs]Glyph
}

// New returns an empty font with every glyph blank
func New(width, height int) *Font {
	f := &Font{
		Width:  width,
		Height: height,
	}
	for i := range f.Glyphs {
		f.Glyphs[i] = make(Glyph, width)
	}
	return f
}

// Ink reports whether the pixel at column x, row y of a glyph is set
func (f *Font) Ink(code rune, x, y int) bool {
	if code < 0 || code >= NumGlyphs || x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return false
	}
	return f.Glyphs[code][x]&(1<<uint(y)) != 0
}

func (f *Font) set(code rune, x, y int) {
	f.Glyphs[code][x] |= 1 << uint(y)
}
