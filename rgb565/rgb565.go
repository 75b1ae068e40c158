/*
Package rgb565 implements the 16-bit colour format used by the Gamebuino Meta
display.

Colours are packed as RRRRRGGGGGGBBBBB with the low bits of each 8-bit
channel discarded.
*/
package rgb565

import "image/color"

// Color is a packed RGB565 value.
type Color uint16

// FromRGB packs the 8-bit channels r, g and b
func FromRGB(r, g, b uint8) Color {
	return Color(uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3))
}

// FromColor packs any color.Color. Alpha is ignored, translucent colors keep
// their straight RGB values.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(n.R, n.G, n.B)
}

// Fields returns the raw 5, 6 and 5 bit fields
func (c Color) Fields() (r5, g6, b5 uint8) {
	return uint8(c >> 11 & 0x1f), uint8(c >> 5 & 0x3f), uint8(c & 0x1f)
}

// RGBA implements the color.Color interface. The channels are expanded
// without filling the low bits so that converting back yields c again.
func (c Color) RGBA() (r, g, b, a uint32) {
	return Truncate(c).RGBA()
}

// Truncate returns c as 8-bit channels with the bits RGB565 cannot hold
// zeroed, the way the display shows it.
func Truncate(c color.Color) color.RGBA {
	if p, ok := c.(Color); ok {
		r5, g6, b5 := p.Fields()
		return color.RGBA{r5 << 3, g6 << 2, b5 << 3, 0xff}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{n.R & 0xf8, n.G & 0xfc, n.B & 0xf8, 0xff}
}

// Model converts colours to Color
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	return FromColor(c)
})
