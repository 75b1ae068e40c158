/*
Package fixup recolors Gamebuino Meta screenshots and recordings.

The console captures frames as 160 by 128 pixel indexed images. Games that
switch palettes per row while drawing (color cells) lose that information in
the capture, so the frames are re-rendered here using the tileset palette
and, for named profiles, the palettes the game installs on particular rows.
Recordings are several frames stacked vertically.

Colors are reduced to what the RGB565 display can show.
*/
package fixup

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/bodgit/gbmconv/rgb565"
)

const (
	// FrameWidth is the width of a captured frame
	FrameWidth = 160

	// FrameHeight is the height of a captured frame
	FrameHeight = 128
)

var (
	ErrNoPalette = errors.New("fixup: no reference palette")
	ErrBadIndex  = errors.New("fixup: invalid palette index")
	ErrSheetSize = errors.New("fixup: sheet is not a stack of 160x128 frames")
	ErrNoProfile = errors.New("fixup: unknown profile")
	errDuplicate = errors.New("fixup: profile already registered")
)

// ConfigError is returned for invalid palettes or profiles
type ConfigError struct {
	Profile string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Profile == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %q, supported profiles: %v", e.Err, e.Profile, Profiles())
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// PreconditionError is returned when the sheet has the wrong dimensions
type PreconditionError struct {
	Width, Height int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: got %dx%d", ErrSheetSize, e.Width, e.Height)
}

func (e *PreconditionError) Unwrap() error {
	return ErrSheetSize
}

// EncodingError records the pixel whose index is not in the active palette
type EncodingError struct {
	X, Y  int
	Index uint8
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s %d at (%d, %d)", ErrBadIndex, e.Index, e.X, e.Y)
}

func (e *EncodingError) Unwrap() error {
	return ErrBadIndex
}

// Sheet is an indexed image such as *image.Paletted
type Sheet interface {
	Bounds() image.Rectangle
	ColorIndexAt(x, y int) uint8
}

// Remap renders the sheet using the reference palette, replaced on the rows
// for which profile returns an override. The profile may be nil.
func Remap(sheet Sheet, reference color.Palette, profile Profile) (*image.RGBA, error) {
	b := sheet.Bounds()
	if b.Dx() != FrameWidth || b.Dy() == 0 || b.Dy()%FrameHeight != 0 {
		return nil, &PreconditionError{Width: b.Dx(), Height: b.Dy()}
	}
	if len(reference) == 0 {
		return nil, &ConfigError{Err: ErrNoPalette}
	}

	// Overrides only depend on the row within the frame
	var overrides [FrameHeight]color.Palette
	if profile != nil {
		for py := range overrides {
			overrides[py] = profile(py)
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))

	frames := b.Dy() / FrameHeight
	for f := 0; f < frames; f++ {
		for py := 0; py < FrameHeight; py++ {
			palette := reference
			if overrides[py] != nil {
				palette = overrides[py]
			}

			y := f*FrameHeight + py
			for x := 0; x < b.Dx(); x++ {
				i := sheet.ColorIndexAt(b.Min.X+x, b.Min.Y+y)
				if int(i) >= len(palette) {
					return nil, &EncodingError{X: x, Y: y, Index: i}
				}
				dst.SetRGBA(x, y, rgb565.Truncate(palette[i]))
			}
		}
	}

	return dst, nil
}
