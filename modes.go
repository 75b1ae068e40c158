package gbmconv

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/bodgit/gbmconv/fixup"
	"github.com/bodgit/gbmconv/font"
	"github.com/bodgit/gbmconv/indexed"
	"golang.org/x/image/bmp"
)

// Param describes a positional parameter of a mode
type Param struct {
	Role     string
	Optional bool
}

// Mode describes one of the supported conversions
type Mode struct {
	Name        string
	Description string
	Params      []Param

	cacheable bool
	run       func(*Converter, io.Reader, []string, io.Writer) error
}

func (m Mode) usage() string {
	if len(m.Params) == 0 {
		return "no parameters"
	}
	roles := make([]string, len(m.Params))
	for i, p := range m.Params {
		if p.Optional {
			roles[i] = "[" + p.Role + "]"
		} else {
			roles[i] = "<" + p.Role + ">"
		}
	}
	return strings.Join(roles, " ")
}

func (m Mode) check(params []string) error {
	for i, p := range m.Params {
		if i >= len(params) && !p.Optional {
			return &ConfigError{Mode: m.Name, Field: p.Role, Err: ErrMissingParam}
		}
	}
	return nil
}

const (
	fixupMode   = "gbmss-colorcells1-deploy"
	tilesetRole = "tileset BMP file"
)

var modes = []Mode{
	{
		Name:        "font-c",
		Description: "ASCII-art monospaced font to C code",
		cacheable:   true,
		run:         fontToC,
	},
	{
		Name:        "bmp4-c",
		Description: "indexed 16-color (4 bpp) BMP to C code",
		Params: []Param{
			{Role: "array name", Optional: true},
		},
		cacheable: true,
		run:       bmp4ToC,
	},
	{
		Name:        fixupMode,
		Description: "Palette fixup for Gamebuino Meta screenshot (or recording)",
		Params: []Param{
			{Role: "result file name"},
			{Role: tilesetRole},
			{Role: "extra information", Optional: true},
		},
		run: screenshotFixup,
	},
}

// Modes returns the supported modes
func Modes() []Mode {
	return append(modes[:0:0], modes...)
}

func lookupMode(name string) (Mode, error) {
	for _, m := range modes {
		if m.Name == name {
			return m, nil
		}
	}
	return Mode{}, &ConfigError{Mode: name, Field: "mode", Err: ErrUnknownMode}
}

func fontToC(c *Converter, r io.Reader, params []string, w io.Writer) error {
	f, err := font.Decode(r)
	if err != nil {
		return err
	}
	c.logger.Printf("Font has %dx%d cells\n", f.Width, f.Height)
	return font.Encode(w, f)
}

func bmp4ToC(c *Converter, r io.Reader, params []string, w io.Writer) error {
	name := "image"
	if len(params) > 0 {
		name = params[0]
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return err
	}

	var m *indexed.Image
	if _, ok := src.(*image.Paletted); !ok && c.Reduce {
		c.logger.Printf("Image is not indexed, reducing to %d colors\n", indexed.ColorsPerPalette)
		m, err = indexed.Reduce(src, c.Dither)
	} else {
		m, err = indexed.FromImage(src)
	}
	if err != nil {
		return err
	}

	return indexed.Encode(w, m, name)
}

func readPalette(file string) (color.Palette, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, &ConfigError{Mode: fixupMode, Field: tilesetRole, Err: err}
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, wrap(err, file)
	}

	p, ok := m.ColorModel().(color.Palette)
	if !ok || len(p) == 0 {
		return nil, &ConfigError{Mode: fixupMode, Field: tilesetRole, Err: wrap(ErrNoPalette, file)}
	}
	return p, nil
}

func writeBMP(file string, m image.Image) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return bmp.Encode(f, m)
}

func screenshotFixup(c *Converter, r io.Reader, params []string, w io.Writer) error {
	result, tileset := params[0], params[1]

	var profile fixup.Profile
	if len(params) > 2 {
		p, err := fixup.Lookup(params[2])
		if err != nil {
			return err
		}
		profile = p
	}

	src, _, err := image.Decode(r)
	if err != nil {
		return err
	}
	sheet, ok := src.(fixup.Sheet)
	if !ok {
		return ErrNotIndexed
	}

	reference, err := readPalette(tileset)
	if err != nil {
		return err
	}

	c.logger.Printf("Remapping %d frame(s)\n", src.Bounds().Dy()/fixup.FrameHeight)

	dst, err := fixup.Remap(sheet, reference, profile)
	if err != nil {
		return err
	}

	if err := writeBMP(result, dst); err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, result)
	return err
}
