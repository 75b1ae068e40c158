/*
Package gbmconv is a library for converting fonts, images and screenshots
to and from the formats used by the Gamebuino Meta console.
*/
package gbmconv

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Converter runs conversions, optionally caching their output
type Converter struct {
	db     *AssetDB
	logger *log.Logger

	// Reduce allows images that are not paletted to be reduced to 16
	// colors instead of being rejected
	Reduce bool

	// Dither enables error diffusion when reducing
	Dither bool
}

// New returns a Converter. db may be nil to disable caching.
func New(db *AssetDB, logger *log.Logger) *Converter {
	return &Converter{
		db:     db,
		logger: logger,
	}
}

func hashFile(f *os.File) (string, error) {
	h := sha1.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return fmt.Sprintf("%X", h.Sum(nil)), nil
}

// cacheKey identifies the parameters and settings an output depends on
func (c *Converter) cacheKey(params []string) string {
	key := strings.Join(params, " ")
	if c.Reduce {
		key += " reduce=true"
		if c.Dither {
			key += " dither=true"
		}
	}
	return key
}

// Run converts the file input using the named mode and writes the result to
// w. Nothing is written unless the conversion succeeds.
func (c *Converter) Run(mode, input string, params []string, w io.Writer) error {
	m, err := lookupMode(mode)
	if err != nil {
		return err
	}
	if err := m.check(params); err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	var sha string
	key := c.cacheKey(params)
	if c.db != nil && m.cacheable {
		if sha, err = hashFile(f); err != nil {
			return err
		}
		b, err := c.db.FindOutput(sha, m.Name, key)
		if err != nil {
			return err
		}
		if b != nil {
			c.logger.Printf("Using cached %s output for \"%s\"\n", m.Name, input)
			_, err = w.Write(b)
			return err
		}
	}

	b := new(bytes.Buffer)
	if err := m.run(c, f, params, b); err != nil {
		return wrap(err, input)
	}

	if sha != "" {
		if err := c.db.addOutput(sha, m.Name, key, b.Bytes()); err != nil {
			return err
		}
	}

	_, err = w.Write(b.Bytes())
	return err
}
