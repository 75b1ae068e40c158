package font

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	ErrCellSize  = errors.New("font: invalid cell size")
	ErrHeader    = errors.New("font: invalid glyph header")
	ErrCodeRange = errors.New("font: character code out of range")
	ErrShortLine = errors.New("font: row shorter than cell width")
	ErrTruncated = errors.New("font: incomplete glyph")
)

// ParseError records the line that could not be parsed
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d: %q", e.Err, e.Line, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

type state int

const (
	stateCellSize state = iota
	stateHeader
	stateRows
)

type decoder struct {
	font *Font

	state state
	line  int
	code  rune
	row   int
	start int
}

func (d *decoder) fail(text string, err error) error {
	return &ParseError{Line: d.line, Text: text, Err: err}
}

func (d *decoder) parseCellSize(line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return d.fail(line, ErrCellSize)
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil || width < 1 {
		return d.fail(line, ErrCellSize)
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil || height < 1 || height > MaxHeight {
		return d.fail(line, ErrCellSize)
	}
	d.font = New(width, height)
	return nil
}

// parseHeader returns the character code named by a glyph header
func parseHeader(line string) (rune, error) {
	if line == "" {
		return 0, ErrHeader
	}
	if line[0] == escape {
		if len(line) > 1 && line[1] == escape {
			return escape, nil
		}
		code, err := parseHex(line[1:])
		if err != nil {
			return 0, err
		}
		if code >= NumGlyphs {
			return 0, ErrCodeRange
		}
		return rune(code), nil
	}
	r, _ := utf8.DecodeRuneInString(line)
	if r >= NumGlyphs {
		return 0, ErrCodeRange
	}
	return r, nil
}

// parseHex accepts the same spellings as Python's int(s, 16): surrounding
// whitespace, a leading '+', an optional 0x prefix and underscores between
// digits
func parseHex(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")
	digits := s
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		digits = s[2:]
	} else if strings.HasPrefix(s, "_") {
		return 0, ErrHeader
	}
	code, err := strconv.ParseUint("0x"+digits, 0, 32)
	if err != nil {
		return 0, ErrHeader
	}
	return code, nil
}

// Columns are counted in characters rather than bytes
func (d *decoder) parseRow(line string) error {
	row := []rune(line)
	if len(row) < d.font.Width {
		return d.fail(line, ErrShortLine)
	}
	for x := 0; x < d.font.Width; x++ {
		if row[x] == 'X' || row[x] == 'x' {
			d.font.set(d.code, x, d.row)
		}
	}
	return nil
}

func (d *decoder) decode(r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		d.line++
		line := strings.TrimSpace(s.Text())

		switch d.state {
		case stateCellSize:
			if err := d.parseCellSize(line); err != nil {
				return err
			}
			d.state = stateHeader
		case stateHeader:
			code, err := parseHeader(line)
			if err != nil {
				return d.fail(line, err)
			}
			d.code, d.row, d.start = code, 0, d.line
			d.state = stateRows
		case stateRows:
			if err := d.parseRow(line); err != nil {
				return err
			}
			d.row++
			if d.row == d.font.Height {
				d.state = stateHeader
			}
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	switch d.state {
	case stateCellSize:
		return &ParseError{Line: d.line, Err: ErrCellSize}
	case stateRows:
		return &ParseError{Line: d.start, Text: string(d.code), Err: ErrTruncated}
	}

	return nil
}

// Decode reads a text font from r
func Decode(r io.Reader) (*Font, error) {
	var d decoder
	if err := d.decode(r); err != nil {
		return nil, err
	}
	return d.font, nil
}
