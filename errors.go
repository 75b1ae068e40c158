package gbmconv

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrUnknownMode  = errors.New("gbmconv: unknown mode")
	ErrMissingParam = errors.New("gbmconv: missing parameter")
	ErrNoPalette    = errors.New("gbmconv: image has no palette")
	ErrNotIndexed   = errors.New("gbmconv: image is not indexed")
)

// ConfigError is returned when a conversion is asked for incorrectly
type ConfigError struct {
	// Mode is the requested mode
	Mode string
	// Field names the parameter or file at fault
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	switch e.Err {
	case ErrUnknownMode:
		var b strings.Builder
		fmt.Fprintf(&b, "%s: %s. Supported modes available:", e.Err, e.Mode)
		for _, m := range Modes() {
			fmt.Fprintf(&b, "\n%-30s: %s", m.Name, m.Description)
		}
		return b.String()
	case ErrMissingParam:
		m, _ := lookupMode(e.Mode)
		return fmt.Sprintf("%s %s; %s requires %s", e.Err, e.Field, e.Mode, m.usage())
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func wrap(err error, file string) error {
	return errors.Wrapf(err, "\"%s\"", file)
}
