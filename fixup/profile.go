package fixup

import (
	"image/color"
	"sort"
	"sync"
)

// Profile returns the palette the game uses on a row of the frame or nil if
// the row uses the reference palette
type Profile func(row int) color.Palette

var (
	profilesMu sync.RWMutex
	profiles   = make(map[string]Profile)
)

// Register makes a profile available by name. It panics if the name is
// already in use or p is nil.
func Register(name string, p Profile) {
	profilesMu.Lock()
	defer profilesMu.Unlock()
	if p == nil {
		panic("fixup: Register profile is nil")
	}
	if _, dup := profiles[name]; dup {
		panic(errDuplicate.Error() + ": " + name)
	}
	profiles[name] = p
}

// Lookup returns the named profile
func Lookup(name string) (Profile, error) {
	profilesMu.RLock()
	defer profilesMu.RUnlock()
	p, ok := profiles[name]
	if !ok {
		return nil, &ConfigError{Profile: name, Err: ErrNoProfile}
	}
	return p, nil
}

// Profiles returns the sorted names of the registered profiles
func Profiles() []string {
	profilesMu.RLock()
	defer profilesMu.RUnlock()
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

const bands = 8

// The gameplay screen fades the status bars at the top and bottom of the
// screen, band 0 being the outermost row
func spaceshootBand(i int) color.Palette {
	p := make(color.Palette, 16)
	p[0] = color.RGBA{0, 0, uint8((8 - i) * 24), 0xff}
	p[1] = color.RGBA{uint8((7 - i) * 32), uint8((8 - i) * 31), 255, 0xff}
	p[2] = color.RGBA{255, uint8((8 - i) * 31), 0, 0xff}
	p[3] = color.RGBA{uint8((7 - i) * 32), uint8((4 - float64(i)/2) * 63), 160, 0xff}
	for j := 4; j < len(p); j++ {
		p[j] = color.RGBA{0, 0, 0, 0xff}
	}
	return p
}

var spaceshootBands = func() (b [bands]color.Palette) {
	for i := range b {
		b[i] = spaceshootBand(i)
	}
	return
}()

func spaceshootGameplay(row int) color.Palette {
	switch {
	case row >= 0 && row < bands:
		return spaceshootBands[row]
	case row >= FrameHeight-bands && row < FrameHeight:
		return spaceshootBands[FrameHeight-1-row]
	}
	return nil
}

func init() {
	Register("spaceshoot-gameplay", spaceshootGameplay)
}
