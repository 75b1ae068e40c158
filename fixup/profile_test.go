package fixup

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpaceshootGameplay(t *testing.T) {
	for i := 0; i < bands; i++ {
		top, bottom := spaceshootGameplay(i), spaceshootGameplay(FrameHeight-1-i)
		require.Len(t, top, 16)
		assert.Equal(t, top, bottom, "row %d", i)
	}

	for row := bands; row < FrameHeight-bands; row++ {
		assert.Nil(t, spaceshootGameplay(row), "row %d", row)
	}

	assert.Nil(t, spaceshootGameplay(-1))
	assert.Nil(t, spaceshootGameplay(FrameHeight))
}

func TestSpaceshootBand(t *testing.T) {
	tables := []struct {
		band int
		want []color.RGBA
	}{
		{0, []color.RGBA{{0, 0, 192, 0xff}, {224, 248, 255, 0xff}, {255, 248, 0, 0xff}, {224, 252, 160, 0xff}}},
		{1, []color.RGBA{{0, 0, 168, 0xff}, {192, 217, 255, 0xff}, {255, 217, 0, 0xff}, {192, 220, 160, 0xff}}},
		{6, []color.RGBA{{0, 0, 48, 0xff}, {32, 62, 255, 0xff}, {255, 62, 0, 0xff}, {32, 63, 160, 0xff}}},
		{7, []color.RGBA{{0, 0, 24, 0xff}, {0, 31, 255, 0xff}, {255, 31, 0, 0xff}, {0, 31, 160, 0xff}}},
	}

	for _, table := range tables {
		p := spaceshootBand(table.band)
		for i, c := range table.want {
			assert.Equal(t, c, p[i], "band %d color %d", table.band, i)
		}
		for i := len(table.want); i < len(p); i++ {
			assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, p[i])
		}
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup("spaceshoot-gameplay")
	require.Nil(t, err)
	assert.NotNil(t, p)

	_, err = Lookup("bogus")
	var ce *ConfigError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "bogus", ce.Profile)
	assert.True(t, errors.Is(err, ErrNoProfile))
	assert.Contains(t, err.Error(), "spaceshoot-gameplay")
}

func TestRegister(t *testing.T) {
	Register("test-flat", func(row int) color.Palette {
		return color.Palette{color.RGBA{0xff, 0xff, 0xff, 0xff}}
	})

	assert.Contains(t, Profiles(), "test-flat")
	assert.Contains(t, Profiles(), "spaceshoot-gameplay")

	assert.Panics(t, func() {
		Register("test-flat", spaceshootGameplay)
	})
	assert.Panics(t, func() {
		Register("test-nil", nil)
	})
}
