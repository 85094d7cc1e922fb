package dmc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitch-tracker/pkg/colorutil"
)

func TestTableWellFormed(t *testing.T) {
	threads := Table()
	require.NotEmpty(t, threads)

	codes := make(map[string]bool, len(threads))
	for _, c := range threads {
		assert.NotEmpty(t, c.Code)
		assert.NotEmpty(t, c.Name)
		assert.False(t, codes[c.Code], "duplicate code %s", c.Code)
		codes[c.Code] = true

		_, err := colorutil.ParseHex(c.Hex)
		assert.NoError(t, err, "thread %s has bad hex %q", c.Code, c.Hex)
	}
}

func TestFindByCode(t *testing.T) {
	c, ok := FindByCode("310")
	require.True(t, ok)
	assert.Equal(t, "310", c.Code)

	lower, ok := FindByCode("b5200")
	if ok {
		assert.Equal(t, "B5200", lower.Code)
	}

	_, ok = FindByCode("no-such-thread")
	assert.False(t, ok)
}

func TestMapPaletteExactMatches(t *testing.T) {
	black, ok := FindByCode("310")
	require.True(t, ok)

	matches := MapPalette([]colorutil.RGB{black.RGB()})
	require.Len(t, matches, 1)
	assert.Equal(t, "310", matches[0].Color.Code)
	assert.Equal(t, black.RGB(), matches[0].Original)
}

func TestMapPalettePreservesOrder(t *testing.T) {
	black, ok := FindByCode("310")
	require.True(t, ok)
	white := colorutil.RGB{R: 255, G: 255, B: 255}

	matches := MapPalette([]colorutil.RGB{white, black.RGB()})
	require.Len(t, matches, 2)
	assert.Equal(t, white, matches[0].Original)
	assert.Equal(t, black.RGB(), matches[1].Original)
	assert.NotEqual(t, matches[0].Color.Code, matches[1].Color.Code)
}

func TestMapPaletteEmpty(t *testing.T) {
	assert.Empty(t, MapPalette(nil))
}
