package colorutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1a2B3c")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0x1A, G: 0x2B, B: 0x3C}, c)

	c, err = ParseHex("ffffff")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 255, G: 255, B: 255}, c)

	c, err = ParseHex("  #000000 ")
	require.NoError(t, err)
	assert.Equal(t, RGB{}, c)

	for _, bad := range []string{"", "#fff", "#ggggg1", "12345", "#1234567"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestHexRoundTrip(t *testing.T) {
	c := RGB{R: 0xE3, G: 0x1D, B: 0x42}
	assert.Equal(t, "#E31D42", c.Hex())

	back, err := ParseHex(c.Hex())
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestDistance(t *testing.T) {
	black := RGB{}
	white := RGB{R: 255, G: 255, B: 255}
	red := RGB{R: 255}

	assert.Zero(t, Distance(black, black))
	assert.Equal(t, Distance(black, white), Distance(white, black))
	assert.Greater(t, Distance(black, white), Distance(black, red))

	// Near-identical colours are closer than distinct ones.
	almostRed := RGB{R: 250, G: 2, B: 2}
	assert.Less(t, Distance(red, almostRed), Distance(red, white))
}
