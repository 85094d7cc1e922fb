package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetAt(t *testing.T) {
	p := &Pattern{
		ID:      "t",
		Width:   2,
		Height:  2,
		Palette: []PaletteEntry{{Name: "a"}, {Name: "b"}},
		Targets: []int32{0, 1, NoTarget, 1},
	}
	p.RecountTargets()
	require.NoError(t, p.Validate())

	assert.Equal(t, int32(0), p.TargetAt(0, 0))
	assert.Equal(t, int32(1), p.TargetAt(1, 1))
	assert.Equal(t, NoTarget, p.TargetAt(0, 1))
	assert.Equal(t, NoTarget, p.TargetAt(-1, 0))
	assert.Equal(t, NoTarget, p.TargetAt(2, 0))
	assert.Equal(t, NoTarget, p.TargetAt(0, 2))
}

func TestRecountTargets(t *testing.T) {
	p := &Pattern{
		Width:   3,
		Height:  1,
		Palette: []PaletteEntry{{TotalTargets: 99}, {TotalTargets: 99}},
		Targets: []int32{0, 0, NoTarget},
	}
	p.RecountTargets()
	assert.Equal(t, 2, p.Palette[0].TotalTargets)
	assert.Equal(t, 0, p.Palette[1].TotalTargets)
}

func TestValidate(t *testing.T) {
	good := &Pattern{
		ID:      "g",
		Width:   2,
		Height:  1,
		Palette: []PaletteEntry{{TotalTargets: 1}},
		Targets: []int32{0, NoTarget},
	}
	assert.NoError(t, good.Validate())

	bad := *good
	bad.Width = 0
	assert.Error(t, bad.Validate())

	bad = *good
	bad.Targets = []int32{0}
	assert.Error(t, bad.Validate())

	bad = *good
	bad.Targets = []int32{1, NoTarget} // palette index out of range
	assert.Error(t, bad.Validate())

	bad = *good
	bad.Palette = []PaletteEntry{{TotalTargets: 2}} // totals drifted
	assert.Error(t, bad.Validate())
}
