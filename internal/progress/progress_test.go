package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitch-tracker/internal/pattern"
)

func testPattern(t *testing.T) *pattern.Pattern {
	t.Helper()
	pat := &pattern.Pattern{
		ID:      "p1",
		Width:   2,
		Height:  2,
		Palette: []pattern.PaletteEntry{{Name: "a"}, {Name: "b"}},
		Targets: []int32{0, 0, 1, pattern.NoTarget},
	}
	pat.RecountTargets()
	require.NoError(t, pat.Validate())
	return pat
}

func TestNew(t *testing.T) {
	pat := testPattern(t)
	p := New(pat)

	assert.Equal(t, "p1", p.PatternID)
	assert.Len(t, p.States, 4)
	for _, placed := range p.Placed {
		assert.Equal(t, pattern.NoTarget, placed)
	}
	assert.Equal(t, 2, p.Counts[0].Remaining)
	assert.Equal(t, 1, p.Counts[1].Remaining)
	assert.False(t, p.Complete())
}

func TestStateAt(t *testing.T) {
	p := New(testPattern(t))
	p.States[2] = StateWrong

	assert.Equal(t, StateWrong, p.StateAt(0, 1))
	assert.Equal(t, StateNone, p.StateAt(1, 1))
	assert.Equal(t, StateNone, p.StateAt(-1, 0))
	assert.Equal(t, StateNone, p.StateAt(0, 5))
}

func TestComplete(t *testing.T) {
	p := New(testPattern(t))
	assert.False(t, p.Complete())

	p.Counts[0].Remaining = 0
	assert.False(t, p.Complete())
	p.Counts[1].Remaining = 0
	assert.True(t, p.Complete())

	// Unbound progress is never complete.
	unbound := &Progress{Width: 1, Height: 1, States: make([]StitchState, 1), Placed: []int32{-1}}
	assert.False(t, unbound.Complete())
}

func TestCloneIsDeep(t *testing.T) {
	p := New(testPattern(t))
	p.States[0] = StateCorrect
	p.Placed[0] = 0
	p.Legacy = true

	cp := p.Clone()
	assert.Equal(t, p, cp)

	cp.States[0] = StateWrong
	cp.Placed[0] = 1
	cp.Counts[0].Wrong = 7
	assert.Equal(t, StateCorrect, p.States[0])
	assert.Equal(t, int32(0), p.Placed[0])
	assert.Equal(t, 0, p.Counts[0].Wrong)
}

func TestRecomputeCounts(t *testing.T) {
	pat := testPattern(t)
	p := New(pat)
	p.States[0] = StateCorrect
	p.Placed[0] = 0
	p.States[1] = StateWrong
	p.Placed[1] = 1
	p.Counts = nil

	require.NoError(t, p.RecomputeCounts(pat))
	assert.Equal(t, PaletteCount{Remaining: 1, Correct: 1}, p.Counts[0])
	assert.Equal(t, PaletteCount{Remaining: 1, Wrong: 1}, p.Counts[1])
	assert.Equal(t, 1, p.TotalWrong())
}

func TestRecomputeCountsShapeMismatch(t *testing.T) {
	pat := testPattern(t)
	p := New(pat)
	p.Width = 3
	assert.Error(t, p.RecomputeCounts(pat))
}

func TestStitchStateString(t *testing.T) {
	assert.Equal(t, "none", StateNone.String())
	assert.Equal(t, "correct", StateCorrect.String())
	assert.Equal(t, "wrong", StateWrong.String())
	assert.Equal(t, "state(9)", StitchState(9).String())
}
