package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stitch-tracker/internal/index"
	"stitch-tracker/internal/pattern"
	"stitch-tracker/internal/progress"
	"stitch-tracker/pkg/grid"
)

// threeByThree builds a 3×3 pattern: row 0 targets colour 0, row 1 colour 1,
// row 2 colour 2.
func threeByThree(t *testing.T) *pattern.Pattern {
	t.Helper()
	pat := &pattern.Pattern{
		ID:      "3x3",
		Width:   3,
		Height:  3,
		Palette: make([]pattern.PaletteEntry, 3),
		Targets: []int32{0, 0, 0, 1, 1, 1, 2, 2, 2},
	}
	pat.RecountTargets()
	require.NoError(t, pat.Validate())
	return pat
}

func newEngine(t *testing.T, pat *pattern.Pattern) *Engine {
	t.Helper()
	prog := progress.New(pat)
	idx := index.Build(pat, prog)
	return New(pat, prog, idx, nil)
}

type recordingSaver struct {
	saves []*progress.Progress
}

func (r *recordingSaver) SaveAsync(p *progress.Progress) {
	r.saves = append(r.saves, p)
}

func TestPlaceStitchCorrect(t *testing.T) {
	pat := threeByThree(t)
	e := newEngine(t, pat)

	for col := 0; col < 3; col++ {
		res := e.PlaceStitch(col, 0, 0)
		assert.True(t, res.Placed)
		assert.True(t, res.Correct)
		assert.False(t, res.JustCompleted)
	}

	p := e.Progress()
	assert.Equal(t, 3, p.Counts[0].Correct)
	assert.Equal(t, 0, p.Counts[0].Remaining)
	assert.Equal(t, 0, p.Counts[0].Wrong)
	assert.Equal(t, 0, e.IncompleteCount(0))
	assert.Equal(t, progress.StateCorrect, e.StateAt(1, 0))
}

func TestPlaceStitchWrong(t *testing.T) {
	pat := threeByThree(t)
	e := newEngine(t, pat)

	// Colour 1 placed on row 0, which targets colour 0.
	for col := 0; col < 3; col++ {
		res := e.PlaceStitch(col, 0, 1)
		assert.True(t, res.Placed)
		assert.False(t, res.Correct)
	}

	p := e.Progress()
	assert.Equal(t, 3, p.Counts[1].Wrong)
	assert.Equal(t, 0, p.Counts[0].Wrong)
	assert.Equal(t, 0, p.Counts[0].Correct)
	// Wrong placements do not complete targets.
	assert.Equal(t, 3, p.Counts[0].Remaining)
	assert.Equal(t, 3, e.IncompleteCount(0))
	assert.Equal(t, 3, e.TotalWrongCount())
	assert.Equal(t, progress.StateWrong, e.StateAt(0, 0))
}

func TestPlaceStitchNoOps(t *testing.T) {
	pat := threeByThree(t)
	e := newEngine(t, pat)

	assert.Equal(t, PlaceResult{}, e.PlaceStitch(-1, 0, 0))
	assert.Equal(t, PlaceResult{}, e.PlaceStitch(3, 0, 0))
	assert.Equal(t, PlaceResult{}, e.PlaceStitch(0, 3, 0))
	assert.Equal(t, PlaceResult{}, e.PlaceStitch(0, 0, NoSelection))
	assert.Equal(t, PlaceResult{}, e.PlaceStitch(0, 0, 3))

	// Already-stitched cells are left alone.
	require.True(t, e.PlaceStitch(0, 0, 0).Placed)
	assert.Equal(t, PlaceResult{}, e.PlaceStitch(0, 0, 0))
	assert.Equal(t, PlaceResult{}, e.PlaceStitch(0, 0, 1))

	require.True(t, e.PlaceStitch(1, 0, 2).Placed) // wrong
	assert.Equal(t, PlaceResult{}, e.PlaceStitch(1, 0, 0))

	p := e.Progress()
	assert.Equal(t, 1, p.Counts[0].Correct)
	assert.Equal(t, 1, p.Counts[2].Wrong)
}

func TestPlaceStitchUntargetedCell(t *testing.T) {
	pat := &pattern.Pattern{
		ID:      "hole",
		Width:   2,
		Height:  1,
		Palette: make([]pattern.PaletteEntry, 1),
		Targets: []int32{0, pattern.NoTarget},
	}
	pat.RecountTargets()
	require.NoError(t, pat.Validate())
	e := newEngine(t, pat)

	assert.Equal(t, PlaceResult{}, e.PlaceStitch(1, 0, 0))
	assert.Equal(t, progress.StateNone, e.StateAt(1, 0))
}

func TestRemoveWrongStitch(t *testing.T) {
	pat := threeByThree(t)
	e := newEngine(t, pat)

	// Place colour 2 wrongly on (0,0), then undo and re-place correctly.
	require.True(t, e.PlaceStitch(0, 0, 2).Placed)
	assert.Equal(t, 1, e.Progress().Counts[2].Wrong)

	assert.True(t, e.RemoveWrongStitch(0, 0))
	assert.Equal(t, progress.StateNone, e.StateAt(0, 0))
	assert.Equal(t, 0, e.Progress().Counts[2].Wrong)

	res := e.PlaceStitch(0, 0, 0)
	assert.True(t, res.Correct)
	assert.Equal(t, 1, e.Progress().Counts[0].Correct)
}

func TestRemoveWrongStitchNoOps(t *testing.T) {
	pat := threeByThree(t)
	e := newEngine(t, pat)

	assert.False(t, e.RemoveWrongStitch(0, 0)) // state None
	assert.False(t, e.RemoveWrongStitch(-1, 0))
	assert.False(t, e.RemoveWrongStitch(0, 9))

	require.True(t, e.PlaceStitch(0, 0, 0).Correct)
	assert.False(t, e.RemoveWrongStitch(0, 0)) // correct stitches stay
	assert.Equal(t, progress.StateCorrect, e.StateAt(0, 0))
}

func TestFloodFillStitch(t *testing.T) {
	pat := threeByThree(t)
	e := newEngine(t, pat)

	res := e.FloodFillStitch(1, 1, 1)
	assert.Equal(t, 3, res.Cells)
	assert.False(t, res.JustCompleted)

	p := e.Progress()
	assert.Equal(t, 3, p.Counts[1].Correct)
	assert.Equal(t, 0, p.Counts[1].Remaining)
	assert.Equal(t, 0, e.IncompleteCount(1))
	for col := 0; col < 3; col++ {
		assert.Equal(t, progress.StateCorrect, e.StateAt(col, 1))
	}
	// Other rows untouched.
	assert.Equal(t, 3, e.IncompleteCount(0))
	assert.Equal(t, 3, e.IncompleteCount(2))
}

func TestFloodFillSkipsWrongCells(t *testing.T) {
	pat := threeByThree(t)
	e := newEngine(t, pat)

	// A wrong stitch in the middle of row 1 splits the region.
	require.True(t, e.PlaceStitch(1, 1, 0).Placed)

	res := e.FloodFillStitch(0, 1, 1)
	assert.Equal(t, 1, res.Cells)
	assert.Equal(t, progress.StateCorrect, e.StateAt(0, 1))
	assert.Equal(t, progress.StateWrong, e.StateAt(1, 1))
	assert.Equal(t, progress.StateNone, e.StateAt(2, 1))
}

func TestFloodFillSeedValidation(t *testing.T) {
	pat := threeByThree(t)
	e := newEngine(t, pat)

	assert.Equal(t, FillResult{}, e.FloodFillStitch(-1, 1, 1))
	assert.Equal(t, FillResult{}, e.FloodFillStitch(0, 1, NoSelection))
	assert.Equal(t, FillResult{}, e.FloodFillStitch(0, 1, 3))
	// Seed target must match the selected colour.
	assert.Equal(t, FillResult{}, e.FloodFillStitch(0, 1, 2))
	// Seed must be unstitched.
	require.True(t, e.PlaceStitch(0, 1, 1).Placed)
	assert.Equal(t, FillResult{}, e.FloodFillStitch(0, 1, 1))
}

func TestFloodFillConnectivity(t *testing.T) {
	// Two colour-0 regions separated by a colour-1 column:
	// 0 1 0
	// 0 1 0
	pat := &pattern.Pattern{
		ID:      "split",
		Width:   3,
		Height:  2,
		Palette: make([]pattern.PaletteEntry, 2),
		Targets: []int32{0, 1, 0, 0, 1, 0},
	}
	pat.RecountTargets()
	require.NoError(t, pat.Validate())
	e := newEngine(t, pat)

	res := e.FloodFillStitch(0, 0, 0)
	assert.Equal(t, 2, res.Cells)
	assert.Equal(t, progress.StateNone, e.StateAt(2, 0))
	assert.Equal(t, progress.StateNone, e.StateAt(2, 1))
	assert.Equal(t, 2, e.IncompleteCount(0))
}

func TestCompletionFiresOnce(t *testing.T) {
	pat := threeByThree(t)
	e := newEngine(t, pat)

	assert.False(t, e.Complete())

	e.FloodFillStitch(0, 0, 0)
	e.FloodFillStitch(0, 1, 1)

	// Final colour completes the pattern; exactly one transition reported.
	var fired int
	for col := 0; col < 3; col++ {
		if e.PlaceStitch(col, 2, 2).JustCompleted {
			fired++
		}
	}
	assert.Equal(t, 1, fired)
	assert.True(t, e.Complete())

	// Nothing left fires on a complete pattern.
	assert.Equal(t, PlaceResult{}, e.PlaceStitch(0, 0, 0))
}

func TestScoreBookkeeping(t *testing.T) {
	pat := threeByThree(t)
	e := newEngine(t, pat)

	// 3 correct on row 0, 2 wrong on row 1.
	for col := 0; col < 3; col++ {
		require.True(t, e.PlaceStitch(col, 0, 0).Correct)
	}
	require.True(t, e.PlaceStitch(0, 1, 0).Placed)
	require.True(t, e.PlaceStitch(1, 1, 2).Placed)

	p := e.Progress()
	correct, wrong := 0, 0
	for _, c := range p.Counts {
		correct += c.Correct
		wrong += c.Wrong
	}
	assert.Equal(t, 3, correct)
	assert.Equal(t, 2, wrong)
	assert.Equal(t, 1, p.Counts[0].Wrong)
	assert.Equal(t, 1, p.Counts[2].Wrong)
}

func TestSaverCalledPerMutation(t *testing.T) {
	pat := threeByThree(t)
	prog := progress.New(pat)
	idx := index.Build(pat, prog)
	saver := &recordingSaver{}
	e := New(pat, prog, idx, saver)

	e.PlaceStitch(0, 0, 0) // correct
	e.PlaceStitch(1, 0, 1) // wrong
	e.RemoveWrongStitch(1, 0)
	e.FloodFillStitch(0, 1, 1)
	e.PlaceStitch(-1, 0, 0) // no-op, no save

	assert.Len(t, saver.saves, 4)
}

func TestFindNearestIncompleteDelegates(t *testing.T) {
	pat := threeByThree(t)
	e := newEngine(t, pat)

	c, ok := e.FindNearestIncomplete(2, 0, 0)
	require.True(t, ok)
	assert.Equal(t, grid.Coord{Col: 0, Row: 2}, c)

	_, ok = e.FindNearestIncomplete(5, 0, 0)
	assert.False(t, ok)
}
