// Package engine is the mutation surface over a pattern/progress pair:
// placing stitches, removing mis-placed ones, and flood-filling connected
// regions, while keeping the unstitched index and palette counters
// consistent.
//
// Every operation is a total function over invalid input: out-of-range
// coordinates, cells in the wrong state, or a missing colour selection are
// silent no-ops. The engine is routinely driven by pointer events that
// cannot pre-validate every coordinate, so no-op is the contract, not an
// oversight.
package engine

import (
	"stitch-tracker/internal/index"
	"stitch-tracker/internal/pattern"
	"stitch-tracker/internal/progress"
	"stitch-tracker/pkg/grid"
)

// NoSelection is the selected-colour value meaning no colour is active.
const NoSelection = -1

// Saver receives the progress after every mutation. Saves are
// fire-and-forget: the mutation returns before the write is confirmed.
type Saver interface {
	SaveAsync(p *progress.Progress)
}

// Engine applies stitch mutations. Single-threaded by contract; all calls
// must come from one logical thread.
type Engine struct {
	pat   *pattern.Pattern
	prog  *progress.Progress
	idx   *index.Index
	saver Saver

	complete bool
}

// PlaceResult reports the outcome of a single placement.
type PlaceResult struct {
	Placed  bool
	Correct bool

	// JustCompleted fires only on the transition from incomplete to
	// complete, never on an already-complete pattern.
	JustCompleted bool
}

// FillResult reports the outcome of a flood fill.
type FillResult struct {
	Cells         int
	JustCompleted bool
}

// New creates an engine over an already-reconciled progress and its index.
// saver may be nil.
func New(pat *pattern.Pattern, prog *progress.Progress, idx *index.Index, saver Saver) *Engine {
	return &Engine{
		pat:      pat,
		prog:     prog,
		idx:      idx,
		saver:    saver,
		complete: prog.Complete(),
	}
}

// Progress returns the progress the engine mutates.
func (e *Engine) Progress() *progress.Progress {
	return e.prog
}

// Complete reports whether every colour has zero remaining targets.
func (e *Engine) Complete() bool {
	return e.complete
}

// PlaceStitch places the selected colour at (col, row). No-op when the cell
// is out of bounds, not in state None, has no target, or no colour is
// selected. A correct placement completes the cell's target; an incorrect
// one records the wrong colour for later removal and leaves the target's
// incompleteness untouched.
func (e *Engine) PlaceStitch(col, row, selected int) PlaceResult {
	if !grid.InBounds(col, row, e.prog.Width, e.prog.Height) {
		return PlaceResult{}
	}
	cell := grid.Index(col, row, e.prog.Width)
	if e.prog.States[cell] != progress.StateNone {
		return PlaceResult{}
	}
	target := e.pat.Targets[cell]
	if target == pattern.NoTarget {
		return PlaceResult{}
	}
	if selected < 0 || selected >= len(e.prog.Counts) {
		return PlaceResult{}
	}

	if int32(selected) == target {
		e.prog.States[cell] = progress.StateCorrect
		e.prog.Placed[cell] = int32(selected)
		e.prog.Counts[selected].Remaining--
		e.prog.Counts[selected].Correct++
		e.idx.MarkComplete(cell)

		just := e.refreshCompletion()
		e.persist()
		return PlaceResult{Placed: true, Correct: true, JustCompleted: just}
	}

	e.prog.States[cell] = progress.StateWrong
	e.prog.Placed[cell] = int32(selected)
	e.prog.Counts[selected].Wrong++
	e.persist()
	return PlaceResult{Placed: true}
}

// RemoveWrongStitch undoes a wrong placement at (col, row), returning the
// cell to None so it can be re-placed. No-op unless the cell's state is
// exactly Wrong. The wrong count decremented belongs to the colour that was
// actually placed, not the cell's target.
func (e *Engine) RemoveWrongStitch(col, row int) bool {
	if !grid.InBounds(col, row, e.prog.Width, e.prog.Height) {
		return false
	}
	cell := grid.Index(col, row, e.prog.Width)
	if e.prog.States[cell] != progress.StateWrong {
		return false
	}

	placed := e.prog.Placed[cell]
	e.prog.States[cell] = progress.StateNone
	e.prog.Placed[cell] = pattern.NoTarget
	if placed >= 0 && int(placed) < len(e.prog.Counts) && e.prog.Counts[placed].Wrong > 0 {
		e.prog.Counts[placed].Wrong--
	}

	e.persist()
	return true
}

// FloodFillStitch places the selected colour over the whole 4-connected
// region of unstitched cells sharing the seed's target colour. The seed must
// pass the same validation as PlaceStitch and additionally target the
// selected colour, so every visited cell is necessarily a correct placement.
// Already-Wrong cells on the same target stay out of the fill for manual
// correction.
func (e *Engine) FloodFillStitch(col, row, selected int) FillResult {
	if !grid.InBounds(col, row, e.prog.Width, e.prog.Height) {
		return FillResult{}
	}
	seed := grid.Index(col, row, e.prog.Width)
	if e.prog.States[seed] != progress.StateNone {
		return FillResult{}
	}
	if selected < 0 || selected >= len(e.prog.Counts) {
		return FillResult{}
	}
	if e.pat.Targets[seed] != int32(selected) {
		return FillResult{}
	}

	w, h := e.prog.Width, e.prog.Height
	visited := make(map[int]bool, 64)
	visited[seed] = true
	queue := []int{seed}
	var cells []int

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		cells = append(cells, cur)

		cc := cur % w
		cr := cur / w
		for _, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
			nc, nr := cc+d[0], cr+d[1]
			if !grid.InBounds(nc, nr, w, h) {
				continue
			}
			next := grid.Index(nc, nr, w)
			if visited[next] {
				continue
			}
			if e.pat.Targets[next] != int32(selected) {
				continue
			}
			if e.prog.States[next] != progress.StateNone {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	if len(cells) == 0 {
		return FillResult{}
	}

	for _, cell := range cells {
		e.prog.States[cell] = progress.StateCorrect
		e.prog.Placed[cell] = int32(selected)
	}
	e.prog.Counts[selected].Remaining -= len(cells)
	e.prog.Counts[selected].Correct += len(cells)
	e.idx.MarkCompleteBatch(cells)

	just := e.refreshCompletion()
	e.persist()
	return FillResult{Cells: len(cells), JustCompleted: just}
}

// StateAt returns the stitch state at (col, row); None when out of bounds.
func (e *Engine) StateAt(col, row int) progress.StitchState {
	return e.prog.StateAt(col, row)
}

// TargetAt returns the target colour at (col, row), or pattern.NoTarget.
func (e *Engine) TargetAt(col, row int) int32 {
	return e.pat.TargetAt(col, row)
}

// FindNearestIncomplete returns the incomplete cell of the colour nearest to
// (fromCol, fromRow).
func (e *Engine) FindNearestIncomplete(color, fromCol, fromRow int) (grid.Coord, bool) {
	return e.idx.FindNearest(color, fromCol, fromRow)
}

// IncompleteCount returns the colour's incomplete target count.
func (e *Engine) IncompleteCount(color int) int {
	return e.idx.IncompleteCount(color)
}

// TotalWrongCount returns the wrong placements summed over all colours.
func (e *Engine) TotalWrongCount() int {
	return e.prog.TotalWrong()
}

// refreshCompletion recomputes overall completion after a correct placement
// and reports the one-shot incomplete→complete transition.
func (e *Engine) refreshCompletion() bool {
	now := e.prog.Complete()
	just := now && !e.complete
	e.complete = now
	return just
}

func (e *Engine) persist() {
	if e.saver != nil {
		e.saver.SaveAsync(e.prog)
	}
}
