// Package progress tracks per-cell completion state and aggregate palette
// counters for one pattern.
package progress

import (
	"fmt"

	"stitch-tracker/internal/pattern"
	"stitch-tracker/pkg/grid"
)

// StitchState is the completion state of a single cell.
type StitchState uint8

const (
	// StateNone means nothing has been placed at the cell.
	StateNone StitchState = iota
	// StateCorrect means the placed colour matches the cell's target.
	StateCorrect
	// StateWrong means a colour was placed that does not match the target.
	StateWrong
)

func (s StitchState) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateCorrect:
		return "correct"
	case StateWrong:
		return "wrong"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// PaletteCount aggregates per-colour progress.
type PaletteCount struct {
	// Remaining is the number of targets of this colour not yet correctly
	// filled. Remaining + Correct always equals the palette entry's
	// TotalTargets.
	Remaining int `json:"remaining"`
	Correct   int `json:"correct"`
	Wrong     int `json:"wrong"`
}

// Progress is the mutable completion state for one pattern. It is mutated
// exclusively through the engine package.
type Progress struct {
	PatternID string
	Width     int
	Height    int

	// States has one entry per cell, row-major.
	States []StitchState

	// Placed is the palette index the user actually placed at each cell, or
	// pattern.NoTarget where States is StateNone.
	Placed []int32

	// Counts has one record per palette entry. Nil until bound to a pattern
	// (see RecomputeCounts).
	Counts []PaletteCount

	// Legacy is set when the progress was restored from a v1 snapshot and
	// still needs MigrateV1 against its pattern.
	Legacy bool
}

// New creates a fresh, fully unstitched progress for the pattern.
func New(pat *pattern.Pattern) *Progress {
	n := pat.CellCount()
	p := &Progress{
		PatternID: pat.ID,
		Width:     pat.Width,
		Height:    pat.Height,
		States:    make([]StitchState, n),
		Placed:    make([]int32, n),
		Counts:    make([]PaletteCount, len(pat.Palette)),
	}
	for i := range p.Placed {
		p.Placed[i] = pattern.NoTarget
	}
	for i, e := range pat.Palette {
		p.Counts[i].Remaining = e.TotalTargets
	}
	return p
}

// CellCount returns Width*Height.
func (p *Progress) CellCount() int {
	return p.Width * p.Height
}

// StateAt returns the state of (col, row), or StateNone when out of bounds.
func (p *Progress) StateAt(col, row int) StitchState {
	if !grid.InBounds(col, row, p.Width, p.Height) {
		return StateNone
	}
	return p.States[grid.Index(col, row, p.Width)]
}

// TotalWrong returns the sum of wrong placements over all colours.
func (p *Progress) TotalWrong() int {
	total := 0
	for _, c := range p.Counts {
		total += c.Wrong
	}
	return total
}

// Complete reports whether every colour has zero remaining targets.
func (p *Progress) Complete() bool {
	if p.Counts == nil {
		return false
	}
	for _, c := range p.Counts {
		if c.Remaining > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, used to hand a stable snapshot to the
// fire-and-forget persistence path.
func (p *Progress) Clone() *Progress {
	cp := &Progress{
		PatternID: p.PatternID,
		Width:     p.Width,
		Height:    p.Height,
		States:    append([]StitchState(nil), p.States...),
		Placed:    append([]int32(nil), p.Placed...),
		Legacy:    p.Legacy,
	}
	if p.Counts != nil {
		cp.Counts = append([]PaletteCount(nil), p.Counts...)
	}
	return cp
}

// RecomputeCounts rebuilds the per-colour counters by scanning the cells
// against the pattern's targets. The progress shape must match the pattern.
func (p *Progress) RecomputeCounts(pat *pattern.Pattern) error {
	if p.CellCount() != pat.CellCount() || len(p.States) != pat.CellCount() {
		return fmt.Errorf("progress %s: shape %dx%d does not match pattern %s (%dx%d)",
			p.PatternID, p.Width, p.Height, pat.ID, pat.Width, pat.Height)
	}

	p.Counts = make([]PaletteCount, len(pat.Palette))
	for i, e := range pat.Palette {
		p.Counts[i].Remaining = e.TotalTargets
	}
	for i, st := range p.States {
		switch st {
		case StateCorrect:
			t := pat.Targets[i]
			if t != pattern.NoTarget && int(t) < len(p.Counts) {
				p.Counts[t].Correct++
				p.Counts[t].Remaining--
			}
		case StateWrong:
			placed := p.Placed[i]
			if placed != pattern.NoTarget && int(placed) < len(p.Counts) {
				p.Counts[placed].Wrong++
			}
		}
	}
	return nil
}
