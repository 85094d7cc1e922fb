// Package pattern defines the immutable chart description: grid dimensions,
// the thread palette, and the target colour prescribed for every cell.
package pattern

import (
	"fmt"

	"stitch-tracker/pkg/grid"
)

// NoTarget marks a cell with no prescribed colour (bare cloth / background).
const NoTarget int32 = -1

// PaletteEntry is one thread colour in a chart's palette. The entry's index
// within Pattern.Palette is the stable identity of the colour for the whole
// session.
type PaletteEntry struct {
	Code   string `json:"code,omitempty"` // thread code, e.g. DMC "310"
	Name   string `json:"name"`
	Hex    string `json:"hex"`
	Symbol string `json:"symbol,omitempty"`

	// TotalTargets is the number of cells whose target is this entry.
	TotalTargets int `json:"total_targets"`
}

// Pattern is an immutable chart: for every cell, which palette entry (if any)
// is the correct colour. Created once by a loader and owned by the session
// for its lifetime.
type Pattern struct {
	ID     string
	Title  string
	Width  int
	Height int

	Palette []PaletteEntry

	// Targets has one entry per cell (row-major), either a palette index or
	// NoTarget.
	Targets []int32
}

// CellCount returns Width*Height.
func (p *Pattern) CellCount() int {
	return p.Width * p.Height
}

// TargetAt returns the palette index targeted by (col, row), or NoTarget for
// untargeted or out-of-bounds cells.
func (p *Pattern) TargetAt(col, row int) int32 {
	if !grid.InBounds(col, row, p.Width, p.Height) {
		return NoTarget
	}
	return p.Targets[grid.Index(col, row, p.Width)]
}

// RecountTargets recomputes every palette entry's TotalTargets from the
// target map. Loaders call this so the totals never drift from the cells.
func (p *Pattern) RecountTargets() {
	for i := range p.Palette {
		p.Palette[i].TotalTargets = 0
	}
	for _, t := range p.Targets {
		if t != NoTarget && int(t) < len(p.Palette) {
			p.Palette[t].TotalTargets++
		}
	}
}

// Validate checks the structural invariants of the pattern: positive
// dimensions, a target entry per cell, every target a valid palette index,
// and palette totals consistent with the target map.
func (p *Pattern) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("pattern %s: invalid dimensions %dx%d", p.ID, p.Width, p.Height)
	}
	if len(p.Targets) != p.CellCount() {
		return fmt.Errorf("pattern %s: %d targets for %d cells", p.ID, len(p.Targets), p.CellCount())
	}

	targeted := 0
	for i, t := range p.Targets {
		if t == NoTarget {
			continue
		}
		if t < 0 || int(t) >= len(p.Palette) {
			return fmt.Errorf("pattern %s: cell %d targets palette index %d (palette size %d)",
				p.ID, i, t, len(p.Palette))
		}
		targeted++
	}

	total := 0
	for _, e := range p.Palette {
		total += e.TotalTargets
	}
	if total != targeted {
		return fmt.Errorf("pattern %s: palette totals %d but %d targeted cells", p.ID, total, targeted)
	}
	return nil
}
