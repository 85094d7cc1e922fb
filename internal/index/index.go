// Package index maintains a spatial index over the incomplete target cells
// of a pattern, so "nearest incomplete cell of colour C" queries never
// rescan the grid. The index is rebuilt from scratch when a pattern/progress
// pair is loaded and updated incrementally afterwards; steady-state marks
// are O(1) and queries are bounded by tile ring contents.
package index

import (
	"math"

	"stitch-tracker/internal/pattern"
	"stitch-tracker/internal/progress"
	"stitch-tracker/pkg/grid"
)

// TileSize is the edge length, in cells, of the square tiles used for the
// spatial buckets.
const TileSize = 32

// Index answers per-colour incomplete counts and nearest-incomplete-cell
// queries. Mark operations take only a cell index; the affected colour is
// derived from the pattern's target map, so a mark can never be applied
// under the wrong colour.
type Index struct {
	width, height int
	tilesPerRow   int

	// colorOf is the target colour per cell, pattern.NoTarget where none.
	colorOf []int32

	colors []colorIndex

	// slot[cell] is the cell's position within its colour's cell array, or
	// -1 for untargeted cells.
	slot []int32

	// bucketSlot[cell] is the cell's position within its tile bucket while
	// incomplete, -1 once complete.
	bucketSlot []int32

	// prog is consulted during queries so a nearest hit is always a cell
	// still in state None.
	prog *progress.Progress
}

// colorIndex holds the cells targeting one colour. cells[0:incomplete] is
// the incomplete partition; marking swaps cells across the boundary.
type colorIndex struct {
	cells      []int32
	incomplete int
	buckets    map[int32][]int32
}

// Build constructs the index for a pattern/progress pair. Cells whose state
// is not None at build time are excluded from the incomplete buckets.
func Build(pat *pattern.Pattern, prog *progress.Progress) *Index {
	w, h := pat.Width, pat.Height
	n := w * h

	idx := &Index{
		width:       w,
		height:      h,
		tilesPerRow: (w + TileSize - 1) / TileSize,
		colorOf:     append([]int32(nil), pat.Targets...),
		colors:      make([]colorIndex, len(pat.Palette)),
		slot:        make([]int32, n),
		bucketSlot:  make([]int32, n),
		prog:        prog,
	}

	// Recount targets per colour defensively rather than trusting the
	// palette totals.
	counts := make([]int, len(pat.Palette))
	for _, t := range pat.Targets {
		if t != pattern.NoTarget && int(t) < len(counts) {
			counts[t]++
		}
	}
	for c := range idx.colors {
		idx.colors[c].cells = make([]int32, 0, counts[c])
		idx.colors[c].buckets = make(map[int32][]int32)
	}

	for i := range idx.slot {
		idx.slot[i] = -1
		idx.bucketSlot[i] = -1
	}

	// Single grid scan: every targeted cell joins its colour's cell array
	// and tile bucket; the whole array starts as the incomplete partition.
	for cell := 0; cell < n; cell++ {
		t := idx.colorOf[cell]
		if t == pattern.NoTarget || int(t) >= len(idx.colors) {
			continue
		}
		ci := &idx.colors[t]
		idx.slot[cell] = int32(len(ci.cells))
		ci.cells = append(ci.cells, int32(cell))

		tile := idx.tileOf(cell)
		idx.bucketSlot[cell] = int32(len(ci.buckets[tile]))
		ci.buckets[tile] = append(ci.buckets[tile], int32(cell))
	}
	for c := range idx.colors {
		idx.colors[c].incomplete = len(idx.colors[c].cells)
	}

	// Cells already stitched (Correct or Wrong) leave the incomplete set.
	for cell := 0; cell < n; cell++ {
		if prog.States[cell] != progress.StateNone {
			idx.MarkComplete(cell)
		}
	}

	return idx
}

func (idx *Index) tileOf(cell int) int32 {
	col := cell % idx.width
	row := cell / idx.width
	return int32((row/TileSize)*idx.tilesPerRow + col/TileSize)
}

// IncompleteCount returns the number of incomplete cells targeting the
// colour, or 0 for an out-of-range colour index.
func (idx *Index) IncompleteCount(color int) int {
	if color < 0 || color >= len(idx.colors) {
		return 0
	}
	return idx.colors[color].incomplete
}

// MarkComplete removes the cell from its colour's incomplete set. No-op for
// untargeted, out-of-range, or already-complete cells.
func (idx *Index) MarkComplete(cell int) {
	if cell < 0 || cell >= len(idx.colorOf) {
		return
	}
	color := idx.colorOf[cell]
	if color == pattern.NoTarget || int(color) >= len(idx.colors) {
		return
	}
	ci := &idx.colors[color]

	pos := idx.slot[cell]
	if int(pos) >= ci.incomplete {
		return // already complete
	}

	// Swap the cell to the end of the incomplete partition.
	last := int32(ci.incomplete - 1)
	moved := ci.cells[last]
	ci.cells[pos], ci.cells[last] = moved, ci.cells[pos]
	idx.slot[moved] = pos
	idx.slot[cell] = last
	ci.incomplete--

	// Swap-remove from the tile bucket.
	tile := idx.tileOf(cell)
	bucket := ci.buckets[tile]
	bpos := idx.bucketSlot[cell]
	lastB := int32(len(bucket) - 1)
	movedB := bucket[lastB]
	bucket[bpos] = movedB
	idx.bucketSlot[movedB] = bpos
	ci.buckets[tile] = bucket[:lastB]
	idx.bucketSlot[cell] = -1
}

// MarkIncomplete returns a previously completed cell to its colour's
// incomplete set, used when a correct placement is undone. No-op for
// untargeted cells or cells already incomplete.
func (idx *Index) MarkIncomplete(cell int) {
	if cell < 0 || cell >= len(idx.colorOf) {
		return
	}
	color := idx.colorOf[cell]
	if color == pattern.NoTarget || int(color) >= len(idx.colors) {
		return
	}
	ci := &idx.colors[color]

	pos := idx.slot[cell]
	if int(pos) < ci.incomplete {
		return // already incomplete
	}

	// Swap the cell back across the partition boundary.
	first := int32(ci.incomplete)
	moved := ci.cells[first]
	ci.cells[pos], ci.cells[first] = moved, ci.cells[pos]
	idx.slot[moved] = pos
	idx.slot[cell] = first
	ci.incomplete++

	tile := idx.tileOf(cell)
	idx.bucketSlot[cell] = int32(len(ci.buckets[tile]))
	ci.buckets[tile] = append(ci.buckets[tile], int32(cell))
}

// MarkCompleteBatch marks many cells complete in one pass; used by flood
// fill. Tolerates an empty input.
func (idx *Index) MarkCompleteBatch(cells []int) {
	for _, cell := range cells {
		idx.MarkComplete(cell)
	}
}

// FindNearest returns the incomplete cell targeting the colour nearest to
// the query point, searching outward over tile rings. Ties between
// equal-distance cells go to whichever is scanned first; callers must not
// rely on which one that is.
func (idx *Index) FindNearest(color, queryCol, queryRow int) (grid.Coord, bool) {
	if color < 0 || color >= len(idx.colors) {
		return grid.Coord{}, false
	}
	ci := &idx.colors[color]
	if ci.incomplete == 0 {
		return grid.Coord{}, false
	}
	if ci.incomplete == 1 {
		cell := int(ci.cells[0])
		if idx.prog.States[cell] != progress.StateNone {
			return grid.Coord{}, false
		}
		return grid.FromIndex(cell, idx.width), true
	}

	tilesPerCol := (idx.height + TileSize - 1) / TileSize
	qc := grid.Clamp(queryCol, 0, idx.width-1)
	qr := grid.Clamp(queryRow, 0, idx.height-1)
	tileCol := qc / TileSize
	tileRow := qr / TileSize

	bestCell := -1
	bestD2 := math.MaxInt

	scanTile := func(tc, tr int) {
		if tc < 0 || tc >= idx.tilesPerRow || tr < 0 || tr >= tilesPerCol {
			return
		}
		for _, cell := range ci.buckets[int32(tr*idx.tilesPerRow+tc)] {
			if idx.prog.States[cell] != progress.StateNone {
				continue
			}
			c := grid.FromIndex(int(cell), idx.width)
			d2 := grid.DistSq(c.Col, c.Row, queryCol, queryRow)
			if d2 < bestD2 {
				bestD2 = d2
				bestCell = int(cell)
			}
		}
	}

	maxRing := idx.tilesPerRow
	if tilesPerCol > maxRing {
		maxRing = tilesPerCol
	}

	for ring := 0; ring <= maxRing; ring++ {
		// A ring at Chebyshev tile distance r cannot hold anything closer
		// than (r-1)*TileSize once a candidate exists.
		if bestCell >= 0 {
			minDist := (ring - 1) * TileSize
			if minDist > 0 && minDist*minDist > bestD2 {
				break
			}
		}

		if ring == 0 {
			scanTile(tileCol, tileRow)
			continue
		}
		// Perimeter tiles only: top and bottom rows of the ring, then the
		// left and right columns between them.
		for tc := tileCol - ring; tc <= tileCol+ring; tc++ {
			scanTile(tc, tileRow-ring)
			scanTile(tc, tileRow+ring)
		}
		for tr := tileRow - ring + 1; tr <= tileRow+ring-1; tr++ {
			scanTile(tileCol-ring, tr)
			scanTile(tileCol+ring, tr)
		}
	}

	if bestCell < 0 {
		return grid.Coord{}, false
	}
	return grid.FromIndex(bestCell, idx.width), true
}
