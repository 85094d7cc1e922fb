// Package grid provides integer grid coordinate and cell index math used
// throughout the application.
package grid

// Coord is a cell position in chart columns and rows.
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Index returns the flat cell index for (col, row) on a grid width cells wide.
func Index(col, row, width int) int {
	return row*width + col
}

// FromIndex converts a flat cell index back to a coordinate.
func FromIndex(idx, width int) Coord {
	return Coord{Col: idx % width, Row: idx / width}
}

// InBounds reports whether (col, row) lies on a width×height grid.
func InBounds(col, row, width, height int) bool {
	return col >= 0 && col < width && row >= 0 && row < height
}

// DistSq returns the squared Euclidean distance between two cells.
func DistSq(aCol, aRow, bCol, bRow int) int {
	dc := aCol - bCol
	dr := aRow - bRow
	return dc*dc + dr*dr
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
