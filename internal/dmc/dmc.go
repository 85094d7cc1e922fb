// Package dmc provides the DMC thread colour table and nearest-colour
// matching used when converting images to chart palettes.
package dmc

import (
	"strings"

	"stitch-tracker/pkg/colorutil"
)

// Color is one DMC thread colour.
type Color struct {
	Code string
	Name string
	Hex  string
}

// RGB returns the colour's channel values.
func (c Color) RGB() colorutil.RGB {
	rgb, err := colorutil.ParseHex(c.Hex)
	if err != nil {
		return colorutil.RGB{}
	}
	return rgb
}

// reusePenalty discourages mapping two quantised colours to the same
// thread; variety in the palette beats a marginally closer match.
const reusePenalty = 1.5

var rgbTable = buildRGBTable()

func buildRGBTable() []colorutil.RGB {
	out := make([]colorutil.RGB, len(table))
	for i, c := range table {
		out[i] = c.RGB()
	}
	return out
}

// Table returns the full thread table.
func Table() []Color {
	out := make([]Color, len(table))
	copy(out, table)
	return out
}

// FindByCode looks up a thread by its code, case-insensitively.
func FindByCode(code string) (Color, bool) {
	for _, c := range table {
		if strings.EqualFold(c.Code, code) {
			return c, true
		}
	}
	return Color{}, false
}

// Match pairs a quantised colour with its chosen thread.
type Match struct {
	Color    Color
	Original colorutil.RGB
}

// MapPalette maps each quantised colour to the closest thread by redmean
// distance, penalising threads already taken so the palette stays varied.
func MapPalette(quantized []colorutil.RGB) []Match {
	used := make(map[int]bool, len(quantized))
	out := make([]Match, 0, len(quantized))

	for _, rgb := range quantized {
		best := -1
		bestDist := 0.0
		for i, trgb := range rgbTable {
			dist := colorutil.Distance(rgb, trgb)
			if used[i] {
				dist *= reusePenalty
			}
			if best < 0 || dist < bestDist {
				best = i
				bestDist = dist
			}
		}
		used[best] = true
		out = append(out, Match{Color: table[best], Original: rgb})
	}
	return out
}
