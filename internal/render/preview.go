// Package render rasterises a chart and its progress into a preview image.
package render

import (
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"stitch-tracker/internal/pattern"
	"stitch-tracker/internal/progress"
	"stitch-tracker/pkg/colorutil"
	"stitch-tracker/pkg/grid"
)

// Options configures chart preview rendering.
type Options struct {
	// CellSize is the rendered size of one cell in pixels.
	CellSize int

	// GridEvery draws a darker grid line every N cells; 0 disables the
	// grid. Charts conventionally rule every 10th line.
	GridEvery int
}

// DefaultOptions returns the usual preview settings.
func DefaultOptions() Options {
	return Options{CellSize: 8, GridEvery: 10}
}

var (
	clothColor = color.RGBA{R: 245, G: 242, B: 235, A: 255}
	gridColor  = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	wrongColor = color.RGBA{R: 220, G: 30, B: 30, A: 255}
)

// Chart renders the pattern with its progress overlaid: correct cells in
// full palette colour, unstitched targets faded toward the cloth, wrong
// placements crossed out in the colour actually placed. prog may be nil to
// render the bare chart.
func Chart(pat *pattern.Pattern, prog *progress.Progress, opts Options) (gocv.Mat, error) {
	if opts.CellSize <= 0 {
		return gocv.Mat{}, fmt.Errorf("render: invalid cell size %d", opts.CellSize)
	}
	if err := pat.Validate(); err != nil {
		return gocv.Mat{}, err
	}

	paletteRGB := make([]colorutil.RGB, len(pat.Palette))
	for i, e := range pat.Palette {
		rgb, err := colorutil.ParseHex(e.Hex)
		if err != nil {
			return gocv.Mat{}, fmt.Errorf("render: palette %d: %w", i, err)
		}
		paletteRGB[i] = rgb
	}

	cs := opts.CellSize
	mat := gocv.NewMatWithSize(pat.Height*cs, pat.Width*cs, gocv.MatTypeCV8UC3)
	gocv.Rectangle(&mat, image.Rect(0, 0, pat.Width*cs, pat.Height*cs), clothColor, -1)

	for row := 0; row < pat.Height; row++ {
		for col := 0; col < pat.Width; col++ {
			cell := grid.Index(col, row, pat.Width)
			target := pat.Targets[cell]
			if target == pattern.NoTarget {
				continue
			}

			rect := image.Rect(col*cs, row*cs, (col+1)*cs, (row+1)*cs)
			rgb := paletteRGB[target]

			state := progress.StateNone
			if prog != nil && cell < len(prog.States) {
				state = prog.States[cell]
			}

			switch state {
			case progress.StateCorrect:
				gocv.Rectangle(&mat, rect, cellColor(rgb), -1)
			case progress.StateWrong:
				placed := rgb
				if prog != nil && prog.Placed[cell] >= 0 && int(prog.Placed[cell]) < len(paletteRGB) {
					placed = paletteRGB[prog.Placed[cell]]
				}
				gocv.Rectangle(&mat, rect, cellColor(placed), -1)
				gocv.Line(&mat, rect.Min, rect.Max, wrongColor, 1)
				gocv.Line(&mat, image.Pt(rect.Min.X, rect.Max.Y), image.Pt(rect.Max.X, rect.Min.Y), wrongColor, 1)
			default:
				gocv.Rectangle(&mat, rect, cellColor(fade(rgb)), -1)
			}
		}
	}

	if opts.GridEvery > 0 {
		for col := 0; col <= pat.Width; col += opts.GridEvery {
			gocv.Line(&mat, image.Pt(col*cs, 0), image.Pt(col*cs, pat.Height*cs), gridColor, 1)
		}
		for row := 0; row <= pat.Height; row += opts.GridEvery {
			gocv.Line(&mat, image.Pt(0, row*cs), image.Pt(pat.Width*cs, row*cs), gridColor, 1)
		}
	}

	return mat, nil
}

// SavePNG writes the rendered chart to disk.
func SavePNG(mat gocv.Mat, path string) error {
	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("render: write %s failed", path)
	}
	return nil
}

func cellColor(c colorutil.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// fade blends a colour most of the way toward the cloth so unstitched
// targets read as a ghost of the finished chart.
func fade(c colorutil.RGB) colorutil.RGB {
	blend := func(a, b uint8) uint8 {
		return uint8((int(a)*3 + int(b)*7) / 10)
	}
	return colorutil.RGB{
		R: blend(c.R, clothColor.R),
		G: blend(c.G, clothColor.G),
		B: blend(c.B, clothColor.B),
	}
}
