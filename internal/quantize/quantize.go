// Package quantize reduces an image's colours with median-cut quantisation.
package quantize

import (
	"image"
	"sort"

	"gonum.org/v1/gonum/stat"

	"stitch-tracker/pkg/colorutil"
)

// AlphaThreshold is the minimum alpha for a pixel to count as opaque;
// anything below becomes a no-stitch cell.
const AlphaThreshold = 128

// ColorCount is a colour with the number of pixels carrying it.
type ColorCount struct {
	RGB   colorutil.RGB
	Count int
}

// CountColors extracts the unique opaque colours of the image with their
// pixel counts, plus the total opaque pixel count.
func CountColors(img image.Image) ([]ColorCount, int) {
	counts := make(map[colorutil.RGB]int)
	opaque := 0

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			rgb, ok := OpaqueRGB(img, x, y)
			if !ok {
				continue
			}
			opaque++
			counts[rgb]++
		}
	}

	out := make([]ColorCount, 0, len(counts))
	for rgb, n := range counts {
		out = append(out, ColorCount{RGB: rgb, Count: n})
	}
	// Map iteration order is random; fix it so quantisation is
	// deterministic for a given image.
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].RGB, out[j].RGB
		if a.R != b.R {
			return a.R < b.R
		}
		if a.G != b.G {
			return a.G < b.G
		}
		return a.B < b.B
	})
	return out, opaque
}

// OpaqueRGB samples the pixel at (x, y), reporting false for pixels under
// the alpha threshold.
func OpaqueRGB(img image.Image, x, y int) (colorutil.RGB, bool) {
	r, g, b, a := img.At(x, y).RGBA()
	if a>>8 < AlphaThreshold {
		return colorutil.RGB{}, false
	}
	return colorutil.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}, true
}

// box is a bounding volume of colours for median-cut splitting.
type box struct {
	colors []ColorCount

	rMin, rMax uint8
	gMin, gMax uint8
	bMin, bMax uint8
}

func newBox(colors []ColorCount) box {
	b := box{colors: colors, rMin: 255, gMin: 255, bMin: 255}
	for _, c := range colors {
		b.rMin = min(b.rMin, c.RGB.R)
		b.rMax = max(b.rMax, c.RGB.R)
		b.gMin = min(b.gMin, c.RGB.G)
		b.gMax = max(b.gMax, c.RGB.G)
		b.bMin = min(b.bMin, c.RGB.B)
		b.bMax = max(b.bMax, c.RGB.B)
	}
	return b
}

func (b box) volume() int {
	v := int(b.rMax) - int(b.rMin)
	if g := int(b.gMax) - int(b.gMin); g > v {
		v = g
	}
	if bl := int(b.bMax) - int(b.bMin); bl > v {
		v = bl
	}
	return v
}

// MedianCut reduces the colour set to at most maxColors representative
// colours: repeatedly split the largest-volume box along its widest channel
// at the pixel-count median, then collapse each box to its count-weighted
// mean colour.
func MedianCut(colors []ColorCount, maxColors int) []colorutil.RGB {
	if len(colors) == 0 || maxColors <= 0 {
		return nil
	}
	if len(colors) <= maxColors {
		out := make([]colorutil.RGB, len(colors))
		for i, c := range colors {
			out[i] = c.RGB
		}
		return out
	}

	boxes := []box{newBox(colors)}
	for len(boxes) < maxColors {
		// Largest splittable box.
		maxVolume := 0
		splitIdx := -1
		for i, b := range boxes {
			if len(b.colors) > 1 && b.volume() > maxVolume {
				maxVolume = b.volume()
				splitIdx = i
			}
		}
		if splitIdx < 0 {
			break
		}

		b := boxes[splitIdx]
		boxes = append(boxes[:splitIdx], boxes[splitIdx+1:]...)

		// Sort along the widest channel.
		rRange := int(b.rMax) - int(b.rMin)
		gRange := int(b.gMax) - int(b.gMin)
		bRange := int(b.bMax) - int(b.bMin)
		var key func(c ColorCount) uint8
		switch {
		case rRange >= gRange && rRange >= bRange:
			key = func(c ColorCount) uint8 { return c.RGB.R }
		case gRange >= bRange:
			key = func(c ColorCount) uint8 { return c.RGB.G }
		default:
			key = func(c ColorCount) uint8 { return c.RGB.B }
		}
		sort.SliceStable(b.colors, func(i, j int) bool {
			return key(b.colors[i]) < key(b.colors[j])
		})

		// Split at the pixel-count median.
		total := 0
		for _, c := range b.colors {
			total += c.Count
		}
		median := len(b.colors) / 2
		cum := 0
		for i, c := range b.colors {
			cum += c.Count
			if cum*2 >= total {
				median = i
				if median < 1 {
					median = 1
				}
				break
			}
		}

		lo := b.colors[:median]
		hi := b.colors[median:]
		if len(lo) > 0 {
			boxes = append(boxes, newBox(lo))
		}
		if len(hi) > 0 {
			boxes = append(boxes, newBox(hi))
		}
	}

	out := make([]colorutil.RGB, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, averageColor(b.colors))
	}
	return out
}

// averageColor collapses a box to the pixel-count-weighted mean colour.
func averageColor(colors []ColorCount) colorutil.RGB {
	rs := make([]float64, len(colors))
	gs := make([]float64, len(colors))
	bs := make([]float64, len(colors))
	ws := make([]float64, len(colors))
	for i, c := range colors {
		rs[i] = float64(c.RGB.R)
		gs[i] = float64(c.RGB.G)
		bs[i] = float64(c.RGB.B)
		ws[i] = float64(c.Count)
	}
	return colorutil.RGB{
		R: uint8(stat.Mean(rs, ws) + 0.5),
		G: uint8(stat.Mean(gs, ws) + 0.5),
		B: uint8(stat.Mean(bs, ws) + 0.5),
	}
}

// NearestIndex returns the palette index closest to the colour by redmean
// distance.
func NearestIndex(c colorutil.RGB, palette []colorutil.RGB) int {
	if len(palette) == 0 {
		return -1
	}
	best := 0
	bestDist := colorutil.Distance(c, palette[0])
	for i := 1; i < len(palette); i++ {
		if d := colorutil.Distance(c, palette[i]); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func min(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

func max(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}
