// Package imageio provides image loading and resizing for the pattern
// converter.
package imageio

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes an image from the specified path.
func Load(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// SizeLimit is a maximum dimension, given either in pixels ("900") or as a
// percentage of the original ("50%").
type SizeLimit struct {
	Percent bool
	Value   float64
}

// ParseSizeLimit parses a size limit string.
func ParseSizeLimit(s string) (SizeLimit, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return SizeLimit{}, fmt.Errorf("empty size limit")
	}
	if strings.HasSuffix(v, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64)
		if err != nil || pct <= 0 {
			return SizeLimit{}, fmt.Errorf("invalid percentage %q", s)
		}
		return SizeLimit{Percent: true, Value: pct / 100.0}, nil
	}
	px, err := strconv.Atoi(v)
	if err != nil || px <= 0 {
		return SizeLimit{}, fmt.Errorf("invalid pixel value %q", s)
	}
	return SizeLimit{Value: float64(px)}, nil
}

// Resolve turns the limit into a pixel count for the original dimension.
// Always at least 1.
func (l SizeLimit) Resolve(original int) int {
	v := l.Value
	if l.Percent {
		v = float64(original) * l.Value
	}
	px := int(math.Round(v))
	if px < 1 {
		px = 1
	}
	return px
}

// FitWithin scales (w, h) to fit inside (maxW, maxH) preserving aspect
// ratio. Never stretches; always returns at least 1×1.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	aspect := float64(w) / float64(h)
	outW := maxW
	outH := int(math.Round(float64(outW) / aspect))
	if outH > maxH {
		outH = maxH
		outW = int(math.Round(float64(outH) * aspect))
	}
	if outW < 1 {
		outW = 1
	}
	if outH < 1 {
		outH = 1
	}
	return outW, outH
}

// Resize resamples the image to w×h with Catmull-Rom interpolation.
func Resize(img image.Image, w, h int) image.Image {
	if b := img.Bounds(); b.Dx() == w && b.Dy() == h {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}
