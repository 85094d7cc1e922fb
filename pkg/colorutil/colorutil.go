// Package colorutil provides shared colour utilities for the stitch tracker.
package colorutil

import (
	"fmt"
	"math"
	"strings"
)

// RGB is an 8-bit-per-channel colour.
type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#RRGGBB" or "RRGGBB" colour string.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return RGB{R: r, G: g, B: b}, nil
}

// Hex returns the colour in "#RRGGBB" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Distance returns the perceptual ("redmean") weighted distance between two
// colours. Lower is closer.
func Distance(a, b RGB) float64 {
	rMean := (float64(a.R) + float64(b.R)) / 2.0
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	rWeight := 2.0 + rMean/256.0
	gWeight := 4.0
	bWeight := 2.0 + (255.0-rMean)/256.0
	return math.Sqrt(rWeight*dr*dr + gWeight*dg*dg + bWeight*db*db)
}
