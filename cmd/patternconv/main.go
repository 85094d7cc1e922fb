// Command patternconv converts images to OXS cross-stitch charts: colours
// are reduced with median-cut quantisation, mapped onto DMC threads, and
// every palette entry receives a unique chart symbol.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"stitch-tracker/internal/dmc"
	"stitch-tracker/internal/imageio"
	"stitch-tracker/internal/pattern"
	"stitch-tracker/internal/quantize"
	"stitch-tracker/internal/symbols"
	"stitch-tracker/pkg/colorutil"
	"stitch-tracker/pkg/grid"
)

type options struct {
	title     string
	maxWidth  imageio.SizeLimit
	maxHeight imageio.SizeLimit
	maxColors int
	useDMC    bool
	resize    bool
	outputDir string
}

func main() {
	title := flag.String("title", "", "chart title (default: derived from filename)")
	maxWidth := flag.String("max-width", "900", "maximum chart width in px or % (with -resize)")
	maxHeight := flag.String("max-height", "900", "maximum chart height in px or % (with -resize)")
	maxColors := flag.Int("max-colors", symbols.PoolSize, "maximum number of colours")
	noDMC := flag.Bool("no-dmc", false, "do not map colours to DMC threads")
	resize := flag.Bool("resize", false, "resize image to fit max-width/max-height")
	outputDir := flag.String("o", "", "output directory (default: next to the input file)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] image...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *maxColors <= 0 || *maxColors > symbols.PoolSize {
		logrus.Fatalf("-max-colors must be in 1..%d", symbols.PoolSize)
	}

	opts := options{
		title:     *title,
		maxColors: *maxColors,
		useDMC:    !*noDMC,
		resize:    *resize,
		outputDir: *outputDir,
	}
	var err error
	if opts.maxWidth, err = imageio.ParseSizeLimit(*maxWidth); err != nil {
		logrus.Fatalf("-max-width: %v", err)
	}
	if opts.maxHeight, err = imageio.ParseSizeLimit(*maxHeight); err != nil {
		logrus.Fatalf("-max-height: %v", err)
	}

	failed := 0
	for _, path := range flag.Args() {
		if err := convertFile(path, opts); err != nil {
			logrus.WithError(err).Errorf("skipping %s", path)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func convertFile(path string, opts options) error {
	logrus.Infof("processing %s", path)

	img, err := imageio.Load(path)
	if err != nil {
		return err
	}
	origW := img.Bounds().Dx()
	origH := img.Bounds().Dy()

	if opts.resize {
		// The limits are maxima: never upscale.
		maxW := opts.maxWidth.Resolve(origW)
		maxH := opts.maxHeight.Resolve(origH)
		if maxW > origW {
			maxW = origW
		}
		if maxH > origH {
			maxH = origH
		}
		w, h := imageio.FitWithin(origW, origH, maxW, maxH)
		img = imageio.Resize(img, w, h)
	}

	pat, err := buildPattern(img, path, opts)
	if err != nil {
		return err
	}
	pat.Title = opts.title
	if pat.Title == "" {
		base := filepath.Base(path)
		pat.Title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".oxs"
	if opts.outputDir != "" {
		if err := os.MkdirAll(opts.outputDir, 0o755); err != nil {
			return err
		}
		base := filepath.Base(path)
		outPath = filepath.Join(opts.outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".oxs")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	instructions := fmt.Sprintf("Converted from %s (%dx%d to %dx%d)",
		filepath.Base(path), origW, origH, pat.Width, pat.Height)
	if err := pattern.WriteOXS(f, pat, "Image Converter", instructions); err != nil {
		return err
	}

	logrus.Infof("saved %s: %dx%d cells, %d colours", outPath, pat.Width, pat.Height, len(pat.Palette))
	return nil
}

func buildPattern(img image.Image, path string, opts options) (*pattern.Pattern, error) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	colors, opaque := quantize.CountColors(img)
	logrus.Infof("  %dx%d cells, %d opaque pixels, %d unique colours", w, h, opaque, len(colors))
	if opaque == 0 {
		return nil, fmt.Errorf("no opaque pixels in %s", path)
	}

	quantized := quantize.MedianCut(colors, opts.maxColors)

	var palette []pattern.PaletteEntry
	var paletteRGB []colorutil.RGB
	if opts.useDMC {
		for _, m := range dmc.MapPalette(quantized) {
			palette = append(palette, pattern.PaletteEntry{
				Code: m.Color.Code,
				Name: m.Color.Name,
				Hex:  m.Color.Hex,
			})
			paletteRGB = append(paletteRGB, m.Color.RGB())
		}
	} else {
		for i, rgb := range quantized {
			palette = append(palette, pattern.PaletteEntry{
				Name: fmt.Sprintf("Colour %d", i+1),
				Hex:  rgb.Hex(),
			})
			paletteRGB = append(paletteRGB, rgb)
		}
	}

	// Map every opaque cell to its nearest palette colour.
	targets := make([]int32, w*h)
	b := img.Bounds()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rgb, ok := quantize.OpaqueRGB(img, b.Min.X+x, b.Min.Y+y)
			if !ok {
				targets[grid.Index(x, y, w)] = pattern.NoTarget
				continue
			}
			targets[grid.Index(x, y, w)] = int32(quantize.NearestIndex(rgb, paletteRGB))
		}
	}

	palette, targets = pruneUnused(palette, targets)
	if len(palette) == 0 {
		return nil, fmt.Errorf("no stitches found in %s", path)
	}

	syms, err := symbols.Assign(make([]symbols.Candidate, len(palette)), symbols.Options{})
	if err != nil {
		return nil, err
	}
	for i := range palette {
		palette[i].Symbol = syms[i]
	}

	pat := &pattern.Pattern{
		ID:      uuid.NewString(),
		Width:   w,
		Height:  h,
		Palette: palette,
		Targets: targets,
	}
	pat.RecountTargets()
	if err := pat.Validate(); err != nil {
		return nil, err
	}
	return pat, nil
}

// pruneUnused drops palette entries no cell targets and remaps the target
// indices onto the compacted palette.
func pruneUnused(palette []pattern.PaletteEntry, targets []int32) ([]pattern.PaletteEntry, []int32) {
	used := make([]bool, len(palette))
	for _, t := range targets {
		if t != pattern.NoTarget {
			used[t] = true
		}
	}
	remap := make([]int32, len(palette))
	var kept []pattern.PaletteEntry
	for i := range palette {
		remap[i] = -1
		if used[i] {
			remap[i] = int32(len(kept))
			kept = append(kept, palette[i])
		}
	}
	for i, t := range targets {
		if t != pattern.NoTarget {
			targets[i] = remap[t]
		}
	}
	return kept, targets
}
