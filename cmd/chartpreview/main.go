// Command chartpreview renders an OXS chart, optionally overlaid with saved
// progress, to a PNG image.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"stitch-tracker/internal/pattern"
	"stitch-tracker/internal/progress"
	"stitch-tracker/internal/render"
)

func main() {
	progressPath := flag.String("progress", "", "progress snapshot JSON to overlay")
	cellSize := flag.Int("cell", 8, "rendered size of one cell in pixels")
	out := flag.String("o", "", "output PNG path (default: chart name + .png)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] chart.oxs\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
		os.Exit(2)
	}
	chartPath := flag.Arg(0)

	f, err := os.Open(chartPath)
	if err != nil {
		logrus.Fatal(err)
	}
	pat, err := pattern.ParseOXS(f)
	f.Close()
	if err != nil {
		logrus.Fatal(err)
	}

	var prog *progress.Progress
	if *progressPath != "" {
		prog, err = loadProgress(*progressPath, pat)
		if err != nil {
			logrus.Fatal(err)
		}
	}

	opts := render.DefaultOptions()
	opts.CellSize = *cellSize
	mat, err := render.Chart(pat, prog, opts)
	if err != nil {
		logrus.Fatal(err)
	}
	defer mat.Close()

	outPath := *out
	if outPath == "" {
		outPath = strings.TrimSuffix(chartPath, filepath.Ext(chartPath)) + ".png"
	}
	if err := render.SavePNG(mat, outPath); err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("wrote %s (%dx%d cells)", outPath, pat.Width, pat.Height)
}

func loadProgress(path string, pat *pattern.Pattern) (*progress.Progress, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap progress.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	prog, err := progress.FromSnapshot(&snap)
	if err != nil {
		return nil, err
	}
	if prog.Legacy {
		prog.MigrateV1(pat)
	}
	if prog.PatternID != pat.ID || prog.CellCount() != pat.CellCount() {
		return nil, fmt.Errorf("progress %s does not belong to chart %s", path, pat.ID)
	}
	return prog, nil
}
