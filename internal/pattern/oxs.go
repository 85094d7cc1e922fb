package pattern

import (
	"encoding/xml"
	"fmt"
	"hash/fnv"
	"io"
	"strings"

	"stitch-tracker/pkg/grid"
)

// OXS chart XML. Palette item 0 is always the cloth/background entry, and
// stitch palindex values are 1-based, so thread indices shift by one on the
// wire.

type oxsChart struct {
	XMLName      xml.Name        `xml:"chart"`
	Properties   oxsProperties   `xml:"properties"`
	Palette      oxsPalette      `xml:"palette"`
	FullStitches oxsFullStitches `xml:"fullstitches"`
}

type oxsProperties struct {
	OXSVersion      string `xml:"oxsversion,attr"`
	ChartWidth      int    `xml:"chartwidth,attr"`
	ChartHeight     int    `xml:"chartheight,attr"`
	ChartTitle      string `xml:"charttitle,attr"`
	Author          string `xml:"author,attr"`
	Instructions    string `xml:"instructions,attr"`
	StitchesPerInch string `xml:"stitchesperinch,attr"`
	PaletteCount    int    `xml:"palettecount,attr"`
	PatternID       string `xml:"patternid,attr,omitempty"`
}

type oxsPalette struct {
	Items []oxsPaletteItem `xml:"palette_item"`
}

type oxsPaletteItem struct {
	Index  int    `xml:"index,attr"`
	Number string `xml:"number,attr"`
	Name   string `xml:"name,attr"`
	Color  string `xml:"color,attr"`
	Symbol string `xml:"symbol,attr,omitempty"`
}

type oxsFullStitches struct {
	Stitches []oxsStitch `xml:"stitch"`
}

type oxsStitch struct {
	X        int `xml:"x,attr"`
	Y        int `xml:"y,attr"`
	PalIndex int `xml:"palindex,attr"`
}

// ParseOXS reads an OXS chart document and returns a validated Pattern.
func ParseOXS(r io.Reader) (*Pattern, error) {
	var chart oxsChart
	if err := xml.NewDecoder(r).Decode(&chart); err != nil {
		return nil, fmt.Errorf("parse oxs: %w", err)
	}

	w := chart.Properties.ChartWidth
	h := chart.Properties.ChartHeight
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("parse oxs: invalid chart size %dx%d", w, h)
	}

	pat := &Pattern{
		ID:     chart.Properties.PatternID,
		Title:  chart.Properties.ChartTitle,
		Width:  w,
		Height: h,
	}

	// Palette item 0 is cloth; thread entries start at index 1.
	for _, item := range chart.Palette.Items {
		if item.Index == 0 {
			continue
		}
		hex := item.Color
		if hex != "" && !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}
		pat.Palette = append(pat.Palette, PaletteEntry{
			Code:   item.Number,
			Name:   item.Name,
			Hex:    hex,
			Symbol: item.Symbol,
		})
	}

	pat.Targets = make([]int32, w*h)
	for i := range pat.Targets {
		pat.Targets[i] = NoTarget
	}
	for _, s := range chart.FullStitches.Stitches {
		if !grid.InBounds(s.X, s.Y, w, h) {
			return nil, fmt.Errorf("parse oxs: stitch at (%d,%d) outside %dx%d chart", s.X, s.Y, w, h)
		}
		idx := s.PalIndex - 1
		if idx < 0 || idx >= len(pat.Palette) {
			return nil, fmt.Errorf("parse oxs: stitch at (%d,%d) references palette index %d", s.X, s.Y, s.PalIndex)
		}
		pat.Targets[grid.Index(s.X, s.Y, w)] = int32(idx)
	}

	if pat.ID == "" {
		pat.ID = deriveID(pat)
	}

	pat.RecountTargets()
	if err := pat.Validate(); err != nil {
		return nil, err
	}
	return pat, nil
}

// WriteOXS writes the pattern as an OXS chart document.
func WriteOXS(w io.Writer, p *Pattern, author, instructions string) error {
	chart := oxsChart{
		Properties: oxsProperties{
			OXSVersion:      "1.0",
			ChartWidth:      p.Width,
			ChartHeight:     p.Height,
			ChartTitle:      p.Title,
			Author:          author,
			Instructions:    instructions,
			StitchesPerInch: "14",
			PaletteCount:    len(p.Palette),
			PatternID:       p.ID,
		},
	}

	chart.Palette.Items = append(chart.Palette.Items, oxsPaletteItem{
		Index:  0,
		Number: "cloth",
		Name:   "cloth",
		Color:  "ffffff",
	})
	for i, e := range p.Palette {
		chart.Palette.Items = append(chart.Palette.Items, oxsPaletteItem{
			Index:  i + 1,
			Number: e.Code,
			Name:   e.Name,
			Color:  strings.TrimPrefix(e.Hex, "#"),
			Symbol: e.Symbol,
		})
	}

	for row := 0; row < p.Height; row++ {
		for col := 0; col < p.Width; col++ {
			t := p.Targets[grid.Index(col, row, p.Width)]
			if t == NoTarget {
				continue
			}
			chart.FullStitches.Stitches = append(chart.FullStitches.Stitches, oxsStitch{
				X:        col,
				Y:        row,
				PalIndex: int(t) + 1,
			})
		}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(chart); err != nil {
		return fmt.Errorf("write oxs: %w", err)
	}
	return enc.Close()
}

// deriveID produces a stable identifier for charts that carry none, so a
// re-parsed file keeps matching its saved progress.
func deriveID(p *Pattern) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%dx%d:", p.Width, p.Height)
	for _, t := range p.Targets {
		var b [4]byte
		b[0] = byte(t)
		b[1] = byte(t >> 8)
		b[2] = byte(t >> 16)
		b[3] = byte(t >> 24)
		h.Write(b[:])
	}
	return fmt.Sprintf("chart-%016x", h.Sum64())
}
