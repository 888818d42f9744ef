package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/wgomg/nucleo/internal/nucleotide"
)

const (
	chartWidth   = 400
	chartHeight  = 260
	chartTop     = 30
	chartAxisY   = 220
	barSlot      = chartWidth / 4
	barWidth     = 60
	labelOffsetY = 16
)

var barColors = map[rune]string{
	'A': "red",
	'T': "green",
	'G': "blue",
	'C': "orange",
}

var page = template.Must(template.New("page").Funcs(template.FuncMap{
	"labelY": func(axis int) int { return axis + labelOffsetY },
}).Parse(pageTemplate))

type PageData struct {
	Input    string
	Analysis nucleotide.Analysis
	Chart    Chart
	Bars     []Bar
}

type Chart struct {
	Width   int
	Height  int
	CenterX int
	AxisY   int
}

type Bar struct {
	Base   string
	Count  int
	Color  string
	X      int
	Y      int
	Width  int
	Height int
	LabelX int
}

func NewPageData(input string, a nucleotide.Analysis) PageData {
	return PageData{
		Input:    input,
		Analysis: a,
		Chart: Chart{
			Width:   chartWidth,
			Height:  chartHeight,
			CenterX: chartWidth / 2,
			AxisY:   chartAxisY,
		},
		Bars: bars(a.Counts),
	}
}

func bars(counts nucleotide.Counts) []Bar {
	peak := counts.Max()
	maxHeight := chartAxisY - chartTop

	out := make([]Bar, 0, len(nucleotide.Bases))
	i := 0
	counts.Each(func(base rune, n int) {
		h := barLength(n, peak, maxHeight)
		x := i*barSlot + (barSlot-barWidth)/2
		out = append(out, Bar{
			Base:   string(base),
			Count:  n,
			Color:  barColors[base],
			X:      x,
			Y:      chartAxisY - h,
			Width:  barWidth,
			Height: h,
			LabelX: x + barWidth/2,
		})
		i++
	})
	return out
}

func Page(w io.Writer, data PageData) error {
	if err := page.Execute(w, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}
