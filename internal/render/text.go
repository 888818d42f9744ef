// Package render turns an analysis into a text report or an HTML page.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/wgomg/nucleo/internal/nucleotide"
)

const barGlyph = "█"

func Table(w io.Writer, counts nucleotide.Counts) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	var header, row strings.Builder
	counts.Each(func(base rune, n int) {
		fmt.Fprintf(&header, "%c\t", base)
		fmt.Fprintf(&row, "%d\t", n)
	})

	fmt.Fprintln(tw, header.String())
	fmt.Fprintln(tw, row.String())
	return tw.Flush()
}

// BarChart draws one horizontal bar per base, scaled so the largest count
// spans width glyphs.
func BarChart(w io.Writer, counts nucleotide.Counts, width int) error {
	peak := counts.Max()

	var err error
	counts.Each(func(base rune, n int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%c | %s %d\n", base, strings.Repeat(barGlyph, barLength(n, peak, width)), n)
	})
	return err
}

func barLength(n, peak, width int) int {
	if peak == 0 || width <= 0 {
		return 0
	}
	return n * width / peak
}

func Summary(w io.Writer, stats nucleotide.Stats) error {
	_, err := fmt.Fprintf(w,
		"Total Sequence Length: %d bases\nGC-Content: %s\n",
		stats.TotalLength,
		stats.FormatGC(),
	)
	return err
}

func Text(w io.Writer, a nucleotide.Analysis, chartWidth int) error {
	sections := []struct {
		title string
		write func() error
	}{
		{"Input Sequence", func() error {
			_, err := fmt.Fprintln(w, a.Sequence)
			return err
		}},
		{"1. Nucleotide Count Table", func() error { return Table(w, a.Counts) }},
		{"2. Nucleotide Count Bar Chart", func() error {
			if _, err := fmt.Fprintln(w, "Only A, T, G, C nucleotides are included in the chart."); err != nil {
				return err
			}
			return BarChart(w, a.Counts, chartWidth)
		}},
		{"3. Simple Statistics", func() error { return Summary(w, a.Stats) }},
	}

	for i, s := range sections {
		separator := ""
		if i > 0 {
			separator = "\n"
		}
		if _, err := fmt.Fprintf(w, "%s%s\n%s\n", separator, s.title, strings.Repeat("-", len(s.title))); err != nil {
			return fmt.Errorf("render %s: %w", strings.ToLower(s.title), err)
		}
		if err := s.write(); err != nil {
			return fmt.Errorf("render %s: %w", strings.ToLower(s.title), err)
		}
	}
	return nil
}
