package nucleotide

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

var lineBreaks = strings.NewReplacer("\n", "", "\r", "")

// Normalize removes line breaks and uppercases the text. Nothing else is
// validated, so characters outside the alphabet survive.
func Normalize(raw string) string {
	return strings.ToUpper(lineBreaks.Replace(raw))
}

// Count tallies every character of seq and keeps only the four bases.
func Count(seq string) Counts {
	tally := make(map[rune]int)
	for _, r := range seq {
		tally[r]++
	}

	return Counts{
		A: tally['A'],
		T: tally['T'],
		G: tally['G'],
		C: tally['C'],
	}
}

func ComputeStats(seq string, counts Counts) Stats {
	total := utf8.RuneCountInString(seq)
	if total == 0 {
		return Stats{}
	}

	return Stats{
		TotalLength: total,
		GCContent:   float64(counts.G+counts.C) / float64(total) * 100,
		GCDefined:   true,
	}
}

func Analyze(raw string) Analysis {
	seq := Normalize(raw)
	counts := Count(seq)

	return Analysis{
		Sequence: seq,
		Counts:   counts,
		Stats:    ComputeStats(seq, counts),
	}
}

func (c Counts) Get(base rune) int {
	switch base {
	case 'A':
		return c.A
	case 'T':
		return c.T
	case 'G':
		return c.G
	case 'C':
		return c.C
	default:
		return 0
	}
}

// Each visits the bases in A, T, G, C order.
func (c Counts) Each(fn func(base rune, count int)) {
	for _, b := range Bases {
		fn(b, c.Get(b))
	}
}

func (c Counts) Total() int {
	return c.A + c.T + c.G + c.C
}

func (c Counts) Max() int {
	m := 0
	c.Each(func(_ rune, n int) {
		m = max(m, n)
	})
	return m
}

func (s Stats) GC() (float64, error) {
	if !s.GCDefined {
		return 0, ErrEmptySequence
	}
	return s.GCContent, nil
}

func (s Stats) FormatGC() string {
	gc, err := s.GC()
	if err != nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", gc)
}
