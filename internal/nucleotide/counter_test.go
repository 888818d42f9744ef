package nucleotide_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wgomg/nucleo/internal/nucleotide"
)

func TestAnalyze_Scenarios(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		normalized string
		counts     nucleotide.Counts
		length     int
		gc         string
	}{
		{"empty", "", "", nucleotide.Counts{}, 0, "N/A"},
		{"only adenine", "AAAA", "AAAA", nucleotide.Counts{A: 4}, 4, "0.00%"},
		{"lowercase", "atgc", "ATGC", nucleotide.Counts{A: 1, T: 1, G: 1, C: 1}, 4, "50.00%"},
		{"ambiguity codes", "GGCC\nNNAA", "GGCCNNAA", nucleotide.Counts{A: 2, G: 2, C: 2}, 8, "50.00%"},
		{"crlf", "at\r\ngc", "ATGC", nucleotide.Counts{A: 1, T: 1, G: 1, C: 1}, 4, "50.00%"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := nucleotide.Analyze(tc.input)
			assert.Equal(t, tc.normalized, a.Sequence)
			assert.Equal(t, tc.counts, a.Counts)
			assert.Equal(t, tc.length, a.Stats.TotalLength)
			assert.Equal(t, tc.gc, a.Stats.FormatGC())
		})
	}
}

func TestStats_EmptySequenceIsUndefined(t *testing.T) {
	s := nucleotide.ComputeStats("", nucleotide.Counts{})
	assert.False(t, s.GCDefined)

	_, err := s.GC()
	assert.ErrorIs(t, err, nucleotide.ErrEmptySequence)
}

func TestStats_StrippedToEmpty(t *testing.T) {
	a := nucleotide.Analyze("\r\n\n\r")
	assert.Equal(t, "", a.Sequence)
	assert.False(t, a.Stats.GCDefined)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"", "acgt\n", "GgCc\r\nnnaa", "x y\tz\n1 2", "ünïcode\nàtgc"}
	for _, in := range inputs {
		once := nucleotide.Normalize(in)
		assert.Equal(t, once, nucleotide.Normalize(once), "input %q", in)
		assert.NotContains(t, once, "\n")
		assert.NotContains(t, once, "\r")
	}
}

func TestCount_Properties(t *testing.T) {
	inputs := []string{"", "ACGT", "acgtn", "NNNN", "AC GT\n12", "ggggcccc", "ÄTGC"}
	for _, in := range inputs {
		seq := nucleotide.Normalize(in)
		counts := nucleotide.Count(seq)
		stats := nucleotide.ComputeStats(seq, counts)

		counts.Each(func(base rune, n int) {
			assert.GreaterOrEqual(t, n, 0, "base %c of %q", base, in)
		})
		assert.LessOrEqual(t, counts.Total(), stats.TotalLength)

		onlyBases := !strings.ContainsFunc(seq, func(r rune) bool {
			return !strings.ContainsRune("ACGT", r)
		})
		assert.Equal(t, onlyBases, counts.Total() == stats.TotalLength, "input %q", in)

		if gc, err := stats.GC(); err == nil {
			assert.GreaterOrEqual(t, gc, 0.0)
			assert.LessOrEqual(t, gc, 100.0)
		}
	}
}

func TestCounts_EachOrder(t *testing.T) {
	var order []rune
	nucleotide.Counts{A: 1, T: 2, G: 3, C: 4}.Each(func(base rune, _ int) {
		order = append(order, base)
	})
	assert.Equal(t, []rune{'A', 'T', 'G', 'C'}, order)
}

func TestCounts_Max(t *testing.T) {
	assert.Equal(t, 0, nucleotide.Counts{}.Max())
	assert.Equal(t, 7, nucleotide.Counts{A: 1, T: 7, G: 3}.Max())
	assert.Equal(t, 0, nucleotide.Counts{A: 9}.Get('N'))
}

func TestStats_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(nucleotide.Analyze("GGCC\nNNAA").Stats)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_length":8,"gc_content":50,"gc_content_display":"50.00%"}`, string(b))

	b, err = json.Marshal(nucleotide.Analyze("").Stats)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total_length":0,"gc_content":null,"gc_content_display":"N/A"}`, string(b))
}

func TestAnalysis_MarshalYAML(t *testing.T) {
	b, err := yaml.Marshal(nucleotide.Analyze("atgc"))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, yaml.Unmarshal(b, &out))
	assert.Equal(t, "ATGC", out["sequence"])
	stats := out["stats"].(map[string]any)
	assert.Equal(t, 4, stats["total_length"])
	assert.Equal(t, "50.00%", stats["gc_content_display"])
}
