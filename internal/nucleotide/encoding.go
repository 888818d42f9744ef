package nucleotide

import "encoding/json"

type statsView struct {
	TotalLength      int      `json:"total_length" yaml:"total_length"`
	GCContent        *float64 `json:"gc_content" yaml:"gc_content"`
	GCContentDisplay string   `json:"gc_content_display" yaml:"gc_content_display"`
}

func (s Stats) view() statsView {
	v := statsView{
		TotalLength:      s.TotalLength,
		GCContentDisplay: s.FormatGC(),
	}
	if gc, err := s.GC(); err == nil {
		v.GCContent = &gc
	}
	return v
}

// MarshalJSON writes gc_content as null when it is undefined.
func (s Stats) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.view())
}

func (s Stats) MarshalYAML() (any, error) {
	return s.view(), nil
}
