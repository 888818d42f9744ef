// Package nucleotide counts the four DNA bases in a sequence and derives
// simple composition statistics from the tally.
package nucleotide

import "errors"

var ErrEmptySequence = errors.New("gc-content is undefined for an empty sequence")

// Bases lists the counted alphabet in presentation order.
var Bases = [4]rune{'A', 'T', 'G', 'C'}

type Counts struct {
	A int `json:"A" yaml:"A"`
	T int `json:"T" yaml:"T"`
	G int `json:"G" yaml:"G"`
	C int `json:"C" yaml:"C"`
}

// Stats holds the derived figures. GCContent is a percentage and is only
// meaningful when GCDefined is set; an empty sequence leaves it at zero.
type Stats struct {
	TotalLength int
	GCContent   float64
	GCDefined   bool
}

type Analysis struct {
	Sequence string `json:"sequence" yaml:"sequence"`
	Counts   Counts `json:"counts" yaml:"counts"`
	Stats    Stats  `json:"stats" yaml:"stats"`
}
