// Package segment implements the segmentation core: the prefix DAG, the
// route solver, the HMM Viterbi decoder, the block segmenter and the
// dispatcher. It consumes pre-loaded, immutable model tables and exposes
// pure functions over strings; it performs no I/O and no logging.
package segment

import "math"

// sentinel stands in for an unrepresentable log-probability. It is kept
// finite so that repeated addition across the DP and the Viterbi trellis
// never produces NaN.
const sentinel float64 = -3.14e100

// Dict is the frequency table a segmentation call reads from. Freq maps a
// candidate substring to its frequency: a positive value marks a word, a
// zero value marks a string that is only a proper prefix of some longer
// word. Every non-empty proper prefix of every word must appear in Freq,
// which is what lets buildDAG stop extending a candidate the moment it
// stops being a prefix of anything.
type Dict struct {
	Freq  map[string]int
	Total int
}

func (d *Dict) logTotal() float64 {
	return math.Log(float64(d.Total))
}
