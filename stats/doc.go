// Package stats computes descriptive statistics over the values of wells.
//
// Per-well results are returned as a Result keyed by well position, so they
// can be joined back against any plate or set holding wells at the same
// positions:
//
//	means := stats.Compute(p, stats.Mean)
//	for w := range p.All() {
//	    m, _ := means.Lookup(w)
//	    fmt.Println(w.ID(), m)
//	}
//
// Functions return NaN when the input is too short for the statistic, for
// example the standard deviation of a single value. Sum, SumOfSquares and
// Count of an empty input are 0.
package stats
