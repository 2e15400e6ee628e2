package stats

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/arloliu/microplate/errs"
	"github.com/arloliu/microplate/plate"
)

// Source yields wells. *plate.Plate and *plate.WellSet satisfy it.
type Source interface {
	All() iter.Seq[*plate.Well]
}

// Result maps well positions to a computed scalar.
type Result map[plate.WellIndex]float64

// Lookup returns the result for the position of w.
func (r Result) Lookup(w *plate.Well) (float64, bool) {
	if w == nil {
		return 0, false
	}
	v, ok := r[w.Index()]

	return v, ok
}

// Indices returns the positions in ascending well order.
func (r Result) Indices() []plate.WellIndex {
	return slices.SortedFunc(maps.Keys(r), plate.WellIndex.Compare)
}

// PlateResult is the per-well result of one plate of a stack.
type PlateResult struct {
	Label  string
	Result Result
}

// Compute applies fn to the values of every well of src.
func Compute(src Source, fn Func) Result {
	out := make(Result)
	for w := range src.All() {
		out[w.Index()] = fn(w.Data())
	}

	return out
}

// ComputeRange applies fn to the values [begin, end) of every well. Wells
// holding fewer values contribute what they have in the range.
func ComputeRange(src Source, fn Func, begin, end int) (Result, error) {
	if begin < 0 || end < begin {
		return nil, fmt.Errorf("%w: [%d, %d)", errs.ErrInvalidRange, begin, end)
	}

	out := make(Result)
	for w := range src.All() {
		data := w.Data()
		lo := min(begin, len(data))
		hi := min(end, len(data))
		out[w.Index()] = fn(data[lo:hi])
	}

	return out, nil
}

// Aggregate applies fn to the values of all wells of src pooled together.
func Aggregate(src Source, fn Func) float64 {
	var pooled []float64
	for w := range src.All() {
		pooled = append(pooled, w.Data()...)
	}

	return fn(pooled)
}

// ComputeStack applies fn to every well of every plate, in stack order.
func ComputeStack(s *plate.Stack, fn Func) []PlateResult {
	out := make([]PlateResult, 0, s.Len())
	for p := range s.All() {
		out = append(out, PlateResult{Label: p.Label(), Result: Compute(p, fn)})
	}

	return out
}

// AggregateStack applies fn to the pooled values of each plate, keyed by plate
// order.
func AggregateStack(s *plate.Stack, fn Func) []float64 {
	out := make([]float64, 0, s.Len())
	for p := range s.All() {
		out = append(out, Aggregate(p, fn))
	}

	return out
}
