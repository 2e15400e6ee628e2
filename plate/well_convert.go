package plate

import (
	"fmt"
	"math"
	"math/big"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/arloliu/microplate/errs"
)

// Float64s returns a copy of the measurements.
func (w *Well) Float64s() []float64 {
	return slices.Clone(w.data)
}

// Float32s narrows the measurements to float32. Finite values whose magnitude
// exceeds math.MaxFloat32 report errs.ErrOverflow; NaN and infinities carry over.
func (w *Well) Float32s() ([]float32, error) {
	out := make([]float32, len(w.data))
	for i, v := range w.data {
		if !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) > math.MaxFloat32 {
			return nil, w.overflow(i, v, "float32")
		}
		out[i] = float32(v)
	}

	return out, nil
}

// Int64s converts the measurements to int64, truncating toward zero.
func (w *Well) Int64s() ([]int64, error) {
	return convertInts[int64](w, math.MinInt64, math.MaxInt64, "int64")
}

// Int32s converts the measurements to int32, truncating toward zero.
func (w *Well) Int32s() ([]int32, error) {
	return convertInts[int32](w, math.MinInt32, math.MaxInt32, "int32")
}

// Int16s converts the measurements to int16, truncating toward zero.
func (w *Well) Int16s() ([]int16, error) {
	return convertInts[int16](w, math.MinInt16, math.MaxInt16, "int16")
}

// Int8s converts the measurements to int8, truncating toward zero.
func (w *Well) Int8s() ([]int8, error) {
	return convertInts[int8](w, math.MinInt8, math.MaxInt8, "int8")
}

// Decimals converts the measurements to arbitrary precision decimals.
// NaN and infinities cannot be represented and report errs.ErrOverflow.
func (w *Well) Decimals() ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(w.data))
	for i, v := range w.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, w.overflow(i, v, "decimal")
		}
		out[i] = decimal.NewFromFloat(v)
	}

	return out, nil
}

// BigInts converts the measurements to big integers, truncating toward zero.
func (w *Well) BigInts() ([]*big.Int, error) {
	decs, err := w.Decimals()
	if err != nil {
		return nil, err
	}

	out := make([]*big.Int, len(decs))
	for i, d := range decs {
		out[i] = d.BigInt()
	}

	return out, nil
}

type signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

func convertInts[T signed](w *Well, lo, hi float64, target string) ([]T, error) {
	out := make([]T, len(w.data))
	for i, v := range w.data {
		t := math.Trunc(v)
		// hi is not exactly representable for int64; float64(MaxInt64) rounds
		// up to 2^63, which must already overflow.
		if math.IsNaN(v) || t < lo || t >= hi+1 {
			return nil, w.overflow(i, v, target)
		}
		out[i] = T(t)
	}

	return out, nil
}

func (w *Well) overflow(i int, v float64, target string) error {
	return fmt.Errorf("%w: well %s value %d (%g) does not fit %s", errs.ErrOverflow, w.index, i, v, target)
}
