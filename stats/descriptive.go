package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Func reduces the values of one well to a scalar.
type Func func(values []float64) float64

// Mean returns the arithmetic mean.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return stat.Mean(values, nil)
}

// Median returns the middle value, or the mean of the two middle values for
// an even count.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}

	sorted := slices.Sorted(slices.Values(values))
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Variance returns the unbiased sample variance.
func Variance(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}

	return stat.Variance(values, nil)
}

// StdDev returns the sample standard deviation.
func StdDev(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}

	return stat.StdDev(values, nil)
}

// Min returns the smallest value.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return floats.Min(values)
}

// Max returns the largest value.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return floats.Max(values)
}

// Sum returns the sum of the values.
func Sum(values []float64) float64 {
	return floats.Sum(values)
}

// Count returns the number of values.
func Count(values []float64) float64 {
	return float64(len(values))
}

// SumOfSquares returns the sum of the squared values.
func SumOfSquares(values []float64) float64 {
	return floats.Dot(values, values)
}

// GeometricMean returns the geometric mean. Values must be positive.
func GeometricMean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return stat.GeometricMean(values, nil)
}

// HarmonicMean returns the harmonic mean.
func HarmonicMean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return stat.HarmonicMean(values, nil)
}

// Skewness returns the sample skewness. At least three values are needed.
func Skewness(values []float64) float64 {
	if len(values) < 3 {
		return math.NaN()
	}

	return stat.Skew(values, nil)
}

// Kurtosis returns the sample excess kurtosis. At least four values are
// needed.
func Kurtosis(values []float64) float64 {
	if len(values) < 4 {
		return math.NaN()
	}

	return stat.ExKurtosis(values, nil)
}

// Quantile returns a Func computing the empirical p-quantile, p in [0, 1].
// Out of range p yields NaN.
func Quantile(p float64) Func {
	return func(values []float64) float64 {
		if len(values) == 0 || p < 0 || p > 1 || math.IsNaN(p) {
			return math.NaN()
		}
		sorted := slices.Sorted(slices.Values(values))

		return stat.Quantile(p, stat.Empirical, sorted, nil)
	}
}

// Summary bundles the common descriptive statistics of one sample.
type Summary struct {
	N      int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
	P25    float64
	P75    float64
}

// Describe computes a Summary of values.
func Describe(values []float64) Summary {
	return Summary{
		N:      len(values),
		Mean:   Mean(values),
		Median: Median(values),
		StdDev: StdDev(values),
		Min:    Min(values),
		Max:    Max(values),
		P25:    Quantile(0.25)(values),
		P75:    Quantile(0.75)(values),
	}
}
