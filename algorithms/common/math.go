package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Basic numeric helpers shared by the pitch-class algorithms, backed by gonum

// Energy returns the sum of squares
func Energy(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Dot(data, data)
}

// EnergyNormalize normalizes by total energy
func EnergyNormalize(data []float64) []float64 {
	if len(data) == 0 {
		return data
	}

	energy := Energy(data)
	normalized := make([]float64, len(data))
	if energy < 1e-10 {
		copy(normalized, data)
		return normalized // Unchanged if no energy
	}

	floats.ScaleTo(normalized, 1/math.Sqrt(energy), data)
	return normalized
}

// Correlation calculates Pearson correlation coefficient between two series.
// Constant series have no defined correlation and yield 0.
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0.0
	}

	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) {
		return 0.0
	}
	return r
}

// ArgMax returns the index of the largest element, or -1 for empty input.
// Ties resolve to the lowest index.
func ArgMax(data []float64) int {
	if len(data) == 0 {
		return -1
	}
	return floats.MaxIdx(data)
}

// Rotate returns a copy of data circularly shifted left by shift positions
func Rotate(data []float64, shift int) []float64 {
	n := len(data)
	rotated := make([]float64, n)
	if n == 0 {
		return rotated
	}
	for i := range data {
		rotated[i] = data[((i+shift)%n+n)%n]
	}
	return rotated
}
