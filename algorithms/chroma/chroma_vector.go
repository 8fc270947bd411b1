package chroma

import (
	"github.com/RyanBlaney/grandstaff/algorithms/common"
)

// ChromaVector is a 12-bin pitch class distribution indexed from C
type ChromaVector struct {
	Values     []float64 `json:"values"`     // Chroma values (one per pitch class)
	Size       int       `json:"size"`       // Vector size (always 12 here)
	Normalized bool      `json:"normalized"` // Whether vector is energy normalized
	Energy     float64   `json:"energy"`     // Total energy
}

// NewChromaVector creates a ChromaVector from values, padding or truncating to 12 bins
func NewChromaVector(values []float64) ChromaVector {
	cv := ChromaVector{
		Values: make([]float64, NumPitchClasses),
		Size:   NumPitchClasses,
	}
	copy(cv.Values, values)
	cv.Energy = common.Energy(cv.Values)

	return cv
}

// Normalize returns an energy-normalized copy
func (cv ChromaVector) Normalize() ChromaVector {
	result := cv
	result.Values = common.EnergyNormalize(cv.Values)
	result.Normalized = true
	result.Energy = common.Energy(result.Values)

	return result
}

// CircularShift rotates the vector so that bin shift becomes bin 0
func (cv ChromaVector) CircularShift(shift int) ChromaVector {
	shifted := cv
	shifted.Values = common.Rotate(cv.Values, shift)
	return shifted
}

// Dominant returns the strongest pitch class and its value
func (cv ChromaVector) Dominant() (PitchClass, float64) {
	idx := common.ArgMax(cv.Values)
	if idx < 0 {
		return 0, 0
	}
	return PitchClass(idx), cv.Values[idx]
}

// Active returns the pitch classes with a non-zero value in ascending order
func (cv ChromaVector) Active() []PitchClass {
	active := make([]PitchClass, 0, len(cv.Values))
	for i, v := range cv.Values {
		if v > 0 {
			active = append(active, PitchClass(i))
		}
	}
	return active
}

// Similarity returns the Pearson correlation between two vectors
func (cv ChromaVector) Similarity(other ChromaVector) float64 {
	return common.Correlation(cv.Values, other.Values)
}
