package chroma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIntervalPattern(t *testing.T) {
	p, err := ParseIntervalPattern("100010010000")
	require.NoError(t, err)

	assert.True(t, p.Has(0))
	assert.True(t, p.Has(4))
	assert.True(t, p.Has(7))
	assert.True(t, p.Has(16), "intervals reduce modulo 12")
	assert.False(t, p.Has(3))
	assert.Equal(t, []int{0, 4, 7}, p.Intervals())
	assert.Equal(t, 3, p.Size())
	assert.Equal(t, []int{64, 68, 71}, p.Voicing(64))
}

func TestParseIntervalPatternErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"too short", "10001001"},
		{"too long", "1000100100000"},
		{"bad character", "10001001000x"},
		{"missing bass", "000010010000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseIntervalPattern(tt.pattern)
			assert.ErrorIs(t, err, ErrInvalidPattern)
		})
	}
}

func TestPatternFromIntervals(t *testing.T) {
	assert.Equal(t, IntervalPattern("100010010010"), PatternFromIntervals(4, 7, 10))
	assert.Equal(t, IntervalPattern("110000000000"), PatternFromIntervals(13))
	assert.Equal(t, IntervalPattern("100000000000"), PatternFromIntervals())
}

func TestChromaVectorHelpers(t *testing.T) {
	cv := NewChromaVector([]float64{0, 0, 3, 0, 0, 0, 0, 1, 0, 0, 0, 0})

	pc, v := cv.Dominant()
	assert.Equal(t, PitchClass(2), pc)
	assert.Equal(t, 3.0, v)

	shifted := cv.CircularShift(2)
	assert.Equal(t, 3.0, shifted.Values[0])
	assert.Equal(t, 1.0, shifted.Values[5])

	norm := cv.Normalize()
	assert.True(t, norm.Normalized)
	assert.InDelta(t, 1.0, norm.Energy, 1e-9)

	assert.InDelta(t, 1.0, cv.Similarity(cv), 1e-9)
}
