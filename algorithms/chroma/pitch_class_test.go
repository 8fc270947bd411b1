package chroma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchClassNames(t *testing.T) {
	tests := []struct {
		pc         PitchClass
		sharp      string
		flat       string
		accidental bool
	}{
		{0, "C", "C", false},
		{1, "C#", "Db", true},
		{3, "D#", "Eb", true},
		{4, "E", "E", false},
		{6, "F#", "Gb", true},
		{10, "A#", "Bb", true},
		{11, "B", "B", false},
	}

	for _, tt := range tests {
		t.Run(tt.sharp, func(t *testing.T) {
			assert.Equal(t, tt.sharp, tt.pc.SharpName())
			assert.Equal(t, tt.flat, tt.pc.FlatName())
			assert.Equal(t, tt.accidental, tt.pc.IsAccidental())
			assert.Equal(t, tt.sharp, tt.pc.Name(true))
			assert.Equal(t, tt.flat, tt.pc.Name(false))
		})
	}
}

func TestFromMIDIAlwaysReduces(t *testing.T) {
	assert.Equal(t, PitchClass(0), FromMIDI(60))
	assert.Equal(t, PitchClass(11), FromMIDI(71))
	assert.Equal(t, PitchClass(11), NewPitchClass(-1))
	assert.Equal(t, PitchClass(2), NewPitchClass(26))
}

func TestTransposeAndInterval(t *testing.T) {
	assert.Equal(t, PitchClass(1), PitchClass(10).Transpose(3))
	assert.Equal(t, PitchClass(9), PitchClass(0).Transpose(-3))
	assert.Equal(t, 4, PitchClass(0).IntervalTo(4))
	assert.Equal(t, 8, PitchClass(4).IntervalTo(0))
	assert.Equal(t, 0, PitchClass(7).IntervalTo(7))
}

func TestParsePitchName(t *testing.T) {
	tests := []struct {
		name string
		want PitchClass
	}{
		{"C", 0},
		{"c", 0},
		{"F#", 6},
		{"Bb", 10},
		{"E#", 5},
		{"Cb", 11},
		{"F##", 7},
		{"Ebb", 2},
		{" A ", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pc, err := ParsePitchName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pc)
		})
	}
}

func TestParsePitchNameErrors(t *testing.T) {
	for _, name := range []string{"", "H", "C$", "C###", "Dbbb"} {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePitchName(name)
			assert.ErrorIs(t, err, ErrInvalidPitchName)
		})
	}
}

func TestLetterStep(t *testing.T) {
	assert.Equal(t, byte('D'), LetterStep('C', 1))
	assert.Equal(t, byte('B'), LetterStep('C', -1))
	assert.Equal(t, byte('F'), LetterStep('G', -1))
	assert.Equal(t, byte('C'), LetterStep('B', 1))
	assert.Equal(t, byte('x'), LetterStep('x', 1))
}

func TestValidateNote(t *testing.T) {
	assert.NoError(t, ValidateNote(0))
	assert.NoError(t, ValidateNote(127))
	assert.ErrorIs(t, ValidateNote(-1), ErrInvalidNote)
	assert.ErrorIs(t, ValidateNote(128), ErrInvalidNote)
}
