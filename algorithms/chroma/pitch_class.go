package chroma

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidNote is returned for MIDI note numbers outside 0-127
	ErrInvalidNote = errors.New("invalid midi note")

	// ErrInvalidPitchName is returned when a note name cannot be parsed
	ErrInvalidPitchName = errors.New("invalid pitch name")
)

const (
	// MinNote is the lowest MIDI note number
	MinNote = 0
	// MaxNote is the highest MIDI note number
	MaxNote = 127
	// NumPitchClasses is the number of pitch classes in an octave
	NumPitchClasses = 12
)

// Letters holds the seven natural note letters in staff order
const Letters = "CDEFGAB"

// PitchClass is a note reduced modulo 12 (0=C, 1=C#/Db, ..., 11=B)
type PitchClass int

var sharpNames = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [NumPitchClasses]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var naturalPitch = map[byte]int{'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11}

// NewPitchClass reduces any integer to a pitch class
func NewPitchClass(value int) PitchClass {
	return PitchClass(((value % NumPitchClasses) + NumPitchClasses) % NumPitchClasses)
}

// FromMIDI returns the pitch class of a MIDI note number
func FromMIDI(note int) PitchClass {
	return NewPitchClass(note)
}

// SharpName returns the name using sharps for accidentals ("C#")
func (pc PitchClass) SharpName() string {
	return sharpNames[NewPitchClass(int(pc))]
}

// FlatName returns the name using flats for accidentals ("Db")
func (pc PitchClass) FlatName() string {
	return flatNames[NewPitchClass(int(pc))]
}

// Name returns the sharp or flat spelling
func (pc PitchClass) Name(sharp bool) string {
	if sharp {
		return pc.SharpName()
	}
	return pc.FlatName()
}

// IsAccidental reports whether the pitch class is a black key
func (pc PitchClass) IsAccidental() bool {
	return len(pc.SharpName()) > 1
}

// Transpose shifts the pitch class by a number of semitones
func (pc PitchClass) Transpose(semitones int) PitchClass {
	return NewPitchClass(int(pc) + semitones)
}

// IntervalTo returns the ascending interval in semitones from pc to other
func (pc PitchClass) IntervalTo(other PitchClass) int {
	return int(NewPitchClass(int(other) - int(pc)))
}

func (pc PitchClass) String() string {
	return pc.SharpName()
}

// ParsePitchName parses a note name such as "C", "F#", "Bb", "G##" or "Ebb"
func ParsePitchName(name string) (PitchClass, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("%w: empty name", ErrInvalidPitchName)
	}

	base, ok := naturalPitch[strings.ToUpper(name[:1])[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPitchName, name)
	}

	offset := 0
	for _, r := range name[1:] {
		switch r {
		case '#':
			offset++
		case 'b':
			offset--
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidPitchName, name)
		}
	}
	if offset < -2 || offset > 2 {
		return 0, fmt.Errorf("%w: %q has too many accidentals", ErrInvalidPitchName, name)
	}

	return NewPitchClass(base + offset), nil
}

// NaturalPitchClass returns the pitch class of a natural letter (C, D, ... B)
func NaturalPitchClass(letter byte) (PitchClass, bool) {
	v, ok := naturalPitch[letter]
	return PitchClass(v), ok
}

// LetterStep moves a natural letter by a number of staff steps ('C', 1 -> 'D', 'C', -1 -> 'B')
func LetterStep(letter byte, steps int) byte {
	idx := strings.IndexByte(Letters, letter)
	if idx < 0 {
		return letter
	}
	n := len(Letters)
	return Letters[((idx+steps)%n+n)%n]
}

// ValidateNote checks that a MIDI note number is within range
func ValidateNote(note int) error {
	if note < MinNote || note > MaxNote {
		return fmt.Errorf("%w: %d", ErrInvalidNote, note)
	}
	return nil
}
