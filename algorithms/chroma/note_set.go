package chroma

import (
	"fmt"
	"slices"
	"strings"
)

// NoteSet is an ascending, duplicate-free collection of MIDI note numbers.
// The zero value is an empty set.
type NoteSet struct {
	notes []int
}

// NewNoteSet sorts and de-duplicates notes, rejecting anything outside 0-127
func NewNoteSet(notes ...int) (NoteSet, error) {
	sorted := make([]int, 0, len(notes))
	for _, n := range notes {
		if err := ValidateNote(n); err != nil {
			return NoteSet{}, err
		}
		sorted = append(sorted, n)
	}

	slices.Sort(sorted)
	return NoteSet{notes: slices.Compact(sorted)}, nil
}

// MustNoteSet is NewNoteSet that panics on invalid input
func MustNoteSet(notes ...int) NoteSet {
	ns, err := NewNoteSet(notes...)
	if err != nil {
		panic(err)
	}
	return ns
}

// Notes returns a copy of the notes in ascending order
func (ns NoteSet) Notes() []int {
	return slices.Clone(ns.notes)
}

// Len returns the number of distinct notes
func (ns NoteSet) Len() int {
	return len(ns.notes)
}

// IsEmpty reports whether the set has no notes
func (ns NoteSet) IsEmpty() bool {
	return len(ns.notes) == 0
}

// Contains reports whether note is in the set
func (ns NoteSet) Contains(note int) bool {
	_, found := slices.BinarySearch(ns.notes, note)
	return found
}

// Bass returns the lowest note, or false for an empty set
func (ns NoteSet) Bass() (int, bool) {
	if len(ns.notes) == 0 {
		return 0, false
	}
	return ns.notes[0], true
}

// PitchClasses returns the distinct pitch classes in ascending order
func (ns NoteSet) PitchClasses() []PitchClass {
	var present [NumPitchClasses]bool
	for _, n := range ns.notes {
		present[FromMIDI(n)] = true
	}

	pcs := make([]PitchClass, 0, NumPitchClasses)
	for pc, ok := range present {
		if ok {
			pcs = append(pcs, PitchClass(pc))
		}
	}
	return pcs
}

// Transpose shifts every note by semitones. Notes leaving 0-127 are an error.
func (ns NoteSet) Transpose(semitones int) (NoteSet, error) {
	shifted := make([]int, len(ns.notes))
	for i, n := range ns.notes {
		shifted[i] = n + semitones
	}

	result, err := NewNoteSet(shifted...)
	if err != nil {
		return NoteSet{}, fmt.Errorf("transpose by %d: %w", semitones, err)
	}
	return result, nil
}

// Chroma returns a binary 12-bin chroma vector of the sounding pitch classes
func (ns NoteSet) Chroma() ChromaVector {
	values := make([]float64, NumPitchClasses)
	for _, n := range ns.notes {
		values[FromMIDI(n)] = 1
	}
	return NewChromaVector(values)
}

func (ns NoteSet) String() string {
	parts := make([]string, len(ns.notes))
	for i, n := range ns.notes {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
