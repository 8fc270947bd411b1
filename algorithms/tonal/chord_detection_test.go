package tonal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/grandstaff/algorithms/chroma"
	"github.com/RyanBlaney/grandstaff/logging"
)

func newTestRecognizer(opts ...RecognizerOption) *ChordRecognizer {
	opts = append([]RecognizerOption{WithLogger(&logging.NoOpLogger{})}, opts...)
	return NewChordRecognizer(opts...)
}

func TestRecognize(t *testing.T) {
	tests := []struct {
		name   string
		notes  []int
		key    string
		full   string
		short  string
		family ChordFamily
	}{
		{"tritone", []int{60, 66}, "C", "C-tritone", "C-tt", FamilyTritone},
		{"power chord", []int{60, 67}, "C", "C5", "C5", FamilyMajor},
		{"fourth", []int{60, 65}, "C", "C4", "C4", FamilySuspended},
		{"major triad", []int{60, 64, 67}, "C", "C", "C", FamilyMajor},
		{"first inversion", []int{64, 67, 72}, "C", "C/E", "C/E", FamilyMajor},
		{"second inversion", []int{67, 72, 76}, "C", "C/G", "C/G", FamilyMajor},
		{"open second inversion", []int{55, 64, 67, 72}, "Eb", "C/G", "C/G", FamilyMajor},
		{"inverted major seventh", []int{64, 67, 71, 72}, "C", "Cmaj7/E", "CΔ7/E", FamilyMajor},
		{"dominant over third", []int{52, 55, 58, 60}, "C", "C7/E", "C7/E", FamilyMajor},
		{"dominant over seventh", []int{58, 60, 64, 67}, "C", "C7/Bb", "C7/Bb", FamilyMajor},
		{"sixth wins over minor seventh", []int{63, 67, 70, 72}, "C", "Eb6", "Eb6", FamilyMajor},
		{"flat key spells flat root", []int{61, 65, 68}, "C", "Db", "Db", FamilyMajor},
		{"sharp key spells sharp root", []int{61, 65, 68}, "A", "C#", "C#", FamilyMajor},
		{"F# major in C", []int{66, 70, 73}, "C", "Gb", "Gb", FamilyMajor},
		{"F# major in E", []int{66, 70, 73}, "E", "F#", "F#", FamilyMajor},
		{"F# minor avoids Gb", []int{66, 69, 73}, "C", "F#min", "F#m", FamilyMinor},
		{"flats key forces Gb", []int{66, 69, 73}, "Flats", "Gbmin", "Gbm", FamilyMinor},
		{"diminished seventh", []int{63, 66, 69, 72}, "C", "D#dim7", "D#°7", FamilyDiminished},
		{"diminished triad", []int{61, 64, 67}, "C", "C#dim", "C#°", FamilyDiminished},
		{"superpower inversion bass", []int{66, 69, 74}, "F", "D/F#", "D/F#", FamilyMajor},
		{"augmented", []int{61, 65, 69}, "A", "C#aug", "C#+", FamilyAugmented},
		{"flat nine", []int{60, 64, 67, 70, 73}, "C", "C7b9", "C7b9", FamilyMajor},
		{"sharp nine", []int{60, 64, 67, 70, 75}, "C", "C7#9", "C7#9", FamilyMajor},
		{"minor triad", []int{64, 67, 71}, "C", "Emin", "Em", FamilyMinor},
		{"minor in flat key", []int{60, 63, 67}, "Bb", "Cmin", "Cm", FamilyMinor},
		{"minor inversion", []int{62, 67, 70}, "C", "Gmin/D", "Gm/D", FamilyMinor},
		{"D# major avoided in E", []int{63, 67, 70}, "E", "Eb", "Eb", FamilyMajor},
		{"sharps key keeps D#", []int{63, 67, 70}, "Sharps", "D#", "D#", FamilyMajor},
		{"Eb major in flats", []int{63, 67, 70}, "Flats", "Eb", "Eb", FamilyMajor},
		{"G# major seventh", []int{68, 72, 75, 79}, "E", "G#maj7", "G#Δ7", FamilyMajor},
	}

	r := newTestRecognizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord := r.Recognize(chroma.MustNoteSet(tt.notes...), MustKey(tt.key))

			require.False(t, chord.IsNone())
			assert.Equal(t, tt.full, chord.Name(false))
			assert.Equal(t, tt.short, chord.Name(true))
			assert.Equal(t, tt.family, chord.Family())
		})
	}
}

func TestRecognizeRootAndBass(t *testing.T) {
	r := newTestRecognizer()
	key := MustKey("C")

	chord := r.Recognize(chroma.MustNoteSet(60, 64, 67), key)
	assert.Equal(t, "C", chord.Root)
	assert.Equal(t, "", chord.Bass)
	assert.False(t, chord.IsInversion())

	chord = r.Recognize(chroma.MustNoteSet(64, 67, 72), key)
	assert.Equal(t, "C", chord.Root)
	assert.Equal(t, "E", chord.Bass)
	assert.Equal(t, chroma.PitchClass(0), chord.RootPitchClass)
	assert.Equal(t, chroma.PitchClass(4), chord.BassPitchClass)
	assert.True(t, chord.IsInversion())
	assert.Equal(t, "major", chord.Family().String())

	chord = r.Recognize(chroma.MustNoteSet(60, 66), key)
	assert.Equal(t, "C", chord.Root)
	assert.Equal(t, FamilyTritone, chord.Family())
}

func TestRecognizeNoMatch(t *testing.T) {
	tests := []struct {
		name  string
		notes []int
	}{
		{"empty", nil},
		{"single note", []int{60}},
		{"octave", []int{60, 72}},
		{"minor second", []int{60, 61}},
		{"two notes never rotate", []int{64, 72}},
	}

	r := newTestRecognizer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chord := r.Recognize(chroma.MustNoteSet(tt.notes...), MustKey("C"))
			assert.True(t, chord.IsNone())
			assert.Equal(t, "", chord.Name(false))
		})
	}
}

func TestRecognizeRoundTripsEveryShape(t *testing.T) {
	r := newTestRecognizer()
	key := MustKey("C")

	for _, shape := range DefaultPatternDictionary().Shapes() {
		for bass := 48; bass < 60; bass++ {
			notes := chroma.MustNoteSet(shape.Pattern.Voicing(bass)...)
			chord := r.Recognize(notes, key)

			require.Equal(t, shape.Pattern, chord.Shape.Pattern, "%s over %d", shape.FullName, bass)
			assert.Equal(t, chroma.FromMIDI(bass), chord.RootPitchClass)
			assert.False(t, chord.IsInversion())
		}
	}
}

func TestRecognizeIsOctaveInvariant(t *testing.T) {
	sets := [][]int{
		{60, 64, 67},
		{64, 67, 72},
		{52, 55, 58, 60},
		{63, 66, 69, 72},
		{60, 64, 67, 70, 73},
		{62, 67, 70},
	}

	r := newTestRecognizer()
	for _, key := range Keys() {
		for _, notes := range sets {
			base := chroma.MustNoteSet(notes...)
			want := r.Recognize(base, key).Name(false)

			for _, shift := range []int{-24, -12, 12, 24} {
				moved, err := base.Transpose(shift)
				require.NoError(t, err)
				assert.Equal(t, want, r.Recognize(moved, key).Name(false), "%v by %d in %s", notes, shift, key.Name)
			}
		}
	}
}

func TestEasterEggCaptionIsStable(t *testing.T) {
	picks := 0
	r := newTestRecognizer(
		WithCaptions([]string{"first", "second", "third"}),
		WithCaptionPicker(func(n int) int {
			picks++
			return (picks - 1) % n
		}),
	)
	key := MustKey("C")
	cluster := chroma.MustNoteSet(60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71)

	chord := r.Recognize(cluster, key)
	require.Equal(t, FamilyEasterEgg, chord.Family())
	assert.Equal(t, "first", chord.Name(false))
	assert.Equal(t, "first", chord.Name(true))

	// repeated detections keep the caption
	for i := 0; i < 3; i++ {
		assert.Equal(t, "first", r.Recognize(cluster, key).Name(false))
	}
	assert.Equal(t, 1, picks)

	// an intervening chord lets the caption change
	r.Recognize(chroma.MustNoteSet(60, 64, 67), key)
	assert.Equal(t, "second", r.Recognize(cluster, key).Name(false))

	// an empty recognition counts as a different family too
	r.Recognize(chroma.NoteSet{}, key)
	assert.Equal(t, "third", r.Recognize(cluster, key).Name(false))
	assert.Equal(t, 3, picks)

	r.Reset()
	assert.Equal(t, "first", r.Recognize(cluster, key).Name(false))
}

func TestRecognizersDoNotShareState(t *testing.T) {
	pickFirst := WithCaptionPicker(func(int) int { return 0 })
	pickLast := WithCaptionPicker(func(n int) int { return n - 1 })
	captions := WithCaptions([]string{"a", "b"})

	a := newTestRecognizer(captions, pickFirst)
	b := newTestRecognizer(captions, pickLast)
	cluster := chroma.MustNoteSet(60, 61, 62, 63, 64, 65, 66, 67, 68, 69, 70, 71)

	assert.Equal(t, "a", a.Recognize(cluster, MustKey("C")).Name(false))
	assert.Equal(t, "b", b.Recognize(cluster, MustKey("C")).Name(false))
}

func TestRecognizeWithCustomDictionary(t *testing.T) {
	dict, err := NewPatternDictionary([]ChordShapeDefinition{
		{"100010010000", "maj", "M", FamilyMajor, 0},
	})
	require.NoError(t, err)

	r := newTestRecognizer(WithDictionary(dict))
	assert.Equal(t, "Cmaj/E", r.Recognize(chroma.MustNoteSet(64, 67, 72), MustKey("C")).Name(false))
	assert.True(t, r.Recognize(chroma.MustNoteSet(60, 63, 67), MustKey("C")).IsNone())
}
