package tonal

import (
	"math/rand/v2"
	"sync"

	"github.com/RyanBlaney/grandstaff/algorithms/chroma"
	"github.com/RyanBlaney/grandstaff/logging"
)

// Presence slots cover three octaves starting at the bass pitch class's C
const presenceSlots = 3 * chroma.NumPitchClasses

// DefaultCaptions are shown in place of a name when every pitch class sounds at once
var DefaultCaptions = []string{
	"Cat on the keyboard",
	"Forearm chord",
	"All of them",
	"Tone cluster deluxe",
	"Everything everywhere",
	"Is this jazz?",
}

// Chord is the result of one recognition
type Chord struct {
	Shape          ChordShape        `json:"shape"`
	Root           string            `json:"root"`             // Root note name
	RootPitchClass chroma.PitchClass `json:"root_pitch_class"` // Root pitch class
	Bass           string            `json:"bass"`             // Bass note name, empty unless inverted
	BassPitchClass chroma.PitchClass `json:"bass_pitch_class"` // Lowest sounding pitch class
	Caption        string            `json:"caption"`          // Replaces the name for easter-egg shapes
}

// IsNone reports whether nothing was recognized
func (c Chord) IsNone() bool {
	return c.Shape.IsNone()
}

// Family returns the shape's chord family
func (c Chord) Family() ChordFamily {
	return c.Shape.Family
}

// IsInversion reports whether the bass differs from the root
func (c Chord) IsInversion() bool {
	return c.Bass != ""
}

// IsSuperpower reports whether the chord spells itself from its own key
func (c Chord) IsSuperpower() bool {
	return !c.IsNone() && IsSuperpower(c.Root, c.Shape.Family)
}

// Name returns the display name: root, quality suffix and "/bass" for
// inversions. Easter-egg chords return their caption verbatim.
func (c Chord) Name(short bool) string {
	if c.IsNone() {
		return ""
	}
	if c.Shape.Family == FamilyEasterEgg && c.Caption != "" {
		return c.Caption
	}

	name := c.Root + c.Shape.Suffix(short)
	if c.Bass != "" {
		name += "/" + c.Bass
	}
	return name
}

func (c Chord) String() string {
	return c.Name(false)
}

// RecognizerOption configures a ChordRecognizer
type RecognizerOption func(*ChordRecognizer)

// WithDictionary replaces the compiled-in dictionary
func WithDictionary(dict *PatternDictionary) RecognizerOption {
	return func(r *ChordRecognizer) {
		if dict != nil {
			r.dict = dict
		}
	}
}

// WithLogger sets the logger used for recognition traces
func WithLogger(logger logging.Logger) RecognizerOption {
	return func(r *ChordRecognizer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithCaptions sets the easter-egg captions
func WithCaptions(captions []string) RecognizerOption {
	return func(r *ChordRecognizer) {
		if len(captions) > 0 {
			r.captions = append([]string(nil), captions...)
		}
	}
}

// WithCaptionPicker sets the function choosing a caption index in [0, n)
func WithCaptionPicker(pick func(n int) int) RecognizerOption {
	return func(r *ChordRecognizer) {
		if pick != nil {
			r.pick = pick
		}
	}
}

// ChordRecognizer names chords from sets of MIDI notes. The only state it
// carries across calls is the last family and caption, which keeps an
// easter-egg caption stable while the same family stays active.
type ChordRecognizer struct {
	dict     *PatternDictionary
	logger   logging.Logger
	captions []string
	pick     func(n int) int

	mu          sync.Mutex
	lastFamily  ChordFamily
	lastCaption string
}

// NewChordRecognizer creates a recognizer using the compiled-in dictionary
func NewChordRecognizer(opts ...RecognizerOption) *ChordRecognizer {
	r := &ChordRecognizer{
		dict:     DefaultPatternDictionary(),
		logger:   logging.GetGlobalLogger(),
		captions: DefaultCaptions,
		pick:     rand.IntN,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithFields(logging.Fields{"component": "chord_recognizer"})
	return r
}

// Recognize names the chord formed by notes, spelling root and bass for key.
// It never fails: fewer than two notes or no dictionary match yield a chord
// whose IsNone is true.
func (r *ChordRecognizer) Recognize(notes chroma.NoteSet, key Key) Chord {
	chord := r.match(notes, key)

	r.mu.Lock()
	defer r.mu.Unlock()

	if chord.Shape.Family == FamilyEasterEgg {
		if r.lastFamily != FamilyEasterEgg || r.lastCaption == "" {
			r.lastCaption = r.captions[r.pick(len(r.captions))]
		}
		chord.Caption = r.lastCaption
	}
	r.lastFamily = chord.Shape.Family

	return chord
}

// Reset forgets the previous recognition
func (r *ChordRecognizer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastFamily = FamilyNone
	r.lastCaption = ""
}

func (r *ChordRecognizer) match(notes chroma.NoteSet, key Key) Chord {
	if notes.Len() < 2 {
		return Chord{}
	}

	bassNote, _ := notes.Bass()
	bass := chroma.FromMIDI(bassNote)

	// Condense every note into the bass's octave or the one above
	var slots [presenceSlots]bool
	for _, pc := range notes.PitchClasses() {
		slot := int(pc)
		if pc < bass {
			slot += chroma.NumPitchClasses
		}
		slots[slot] = true
	}
	distinct := len(notes.PitchClasses())

	for {
		cur := lowestSlot(slots[:])
		pattern := patternAt(slots[:], cur)

		if shape, ok := r.dict.Lookup(pattern); ok {
			root := chroma.NewPitchClass(cur)
			chord := Chord{
				Shape:          shape,
				Root:           key.SelectRootName(root, shape.Family),
				RootPitchClass: root,
				BassPitchClass: bass,
			}
			if root != bass {
				chord.Bass = inversionBassName(chord, bass, key)
			}

			r.logger.Debug("Chord matched", logging.Fields{
				"notes":   notes.String(),
				"pattern": pattern.String(),
				"name":    chord.Name(false),
				"family":  shape.Family.String(),
			})
			return chord
		}

		// A two-note bass is never reinterpreted as an inversion
		if distinct <= 2 {
			break
		}

		slots[cur] = false
		if cur+chroma.NumPitchClasses >= presenceSlots {
			break
		}
		slots[cur+chroma.NumPitchClasses] = true

		r.logger.Debug("Rotating bass", logging.Fields{
			"pattern": pattern.String(),
			"bass":    chroma.NewPitchClass(cur).SharpName(),
		})
	}

	r.logger.Debug("No chord matched", logging.Fields{"notes": notes.String()})
	return Chord{}
}

// inversionBassName spells the sounding bass of an inverted chord. Superpower
// chords follow their own key's bias, everything else uses the root rules.
func inversionBassName(chord Chord, bass chroma.PitchClass, key Key) string {
	if own, ok := OwnKey(chord.Root, chord.Shape.Family); ok {
		return bass.Name(own.NumSharps > 0)
	}
	return key.SelectRootName(bass, chord.Shape.Family)
}

func lowestSlot(slots []bool) int {
	for i, on := range slots {
		if on {
			return i
		}
	}
	return -1
}

func patternAt(slots []bool, start int) chroma.IntervalPattern {
	var b [chroma.NumPitchClasses]byte
	for i := range b {
		b[i] = '0'
		if start+i < len(slots) && slots[start+i] {
			b[i] = '1'
		}
	}
	return chroma.IntervalPattern(b[:])
}
