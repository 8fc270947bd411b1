package tonal

import (
	"strings"

	"github.com/RyanBlaney/grandstaff/algorithms/chroma"
)

// Accidental is the glyph drawn in front of a note head
type Accidental int

const (
	AccidentalNone Accidental = iota
	AccidentalSharp
	AccidentalFlat
	AccidentalNatural
	AccidentalDoubleSharp
	AccidentalDoubleFlat
)

func (a Accidental) String() string {
	switch a {
	case AccidentalSharp:
		return "sharp"
	case AccidentalFlat:
		return "flat"
	case AccidentalNatural:
		return "natural"
	case AccidentalDoubleSharp:
		return "double-sharp"
	case AccidentalDoubleFlat:
		return "double-flat"
	default:
		return "none"
	}
}

// Symbol returns the printable glyph, empty for AccidentalNone
func (a Accidental) Symbol() string {
	switch a {
	case AccidentalSharp:
		return "♯"
	case AccidentalFlat:
		return "♭"
	case AccidentalNatural:
		return "♮"
	case AccidentalDoubleSharp:
		return "𝄪"
	case AccidentalDoubleFlat:
		return "𝄫"
	default:
		return ""
	}
}

// NoteSpelling tells a renderer how to draw one sounding note
type NoteSpelling struct {
	Name       string     `json:"name"`       // Spelled note name, e.g. "E#" or "Bbb"
	Anchor     int        `json:"anchor"`     // MIDI pitch of the natural letter the head sits on
	Accidental Accidental `json:"accidental"` // Glyph to draw, none when the key implies it
}

// spellingContext is everything a rule can look at for one note
type spellingContext struct {
	midi  int
	pc    chroma.PitchClass
	sharp string
	flat  string
	key   Key
	chord Chord
}

func (c spellingContext) hasChord() bool {
	return !c.chord.IsNone()
}

func (c spellingContext) family() ChordFamily {
	return c.chord.Shape.Family
}

func (c spellingContext) root() string {
	return c.chord.Root
}

// interval is the ascending distance from the chord root in semitones
func (c spellingContext) interval() int {
	return c.chord.RootPitchClass.IntervalTo(c.pc)
}

// Diminished chords on F and C reach a double flat instead of the rule for
// diminished members
func (c spellingContext) diminishedDoubleFlat() bool {
	if !c.hasChord() || c.family() != FamilyDiminished {
		return false
	}
	return (c.sharp == "D" && c.root() == "F") || (c.sharp == "A" && c.root() == "C")
}

type spellingRule struct {
	name  string
	apply func(c spellingContext) (NoteSpelling, bool)
}

// Rules are evaluated in order; the first that applies wins
var spellingRules = []spellingRule{
	{"preference-key", spellPreferenceKey},
	{"diminished", spellDiminished},
	{"double-accidental", spellDoubleAccidental},
	{"flattened-degree", spellFlattenedDegree},
	{"sharpened-degree", spellSharpenedDegree},
	{"superpower", spellSuperpower},
	{"key-signature", spellKeySignature},
}

// Spell decides the name, staff anchor and accidental for one MIDI note drawn
// in key under chord. Pass a zero Chord when nothing was recognized. Spell is
// a pure function of its arguments.
func Spell(midi int, key Key, chord Chord) NoteSpelling {
	pc := chroma.FromMIDI(midi)
	ctx := spellingContext{
		midi:  midi,
		pc:    pc,
		sharp: pc.SharpName(),
		flat:  pc.FlatName(),
		key:   key,
		chord: chord,
	}

	for _, rule := range spellingRules {
		if s, ok := rule.apply(ctx); ok {
			return s
		}
	}
	// key-signature always applies
	return spellAgainstKey(ctx.sharp, midi, key)
}

// SpellNotes spells every note of a set
func SpellNotes(notes chroma.NoteSet, key Key, chord Chord) []NoteSpelling {
	midi := notes.Notes()
	spellings := make([]NoteSpelling, len(midi))
	for i, n := range midi {
		spellings[i] = Spell(n, key, chord)
	}
	return spellings
}

// The Sharps and Flats keys draw every accidental explicitly
func spellPreferenceKey(c spellingContext) (NoteSpelling, bool) {
	switch c.key.Preference {
	case PreferSharps:
		if c.pc.IsAccidental() {
			return NoteSpelling{c.sharp, c.midi - 1, AccidentalSharp}, true
		}
		return NoteSpelling{c.sharp, c.midi, AccidentalNone}, true
	case PreferFlats:
		if c.pc.IsAccidental() {
			return NoteSpelling{c.flat, c.midi + 1, AccidentalFlat}, true
		}
		return NoteSpelling{c.flat, c.midi, AccidentalNone}, true
	}
	return NoteSpelling{}, false
}

func spellDiminished(c spellingContext) (NoteSpelling, bool) {
	if !c.hasChord() || c.family() != FamilyDiminished || c.diminishedDoubleFlat() {
		return NoteSpelling{}, false
	}

	root := c.root()
	switch {
	case c.sharp == root:
		return spellAgainstKey(c.sharp, c.midi, c.key), true
	case c.pc.IsAccidental():
		// F# over D# and C# over A# would otherwise need Gb and Db against a sharp root
		if (root == "D#" && c.pc == 6) || (root == "A#" && c.pc == 1) {
			return spellAgainstKey(c.sharp, c.midi, c.key), true
		}
		return spellAgainstKey(c.flat, c.midi, c.key), true
	case c.sharp == "B" && (root == "F" || root == "D"):
		return flatRespelling("Cb", c.midi, c.key), true
	case c.sharp == "E" && root == "G":
		return flatRespelling("Fb", c.midi, c.key), true
	}
	return spellAgainstKey(c.sharp, c.midi, c.key), true
}

var doubleSharpPairs = map[string]string{"G": "G#", "D": "D#", "A": "A#"}

func spellDoubleAccidental(c spellingContext) (NoteSpelling, bool) {
	if !c.hasChord() || c.pc.IsAccidental() {
		return NoteSpelling{}, false
	}

	if root, ok := doubleSharpPairs[c.sharp]; ok && c.root() == root {
		letter := chroma.LetterStep(c.sharp[0], -1)
		return NoteSpelling{string(letter) + "##", c.midi - 2, AccidentalDoubleSharp}, true
	}
	if c.diminishedDoubleFlat() {
		letter := chroma.LetterStep(c.sharp[0], 1)
		return NoteSpelling{string(letter) + "bb", c.midi + 2, AccidentalDoubleFlat}, true
	}
	return NoteSpelling{}, false
}

func spellFlattenedDegree(c spellingContext) (NoteSpelling, bool) {
	if !c.hasChord() || !c.chord.Shape.FlattensInterval(c.interval()) {
		return NoteSpelling{}, false
	}
	return spellAgainstKey(c.flat, c.midi, c.key), true
}

func spellSharpenedDegree(c spellingContext) (NoteSpelling, bool) {
	if !c.hasChord() || !c.chord.Shape.SharpensInterval(c.interval()) {
		return NoteSpelling{}, false
	}
	return spellAgainstKey(c.sharp, c.midi, c.key), true
}

func spellSuperpower(c spellingContext) (NoteSpelling, bool) {
	if !c.hasChord() {
		return NoteSpelling{}, false
	}
	own, ok := OwnKey(c.root(), c.family())
	if !ok {
		return NoteSpelling{}, false
	}
	return spellAgainstKey(c.pc.Name(own.NumSharps > 0), c.midi, c.key), true
}

func spellKeySignature(c spellingContext) (NoteSpelling, bool) {
	if letter, ok := c.key.LetterFor(c.pc); ok {
		return NoteSpelling{letter, anchorFor(letter, c.midi), AccidentalNone}, true
	}

	if c.hasChord() && len(c.root()) == 2 {
		switch {
		case strings.HasSuffix(c.root(), "#") && c.sharp == "F":
			return NoteSpelling{"E#", c.midi - 1, AccidentalSharp}, true
		case strings.HasSuffix(c.root(), "#") && c.sharp == "C":
			return NoteSpelling{"B#", c.midi - 1, AccidentalSharp}, true
		case strings.HasSuffix(c.root(), "b") && c.sharp == "B":
			return NoteSpelling{"Cb", c.midi + 1, AccidentalFlat}, true
		case strings.HasSuffix(c.root(), "b") && c.sharp == "E":
			return NoteSpelling{"Fb", c.midi + 1, AccidentalFlat}, true
		}
	}

	return spellAgainstKey(c.pc.Name(c.key.PrefersSharps()), c.midi, c.key), true
}

// spellAgainstKey anchors a chosen name and draws its accidental unless the
// key signature already supplies it. Naturals missing from the key get a
// natural sign.
func spellAgainstKey(name string, midi int, key Key) NoteSpelling {
	switch {
	case len(name) == 1:
		if key.HasLetter(name) {
			return NoteSpelling{name, midi, AccidentalNone}
		}
		return NoteSpelling{name, midi, AccidentalNatural}
	case strings.HasSuffix(name, "#"):
		if key.HasLetter(name) {
			return NoteSpelling{name, midi - 1, AccidentalNone}
		}
		return NoteSpelling{name, midi - 1, AccidentalSharp}
	default:
		if key.HasLetter(name) {
			return NoteSpelling{name, midi + 1, AccidentalNone}
		}
		return NoteSpelling{name, midi + 1, AccidentalFlat}
	}
}

// flatRespelling draws a natural as the flat of the letter above (B as Cb)
func flatRespelling(name string, midi int, key Key) NoteSpelling {
	if key.HasLetter(name) {
		return NoteSpelling{name, midi + 1, AccidentalNone}
	}
	return NoteSpelling{name, midi + 1, AccidentalFlat}
}

// anchorFor returns the MIDI pitch of name's natural letter nearest to midi
func anchorFor(name string, midi int) int {
	natural, ok := chroma.NaturalPitchClass(name[0])
	if !ok {
		return midi
	}
	diff := int(chroma.NewPitchClass(int(chroma.FromMIDI(midi))-int(natural)+6)) - 6
	return midi - diff
}
