package tonal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RyanBlaney/grandstaff/algorithms/chroma"
)

// ErrUnknownKey is returned when a key name is not in the key table
var ErrUnknownKey = errors.New("unknown key")

// SpellingPreference selects how a key spells accidentals
type SpellingPreference int

const (
	// PreferSignature follows the key signature's sharps or flats
	PreferSignature SpellingPreference = iota
	// PreferSharps always spells accidentals as sharps
	PreferSharps
	// PreferFlats always spells accidentals as flats
	PreferFlats
)

// Key is a display key signature: its seven letter names and accidental count
type Key struct {
	Name       string             `json:"name"`
	Letters    [7]string          `json:"letters"`
	NumSharps  int                `json:"num_sharps"`
	NumFlats   int                `json:"num_flats"`
	Preference SpellingPreference `json:"preference"`
}

// Keys with double sharps in their signature (D#, G#, A# major) are not offered.
var keyTable = []Key{
	{Name: "C", Letters: [7]string{"C", "D", "E", "F", "G", "A", "B"}},
	{Name: "C#", Letters: [7]string{"C#", "D#", "E#", "F#", "G#", "A#", "B#"}, NumSharps: 7},
	{Name: "Db", Letters: [7]string{"Db", "Eb", "F", "Gb", "Ab", "Bb", "C"}, NumFlats: 5},
	{Name: "D", Letters: [7]string{"D", "E", "F#", "G", "A", "B", "C#"}, NumSharps: 2},
	{Name: "Eb", Letters: [7]string{"Eb", "F", "G", "Ab", "Bb", "C", "D"}, NumFlats: 3},
	{Name: "E", Letters: [7]string{"E", "F#", "G#", "A", "B", "C#", "D#"}, NumSharps: 4},
	{Name: "F", Letters: [7]string{"F", "G", "A", "Bb", "C", "D", "E"}, NumFlats: 1},
	{Name: "F#", Letters: [7]string{"F#", "G#", "A#", "B", "C#", "D#", "E#"}, NumSharps: 6},
	{Name: "Gb", Letters: [7]string{"Gb", "Ab", "Bb", "Cb", "Db", "Eb", "F"}, NumFlats: 6},
	{Name: "G", Letters: [7]string{"G", "A", "B", "C", "D", "E", "F#"}, NumSharps: 1},
	{Name: "Ab", Letters: [7]string{"Ab", "Bb", "C", "Db", "Eb", "F", "G"}, NumFlats: 4},
	{Name: "A", Letters: [7]string{"A", "B", "C#", "D", "E", "F#", "G#"}, NumSharps: 3},
	{Name: "Bb", Letters: [7]string{"Bb", "C", "D", "Eb", "F", "G", "A"}, NumFlats: 2},
	{Name: "B", Letters: [7]string{"B", "C#", "D#", "E", "F#", "G#", "A#"}, NumSharps: 5},
	{Name: "Sharps", Letters: [7]string{"C", "D", "E", "F", "G", "A", "B"}, Preference: PreferSharps},
	{Name: "Flats", Letters: [7]string{"C", "D", "E", "F", "G", "A", "B"}, Preference: PreferFlats},
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, len(keyTable))
	for _, k := range keyTable {
		m[strings.ToLower(k.Name)] = k
	}
	return m
}()

// Keys returns the display keys in menu order
func Keys() []Key {
	keys := make([]Key, len(keyTable))
	copy(keys, keyTable)
	return keys
}

// KeyByName looks up a display key. Matching ignores case and surrounding space.
func KeyByName(name string) (Key, error) {
	k, ok := keysByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Key{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}

// MustKey is KeyByName that panics for unknown names
func MustKey(name string) Key {
	k, err := KeyByName(name)
	if err != nil {
		panic(err)
	}
	return k
}

// IsPseudo reports whether this is the Sharps or Flats preference key
func (k Key) IsPseudo() bool {
	return k.Preference != PreferSignature
}

// HasLetter reports whether the exact name (e.g. "Bb") is one of the key's letters
func (k Key) HasLetter(name string) bool {
	for _, l := range k.Letters {
		if l == name {
			return true
		}
	}
	return false
}

// LetterFor returns the key letter that sounds the given pitch class
func (k Key) LetterFor(pc chroma.PitchClass) (string, bool) {
	for _, l := range k.Letters {
		lpc, err := chroma.ParsePitchName(l)
		if err == nil && lpc == pc {
			return l, true
		}
	}
	return "", false
}

// PrefersSharps reports whether free accidentals lean sharp in this key
func (k Key) PrefersSharps() bool {
	switch k.Preference {
	case PreferSharps:
		return true
	case PreferFlats:
		return false
	}
	return k.NumSharps > 0
}

// SelectRootName picks the spelling of a chord root or bass pitch class
func (k Key) SelectRootName(pc chroma.PitchClass, family ChordFamily) string {
	sharp, flat := pc.SharpName(), pc.FlatName()

	switch {
	case k.Preference == PreferSharps:
		return sharp
	case k.Preference == PreferFlats:
		return flat
	case family == FamilyDiminished && pc.IsAccidental():
		// Flat diminished roots lead to double flats further up the stack
		return sharp
	case family == FamilyMajor && (sharp == "D#" || sharp == "A#"):
		return flat
	case (family == FamilyMinor || family == FamilyDiminished) && flat == "Gb":
		return sharp
	case k.NumSharps == 0:
		return flat
	default:
		return sharp
	}
}

var superpowerMajorRoots = map[string]bool{
	"Bb": true, "Eb": true, "C": true, "D": true, "E": true, "F": true, "G": true, "A": true, "B": true,
}

var superpowerMinorRoots = map[string]bool{
	"C": true, "D": true, "E": true, "G": true, "A": true, "B": true,
}

// Minor superpower roots spell from their relative major
var relativeMajor = map[string]string{
	"C": "Eb", "D": "F", "E": "G", "G": "Bb", "A": "C", "B": "D",
}

// IsSuperpower reports whether a chord with this root name and family spells
// itself from its own key instead of the display key
func IsSuperpower(root string, family ChordFamily) bool {
	switch family {
	case FamilyMajor, FamilySuspended, FamilyAugmented:
		return superpowerMajorRoots[root]
	case FamilyMinor:
		return superpowerMinorRoots[root]
	}
	return false
}

// OwnKey returns the key a superpower chord spells itself from
func OwnKey(root string, family ChordFamily) (Key, bool) {
	if !IsSuperpower(root, family) {
		return Key{}, false
	}
	name := root
	if family == FamilyMinor {
		name = relativeMajor[root]
	}
	k, err := KeyByName(name)
	if err != nil {
		return Key{}, false
	}
	return k, true
}
