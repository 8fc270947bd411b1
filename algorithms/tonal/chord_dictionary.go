package tonal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/RyanBlaney/grandstaff/algorithms/chroma"
)

// ErrDuplicatePattern is returned when two shapes share an interval pattern
var ErrDuplicatePattern = errors.New("duplicate interval pattern")

// ChordFamily classifies a chord shape for spelling purposes
type ChordFamily int

const (
	FamilyNone ChordFamily = iota
	FamilyMajor
	FamilyMinor
	FamilyAugmented
	FamilyDiminished
	FamilySuspended
	FamilyTritone
	FamilyEasterEgg
)

func (f ChordFamily) String() string {
	switch f {
	case FamilyMajor:
		return "major"
	case FamilyMinor:
		return "minor"
	case FamilyAugmented:
		return "augmented"
	case FamilyDiminished:
		return "diminished"
	case FamilySuspended:
		return "suspended"
	case FamilyTritone:
		return "tritone"
	case FamilyEasterEgg:
		return "easter-egg"
	default:
		return "none"
	}
}

// Alteration is a set of altered chord degrees declared on a dictionary entry
type Alteration uint8

const (
	AltFlat5 Alteration = 1 << iota
	AltFlat9
	AltFlat11
	AltFlat13
	AltSharp5
	AltSharp9
	AltSharp11
)

var alterationNames = []struct {
	alt  Alteration
	name string
}{
	{AltFlat5, "b5"},
	{AltFlat9, "b9"},
	{AltFlat11, "b11"},
	{AltFlat13, "b13"},
	{AltSharp5, "#5"},
	{AltSharp9, "#9"},
	{AltSharp11, "#11"},
}

// Has reports whether every degree in other is present
func (a Alteration) Has(other Alteration) bool {
	return a&other == other
}

func (a Alteration) String() string {
	names := make([]string, 0, len(alterationNames))
	for _, an := range alterationNames {
		if a.Has(an.alt) {
			names = append(names, an.name)
		}
	}
	return strings.Join(names, ",")
}

// Semitone offsets of altered degrees above the chord root
const (
	intervalFlat5   = 6
	intervalFlat9   = 1
	intervalFlat11  = 4
	intervalFlat13  = 8
	intervalSharp5  = 8
	intervalSharp9  = 3
	intervalSharp11 = 6
)

// ChordShapeDefinition is one literal dictionary row
type ChordShapeDefinition struct {
	Pattern     string
	FullName    string
	ShortName   string
	Family      ChordFamily
	Alterations Alteration
}

// ChordShape is an immutable named interval pattern with derived degree flags
type ChordShape struct {
	Pattern   chroma.IntervalPattern `json:"pattern"`
	FullName  string                 `json:"full_name"`
	ShortName string                 `json:"short_name"`
	Family    ChordFamily            `json:"family"`

	HasFlat5   bool `json:"has_flat5"`
	HasFlat9   bool `json:"has_flat9"`
	HasFlat11  bool `json:"has_flat11"`
	HasFlat13  bool `json:"has_flat13"`
	HasSharp5  bool `json:"has_sharp5"`
	HasSharp9  bool `json:"has_sharp9"`
	HasSharp11 bool `json:"has_sharp11"`
}

// NewChordShape validates a definition and derives its degree flags.
// A declared alteration only becomes a flag when its interval sounds in the
// pattern. Diminished and tritone shapes never report flat5, augmented shapes
// always report sharp5, minor and diminished shapes never report sharp9.
func NewChordShape(def ChordShapeDefinition) (ChordShape, error) {
	pattern, err := chroma.ParseIntervalPattern(def.Pattern)
	if err != nil {
		return ChordShape{}, err
	}
	if def.Family == FamilyNone {
		return ChordShape{}, fmt.Errorf("%w: %q has no chord family", chroma.ErrInvalidPattern, def.Pattern)
	}

	alt := def.Alterations
	fam := def.Family
	return ChordShape{
		Pattern:   pattern,
		FullName:  def.FullName,
		ShortName: def.ShortName,
		Family:    fam,

		HasFlat5:   alt.Has(AltFlat5) && pattern.Has(intervalFlat5) && fam != FamilyDiminished && fam != FamilyTritone,
		HasFlat9:   alt.Has(AltFlat9) && pattern.Has(intervalFlat9),
		HasFlat11:  alt.Has(AltFlat11) && pattern.Has(intervalFlat11),
		HasFlat13:  alt.Has(AltFlat13) && pattern.Has(intervalFlat13),
		HasSharp5:  fam == FamilyAugmented || (alt.Has(AltSharp5) && pattern.Has(intervalSharp5)),
		HasSharp9:  alt.Has(AltSharp9) && pattern.Has(intervalSharp9) && fam != FamilyMinor && fam != FamilyDiminished,
		HasSharp11: alt.Has(AltSharp11) && pattern.Has(intervalSharp11),
	}, nil
}

// IsNone reports whether this is the empty shape
func (s ChordShape) IsNone() bool {
	return s.Family == FamilyNone
}

// Suffix returns the quality suffix appended to the root name
func (s ChordShape) Suffix(short bool) string {
	if short {
		return s.ShortName
	}
	return s.FullName
}

// Degrees returns the derived degree flags as an Alteration set
func (s ChordShape) Degrees() Alteration {
	var alt Alteration
	for _, f := range []struct {
		on  bool
		alt Alteration
	}{
		{s.HasFlat5, AltFlat5},
		{s.HasFlat9, AltFlat9},
		{s.HasFlat11, AltFlat11},
		{s.HasFlat13, AltFlat13},
		{s.HasSharp5, AltSharp5},
		{s.HasSharp9, AltSharp9},
		{s.HasSharp11, AltSharp11},
	} {
		if f.on {
			alt |= f.alt
		}
	}
	return alt
}

// FlattensInterval reports whether the shape lowers the degree at the given
// semitone distance above the root
func (s ChordShape) FlattensInterval(interval int) bool {
	switch interval {
	case intervalFlat5:
		return s.HasFlat5
	case intervalFlat9:
		return s.HasFlat9
	case intervalFlat11:
		return s.HasFlat11
	case intervalFlat13:
		return s.HasFlat13
	}
	return false
}

// SharpensInterval reports whether the shape raises the degree at the given
// semitone distance above the root
func (s ChordShape) SharpensInterval(interval int) bool {
	switch interval {
	case intervalSharp5:
		return s.HasSharp5
	case intervalSharp9:
		return s.HasSharp9
	case intervalSharp11:
		return s.HasSharp11
	}
	return false
}

// PatternDictionary maps interval patterns to chord shapes. It is immutable
// after construction and safe for concurrent use.
type PatternDictionary struct {
	shapes map[chroma.IntervalPattern]ChordShape
	order  []chroma.IntervalPattern
}

// NewPatternDictionary builds a dictionary, rejecting malformed or duplicate entries
func NewPatternDictionary(defs []ChordShapeDefinition) (*PatternDictionary, error) {
	d := &PatternDictionary{
		shapes: make(map[chroma.IntervalPattern]ChordShape, len(defs)),
		order:  make([]chroma.IntervalPattern, 0, len(defs)),
	}

	for i, def := range defs {
		shape, err := NewChordShape(def)
		if err != nil {
			return nil, fmt.Errorf("dictionary entry %d: %w", i, err)
		}
		if prev, ok := d.shapes[shape.Pattern]; ok {
			return nil, fmt.Errorf("dictionary entry %d (%q): %w: already defined as %q",
				i, def.FullName, ErrDuplicatePattern, prev.FullName)
		}
		d.shapes[shape.Pattern] = shape
		d.order = append(d.order, shape.Pattern)
	}

	return d, nil
}

// MustNewPatternDictionary is NewPatternDictionary that panics on error
func MustNewPatternDictionary(defs []ChordShapeDefinition) *PatternDictionary {
	d, err := NewPatternDictionary(defs)
	if err != nil {
		panic(err)
	}
	return d
}

var defaultDictionary = MustNewPatternDictionary(chordShapeDefinitions)

// DefaultPatternDictionary returns the compiled-in chord dictionary
func DefaultPatternDictionary() *PatternDictionary {
	return defaultDictionary
}

// Lookup finds the shape for an exact pattern
func (d *PatternDictionary) Lookup(pattern chroma.IntervalPattern) (ChordShape, bool) {
	shape, ok := d.shapes[pattern]
	return shape, ok
}

// Len returns the number of shapes
func (d *PatternDictionary) Len() int {
	return len(d.order)
}

// Shapes returns every shape in definition order
func (d *PatternDictionary) Shapes() []ChordShape {
	shapes := make([]ChordShape, len(d.order))
	for i, p := range d.order {
		shapes[i] = d.shapes[p]
	}
	return shapes
}
