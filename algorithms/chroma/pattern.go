package chroma

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned for malformed interval patterns
var ErrInvalidPattern = errors.New("invalid interval pattern")

// IntervalPattern is a 12 character '1'/'0' string where position i means
// pitch class (bass + i) mod 12 is sounding. Position 0 is always '1'.
type IntervalPattern string

// ParseIntervalPattern validates s and returns it as a pattern
func ParseIntervalPattern(s string) (IntervalPattern, error) {
	p := IntervalPattern(s)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// PatternFromIntervals builds a pattern from semitone offsets above the bass
func PatternFromIntervals(intervals ...int) IntervalPattern {
	var b [NumPitchClasses]byte
	for i := range b {
		b[i] = '0'
	}
	b[0] = '1'
	for _, iv := range intervals {
		b[NewPitchClass(iv)] = '1'
	}
	return IntervalPattern(b[:])
}

// Validate checks length, alphabet and the bass bit
func (p IntervalPattern) Validate() error {
	if len(p) != NumPitchClasses {
		return fmt.Errorf("%w: %q has length %d", ErrInvalidPattern, string(p), len(p))
	}
	if strings.Trim(string(p), "01") != "" {
		return fmt.Errorf("%w: %q contains characters other than 0 and 1", ErrInvalidPattern, string(p))
	}
	if p[0] != '1' {
		return fmt.Errorf("%w: %q does not contain its bass", ErrInvalidPattern, string(p))
	}
	return nil
}

// Has reports whether the interval (in semitones above the bass) is sounding
func (p IntervalPattern) Has(interval int) bool {
	if len(p) != NumPitchClasses {
		return false
	}
	return p[NewPitchClass(interval)] == '1'
}

// Intervals returns the sounding semitone offsets in ascending order
func (p IntervalPattern) Intervals() []int {
	intervals := make([]int, 0, NumPitchClasses)
	for i := 0; i < len(p) && i < NumPitchClasses; i++ {
		if p[i] == '1' {
			intervals = append(intervals, i)
		}
	}
	return intervals
}

// Size returns the number of sounding pitch classes
func (p IntervalPattern) Size() int {
	return strings.Count(string(p), "1")
}

// Voicing returns the close-position MIDI notes of the pattern above bass
func (p IntervalPattern) Voicing(bass int) []int {
	intervals := p.Intervals()
	notes := make([]int, len(intervals))
	for i, iv := range intervals {
		notes[i] = bass + iv
	}
	return notes
}

func (p IntervalPattern) String() string {
	return string(p)
}
