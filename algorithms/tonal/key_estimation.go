package tonal

import (
	"fmt"
	"sort"

	"github.com/RyanBlaney/grandstaff/algorithms/chroma"
	"github.com/RyanBlaney/grandstaff/algorithms/common"
)

// KeyMode represents major or minor mode
type KeyMode int

const (
	KeyModeMajor KeyMode = iota
	KeyModeMinor
)

func (m KeyMode) String() string {
	if m == KeyModeMinor {
		return "minor"
	}
	return "major"
}

// KeyProfileTemplate holds major and minor weights indexed from the tonic
type KeyProfileTemplate struct {
	MajorProfile []float64 `json:"major_profile"`
	MinorProfile []float64 `json:"minor_profile"`
	Name         string    `json:"name"`
}

// KrumhanslProfile holds the Krumhansl-Schmuckler probe-tone ratings
var KrumhanslProfile = KeyProfileTemplate{
	MajorProfile: []float64{6.35, 2.23, 3.48, 2.33, 4.38, 4.09, 2.52, 5.19, 2.39, 3.66, 2.29, 2.88},
	MinorProfile: []float64{6.33, 2.68, 3.52, 5.38, 2.60, 3.53, 2.54, 4.75, 3.98, 2.69, 3.34, 3.17},
	Name:         "Krumhansl-Schmuckler",
}

// KeyCandidate represents a potential key with its correlation score
type KeyCandidate struct {
	Tonic   chroma.PitchClass `json:"tonic"`    // Tonic pitch class
	Mode    KeyMode           `json:"mode"`     // Major or Minor
	KeyName string            `json:"key_name"` // Display key the tonality maps to
	Score   float64           `json:"score"`    // Pearson correlation with the profile
}

// KeyEstimationResult contains the chosen display key and all candidates
type KeyEstimationResult struct {
	Key        Key               `json:"key"`
	Tonic      chroma.PitchClass `json:"tonic"`
	Mode       KeyMode           `json:"mode"`
	Score      float64           `json:"score"`
	Candidates []KeyCandidate    `json:"candidates"` // Sorted by descending score
}

// KeyEstimator picks a display key for a set of notes by correlating its
// chroma with major and minor key profiles in all 24 tonalities
type KeyEstimator struct {
	profile  KeyProfileTemplate
	fallback Key
}

// Display key for each major tonic
var majorKeyNames = [chroma.NumPitchClasses]string{"C", "Db", "D", "Eb", "E", "F", "F#", "G", "Ab", "A", "Bb", "B"}

// NewKeyEstimator creates a key estimator with the Krumhansl profile. Empty
// input estimates as C.
func NewKeyEstimator() *KeyEstimator {
	return &KeyEstimator{
		profile:  KrumhanslProfile,
		fallback: MustKey("C"),
	}
}

// NewKeyEstimatorWithProfile creates a key estimator with a custom profile
func NewKeyEstimatorWithProfile(profile KeyProfileTemplate) (*KeyEstimator, error) {
	if len(profile.MajorProfile) != chroma.NumPitchClasses || len(profile.MinorProfile) != chroma.NumPitchClasses {
		return nil, fmt.Errorf("key profile %q must have %d bins", profile.Name, chroma.NumPitchClasses)
	}
	return &KeyEstimator{
		profile:  profile,
		fallback: MustKey("C"),
	}, nil
}

// Estimate returns the best display key for notes. Minor winners map to
// their relative major. Ties keep the earlier candidate (major before minor,
// lower tonic first).
func (ke *KeyEstimator) Estimate(notes chroma.NoteSet) KeyEstimationResult {
	if notes.IsEmpty() {
		return KeyEstimationResult{Key: ke.fallback}
	}
	return ke.EstimateChroma(notes.Chroma())
}

// EstimateChroma estimates from a 12-bin chroma vector
func (ke *KeyEstimator) EstimateChroma(cv chroma.ChromaVector) KeyEstimationResult {
	candidates := make([]KeyCandidate, 0, 2*chroma.NumPitchClasses)
	for _, mode := range []KeyMode{KeyModeMajor, KeyModeMinor} {
		for tonic := 0; tonic < chroma.NumPitchClasses; tonic++ {
			score := ke.correlateWithProfile(cv.Values, ke.profileFor(mode), tonic)
			pc := chroma.PitchClass(tonic)
			candidates = append(candidates, KeyCandidate{
				Tonic:   pc,
				Mode:    mode,
				KeyName: DisplayKeyName(pc, mode),
				Score:   score,
			})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	best := candidates[0]
	return KeyEstimationResult{
		Key:        MustKey(best.KeyName),
		Tonic:      best.Tonic,
		Mode:       best.Mode,
		Score:      best.Score,
		Candidates: candidates,
	}
}

func (ke *KeyEstimator) profileFor(mode KeyMode) []float64 {
	if mode == KeyModeMinor {
		return ke.profile.MinorProfile
	}
	return ke.profile.MajorProfile
}

// correlateWithProfile correlates a chroma vector with a profile rotated to keyShift
func (ke *KeyEstimator) correlateWithProfile(values, profile []float64, keyShift int) float64 {
	if len(values) != len(profile) {
		return 0.0
	}

	// Bin i of the shifted profile is the weight of pitch class i in this key
	shifted := common.Rotate(profile, -keyShift)
	return common.Correlation(values, shifted)
}

// DisplayKeyName maps a tonality to the display key used to spell it
func DisplayKeyName(tonic chroma.PitchClass, mode KeyMode) string {
	if mode == KeyModeMinor {
		tonic, _ = GetRelativeKey(tonic, mode)
	}
	return majorKeyNames[tonic]
}

// GetRelativeKey returns the relative major/minor key
func GetRelativeKey(tonic chroma.PitchClass, mode KeyMode) (chroma.PitchClass, KeyMode) {
	if mode == KeyModeMajor {
		// Relative minor is 3 semitones down
		return tonic.Transpose(-3), KeyModeMinor
	}
	// Relative major is 3 semitones up
	return tonic.Transpose(3), KeyModeMajor
}
