package tonal

// chordShapeDefinitions is the compiled-in chord vocabulary. Patterns that are
// rotations of a listed shape are left out so inversions resolve to their root.
var chordShapeDefinitions = []ChordShapeDefinition{
	// 2 notes
	{"100001000000", "4", "4", FamilySuspended, 0},
	{"100000100000", "-tritone", "-tt", FamilyTritone, 0},
	{"100000010000", "5", "5", FamilyMajor, 0},
	// 3 notes
	{"100010010000", "", "", FamilyMajor, 0},
	{"100100010000", "min", "m", FamilyMinor, 0},
	{"101000010000", "sus2", "sus2", FamilySuspended, 0},
	{"101000100000", "sus2b5", "sus2b5", FamilySuspended, AltFlat5},
	{"101100000000", "min(add2)", "m(2)", FamilyMinor, 0},
	{"100001010000", "sus4", "sus4", FamilySuspended, 0},
	{"100100100000", "dim", "°", FamilyDiminished, 0},
	{"100010100000", "(b5)", "b5", FamilyMajor, AltFlat5},
	{"100010001000", "aug", "+", FamilyAugmented, 0},
	{"100000010010", "7(no3)", "7no3", FamilyMajor, 0},
	{"100010000010", "7(no5)", "7no5", FamilyMajor, 0},
	{"100100000010", "min7(no5)", "m7no5", FamilyMinor, 0},
	{"100010000001", "maj7(no5)", "Δ7no5", FamilyMajor, 0},
	{"100000010001", "maj7(no3)", "Δ7no3", FamilyMajor, 0},
	{"101010000000", "add9(no5)", "add9no5", FamilyMajor, 0},
	// 4 notes
	{"100010010100", "6", "6", FamilyMajor, 0},
	{"100100010100", "min6", "m6", FamilyMinor, 0},
	{"100010010001", "maj7", "Δ7", FamilyMajor, 0},
	{"100010010010", "7", "7", FamilyMajor, 0},
	{"100100010001", "min(maj7)", "mΔ7", FamilyMinor, 0},
	{"100100010010", "min7", "m7", FamilyMinor, 0},
	{"100100100100", "dim7", "°7", FamilyDiminished, 0},
	{"100100100010", "min7b5", "ø7", FamilyDiminished, AltFlat5},
	{"100100100001", "dim(maj7)", "°Δ7", FamilyDiminished, 0},
	{"101010000010", "9(no5)", "9no5", FamilyMajor, 0},
	{"100010100001", "maj7b5", "Δ7b5", FamilyMajor, AltFlat5},
	{"100010100010", "7b5", "7b5", FamilyMajor, AltFlat5},
	{"100001010010", "7sus4", "7sus4", FamilySuspended, 0},
	{"101000010010", "7sus2", "7sus2", FamilySuspended, 0},
	{"101000010001", "maj7sus2", "Δ7sus2", FamilySuspended, 0},
	{"100001010001", "maj7sus4", "Δ7sus4", FamilySuspended, 0},
	{"100001010100", "6sus4", "6sus4", FamilySuspended, 0},
	{"100010001001", "aug(maj7)", "+Δ7", FamilyAugmented, 0},
	{"100010001010", "aug7", "+7", FamilyAugmented, 0},
	{"101010001000", "aug(add9)", "+add9", FamilyAugmented, 0},
	{"101010010000", "add9", "add9", FamilyMajor, 0},
	{"100110010000", "add#9", "add#9", FamilyMajor, AltSharp9},
	{"110010010000", "addb9", "addb9", FamilyMajor, AltFlat9},
	{"100010011000", "addb13", "addb13", FamilyMajor, AltFlat13},
	{"101100010000", "min(add9)", "m(add9)", FamilyMinor, 0},
	{"100011010000", "add11", "add11", FamilyMajor, 0},
	{"100010110000", "add#11", "add#11", FamilyMajor, AltSharp11},
	{"100101010000", "min(add11)", "m(add11)", FamilyMinor, 0},
	{"101001010000", "sus2sus4", "sus24", FamilySuspended, 0},
	{"101100100000", "dim(add9)", "°add9", FamilyDiminished, 0},
	{"100110000010", "7#9(no5)", "7#9no5", FamilyMajor, AltSharp9},
	{"110010000010", "7b9(no5)", "7b9no5", FamilyMajor, AltFlat9},
	{"101100000010", "min9(no5)", "m9no5", FamilyMinor, 0},
	{"101010000001", "maj9(no5)", "Δ9no5", FamilyMajor, 0},
	// 5 notes
	{"101010010010", "9", "9", FamilyMajor, 0},
	{"101010010001", "maj9", "Δ9", FamilyMajor, 0},
	{"100110010001", "maj7#9", "Δ7#9", FamilyMajor, AltSharp9},
	{"101100010010", "min9", "m9", FamilyMinor, 0},
	{"110100010010", "min7b9", "m7b9", FamilyMinor, AltFlat9},
	{"110010100010", "7b5b9", "7b5b9", FamilyMajor, AltFlat5 | AltFlat9},
	{"101100010001", "min(maj9)", "mΔ9", FamilyMinor, 0},
	{"100110010010", "7#9", "7#9", FamilyMajor, AltSharp9},
	{"110010010010", "7b9", "7b9", FamilyMajor, AltFlat9},
	{"110010010001", "maj7b9", "Δ7b9", FamilyMajor, AltFlat9},
	{"110100010001", "min(maj7)b9", "mΔ7b9", FamilyMinor, AltFlat9},
	{"110010001001", "aug(maj7)b9", "+Δ7b9", FamilyAugmented, AltFlat9},
	{"110010001010", "aug7b9", "+7b9", FamilyAugmented, AltFlat9},
	{"100110001010", "aug7#9", "+7#9", FamilyAugmented, AltSharp9},
	{"101010001010", "aug9", "+9", FamilyAugmented, 0},
	{"101010001001", "aug(maj9)", "+Δ9", FamilyAugmented, 0},
	{"100110001001", "aug(maj7)#9", "+Δ7#9", FamilyAugmented, AltSharp9},
	{"101100100010", "min9b5", "ø9", FamilyDiminished, AltFlat5},
	{"110100100010", "min7b5b9", "ø7b9", FamilyDiminished, AltFlat5 | AltFlat9},
	{"101100100100", "dim9", "°9", FamilyDiminished, 0},
	{"110100100100", "dim7b9", "°7b9", FamilyDiminished, AltFlat9},
	{"101010010100", "6/9", "6/9", FamilyMajor, 0},
	{"101100010100", "min6/9", "m6/9", FamilyMinor, 0},
	{"101001010001", "maj9sus4", "Δ9sus4", FamilySuspended, 0},
	{"101001010010", "9sus4", "9sus4", FamilySuspended, 0},
	{"100001010110", "13sus4", "13sus4", FamilySuspended, 0},
	{"100001011010", "7sus4b13", "7sus4b13", FamilySuspended, AltFlat13},
	{"100010010110", "7/6", "7/6", FamilyMajor, 0},
	{"100010110010", "7#11", "7#11", FamilyMajor, AltSharp11},
	{"100010011010", "7b13", "7b13", FamilyMajor, AltFlat13},
	{"100010110001", "maj7#11", "Δ7#11", FamilyMajor, AltSharp11},
	{"100100110010", "min7#11", "m7#11", FamilyMinor, AltSharp11},
	{"100110100010", "7b5#9", "7b5#9", FamilyMajor, AltFlat5 | AltSharp9},
	{"101010100010", "9b5", "9b5", FamilyMajor, AltFlat5},
	{"100011010010", "7(add11)", "7add11", FamilyMajor, 0},
	{"100011010001", "maj7(add11)", "Δ7add11", FamilyMajor, 0},
	{"100101010010", "min7(add11)", "m7add11", FamilyMinor, 0},
	// 6 notes
	{"101011010010", "11", "11", FamilyMajor, 0},
	{"101011010001", "maj11", "Δ11", FamilyMajor, 0},
	{"101101010010", "min11", "m11", FamilyMinor, 0},
	{"101101010001", "min(maj11)", "mΔ11", FamilyMinor, 0},
	{"101010010110", "13", "13", FamilyMajor, 0},
	{"101010010101", "maj13", "Δ13", FamilyMajor, 0},
	{"101100010110", "min13", "m13", FamilyMinor, 0},
	{"100110110001", "maj7#9#11", "Δ7#9#11", FamilyMajor, AltSharp9 | AltSharp11},
	{"110101100010", "min11b5b9", "ø11b9", FamilyDiminished, AltFlat5 | AltFlat9},
	{"110101010010", "min11b9", "m11b9", FamilyMinor, AltFlat9},
	{"101010110010", "9#11", "9#11", FamilyMajor, AltSharp11},
	{"101010110001", "maj9#11", "Δ9#11", FamilyMajor, AltSharp11},
	{"110010010110", "13b9", "13b9", FamilyMajor, AltFlat9},
	{"100110010110", "13#9", "13#9", FamilyMajor, AltSharp9},
	{"101010011010", "9b13", "9b13", FamilyMajor, AltFlat13},
	{"110010011010", "7b9b13", "7b9b13", FamilyMajor, AltFlat9 | AltFlat13},
	{"100110011010", "7#9b13", "7#9b13", FamilyMajor, AltSharp9 | AltFlat13},
	{"110010110010", "7b9#11", "7b9#11", FamilyMajor, AltFlat9 | AltSharp11},
	{"100110110010", "7#9#11", "7#9#11", FamilyMajor, AltSharp9 | AltSharp11},
	// 7 notes
	{"101011010110", "13(add11)", "13(11)", FamilyMajor, 0},
	{"101011010101", "maj13(add11)", "Δ13(11)", FamilyMajor, 0},
	{"101101010110", "min13(add11)", "m13(11)", FamilyMinor, 0},
	{"101101010101", "min(maj13)", "mΔ13", FamilyMinor, 0},
	// All twelve
	{"111111111111", "chromatic", "chromatic", FamilyEasterEgg, 0},
}
