package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanBlaney/grandstaff/algorithms/chroma"
	"github.com/RyanBlaney/grandstaff/algorithms/tonal"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNameCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"major triad", []string{"name", "60", "64", "67"}, "C"},
		{"inversion", []string{"name", "64", "67", "72"}, "C/E"},
		{"short notation", []string{"name", "--short", "60", "64", "67", "71"}, "CΔ7"},
		{"sharp key", []string{"name", "-k", "A", "61", "65", "69"}, "C#aug"},
		{"note names", []string{"name", "C4", "E4", "G4", "Bb4"}, "C7"},
		{"estimated key", []string{"name", "--key", "auto", "66", "70", "73"}, "F#"},
		{"no chord", []string{"name", "60"}, noChord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestNameCommandErrors(t *testing.T) {
	_, _, err := run(t, "name", "200")
	assert.ErrorIs(t, err, chroma.ErrInvalidNote)

	_, _, err = run(t, "name", "--key", "H", "60", "64")
	assert.ErrorIs(t, err, tonal.ErrUnknownKey)

	_, _, err = run(t, "name", "C")
	assert.ErrorIs(t, err, chroma.ErrInvalidNote)

	_, _, err = run(t, "name")
	assert.Error(t, err)
}

func TestSpellCommand(t *testing.T) {
	out, _, err := run(t, "spell", "-k", "A", "61", "65", "69")
	require.NoError(t, err)

	assert.Contains(t, out, "C#aug")
	assert.Contains(t, out, "in A")
	assert.Contains(t, out, "E#")
	assert.Contains(t, out, "sharp")
	assert.Contains(t, out, "Accidental")
}

func TestKeysCommand(t *testing.T) {
	out, _, err := run(t, "keys")
	require.NoError(t, err)

	for _, k := range tonal.Keys() {
		assert.Contains(t, out, k.Name)
	}
	assert.Contains(t, out, "all sharps")
	assert.Contains(t, out, "Gb Ab Bb Cb Db Eb F")
}

func TestShapesCommand(t *testing.T) {
	out, _, err := run(t, "shapes")
	require.NoError(t, err)
	assert.Contains(t, out, "maj7")
	assert.Contains(t, out, "Δ7")
	assert.Contains(t, out, "chromatic")

	out, _, err = run(t, "shapes", "--family", "augmented")
	require.NoError(t, err)
	assert.Contains(t, out, "aug")
	assert.NotContains(t, out, "min7")

	_, _, err = run(t, "shapes", "--family", "lydian")
	assert.Error(t, err)
}

func TestConfigFileAndFlagOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grandstaff.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"key": "Sharps", "short_notation": true}`), 0o644))

	out, _, err := run(t, "name", "--config", path, "63", "67", "70", "74")
	require.NoError(t, err)
	assert.Equal(t, "D#Δ7", strings.TrimSpace(out))

	out, _, err = run(t, "name", "--config", path, "--key", "Eb", "--short=false", "63", "67", "70", "74")
	require.NoError(t, err)
	assert.Equal(t, "Ebmaj7", strings.TrimSpace(out))
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := run(t, "name", "--log-level", "debug", "--key", "auto", "64", "67", "72")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Estimated key")
	assert.Contains(t, errOut, "Rotating bass")
	assert.Contains(t, errOut, "Chord matched")
}

func TestParseNote(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"60", 60},
		{"C4", 60},
		{"c4", 60},
		{"F#3", 54},
		{"Bb2", 46},
		{"Cb4", 59},
		{"B#3", 60},
		{"C-1", 0},
		{"G9", 127},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseNote(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
