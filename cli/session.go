package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/grandstaff/algorithms/chroma"
	"github.com/RyanBlaney/grandstaff/algorithms/tonal"
	"github.com/RyanBlaney/grandstaff/config"
	"github.com/RyanBlaney/grandstaff/logging"
)

// session is the resolved configuration and engines for one command run
type session struct {
	cfg        *config.Config
	logger     logging.Logger
	recognizer *tonal.ChordRecognizer
	estimator  *tonal.KeyEstimator
	out        io.Writer
	styles     styles
}

func (o *options) newSession(cmd *cobra.Command) (*session, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	// flags override the file
	if flagChanged(cmd, "key") {
		cfg.Key = o.key
	}
	if flagChanged(cmd, "short") {
		cfg.ShortNotation = o.short
	}
	if flagChanged(cmd, "log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.NewDefaultLoggerWithWriters(cmd.ErrOrStderr(), cmd.ErrOrStderr(), 0)
	logger.SetLevel(cfg.Level())

	recognizerOpts := []tonal.RecognizerOption{tonal.WithLogger(logger)}
	if len(cfg.Captions) > 0 {
		recognizerOpts = append(recognizerOpts, tonal.WithCaptions(cfg.Captions))
	}

	return &session{
		cfg:        cfg,
		logger:     logger.WithFields(logging.Fields{"command": cmd.Name()}),
		recognizer: tonal.NewChordRecognizer(recognizerOpts...),
		estimator:  tonal.NewKeyEstimator(),
		out:        cmd.OutOrStdout(),
		styles:     newStyles(cmd.OutOrStdout()),
	}, nil
}

// resolveKey returns the configured key, estimating it when set to auto
func (s *session) resolveKey(notes chroma.NoteSet) (tonal.Key, error) {
	if !s.cfg.IsAutoKey() {
		return tonal.KeyByName(s.cfg.Key)
	}

	result := s.estimator.Estimate(notes)
	s.logger.Debug("Estimated key", logging.Fields{
		"key":   result.Key.Name,
		"tonic": result.Tonic.SharpName(),
		"mode":  result.Mode.String(),
		"score": fmt.Sprintf("%.3f", result.Score),
	})
	return result.Key, nil
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flag(name)
	return f != nil && f.Changed
}

// parseNotes reads MIDI numbers or note names with an octave (C4 = 60)
func parseNotes(args []string) (chroma.NoteSet, error) {
	notes := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := parseNote(arg)
		if err != nil {
			return chroma.NoteSet{}, err
		}
		notes = append(notes, n)
	}
	return chroma.NewNoteSet(notes...)
}

func parseNote(arg string) (int, error) {
	arg = strings.TrimSpace(arg)
	if n, err := strconv.Atoi(arg); err == nil {
		return n, nil
	}

	// split the name from its octave: the octave starts at the first digit or
	// a minus sign following the letter
	split := strings.IndexAny(arg[min(1, len(arg)):], "-0123456789")
	if split < 0 {
		return 0, fmt.Errorf("%w: %q needs an octave, e.g. C4", chroma.ErrInvalidNote, arg)
	}
	split++

	pc, err := chroma.ParsePitchName(arg[:split])
	if err != nil {
		return 0, err
	}
	octave, err := strconv.Atoi(arg[split:])
	if err != nil {
		return 0, fmt.Errorf("%w: bad octave in %q", chroma.ErrInvalidNote, arg)
	}

	// Cb and B# cross the octave boundary
	natural, _ := chroma.NaturalPitchClass(strings.ToUpper(arg[:1])[0])
	offset := int(pc) - int(natural)
	switch {
	case offset > 6:
		offset -= chroma.NumPitchClasses
	case offset < -6:
		offset += chroma.NumPitchClasses
	}
	return (octave+1)*chroma.NumPitchClasses + int(natural) + offset, nil
}
