package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// noChord is printed when nothing is recognized
const noChord = "N.C."

func newNameCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "name <note>...",
		Short: "Names the chord formed by the notes",
		Long: `Names the chord formed by the notes, e.g.

  grandstaff name 64 67 72        # C/E
  grandstaff name -k A C#4 F4 A4  # C#aug`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			return s.name(args)
		},
	}
}

func (s *session) name(args []string) error {
	notes, err := parseNotes(args)
	if err != nil {
		return err
	}
	key, err := s.resolveKey(notes)
	if err != nil {
		return err
	}

	chord := s.recognizer.Recognize(notes, key)
	if chord.IsNone() {
		_, err = fmt.Fprintln(s.out, s.styles.dim.Render(noChord))
		return err
	}
	_, err = fmt.Fprintln(s.out, s.styles.chord.Render(chord.Name(s.cfg.ShortNotation)))
	return err
}
