package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/grandstaff/algorithms/tonal"
)

func newSpellCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "spell <note>...",
		Short: "Spells each note for drawing on the staff",
		Long: `Recognizes the chord formed by the notes, then prints for every note the
spelled name, the MIDI pitch of the staff line or space it is drawn on, and
the accidental to draw in front of it.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			return s.spell(args)
		},
	}
}

func (s *session) spell(args []string) error {
	notes, err := parseNotes(args)
	if err != nil {
		return err
	}
	key, err := s.resolveKey(notes)
	if err != nil {
		return err
	}

	chord := s.recognizer.Recognize(notes, key)
	name := chord.Name(s.cfg.ShortNotation)
	if chord.IsNone() {
		name = noChord
	}

	midi := notes.Notes()
	rows := make([][]string, 0, len(midi))
	for i, sp := range tonal.SpellNotes(notes, key, chord) {
		accidental := sp.Accidental.String()
		if sym := sp.Accidental.Symbol(); sym != "" {
			accidental = sym + " " + accidental
		}
		rows = append(rows, []string{
			strconv.Itoa(midi[i]),
			sp.Name,
			strconv.Itoa(sp.Anchor),
			accidental,
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", s.styles.chord.Render(name), s.styles.dim.Render("in "+key.Name))
	b.WriteString(s.styles.table([]string{"MIDI", "Name", "Anchor", "Accidental"}, rows))
	b.WriteString("\n")

	_, err = fmt.Fprint(s.out, b.String())
	return err
}
