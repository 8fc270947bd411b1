package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/grandstaff/algorithms/tonal"
)

func newKeysCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Lists the display keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			return s.keys()
		},
	}
}

func (s *session) keys() error {
	keys := tonal.Keys()
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k.Name, signature(k), strings.Join(k.Letters[:], " ")})
	}

	_, err := fmt.Fprintln(s.out, s.styles.table([]string{"Key", "Signature", "Letters"}, rows))
	return err
}

func signature(k tonal.Key) string {
	switch {
	case k.Preference == tonal.PreferSharps:
		return "all sharps"
	case k.Preference == tonal.PreferFlats:
		return "all flats"
	case k.NumSharps > 0:
		return fmt.Sprintf("%d♯", k.NumSharps)
	case k.NumFlats > 0:
		return fmt.Sprintf("%d♭", k.NumFlats)
	default:
		return "none"
	}
}
