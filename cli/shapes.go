package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/grandstaff/algorithms/tonal"
)

func newShapesCommand(opts *options) *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Lists the chord dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}
			return s.shapes(family)
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "only list one family (major, minor, diminished, ...)")
	return cmd
}

func (s *session) shapes(family string) error {
	all := tonal.DefaultPatternDictionary().Shapes()
	rows := make([][]string, 0, len(all))
	for _, shape := range all {
		if family != "" && !strings.EqualFold(shape.Family.String(), family) {
			continue
		}
		rows = append(rows, []string{
			shape.Pattern.String(),
			displaySuffix(shape.FullName),
			displaySuffix(shape.ShortName),
			shape.Family.String(),
			shape.Degrees().String(),
		})
	}
	if len(rows) == 0 {
		return fmt.Errorf("no shapes in family %q", family)
	}

	_, err := fmt.Fprintln(s.out, s.styles.table([]string{"Pattern", "Name", "Short", "Family", "Altered"}, rows))
	return err
}

func displaySuffix(suffix string) string {
	if suffix == "" {
		return "(major)"
	}
	return suffix
}
