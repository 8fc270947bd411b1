package cli

import (
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	key        string
	short      bool
	logLevel   string
}

// NewRootCommand builds the grandstaff command tree
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "grandstaff",
		Short: "Name chords and spell notes for the grand staff",
		Long: `grandstaff names the chord formed by a set of MIDI notes and decides how
each note is spelled (sharp, flat, natural or double accidental) and where it
sits on the staff for a chosen key signature.

Notes are MIDI numbers (60) or names with an octave (C4, F#3, Bb2).`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "JSON config file")
	flags.StringVarP(&opts.key, "key", "k", "", "display key: C, F#, Bb, ..., Sharps, Flats or auto")
	flags.BoolVarP(&opts.short, "short", "s", false, "use short chord notation")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newNameCommand(opts),
		newSpellCommand(opts),
		newKeysCommand(opts),
		newShapesCommand(opts),
	)
	return rootCmd
}

// Execute runs the command tree and exits on error
func Execute() {
	cobra.CheckErr(NewRootCommand().Execute())
}
