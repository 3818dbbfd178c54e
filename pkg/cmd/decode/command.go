package decode

import (
	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
)

// NewCommand returns the "morse decode" command.
func NewCommand(a *app.App) *cobra.Command {
	var flags app.TranslateFlags

	cmd := &cobra.Command{
		Use:   "decode [MORSE...]",
		Short: "Decode Morse code to text. Reads data from stdin if no code is given.",
		Long: `Decode Morse code written with '.', '-' and spaces. One or two spaces separate
letters, three or more separate words. Any other character is ignored. Codes
that are not in the table are written as the placeholder (see --placeholder).

Code starting with '-' would be read as a flag. Put it after '--', or pipe
it through stdin.`,
		Example: `  morse decode '... --- ...'
  morse decode -- '- .... .'
  echo '.... ..   - .... . .-. .' | morse decode
  morse decode --placeholder '[UNKNOWN_CHAR]' '........'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Translate(cmd.Context(), a.Codec.DecodeText, args, flags)
		},
	}

	a.AddTranslateFlags(cmd, &flags)
	return cmd
}
