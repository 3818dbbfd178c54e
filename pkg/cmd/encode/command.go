package encode

import (
	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
)

// NewCommand returns the "morse encode" command.
func NewCommand(a *app.App) *cobra.Command {
	var flags app.TranslateFlags

	cmd := &cobra.Command{
		Use:   "encode [TEXT...]",
		Short: "Encode text to Morse code. Reads data from stdin if no text is given.",
		Long:  "Encode text to Morse code. Arguments are joined with single spaces. Without arguments, stdin is translated one line at a time by default. Characters without a code are skipped and logged as warnings.",
		Example: `  morse encode hello world
  echo 'SOS' | morse encode
  cat letter.txt | morse encode --input-mode full
  morse encode -o json-each-row sos`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Translate(cmd.Context(), a.Codec.EncodeText, args, flags)
		},
	}

	a.AddTranslateFlags(cmd, &flags)
	return cmd
}
