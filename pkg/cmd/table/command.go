package table

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
	"github.com/birdayz/morse/pkg/morse"
)

// NewCommand returns the "morse table" command.
func NewCommand(a *app.App) *cobra.Command {
	var prefixFlag string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "List supported characters and their codes",
		Example: `  morse table
  morse table --prefix ..-`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := a.Codec.Table()

			chars := t.Chars()
			if prefixFlag != "" {
				prefix, err := morse.ParsePattern(prefixFlag)
				if err != nil {
					return fmt.Errorf("invalid prefix %q: %w", prefixFlag, err)
				}
				chars = t.Completions(prefix)
			}

			w := app.NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "CHAR\tCODE\tLENGTH\t\n")
			}
			for _, r := range chars {
				code, _ := t.LookupCode(r)
				fmt.Fprintf(w, "%c\t%v\t%v\t\n", r, morse.Render(code), len(code))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&prefixFlag, "prefix", "", "Only list characters whose code starts with this pattern of . and -")
	a.AddNoHeadersFlag(cmd)
	return cmd
}
