package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
)

// NewCommand returns the "morse completion" command.
// It takes the root command so it can generate completions for the full tree.
func NewCommand(root *cobra.Command, a *app.App) *cobra.Command {
	var noDescriptions bool

	cmd := &cobra.Command{
		Use:   "completion [SHELL]",
		Short: "Generate completion script for bash, zsh, fish or powershell",
		Long: `To load completions:

Bash:

$ source <(morse completion bash)

# To load completions for each session, execute once:
Linux:
  $ morse completion bash > /etc/bash_completion.d/morse
MacOS:
  $ morse completion bash > /usr/local/etc/bash_completion.d/morse

Zsh:

# To load completions for each session, execute once:
$ morse completion zsh > "${fpath[1]}/_morse"

Fish:

$ morse completion fish > ~/.config/fish/completions/morse.fish

PowerShell:

PS> morse completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := generators(root, !noDescriptions)[args[0]]
			if err := gen(a.OutWriter); err != nil {
				return fmt.Errorf("failed to generate %s completion: %w", args[0], err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noDescriptions, "no-descriptions", false, "Leave command and flag descriptions out of the script")
	return cmd
}

func generators(root *cobra.Command, descriptions bool) map[string]func(io.Writer) error {
	return map[string]func(io.Writer) error{
		"bash": func(w io.Writer) error {
			return root.GenBashCompletionV2(w, descriptions)
		},
		"zsh": func(w io.Writer) error {
			if descriptions {
				return root.GenZshCompletion(w)
			}
			return root.GenZshCompletionNoDesc(w)
		},
		"fish": func(w io.Writer) error {
			return root.GenFishCompletion(w, descriptions)
		},
		"powershell": func(w io.Writer) error {
			if descriptions {
				return root.GenPowerShellCompletionWithDesc(w)
			}
			return root.GenPowerShellCompletion(w)
		},
	}
}
