package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
	"github.com/birdayz/morse/pkg/cmd/completion"
	morseconfig "github.com/birdayz/morse/pkg/cmd/config"
	"github.com/birdayz/morse/pkg/cmd/decode"
	"github.com/birdayz/morse/pkg/cmd/encode"
	"github.com/birdayz/morse/pkg/cmd/interactive"
	"github.com/birdayz/morse/pkg/cmd/table"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCommand(app.New(), version, commit).ExecuteContext(ctx)
}

// NewRootCommand wires every sub-command to a.
func NewRootCommand(a *app.App, version, commit string) *cobra.Command {
	root := &cobra.Command{
		Use:          "morse",
		Short:        "Morse code translator",
		Long:         "Translate text to International Morse code and back, in batch or while typing.",
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if a.OutWriter != os.Stdout {
				a.ColorableOut = a.OutWriter
			}

			return a.InitConfig()
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.morse/config)")
	root.PersistentFlags().StringVar(&a.PlaceholderFlag, "placeholder", "", "Text written for codes that are not in the table (default \"?\")")
	root.PersistentFlags().StringVar(&a.LogLevelFlag, "log-level", "", "Log level for warnings on stderr: debug, info, warn, error (default warn)")
	root.PersistentFlags().BoolVar(&a.NoColorFlag, "no-color", false, "Disable colored output")

	root.AddCommand(
		encode.NewCommand(a),
		decode.NewCommand(a),
		interactive.NewCommand(a),
		table.NewCommand(a),
		morseconfig.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root
}
