package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
	"github.com/birdayz/morse/pkg/config"
	"github.com/birdayz/morse/pkg/session"
)

// NewCommand returns the "morse config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle morse configuration",
	}

	cmd.AddCommand(
		newCurrentModeCommand(a),
		newSetModeCommand(a),
		newSelectModeCommand(a),
		newSetPlaceholderCommand(a),
		newShowCommand(a),
		newImportCommand(a),
	)

	return cmd
}

func newCurrentModeCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "current-mode",
		Short: "Displays the mode interactive sessions start in",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.Cfg.StartMode())
		},
	}
}

func newSetModeCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "set-mode [MODE]",
		Short:             "Sets the start mode in the configuration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidModeArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := session.ParseMode(args[0])
			if err != nil {
				return err
			}
			return writeMode(a, mode)
		},
	}
}

func newSelectModeCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "select-mode",
		Short: "Interactively select the start mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			modes := []string{session.ModeEncode.String(), session.ModeDecode.String()}
			pos := 0
			for k, m := range modes {
				if m == strings.ToLower(a.Cfg.StartMode()) {
					pos = k
				}
			}

			p := promptui.Select{
				Label:     "Select start mode",
				Items:     modes,
				Size:      len(modes),
				CursorPos: pos,
			}

			_, selected, err := p.Run()
			if err != nil {
				// User cancelled (e.g. Ctrl-C). Not an error.
				return nil
			}

			mode, err := session.ParseMode(selected)
			if err != nil {
				return err
			}
			return writeMode(a, mode)
		},
	}
}

func writeMode(a *app.App, mode session.Mode) error {
	cfg, err := a.StoredConfig()
	if err != nil {
		return err
	}
	cfg.Mode = mode.String()
	if err := cfg.Write(); err != nil {
		return fmt.Errorf("unable to write config: %w", err)
	}
	fmt.Fprintf(a.OutWriter, "Switched start mode to \"%v\".\n", mode)
	return nil
}

func newSetPlaceholderCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "set-placeholder [TEXT]",
		Short:   "Sets the text written for unknown codes. An empty TEXT restores the default.",
		Example: "  morse config set-placeholder '[UNKNOWN_CHAR]'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.StoredConfig()
			if err != nil {
				return err
			}
			cfg.Placeholder = args[0]
			if err := cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Updated placeholder.")
			return nil
		},
	}
}

func newShowCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the effective configuration, including environment and flag overrides",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "KEY\tVALUE\t\n")
			}
			fmt.Fprintf(w, "mode\t%v\t\n", a.Cfg.StartMode())
			fmt.Fprintf(w, "placeholder\t%v\t\n", a.Codec.Placeholder())
			fmt.Fprintf(w, "log-level\t%v\t\n", a.Cfg.Level())
			fmt.Fprintf(w, "color\t%v\t\n", a.Cfg.ColorEnabled())
			fmt.Fprintf(w, "path\t%v\t\n", a.Cfg.Path())
			return w.Flush()
		},
	}
	a.AddNoHeadersFlag(cmd)
	return cmd
}

func newImportCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "import [FILE]",
		Short: "Import morse.* settings from a .properties file (default $HOME/.morse/morse.properties)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				var err error
				path, err = config.TryFindPropertiesFile()
				if err != nil {
					return fmt.Errorf("could not find properties file: %w", err)
				}
				fmt.Fprintf(a.OutWriter, "Detected properties in file %v\n", path)
			}

			cfg, err := a.StoredConfig()
			if err != nil {
				return err
			}
			if err := cfg.ImportProperties(path); err != nil {
				return err
			}
			if err := cfg.Write(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Imported settings.")
			return nil
		},
	}
}
