package interactive

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/app"
	"github.com/birdayz/morse/pkg/session"
)

// promptui draws the label on a single terminal line, so neither template
// may contain a line break.
const (
	promptTemplate  = `{{ .OutputLabel | faint }}: {{ .Output | bold }}{{ with .Hints }} [{{ hints . | faint }}]{{ end }} | {{ .InputLabel | cyan }}: `
	successTemplate = `{{ .OutputLabel | faint }}: {{ .Output | bold }} | {{ .InputLabel | faint }}: `
)

var funcMap = func() template.FuncMap {
	m := template.FuncMap{}
	for k, v := range promptui.FuncMap {
		m[k] = v
	}
	m["hints"] = formatHints
	return m
}()

// NewCommand returns the "morse interactive" command.
func NewCommand(a *app.App) *cobra.Command {
	var mode session.Mode

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Translate while typing",
		Long: `Translate while typing. The output is recomputed after every key press.

Commands, entered on a line of their own:
  :mode, :m    switch between encoding and decoding
  :clear, :c   clear the current text
  :quit, :q    exit (Ctrl-C and Ctrl-D work too)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("mode") {
				var err error
				mode, err = a.StartMode()
				if err != nil {
					return err
				}
			}

			s := session.New(a.NewCodec(false), mode)
			printBanner(a.ColorableOut, s)

			for {
				p := newPrompt(s)
				line, err := p.Run()
				if err != nil {
					if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
						return nil
					}
					return fmt.Errorf("prompt failed: %w", err)
				}
				if handleLine(a.OutWriter, s, line) {
					return nil
				}
			}
		},
	}

	cmd.Flags().Var(&mode, "mode", "Start mode: encode or decode (default from config)")
	_ = cmd.RegisterFlagCompletionFunc("mode", a.ValidModeArgs)
	return cmd
}

func newPrompt(s *session.Session) *promptui.Prompt {
	return &promptui.Prompt{
		Label: s,
		Templates: &promptui.PromptTemplates{
			Prompt:  promptTemplate,
			Valid:   promptTemplate,
			Invalid: promptTemplate,
			Success: successTemplate,
			FuncMap: funcMap,
		},
		// Runs on every key press, before the label is rendered.
		Validate: func(input string) error {
			if !isCommand(input) {
				s.SetInput(input)
			}
			return nil
		},
	}
}

func isCommand(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), ":")
}

// handleLine applies a submitted line to the session and reports whether
// the user asked to quit. Plain text becomes the session input; it stays
// there so a later mode switch can retranslate it.
func handleLine(w io.Writer, s *session.Session, line string) bool {
	if !isCommand(line) {
		s.SetInput(line)
		return false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case ":quit", ":q":
		return true
	case ":mode", ":m":
		s.ToggleMode()
		fmt.Fprintf(w, "Switched to %s.\n", s.Title())
		if s.Input() != "" {
			fmt.Fprintf(w, "%s: %s\n", s.Input(), s.Output())
		}
	case ":clear", ":c":
		s.Clear()
		fmt.Fprintln(w, "Cleared.")
	default:
		fmt.Fprintf(w, "Unknown command %q. Use :mode, :clear or :quit.\n", strings.TrimSpace(line))
	}
	return false
}

func formatHints(hints []rune) string {
	parts := make([]string, len(hints))
	for i, r := range hints {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

func printBanner(w io.Writer, s *session.Session) {
	color.New(color.FgCyan, color.Bold).Fprintln(w, s.Title())
	color.New(color.Faint).Fprintln(w, "Type to translate. :mode switches direction, :clear resets, :quit exits.")
}
