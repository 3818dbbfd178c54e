package app

import (
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig"
	"github.com/spf13/cobra"
)

// OutputFormat controls how batch results are printed.
type OutputFormat string

const (
	OutputFormatDefault     OutputFormat = "default"
	OutputFormatJSON        OutputFormat = "json"
	OutputFormatJSONEachRow OutputFormat = "json-each-row"
)

func (e *OutputFormat) String() string {
	return string(*e)
}

func (e *OutputFormat) Set(v string) error {
	switch v {
	case "default", "json", "json-each-row":
		*e = OutputFormat(v)
		return nil
	default:
		return fmt.Errorf("must be one of: default, json, json-each-row")
	}
}

func (e *OutputFormat) Type() string {
	return "OutputFormat"
}

// CompleteOutputFormat provides shell completion for --output.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"default", "json", "json-each-row"}, cobra.ShellCompDirectiveNoFileComp
}

// ParseTemplate compiles a --template value with the sprig function set.
func ParseTemplate(text string) (*template.Template, error) {
	tpl, err := template.New("morse").Funcs(sprig.TxtFuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse go template: %w", err)
	}
	return tpl, nil
}
