package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/batch"
)

// TranslateFlags are the flags shared by encode and decode.
type TranslateFlags struct {
	InputMode       batch.InputMode
	LineLengthLimit int
	CacheSize       int
	Output          OutputFormat
	Template        string
}

// AddTranslateFlags installs the shared flags on cmd, bound to f.
func (a *App) AddTranslateFlags(cmd *cobra.Command, f *TranslateFlags) {
	f.InputMode = batch.InputModeLine
	f.Output = OutputFormatDefault

	cmd.Flags().Var(&f.InputMode, "input-mode", "Scanning input mode: [line|full]")
	cmd.Flags().IntVar(&f.LineLengthLimit, "line-length-limit", 0, "line length limit in line input mode")
	cmd.Flags().IntVar(&f.CacheSize, "cache-size", batch.DefaultCacheSize, "Number of distinct lines whose translation is cached")
	cmd.Flags().VarP(&f.Output, "output", "o", "Set output format: default, json, json-each-row")
	cmd.Flags().StringVar(&f.Template, "template", "", "Go template applied to each result, e.g. '{{ .Line }}: {{ .Output | lower }}'")

	_ = cmd.RegisterFlagCompletionFunc("output", CompleteOutputFormat)
	_ = cmd.RegisterFlagCompletionFunc("input-mode", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{string(batch.InputModeLine), string(batch.InputModeFull)}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Translate runs fn over the joined args, or over InReader when no args
// are given, and prints every result.
func (a *App) Translate(ctx context.Context, fn batch.TranslateFunc, args []string, f TranslateFlags) error {
	var tpl *template.Template
	if f.Template != "" {
		var err error
		tpl, err = ParseTemplate(f.Template)
		if err != nil {
			return err
		}
	}

	emit := func(res batch.Result) error {
		return a.HandleResult(res, f.Output, tpl)
	}

	if len(args) > 0 {
		in := strings.Join(args, " ")
		return emit(batch.Result{Line: 1, Input: in, Output: fn(in)})
	}

	tr, err := batch.New(fn, f.CacheSize,
		batch.WithInputMode(f.InputMode),
		batch.WithLineLengthLimit(f.LineLengthLimit),
	)
	if err != nil {
		return err
	}
	if err := tr.Run(ctx, a.InReader, emit); err != nil {
		return err
	}

	stats := tr.Stats()
	a.Log.WithFields(logrus.Fields{
		"units":      stats.Units,
		"cache_hits": stats.CacheHits,
	}).Debug("translation finished")
	return nil
}

// HandleResult formats and prints a single result.
func (a *App) HandleResult(res batch.Result, outputFormat OutputFormat, tpl *template.Template) error {
	if tpl != nil {
		var buf bytes.Buffer
		if err := tpl.Execute(&buf, res); err != nil {
			return fmt.Errorf("failed to execute go template: %w", err)
		}
		fmt.Fprintln(a.OutWriter, buf.String())
		return nil
	}

	switch outputFormat {
	case OutputFormatJSON:
		data, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		formatted, err := a.Jsonfmt.Format(data)
		if err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		fmt.Fprintln(a.ColorableOut, string(formatted))
	case OutputFormatJSONEachRow:
		data, err := json.Marshal(res)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(a.OutWriter, string(data))
	default:
		fmt.Fprintln(a.OutWriter, res.Output)
	}
	return nil
}
