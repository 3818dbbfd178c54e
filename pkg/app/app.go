package app

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/birdayz/morse/pkg/config"
	"github.com/birdayz/morse/pkg/morse"
	"github.com/birdayz/morse/pkg/session"
)

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer

	// Config state
	Cfg             config.Config
	CfgFile         string
	PlaceholderFlag string
	LogLevelFlag    string
	NoColorFlag     bool

	// Shared translation state
	Log     *logrus.Logger
	Codec   *morse.Codec
	Jsonfmt *prettyjson.Formatter

	// Display
	NoHeaderFlag bool

	// Root command reference (for completion generation)
	Root *cobra.Command
}

// New creates an App with sane defaults.
func New() *App {
	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableOut: colorable.NewColorableStdout(),
		Jsonfmt:      prettyjson.NewFormatter(),
		Log:          logrus.New(),
	}
}

// InitConfig reads the config file, applies environment and flag
// overrides, and builds the logger and codec. Called by PersistentPreRunE
// on the root command.
func (a *App) InitConfig() error {
	if err := config.LoadDotEnv(); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}

	cfgFile := a.CfgFile
	if cfgFile == "" {
		cfgFile = os.Getenv(config.EnvConfig)
		a.CfgFile = cfgFile
	}

	var err error
	a.Cfg, err = config.ReadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := a.Cfg.ApplyEnv(os.LookupEnv); err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}

	if a.PlaceholderFlag != "" {
		a.Cfg.Placeholder = a.PlaceholderFlag
	}
	if a.LogLevelFlag != "" {
		a.Cfg.LogLevel = a.LogLevelFlag
	}
	if a.NoColorFlag {
		a.Cfg.SetColor(false)
	}
	if !a.Cfg.ColorEnabled() {
		color.NoColor = true
		a.Jsonfmt.DisabledColor = true
	}

	a.Log, err = NewLogger(a.ErrWriter, a.Cfg.Level())
	if err != nil {
		return err
	}
	a.Codec = a.NewCodec(true)
	return nil
}

// StoredConfig re-reads the config file without environment or flag
// overrides. Commands that write the config start from it.
func (a *App) StoredConfig() (config.Config, error) {
	cfg, err := config.ReadConfig(a.CfgFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewLogger returns a logrus logger writing plain text lines to w.
func NewLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})
	return log, nil
}

// NewCodec builds a codec from the current config. With report set,
// skipped characters and unknown codes are logged as warnings.
func (a *App) NewCodec(report bool) *morse.Codec {
	opts := []morse.Option{morse.WithPlaceholder(a.Cfg.Placeholder)}
	if report {
		opts = append(opts, morse.WithReporter(a.Reporter()))
	}
	return morse.New(opts...)
}

// Reporter adapts the logger to morse.Reporter.
func (a *App) Reporter() morse.Reporter {
	return morse.ReporterFunc(func(w morse.Warning) {
		entry := a.Log.WithField("offset", w.Offset)
		switch w.Kind {
		case morse.KindUnsupportedChar:
			entry.WithField("char", string(w.Char)).Warn("skipping unsupported character")
		case morse.KindUnknownCode:
			entry.WithField("code", w.Code).Warn("unknown code, writing placeholder")
		}
	})
}

// StartMode returns the configured initial session mode.
func (a *App) StartMode() (session.Mode, error) {
	m, err := session.ParseMode(a.Cfg.StartMode())
	if err != nil {
		return session.ModeEncode, fmt.Errorf("invalid config: %w", err)
	}
	return m, nil
}

// AddNoHeadersFlag installs --no-headers on cmd.
func (a *App) AddNoHeadersFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.NoHeaderFlag, "no-headers", false, "Hide table headers")
}

// ValidModeArgs provides shell completion for mode names.
func (a *App) ValidModeArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{session.ModeEncode.String(), session.ModeDecode.String()}, cobra.ShellCompDirectiveNoFileComp
}

const (
	TabwriterMinWidth = 6
	TabwriterWidth    = 4
	TabwriterPadding  = 3
	TabwriterPadChar  = ' '
	TabwriterFlags    = 0
)

// NewTabWriter creates a standard tabwriter for CLI output.
func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, TabwriterMinWidth, TabwriterWidth, TabwriterPadding, TabwriterPadChar, TabwriterFlags)
}
