package app

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/birdayz/symcheck/pkg/config"
	"github.com/birdayz/symcheck/pkg/render"
	"github.com/birdayz/symcheck/pkg/source"
)

// ErrMismatch is returned by check --exit-code when the inputs differ.
var ErrMismatch = errors.New("inputs do not match")

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableOut io.Writer

	// Config state
	Cfg       config.Config
	CfgFile   string
	ColorFlag string
	WidthFlag int
	Verbose   bool

	Logger  *log.Logger
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
		Logger:       log.New(io.Discard, "", 0),
		Jsonfmt:      prettyjson.NewFormatter(),
	}
}

// InitConfig reads the config file and validates global flags.
// Called by PersistentPreRunE on the root command.
func (a *App) InitConfig() error {
	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if a.ColorFlag != "" {
		if err := config.ValidateColor(a.ColorFlag); err != nil {
			return err
		}
	}
	if a.WidthFlag < 0 {
		return fmt.Errorf("width must be positive, got %d", a.WidthFlag)
	}

	if a.Verbose {
		a.Logger = log.New(a.ErrWriter, "[symcheck] ", log.Lshortfile|log.LstdFlags)
	}
	a.Logger.Printf("using config %s", a.Cfg.Path())

	a.Jsonfmt.DisabledColor = !a.UseColor()
	return nil
}

// ColorMode is the effective colour mode: flag, then config, then auto.
func (a *App) ColorMode() string {
	if a.ColorFlag != "" {
		return a.ColorFlag
	}
	return a.Cfg.ColorOrDefault()
}

// UseColor reports whether output should carry ANSI colours.
func (a *App) UseColor() bool {
	switch a.ColorMode() {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := a.OutWriter.(*os.File)
	if !ok || f != os.Stdout {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Width is the panel width: flag, then config, then the default.
func (a *App) Width() int {
	if a.WidthFlag > 0 {
		return a.WidthFlag
	}
	return a.Cfg.WidthOrDefault()
}

// ViewWriter returns a terminal renderer bound to the colourable output.
func (a *App) ViewWriter() *render.Writer {
	return &render.Writer{
		Out:   a.ColorableOut,
		Color: a.UseColor(),
		Icons: a.Cfg.Icons,
	}
}

// NewLoader returns an input loader reading stdin from InReader.
func (a *App) NewLoader(opts source.Options) *source.Loader {
	return &source.Loader{Stdin: a.InReader, Options: opts}
}

// AddNoHeadersFlag installs --no-headers on cmd.
func (a *App) AddNoHeadersFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.NoHeaderFlag, "no-headers", false, "Hide table headers")
}

// ValidConfigKeys provides shell completion for config keys.
func (a *App) ValidConfigKeys(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys(), cobra.ShellCompDirectiveNoFileComp
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
