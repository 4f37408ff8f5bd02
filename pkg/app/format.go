package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birdayz/symcheck/pkg/config"
)

// OutputFormat controls how results are printed. The zero value defers to
// the config file.
type OutputFormat string

const (
	OutputFormatText     OutputFormat = "text"
	OutputFormatJSON     OutputFormat = "json"
	OutputFormatMsgpack  OutputFormat = "msgpack"
	OutputFormatAvro     OutputFormat = "avro"
	OutputFormatTemplate OutputFormat = "template"
)

func (e *OutputFormat) String() string {
	return string(*e)
}

func (e *OutputFormat) Set(v string) error {
	for _, valid := range config.ValidOutputs {
		if v == valid {
			*e = OutputFormat(v)
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(config.ValidOutputs, ", "))
}

func (e *OutputFormat) Type() string {
	return "OutputFormat"
}

// CompleteOutputFormat provides shell completion for --output.
func CompleteOutputFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return config.ValidOutputs, cobra.ShellCompDirectiveNoFileComp
}

// CompleteColor provides shell completion for --color.
func CompleteColor(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{config.ColorAuto, config.ColorAlways, config.ColorNever}, cobra.ShellCompDirectiveNoFileComp
}

// ResolveOutput returns f, or the configured format when f is unset.
func (a *App) ResolveOutput(f OutputFormat) OutputFormat {
	if f != "" {
		return f
	}
	return OutputFormat(a.Cfg.OutputOrDefault())
}

// AddOutputFlags installs --output and --template on cmd.
func (a *App) AddOutputFlags(cmd *cobra.Command, format *OutputFormat, tmpl *string) {
	cmd.Flags().VarP(format, "output", "o", "Output format (text, json, msgpack, avro, template). Defaults to the config file setting")
	cmd.Flags().StringVar(tmpl, "template", "", "Go template used with --output template (sprig functions available)")
	_ = cmd.RegisterFlagCompletionFunc("output", CompleteOutputFormat)
}
