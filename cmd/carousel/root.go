package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/carousel/internal/logger"
	"github.com/alexisbeaulieu97/carousel/internal/ui/components"
)

const envPrefix = "CAROUSEL"

// rootFlags resolves persistent settings from flags, then CAROUSEL_*
// environment variables, then defaults.
type rootFlags struct {
	v *viper.Viper
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "carousel",
		Short:         "Carousel plays slide decks in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("log-format", "console", "Log format (console, json)")
	pf.String("theme", "light", "Colour theme (light, dark)")

	flags.v.SetEnvPrefix(envPrefix)
	flags.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	flags.v.AutomaticEnv()
	for _, name := range []string{"log-level", "log-format", "theme"} {
		_ = flags.v.BindPFlag(name, pf.Lookup(name))
	}

	cmd.AddCommand(newPlayCmd(flags))
	cmd.AddCommand(newSimulateCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) logLevel() string {
	return f.v.GetString("log-level")
}

func (f *rootFlags) logFormat() string {
	return strings.ToLower(f.v.GetString("log-format"))
}

func (f *rootFlags) theme() (components.Theme, error) {
	return components.ThemeByName(f.v.GetString("theme"))
}

// logger builds the command logger. Entries go to the command's error
// stream so they never mix with rendered frames.
func (f *rootFlags) logger(cmd *cobra.Command, component string) (*logger.Logger, error) {
	format := f.logFormat()
	if format != "console" && format != "json" {
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	log, err := logger.New(logger.Options{
		Level:         f.logLevel(),
		HumanReadable: format == "console",
		Writer:        cmd.ErrOrStderr(),
		Component:     component,
	})
	if err != nil {
		return nil, fmt.Errorf("configure logger: %w", err)
	}
	return log, nil
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
