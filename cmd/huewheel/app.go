// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/huewheel/huewheel/internal/config"
	"github.com/huewheel/huewheel/internal/render"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// reportsConfigErrors marks commands that surface config load failures
// themselves, so prepare does not warn about them first.
const reportsConfigErrors = "huewheel.reports-config-errors"

type (
	// App wires CLI services and shared state. Every Cobra handler receives
	// the App and reads the resolved configuration from it.
	App struct {
		Config ConfigProvider
		logger *log.Logger
		stdout io.Writer
		stderr io.Writer

		// Flag values, bound by NewRootCommand.
		cfgFile    string
		outputFlag string
		verbose    bool

		// cfg is the effective configuration after flags are applied.
		cfg *config.Config
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config ConfigProvider
		Stdout io.Writer
		Stderr io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}
)

// NewApp creates an App, filling unset dependencies with production defaults.
func NewApp(deps Dependencies) *App {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Config: deps.Config,
		logger: log.NewWithOptions(deps.Stderr, log.Options{
			Prefix: "huewheel",
			Level:  log.WarnLevel,
		}),
		stdout: deps.Stdout,
		stderr: deps.Stderr,
		cfg:    config.DefaultConfig(),
	}
}

// loadOptions builds config loading options from the global flags.
func (a *App) loadOptions() config.LoadOptions {
	return config.LoadOptions{ConfigFilePath: a.cfgFile}
}

// prepare loads configuration and applies flag overrides. Config errors are
// reported as warnings and defaults are used, so color commands keep working
// with a broken config file.
func (a *App) prepare(cmd *cobra.Command) error {
	cfg, err := a.Config.Load(cmd.Context(), a.loadOptions())
	if err != nil {
		if _, ok := cmd.Annotations[reportsConfigErrors]; !ok {
			fmt.Fprintln(a.stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, a.verbose))
		}
		cfg = config.DefaultConfig()
	}

	if cmd.Flags().Changed("output") {
		cfg.Output = config.OutputFormat(a.outputFlag)
		if err := cfg.Output.Validate(); err != nil {
			return outputFormatError(err)
		}
	}
	if a.verbose {
		cfg.UI.Verbose = true
	}
	a.verbose = cfg.UI.Verbose
	a.cfg = cfg

	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}
	a.logger.Debug("configuration resolved",
		"output", cfg.Output,
		"color_scheme", cfg.UI.ColorScheme,
		"swatch", cfg.UI.Swatch,
	)
	return nil
}

// renderer returns a result renderer for cmd's output stream.
func (a *App) renderer(cmd *cobra.Command) (*render.Renderer, error) {
	r, err := render.New(cmd.OutOrStdout(), render.Options{
		Format:      a.cfg.Output,
		ColorScheme: a.cfg.UI.ColorScheme,
		Swatch:      a.cfg.UI.Swatch,
	})
	if err != nil {
		return nil, outputFormatError(err)
	}
	return r, nil
}
