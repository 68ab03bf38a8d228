// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

// NewRootCommand builds the huewheel command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "huewheel",
		Short: "Validate, convert and complement hex colors",
		Long: TitleStyle.Render("huewheel") + SubtitleStyle.Render(" - Validate, convert and complement hex colors") + `

huewheel understands '#'-prefixed color codes with 3 or 6 hex digits.
Shorthand codes are expanded (#a0f becomes #aa00ff) before conversion.

` + SubtitleStyle.Render("Examples:") + `
  huewheel describe '#19021e'     Show hex, RGB and HSL for a color
  huewheel complement '#19021e'   Rotate the hue by 180°
  huewheel hex 25 2 30            Encode RGB channels as hex
  huewheel validate '#abc' abc    Check codes without converting them
  huewheel config show            Show current configuration`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.prepare(cmd)
		},
	}

	rootCmd.SetOut(app.stdout)
	rootCmd.SetErr(app.stderr)

	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.config/huewheel/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&app.outputFlag, "output", "o", "text", "output format: text, json or toml")

	rootCmd.AddCommand(newValidateCommand(app))
	rootCmd.AddCommand(newNormalizeCommand(app))
	rootCmd.AddCommand(newRGBCommand(app))
	rootCmd.AddCommand(newHexCommand(app))
	rootCmd.AddCommand(newDescribeCommand(app))
	rootCmd.AddCommand(newComplementCommand(app))
	rootCmd.AddCommand(newDemoCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the CLI and exits the process on failure.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	// fang overrides rootCmd.Version, so the version goes through WithVersion.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
		fang.WithErrorHandler(app.handleError),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
