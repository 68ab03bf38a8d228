// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/huewheel/huewheel/internal/config"
	"github.com/huewheel/huewheel/internal/issue"

	"github.com/spf13/cobra"
)

// newConfigCommand creates the `huewheel config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage huewheel configuration",
		Long: `Manage huewheel configuration.

Configuration is stored in:
  - Linux: ~/.config/huewheel/config.cue
  - macOS: ~/Library/Application Support/huewheel/config.cue
  - Windows: %APPDATA%\huewheel\config.cue

Any key can be overridden with an environment variable, e.g.
HUEWHEEL_OUTPUT=json or HUEWHEEL_UI_COLOR_SCHEME=light.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:         "show",
		Short:       "Show current configuration",
		Annotations: map[string]string{reportsConfigErrors: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		Long: `Create a default configuration file in the configuration directory,
or at the --config path when one is given. An existing file is kept.`,
		Annotations: map[string]string{reportsConfigErrors: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := initConfig(app.cfgFile)
			if err != nil {
				return issue.WrapWithOperation(err, "create configuration file")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", SuccessStyle.Render("Config file:"), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(app.loadOptions())
			if err != nil {
				return err
			}
			if path == "" {
				dir, err := config.ConfigDir()
				if err != nil {
					return err
				}
				path = filepath.Join(dir, config.ConfigFileName+"."+config.ConfigFileExt)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", path, SubtitleStyle.Render("(not created)"))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Output the effective configuration as CUE",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.GenerateCUE(app.cfg))
			return nil
		},
	})

	return cfgCmd
}

// initConfig writes a default config at cfgFile, or in the config
// directory when cfgFile is empty, and returns the file path.
func initConfig(cfgFile string) (string, error) {
	if cfgFile == "" {
		return config.CreateDefaultConfig("")
	}
	if err := config.CreateDefaultConfigFile(cfgFile); err != nil {
		return "", err
	}
	return cfgFile, nil
}

func showConfig(cmd *cobra.Command, app *App) error {
	stdout := cmd.OutOrStdout()

	cfg, err := app.Config.Load(cmd.Context(), app.loadOptions())
	if err != nil {
		return err
	}

	path, err := config.ResolvePath(app.loadOptions())
	if err != nil {
		return err
	}

	keyStyle := CmdStyle
	valueStyle := SuccessStyle

	fmt.Fprintln(stdout, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(stdout)
	if path != "" {
		fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("Config file"), path)
	} else {
		fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Fprintln(stdout)

	fmt.Fprintf(stdout, "%s: %s\n", keyStyle.Render("output"), valueStyle.Render(cfg.Output.String()))
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(stdout, "  color_scheme: %s\n", valueStyle.Render(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(stdout, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))
	fmt.Fprintf(stdout, "  swatch: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Swatch)))

	return nil
}
