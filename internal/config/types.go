// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// OutputText renders styled, human-readable text.
	OutputText OutputFormat = "text"
	// OutputJSON renders indented JSON.
	OutputJSON OutputFormat = "json"
	// OutputTOML renders TOML.
	OutputTOML OutputFormat = "toml"

	// ColorSchemeAuto detects the terminal background automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidOutputFormat is the sentinel error wrapped by InvalidOutputFormatError.
	ErrInvalidOutputFormat = errors.New("invalid output format")
	// ErrInvalidColorScheme is the sentinel error wrapped by InvalidColorSchemeError.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrConfigFileNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigFileNotFound = errors.New("config file not found")
	// ErrInvalidConfigFile wraps read, syntax and schema failures of a config file.
	ErrInvalidConfigFile = errors.New("invalid config file")
)

type (
	// OutputFormat selects how commands encode their results.
	OutputFormat string

	// InvalidOutputFormatError is returned when an OutputFormat value is not recognized.
	InvalidOutputFormatError struct {
		Value OutputFormat
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// Config is the full huewheel configuration.
	Config struct {
		// Output is the default encoding for command results.
		Output OutputFormat `json:"output" mapstructure:"output"`
		// UI configures terminal presentation.
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme ("auto", "dark", "light").
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging and extended error output.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
		// Swatch draws a block of each color next to text output.
		Swatch bool `json:"swatch" mapstructure:"swatch"`
	}
)

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputText,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
			Swatch:      true,
		},
	}
}

// Validate checks every enumerated field of the configuration.
func (c *Config) Validate() error {
	return errors.Join(c.Output.Validate(), c.UI.ColorScheme.Validate())
}

// Validate returns an error if the OutputFormat is not text, json or toml.
func (f OutputFormat) Validate() error {
	switch f {
	case OutputText, OutputJSON, OutputTOML:
		return nil
	default:
		return &InvalidOutputFormatError{Value: f}
	}
}

// String returns the string representation of the OutputFormat.
func (f OutputFormat) String() string { return string(f) }

// Error implements the error interface.
func (e *InvalidOutputFormatError) Error() string {
	return fmt.Sprintf("invalid output format %q (valid: text, json, toml)", e.Value)
}

// Unwrap returns ErrInvalidOutputFormat for errors.Is() compatibility.
func (e *InvalidOutputFormatError) Unwrap() error { return ErrInvalidOutputFormat }

// Validate returns an error if the ColorScheme is not auto, dark or light.
func (cs ColorScheme) Validate() error {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return nil
	default:
		return &InvalidColorSchemeError{Value: cs}
	}
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }
