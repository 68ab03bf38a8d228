// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/huewheel/huewheel/internal/config"
	"github.com/huewheel/huewheel/internal/issue"
	"github.com/huewheel/huewheel/pkg/hexcolor"

	"github.com/charmbracelet/fang"
)

// handleError is the fang error handler. Actionable errors are printed with
// their suggestions (and the issue catalog entry in verbose mode); errors
// the command already reported are not printed again.
func (a *App) handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) && exitErr.Err == nil {
		return
	}

	var ae *issue.ActionableError
	if !errors.As(err, &ae) {
		fang.DefaultErrorHandler(w, styles, err)
		return
	}

	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+ae.Format(a.verbose))
	if !a.verbose {
		return
	}
	if entry := issue.Get(issueFor(err)); entry != nil {
		a.logger.Debug("rendering issue", "id", entry.Id())
		if rendered, renderErr := entry.Render(glamourStyle(a.cfg.UI.ColorScheme)); renderErr == nil {
			fmt.Fprint(w, rendered)
		} else {
			a.logger.Debug("failed to render issue", "error", renderErr)
		}
	}
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors include suggestions; verbose mode adds the error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueFor maps an error to the catalog entry that explains it.
func issueFor(err error) issue.Id {
	switch {
	case errors.Is(err, hexcolor.ErrInvalidColorCode):
		return issue.InvalidColorCodeId
	case errors.Is(err, hexcolor.ErrInvalidChannel):
		return issue.InvalidChannelId
	case errors.Is(err, config.ErrInvalidOutputFormat):
		return issue.InvalidOutputFormatId
	case errors.Is(err, config.ErrInvalidColorScheme),
		errors.Is(err, config.ErrInvalidConfigFile),
		errors.Is(err, config.ErrConfigFileNotFound):
		return issue.ConfigLoadFailedId
	default:
		return 0
	}
}

func glamourStyle(scheme config.ColorScheme) string {
	switch scheme {
	case config.ColorSchemeLight:
		return "light"
	case config.ColorSchemeDark:
		return "dark"
	default:
		return "auto"
	}
}

func colorCodeError(value string, err error) error {
	return issue.NewErrorContext().
		WithOperation("parse color code").
		WithResource(value).
		WithSuggestion("Use '#' followed by 3 or 6 hex digits, e.g. '#a0f' or '#19021e'").
		WithSuggestion("Quote the value so your shell does not treat '#' as a comment").
		Wrap(err).
		BuildError()
}

func channelError(value string, err error) error {
	return issue.NewErrorContext().
		WithOperation("parse RGB channel").
		WithResource(value).
		WithSuggestion("Channels are integers from 0 to 255, e.g. 'huewheel hex 25 2 30'").
		Wrap(err).
		BuildError()
}

func outputFormatError(err error) error {
	return issue.NewErrorContext().
		WithOperation("select output format").
		WithSuggestion("Use --output text, --output json or --output toml").
		Wrap(err).
		BuildError()
}
