// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/huewheel/huewheel/internal/config"
	"github.com/huewheel/huewheel/internal/issue"
	"github.com/huewheel/huewheel/pkg/hexcolor"

	"github.com/charmbracelet/fang"
)

func TestIssueFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{"color code", colorCodeError("abc", &hexcolor.InvalidColorCodeError{Value: "abc"}), issue.InvalidColorCodeId},
		{"channel", channelError("300", &hexcolor.InvalidChannelError{Name: "red", Value: 300}), issue.InvalidChannelId},
		{"output format", outputFormatError(&config.InvalidOutputFormatError{Value: "yaml"}), issue.InvalidOutputFormatId},
		{"color scheme", fmt.Errorf("load: %w", config.ErrInvalidColorScheme), issue.ConfigLoadFailedId},
		{"schema violation", configLoadError(fmt.Errorf("%w: config.cue: ui.color_scheme: conflicting values", config.ErrInvalidConfigFile)), issue.ConfigLoadFailedId},
		{"missing file", configLoadError(fmt.Errorf("%w: nope.cue", config.ErrConfigFileNotFound)), issue.ConfigLoadFailedId},
		{"unrelated", errors.New("boom"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := issueFor(tt.err); got != tt.want {
				t.Errorf("issueFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	err := colorCodeError("abc", &hexcolor.InvalidColorCodeError{Value: "abc"})

	plain := formatErrorForDisplay(err, false)
	if !strings.Contains(plain, "failed to parse color code: abc") {
		t.Errorf("missing operation in %q", plain)
	}
	if strings.Contains(plain, "Error chain") {
		t.Errorf("non-verbose output should not include the error chain: %q", plain)
	}

	verbose := formatErrorForDisplay(err, true)
	if !strings.Contains(verbose, "Error chain") {
		t.Errorf("verbose output should include the error chain: %q", verbose)
	}

	if got := formatErrorForDisplay(errors.New("plain"), true); got != "plain" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	t.Run("reported exit error is silent", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		app := NewApp(Dependencies{Config: &fakeConfigProvider{}, Stdout: &buf, Stderr: &buf})
		app.handleError(&buf, fang.Styles{}, &ExitError{Code: 1})
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("actionable error shows suggestions", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		app := NewApp(Dependencies{Config: &fakeConfigProvider{}, Stdout: &buf, Stderr: &buf})
		app.handleError(&buf, fang.Styles{}, colorCodeError("abc", &hexcolor.InvalidColorCodeError{Value: "abc"}))

		out := buf.String()
		for _, want := range []string{"Error: ", "failed to parse color code", "Quote the value"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Valid examples") {
			t.Errorf("issue entry should only render in verbose mode:\n%s", out)
		}
	})

	t.Run("verbose renders issue entry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		app := NewApp(Dependencies{Config: &fakeConfigProvider{}, Stdout: &buf, Stderr: &buf})
		app.verbose = true
		app.handleError(&buf, fang.Styles{}, channelError("300", &hexcolor.InvalidChannelError{Name: "red", Value: 300}))

		out := buf.String()
		for _, want := range []string{"Error chain", "Invalid RGB channel"} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
	})

	t.Run("verbose config error renders config entry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		app := NewApp(Dependencies{Config: &fakeConfigProvider{}, Stdout: &buf, Stderr: &buf})
		app.verbose = true
		app.handleError(&buf, fang.Styles{}, configLoadError(fmt.Errorf("%w: config.cue: syntax error", config.ErrInvalidConfigFile)))

		if !strings.Contains(buf.String(), "Failed to load configuration") {
			t.Errorf("output missing config issue entry:\n%s", buf.String())
		}
	})

	t.Run("other errors use fang default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		app := NewApp(Dependencies{Config: &fakeConfigProvider{}, Stdout: &buf, Stderr: &buf})
		app.handleError(&buf, fang.Styles{}, errors.New("something broke"))
		if !strings.Contains(buf.String(), "something broke") {
			t.Errorf("output missing error text:\n%s", buf.String())
		}
	})
}

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("cause")
	err := &ExitError{Code: 3, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("ExitError should unwrap to its cause")
	}
	if err.Error() != "cause" {
		t.Errorf("Error() = %q, want %q", err.Error(), "cause")
	}

	silent := &ExitError{Code: 1}
	if silent.Error() == "" {
		t.Error("ExitError without cause should still describe itself")
	}
}

func TestGlamourStyle(t *testing.T) {
	t.Parallel()

	tests := map[config.ColorScheme]string{
		config.ColorSchemeAuto:  "auto",
		config.ColorSchemeDark:  "dark",
		config.ColorSchemeLight: "light",
	}
	for scheme, want := range tests {
		if got := glamourStyle(scheme); got != want {
			t.Errorf("glamourStyle(%q) = %q, want %q", scheme, got, want)
		}
	}
}

func configLoadError(cause error) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithSuggestion("Check that the file contains valid CUE syntax").
		Wrap(cause).
		BuildError()
}
