// SPDX-License-Identifier: MPL-2.0

package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/huewheel/huewheel/internal/config"
	"github.com/huewheel/huewheel/pkg/hexcolor"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
)

type (
	// Options configures a Renderer.
	Options struct {
		Format      config.OutputFormat
		ColorScheme config.ColorScheme
		// Swatch draws color blocks in text output. Ignored when the
		// writer does not support color.
		Swatch bool
	}

	// Renderer writes results to a single writer.
	Renderer struct {
		w      io.Writer
		format config.OutputFormat
		swatch bool
		st     styles
	}

	// Complement pairs a color with its complement.
	Complement struct {
		Color      hexcolor.Code `json:"color" toml:"color"`
		Complement hexcolor.Code `json:"complement" toml:"complement"`
	}

	// Validation is the outcome of checking one input string.
	Validation struct {
		Value      string        `json:"value" toml:"value"`
		Valid      bool          `json:"valid" toml:"valid"`
		Normalized hexcolor.Code `json:"normalized,omitempty" toml:"normalized,omitempty"`
	}

	// Demo is a descriptor together with its complement.
	Demo struct {
		Descriptor hexcolor.Descriptor `json:"descriptor" toml:"descriptor"`
		Complement hexcolor.Code       `json:"complement" toml:"complement"`
	}

	codeResult struct {
		Hex hexcolor.Code `json:"hex" toml:"hex"`
	}

	validationResults struct {
		Results []Validation `json:"results" toml:"results"`
	}
)

// New creates a Renderer writing to w.
func New(w io.Writer, opts Options) (*Renderer, error) {
	format := opts.Format
	if format == "" {
		format = config.OutputText
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}

	lr := lipgloss.NewRenderer(w)
	switch opts.ColorScheme {
	case config.ColorSchemeDark:
		lr.SetHasDarkBackground(true)
	case config.ColorSchemeLight:
		lr.SetHasDarkBackground(false)
	}

	return &Renderer{
		w:      w,
		format: format,
		swatch: opts.Swatch && lr.ColorProfile() != termenv.Ascii,
		st:     newStyles(lr),
	}, nil
}

// Descriptor writes every representation of a color.
func (r *Renderer) Descriptor(d hexcolor.Descriptor) error {
	if r.format != config.OutputText {
		return r.encode(d)
	}
	r.descriptorText(d)
	return nil
}

// Complement writes a color and its complement.
func (r *Renderer) Complement(c Complement) error {
	if r.format != config.OutputText {
		return r.encode(c)
	}
	if r.swatch {
		fmt.Fprintf(r.w, "%s %s %s\n", r.st.swatch(string(c.Color)), r.st.muted.Render("→"), r.st.swatch(string(c.Complement)))
		return nil
	}
	fmt.Fprintln(r.w, c.Complement)
	return nil
}

// Code writes a single color code.
func (r *Renderer) Code(c hexcolor.Code) error {
	if r.format != config.OutputText {
		return r.encode(codeResult{Hex: c})
	}
	if r.swatch {
		fmt.Fprintln(r.w, r.st.swatch(string(c)))
		return nil
	}
	fmt.Fprintln(r.w, c)
	return nil
}

// RGB writes channel values.
func (r *Renderer) RGB(c hexcolor.RGB) error {
	if r.format != config.OutputText {
		return r.encode(c)
	}
	fmt.Fprintln(r.w, c.String())
	return nil
}

// Validations writes one line (or record) per checked input.
func (r *Renderer) Validations(results []Validation) error {
	if r.format != config.OutputText {
		return r.encode(validationResults{Results: results})
	}
	for _, v := range results {
		if v.Valid {
			fmt.Fprintf(r.w, "%s: %s\n", v.Value, r.st.value.Render("valid"))
		} else {
			fmt.Fprintf(r.w, "%s: %s\n", v.Value, r.st.invalid.Render("invalid"))
		}
	}
	return nil
}

// Demo writes a descriptor followed by its complement.
func (r *Renderer) Demo(d Demo) error {
	if r.format != config.OutputText {
		return r.encode(d)
	}
	fmt.Fprintln(r.w, r.st.title.Render("Color "+string(d.Descriptor.Hex)))
	fmt.Fprintln(r.w)
	r.descriptorText(d.Descriptor)
	fmt.Fprintln(r.w)
	complement := string(d.Complement)
	if r.swatch {
		complement = r.st.swatch(complement)
	}
	fmt.Fprintf(r.w, "%s %s\n", r.st.key.Render("complement"), complement)
	return nil
}

func (r *Renderer) descriptorText(d hexcolor.Descriptor) {
	hex := string(d.Hex)
	if r.swatch {
		hex = r.st.swatch(hex)
	}
	rows := [][2]string{
		{"hex", hex},
		{"rgb", d.RGB.String()},
		{"hsl", d.Display.String()},
		{"hsl (raw)", formatFloat(d.HSL.H) + " " + formatFloat(d.HSL.S) + " " + formatFloat(d.HSL.L)},
	}
	for _, row := range rows {
		fmt.Fprintf(r.w, "%s %s\n", r.st.key.Render(row[0]), r.st.value.Render(row[1]))
	}
}

func (r *Renderer) encode(v any) error {
	switch r.format {
	case config.OutputJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case config.OutputTOML:
		return toml.NewEncoder(r.w).Encode(v)
	default:
		return fmt.Errorf("cannot encode %T as %s", v, r.format)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}
