// SPDX-License-Identifier: MPL-2.0

package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	colorTitle = lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: "#A78BFA"}
	colorKey   = lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#60A5FA"}
	colorValue = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	colorMuted = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}
	colorBad   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
)

// styles are bound to one lipgloss renderer so adaptive colors resolve
// against that output's background.
type styles struct {
	title   lipgloss.Style
	key     lipgloss.Style
	value   lipgloss.Style
	muted   lipgloss.Style
	invalid lipgloss.Style
	r       *lipgloss.Renderer
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		key:     r.NewStyle().Foreground(colorKey).Width(12),
		value:   r.NewStyle().Foreground(colorValue),
		muted:   r.NewStyle().Foreground(colorMuted),
		invalid: r.NewStyle().Bold(true).Foreground(colorBad),
		r:       r,
	}
}

// swatch renders hex as a padded block of that color with a readable label.
// hex must be a normalized 6-digit code.
func (s styles) swatch(hex string) string {
	return s.r.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(labelColor(hex)).
		Padding(0, 1).
		Render(hex)
}

// labelColor picks black or white text, whichever reads better on hex.
func labelColor(hex string) lipgloss.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.Color("#FFFFFF")
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}
