// SPDX-License-Identifier: MPL-2.0

package hexcolor

import (
	"fmt"
	"math"
)

const (
	oneSixth = 1.0 / 6.0
	oneThird = 1.0 / 3.0
	twoThird = 2.0 / 3.0
)

type (
	// HSL is a color as hue, saturation and luminosity, each in [0,1].
	// H is a fraction of a full turn (multiply by 360 for degrees).
	HSL struct {
		H float64 `json:"h" toml:"h"`
		S float64 `json:"s" toml:"s"`
		L float64 `json:"l" toml:"l"`
	}

	// HSLDisplay is the human-readable rendering of an HSL value, e.g.
	// {"289°", "88%", "6%"}.
	HSLDisplay struct {
		Hue        string `json:"hue" toml:"hue"`
		Saturation string `json:"saturation" toml:"saturation"`
		Luminosity string `json:"luminosity" toml:"luminosity"`
	}
)

// RGBToHSL converts c to hue, saturation and luminosity.
// Achromatic colors (all channels equal) have zero hue and saturation.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / MaxChannel
	g := float64(c.G) / MaxChannel
	b := float64(c.B) / MaxChannel

	maxc := max(r, g, b)
	minc := min(r, g, b)
	sumc := maxc + minc
	rangec := maxc - minc
	l := sumc / 2.0
	if minc == maxc {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l <= 0.5 {
		s = rangec / sumc
	} else {
		s = rangec / (2.0 - maxc - minc)
	}

	rc := (maxc - r) / rangec
	gc := (maxc - g) / rangec
	bc := (maxc - b) / rangec

	var h float64
	switch maxc {
	case r:
		h = bc - gc
	case g:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}

	return HSL{H: wrapUnit(h / 6.0), S: s, L: l}
}

// HSLToRGB converts c back to 8-bit channels. Each channel is scaled by 255
// and rounded to the nearest integer, halves to even.
func HSLToRGB(c HSL) RGB {
	if c.S == 0 {
		v := toChannel(c.L)
		return RGB{R: v, G: v, B: v}
	}

	var m2 float64
	if c.L <= 0.5 {
		m2 = c.L * (1.0 + c.S)
	} else {
		m2 = c.L + c.S - (c.L * c.S)
	}
	m1 := 2.0*c.L - m2

	return RGB{
		R: toChannel(hueToValue(m1, m2, c.H+oneThird)),
		G: toChannel(hueToValue(m1, m2, c.H)),
		B: toChannel(hueToValue(m1, m2, c.H-oneThird)),
	}
}

// Display renders c as integer degrees and integer percentages. Exact
// halves round to the even neighbor (92.5% shows as 92%).
func (c HSL) Display() HSLDisplay {
	return HSLDisplay{
		Hue:        fmt.Sprintf("%d°", int(math.RoundToEven(c.H*360))),
		Saturation: fmt.Sprintf("%d%%", int(math.RoundToEven(c.S*100))),
		Luminosity: fmt.Sprintf("%d%%", int(math.RoundToEven(c.L*100))),
	}
}

// String returns the display values separated by spaces.
func (d HSLDisplay) String() string {
	return d.Hue + " " + d.Saturation + " " + d.Luminosity
}

func hueToValue(m1, m2, hue float64) float64 {
	hue = wrapUnit(hue)
	switch {
	case hue < oneSixth:
		return m1 + (m2-m1)*hue*6.0
	case hue < 0.5:
		return m2
	case hue < twoThird:
		return m1 + (m2-m1)*(twoThird-hue)*6.0
	default:
		return m1
	}
}

// wrapUnit maps x into [0,1), including negative inputs.
func wrapUnit(x float64) float64 {
	x = math.Mod(x, 1.0)
	if x < 0 {
		x += 1.0
	}
	// -tiny + 1.0 can round up to exactly 1.0.
	if x >= 1.0 {
		x = 0
	}
	return x
}

func toChannel(v float64) Channel {
	n := math.RoundToEven(v * MaxChannel)
	return Channel(math.Max(0, math.Min(MaxChannel, n)))
}
