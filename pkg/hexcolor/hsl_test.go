// SPDX-License-Identifier: MPL-2.0

package hexcolor

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

const epsilon = 1e-9

func TestRGBToHSL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rgb  RGB
		want HSL
	}{
		{"black", RGB{0, 0, 0}, HSL{0, 0, 0}},
		{"white", RGB{255, 255, 255}, HSL{0, 0, 1}},
		{"red", RGB{255, 0, 0}, HSL{0, 1, 0.5}},
		{"green", RGB{0, 255, 0}, HSL{1.0 / 3.0, 1, 0.5}},
		{"blue", RGB{0, 0, 255}, HSL{2.0 / 3.0, 1, 0.5}},
		{"magenta", RGB{255, 0, 255}, HSL{5.0 / 6.0, 1, 0.5}},
		{"dark purple", RGB{25, 2, 30}, HSL{0.8035714285714285, 0.875, 0.06274509803921569}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := RGBToHSL(tt.rgb)
			if !hslClose(got, tt.want) {
				t.Errorf("RGBToHSL(%v) = %+v, want %+v", tt.rgb, got, tt.want)
			}
		})
	}
}

func TestRGBToHSL_MatchesColorful(t *testing.T) {
	t.Parallel()

	for r := 0; r <= MaxChannel; r += 15 {
		for g := 0; g <= MaxChannel; g += 17 {
			for b := 0; b <= MaxChannel; b += 51 {
				c := RGB{Channel(r), Channel(g), Channel(b)}
				got := RGBToHSL(c)

				h, s, l := colorful.Color{
					R: float64(r) / MaxChannel,
					G: float64(g) / MaxChannel,
					B: float64(b) / MaxChannel,
				}.Hsl()

				if got.H < 0 || got.H >= 1 {
					t.Fatalf("RGBToHSL(%v).H = %v, want in [0,1)", c, got.H)
				}
				if d := math.Abs(got.H*360 - h); math.Min(d, 360-d) > 1e-6 {
					t.Errorf("RGBToHSL(%v).H = %v°, colorful says %v°", c, got.H*360, h)
				}
				if math.Abs(got.S-s) > 1e-6 || math.Abs(got.L-l) > 1e-6 {
					t.Errorf("RGBToHSL(%v) = S %v L %v, colorful says S %v L %v", c, got.S, got.L, s, l)
				}
			}
		}
	}
}

func TestHSLToRGB_RoundTrip(t *testing.T) {
	t.Parallel()

	for r := 0; r <= MaxChannel; r += 5 {
		for g := 0; g <= MaxChannel; g += 7 {
			for b := 0; b <= MaxChannel; b += 11 {
				c := RGB{Channel(r), Channel(g), Channel(b)}
				if got := HSLToRGB(RGBToHSL(c)); got != c {
					t.Fatalf("HSLToRGB(RGBToHSL(%v)) = %v", c, got)
				}
			}
		}
	}
}

func TestHSLToRGB(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hsl  HSL
		want RGB
	}{
		{"grey", HSL{0.7, 0, 0.5}, RGB{128, 128, 128}},
		{"red", HSL{0, 1, 0.5}, RGB{255, 0, 0}},
		{"cyan", HSL{0.5, 1, 0.5}, RGB{0, 255, 255}},
		{"light", HSL{0, 1, 0.75}, RGB{255, 128, 128}},
		{"complement of dark purple", HSL{0.3035714285714285, 0.875, 0.06274509803921569}, RGB{7, 30, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := HSLToRGB(tt.hsl); got != tt.want {
				t.Errorf("HSLToRGB(%+v) = %v, want %v", tt.hsl, got, tt.want)
			}
		})
	}
}

func TestHSL_Display(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hsl  HSL
		want HSLDisplay
	}{
		{"dark purple", RGBToHSL(RGB{25, 2, 30}), HSLDisplay{"289°", "88%", "6%"}},
		{"black", HSL{0, 0, 0}, HSLDisplay{"0°", "0%", "0%"}},
		{"cyan", HSL{0.5, 1, 0.5}, HSLDisplay{"180°", "100%", "50%"}},
		{"saturation tie rounds to even", RGBToHSL(RGB{3, 7, 77}), HSLDisplay{"237°", "92%", "16%"}},
		{"exact eighths round to even", HSL{0, 0.125, 0.625}, HSLDisplay{"0°", "12%", "62%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.hsl.Display(); got != tt.want {
				t.Errorf("HSL(%+v).Display() = %+v, want %+v", tt.hsl, got, tt.want)
			}
		})
	}

	if got := (HSLDisplay{"289°", "88%", "6%"}).String(); got != "289° 88% 6%" {
		t.Errorf("HSLDisplay.String() = %q", got)
	}
}

func TestWrapUnit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.25, 0.25},
		{1, 0},
		{1.5, 0.5},
		{-0.25, 0.75},
		{-1, 0},
	}

	for _, tt := range tests {
		if got := wrapUnit(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("wrapUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func hslClose(a, b HSL) bool {
	return math.Abs(a.H-b.H) < epsilon && math.Abs(a.S-b.S) < epsilon && math.Abs(a.L-b.L) < epsilon
}
