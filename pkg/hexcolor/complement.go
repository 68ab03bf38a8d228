// SPDX-License-Identifier: MPL-2.0

package hexcolor

// HalfTurn is the hue rotation, as a fraction of a full turn, that maps a
// color to its complement.
const HalfTurn = 0.5

// RotateHue returns (h + turn) modulo 1. The result is always in [0,1).
func RotateHue(h, turn float64) float64 {
	return wrapUnit(h + turn)
}

// Complementary returns the color whose hue is rotated 180° from s while
// saturation and luminosity are held constant.
func Complementary(s string) (Code, error) {
	c, err := ToRGB(s)
	if err != nil {
		return "", err
	}
	return ComplementOf(c).Hex()
}

// ComplementOf rotates c's hue by a half turn. c is assumed to be valid.
func ComplementOf(c RGB) RGB {
	hsl := RGBToHSL(c)
	hsl.H = RotateHue(hsl.H, HalfTurn)
	return HSLToRGB(hsl)
}
