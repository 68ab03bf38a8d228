// SPDX-License-Identifier: MPL-2.0

package hexcolor

// Descriptor aggregates every representation of a single color.
type Descriptor struct {
	Hex     Code       `json:"hex" toml:"hex"`
	RGB     RGB        `json:"rgb" toml:"rgb"`
	HSL     HSL        `json:"hsl" toml:"hsl"`
	Display HSLDisplay `json:"hsl_display" toml:"hsl_display"`
}

// Describe validates s and returns its normalized hex form together with its
// RGB, HSL and display representations.
func Describe(s string) (Descriptor, error) {
	code, err := Normalize(s)
	if err != nil {
		return Descriptor{}, err
	}
	rgb, err := ToRGB(string(code))
	if err != nil {
		return Descriptor{}, err
	}
	hsl := RGBToHSL(rgb)

	return Descriptor{
		Hex:     code,
		RGB:     rgb,
		HSL:     hsl,
		Display: hsl.Display(),
	}, nil
}
