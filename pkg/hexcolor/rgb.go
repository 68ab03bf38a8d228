// SPDX-License-Identifier: MPL-2.0

package hexcolor

import (
	"errors"
	"fmt"
	"strconv"
)

// MaxChannel is the largest value an 8-bit channel can hold.
const MaxChannel = 255

// ErrInvalidChannel is the sentinel error wrapped by InvalidChannelError.
var ErrInvalidChannel = errors.New("invalid color channel")

type (
	// Channel is one 8-bit color intensity in the range 0-255.
	Channel int

	// RGB is a color as red, green and blue channel intensities.
	RGB struct {
		R Channel `json:"r" toml:"r"`
		G Channel `json:"g" toml:"g"`
		B Channel `json:"b" toml:"b"`
	}

	// InvalidChannelError is returned when a Channel is outside 0-255.
	InvalidChannelError struct {
		Name  string
		Value Channel
	}
)

// Validate returns an error if the channel is outside the range 0-255.
func (c Channel) Validate() error {
	if c < 0 || c > MaxChannel {
		return &InvalidChannelError{Value: c}
	}
	return nil
}

// String returns the decimal representation of the channel.
func (c Channel) String() string { return strconv.Itoa(int(c)) }

// Validate returns the first out-of-range channel as an InvalidChannelError.
func (c RGB) Validate() error {
	for _, ch := range []struct {
		name  string
		value Channel
	}{{"red", c.R}, {"green", c.G}, {"blue", c.B}} {
		if err := ch.value.Validate(); err != nil {
			return &InvalidChannelError{Name: ch.name, Value: ch.value}
		}
	}
	return nil
}

// Hex encodes c as a '#'-prefixed, lowercase, zero-padded 6-digit code.
func (c RGB) Hex() (Code, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}
	return Code(fmt.Sprintf("#%02x%02x%02x", int(c.R), int(c.G), int(c.B))), nil
}

// String returns the channels separated by spaces, e.g. "25 2 30".
func (c RGB) String() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

// ToRGB parses a 3- or 6-digit color code into its channels.
func ToRGB(s string) (RGB, error) {
	code, err := Normalize(s)
	if err != nil {
		return RGB{}, err
	}

	var ch [3]Channel
	for i := range ch {
		start := 1 + 2*i
		v, err := strconv.ParseUint(string(code[start:start+2]), 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %w", &InvalidColorCodeError{Value: s}, err)
		}
		ch[i] = Channel(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGBToHex encodes three channel values as a lowercase 6-digit color code.
// Values outside 0-255 are rejected with an InvalidChannelError.
func RGBToHex(r, g, b int) (Code, error) {
	return RGB{R: Channel(r), G: Channel(g), B: Channel(b)}.Hex()
}

// Error implements the error interface for InvalidChannelError.
func (e *InvalidChannelError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid %s channel %d: must be in range 0-%d", e.Name, e.Value, MaxChannel)
	}
	return fmt.Sprintf("invalid channel %d: must be in range 0-%d", e.Value, MaxChannel)
}

// Unwrap returns ErrInvalidChannel for errors.Is() compatibility.
func (e *InvalidChannelError) Unwrap() error { return ErrInvalidChannel }
