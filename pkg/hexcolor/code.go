// SPDX-License-Identifier: MPL-2.0

package hexcolor

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const (
	// ShortLen is the length of a shorthand code such as "#a0f".
	ShortLen = 4
	// LongLen is the length of a normalized code such as "#aa00ff".
	LongLen = 7
)

// ErrInvalidColorCode is the sentinel error wrapped by InvalidColorCodeError.
var ErrInvalidColorCode = errors.New("invalid color code")

var validCode = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

type (
	// Code is a '#'-prefixed hexadecimal color code with 3 or 6 digits.
	// Only codes returned by Normalize are guaranteed to have 6 digits.
	Code string

	// InvalidColorCodeError is returned when a string is not a 3- or 6-digit
	// hexadecimal color code.
	InvalidColorCodeError struct {
		Value string
	}
)

// IsValid reports whether s is a '#' followed by exactly 3 or 6 hex digits.
func IsValid(s string) bool {
	return validCode.MatchString(s)
}

// Normalize validates s and expands 3-digit shorthand by doubling each digit.
// 6-digit codes are returned unchanged. Digit case is preserved.
func Normalize(s string) (Code, error) {
	if !IsValid(s) {
		return "", &InvalidColorCodeError{Value: s}
	}
	if len(s) == LongLen {
		return Code(s), nil
	}

	var sb strings.Builder
	sb.Grow(LongLen)
	sb.WriteByte('#')
	for i := 1; i < ShortLen; i++ {
		sb.WriteByte(s[i])
		sb.WriteByte(s[i])
	}
	return Code(sb.String()), nil
}

// String returns the code as a plain string.
func (c Code) String() string { return string(c) }

// Validate returns an error if the code is not a 3- or 6-digit hex color.
func (c Code) Validate() error {
	if !IsValid(string(c)) {
		return &InvalidColorCodeError{Value: string(c)}
	}
	return nil
}

// Error implements the error interface for InvalidColorCodeError.
func (e *InvalidColorCodeError) Error() string {
	return fmt.Sprintf("invalid color code %q: must be '#' followed by 3 or 6 hex digits", e.Value)
}

// Unwrap returns ErrInvalidColorCode for errors.Is() compatibility.
func (e *InvalidColorCodeError) Unwrap() error { return ErrInvalidColorCode }
