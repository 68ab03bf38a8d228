// SPDX-License-Identifier: MPL-2.0

// Package hexcolor validates and converts hexadecimal RGB color codes.
//
// A color code is a '#' followed by exactly 3 or 6 hexadecimal digits
// (case-insensitive). Every exported function that accepts a string runs it
// through [Normalize] first, so invalid input always surfaces as an error
// wrapping [ErrInvalidColorCode] before any conversion happens.
//
//	d, err := hexcolor.Describe("#19021e")
//	// d.RGB == RGB{25, 2, 30}, d.Display == HSLDisplay{"289°", "88%", "6%"}
//
//	c, err := hexcolor.Complementary("#19021e")
//	// c == "#071e02"
//
// All functions are pure and safe for concurrent use.
package hexcolor
