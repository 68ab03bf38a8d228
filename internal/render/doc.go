// SPDX-License-Identifier: MPL-2.0

// Package render writes color results in the configured output format:
// styled text with optional lipgloss swatches, indented JSON, or TOML.
package render
