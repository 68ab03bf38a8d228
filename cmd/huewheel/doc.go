// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for huewheel.
//
// This package implements the Cobra command hierarchy: color commands
// (validate, normalize, rgb, hex, describe, complement, demo) backed by
// pkg/hexcolor, and configuration management backed by internal/config.
package cmd
