// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors and a catalog of Markdown help
// entries for the failures the huewheel CLI reports.
package issue
