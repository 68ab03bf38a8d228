// SPDX-License-Identifier: MPL-2.0

// Package config handles huewheel configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/huewheel/config.cue (or $XDG_CONFIG_HOME on Linux,
// ~/Library/Application Support/huewheel/config.cue on macOS, %APPDATA%\huewheel\config.cue
// on Windows). Files are validated against the embedded config_schema.cue before being
// merged over the defaults; HUEWHEEL_* environment variables override both.
package config
