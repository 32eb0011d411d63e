// Package config loads linkgen's own settings.
//
// Settings come from, in decreasing precedence: command-line flags,
// LINKGEN_* environment variables, the TOML file at
// $XDG_CONFIG_HOME/linkgen/config.toml (or --config), and built-in
// defaults. Project manifests are not configuration; see package manifest.
package config
