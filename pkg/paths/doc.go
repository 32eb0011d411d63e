// Package paths centralizes the locations linkgen reads and writes outside
// of the template and destination trees: the tool config file and the log
// file. Locations follow the XDG base directory spec, with LINKGEN_*
// environment overrides.
package paths
