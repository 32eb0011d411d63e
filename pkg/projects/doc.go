// Package projects enumerates the project directories of a template root.
//
// A selection is either the wildcard marker "*" (every eligible
// subdirectory) or an explicit list of names. Eligible means a real
// directory, not a symlink, whose name does not start with a dot.
// Explicit lists are returned as given.
package projects
