// Package types defines the core types and interfaces used throughout linkgen.
// This includes the DirectoryLister, StatusReporter and Confirmer
// capabilities, as well as the per-link and per-project results a run
// produces.
package types
