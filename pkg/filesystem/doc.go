// Package filesystem provides filesystem implementations for linkgen.
//
// This package contains the OS-backed implementation of the
// types.DirectoryLister interface. The in-memory fake used by tests lives in
// pkg/testutil.
package filesystem
