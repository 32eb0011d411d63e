package types

import (
	"io/fs"
)

// DirectoryLister is the filesystem capability the generator depends on.
// Paths are absolute; implementations must not resolve them against a
// working directory of their own.
type DirectoryLister interface {
	// Listing and inspection
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
	Lstat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	Readlink(name string) (string, error)

	// Mutation
	Remove(name string) error
	RemoveAll(path string) error
	MkdirAll(path string, perm fs.FileMode) error
	Symlink(oldname, newname string) error

	// Path resolution
	Abs(path string) (string, error)
	EvalSymlinks(path string) (string, error)
}

// StatusReporter emits one human-readable line per action.
type StatusReporter interface {
	// Success reports a completed action ("<path> -> OK").
	Success(msg string)
	// Notice reports something about to be replaced.
	Notice(msg string)
	// Warning reports a non-fatal skip.
	Warning(msg string)
	// Error reports a failure that aborted part of the run.
	Error(msg string)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(message string) (bool, error)
}
