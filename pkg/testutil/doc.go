// Package testutil provides shared test fixtures for linkgen:
//
//   - MemoryFS, an in-memory types.DirectoryLister with symlink support and
//     per-operation error injection
//   - RecordingReporter, a types.StatusReporter that keeps every line
//   - TemplateTree, an on-disk template root built under t.TempDir()
package testutil
