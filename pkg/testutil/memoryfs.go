package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/arthur-debert/linkgen/pkg/types"
)

// maxLinkHops bounds symlink resolution in Stat and EvalSymlinks
const maxLinkHops = 40

// MemoryFS implements types.DirectoryLister with in-memory storage
type MemoryFS struct {
	mu    sync.RWMutex
	files map[string]*fileNode

	// Error injection, keyed by operation ("" matches every operation)
	errorPaths map[string]map[string]error

	// Statistics
	readDirCount  int
	mutationCount int
}

var _ types.DirectoryLister = (*MemoryFS)(nil)

// fileNode represents a file or directory in memory
type fileNode struct {
	name     string
	mode     os.FileMode
	modTime  time.Time
	content  []byte
	isDir    bool
	isLink   bool
	linkDest string
	children map[string]*fileNode
}

// NewMemoryFS creates a new in-memory filesystem
func NewMemoryFS() *MemoryFS {
	root := &fileNode{
		name:     "/",
		mode:     0755 | os.ModeDir,
		modTime:  time.Now(),
		isDir:    true,
		children: make(map[string]*fileNode),
	}

	return &MemoryFS{
		files:      map[string]*fileNode{"/": root},
		errorPaths: make(map[string]map[string]error),
	}
}

func (m *MemoryFS) normalizePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join("/", path)
	}
	return filepath.Clean(path)
}

func (m *MemoryFS) injected(op, path string) error {
	ops, ok := m.errorPaths[path]
	if !ok {
		return nil
	}
	if err, ok := ops[op]; ok {
		return err
	}
	return ops[""]
}

// getNode retrieves the node at path without following a final symlink
func (m *MemoryFS) getNode(op, path string) (*fileNode, error) {
	path = m.normalizePath(path)

	if err := m.injected(op, path); err != nil {
		return nil, err
	}

	node, exists := m.files[path]
	if !exists {
		return nil, &fs.PathError{Op: op, Path: path, Err: fs.ErrNotExist}
	}
	return node, nil
}

// resolve follows symlinks at path and returns the final path and node
func (m *MemoryFS) resolve(op, path string) (string, *fileNode, error) {
	path = m.normalizePath(path)
	for i := 0; i < maxLinkHops; i++ {
		node, err := m.getNode(op, path)
		if err != nil {
			return "", nil, err
		}
		if !node.isLink {
			return path, node, nil
		}
		target := node.linkDest
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = m.normalizePath(target)
	}
	return "", nil, &fs.PathError{Op: op, Path: path, Err: errors.New("too many levels of symbolic links")}
}

// getParentAndName splits a path into parent directory and filename
func (m *MemoryFS) getParentAndName(op, path string) (parent *fileNode, name string, err error) {
	path = m.normalizePath(path)
	dir := filepath.Dir(path)
	name = filepath.Base(path)

	parent, err = m.getNode(op, dir)
	if err != nil {
		return nil, "", err
	}

	if !parent.isDir {
		return nil, "", &fs.PathError{Op: op, Path: dir, Err: errors.New("not a directory")}
	}

	return parent, name, nil
}

// ReadDir reads a directory and returns its entries in map order
func (m *MemoryFS) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.readDirCount++

	_, node, err := m.resolve("readdir", name)
	if err != nil {
		return nil, err
	}

	if !node.isDir {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: errors.New("not a directory")}
	}

	entries := make([]fs.DirEntry, 0, len(node.children))
	for childName, child := range node.children {
		entries = append(entries, &dirEntry{
			name: childName,
			info: &fileInfo{node: child, name: childName},
		})
	}

	return entries, nil
}

// Stat returns file info, following symlinks
func (m *MemoryFS) Stat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, node, err := m.resolve("stat", name)
	if err != nil {
		return nil, err
	}

	return &fileInfo{node: node, name: filepath.Base(name)}, nil
}

// Lstat returns file info without following symlinks
func (m *MemoryFS) Lstat(name string) (os.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode("lstat", name)
	if err != nil {
		return nil, err
	}

	return &fileInfo{node: node, name: filepath.Base(name)}, nil
}

// ReadFile reads the entire file content
func (m *MemoryFS) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, node, err := m.resolve("read", name)
	if err != nil {
		return nil, err
	}

	if node.isDir {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.New("is a directory")}
	}

	content := make([]byte, len(node.content))
	copy(content, node.content)
	return content, nil
}

// Readlink returns the destination of a symbolic link
func (m *MemoryFS) Readlink(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	node, err := m.getNode("readlink", name)
	if err != nil {
		return "", err
	}

	if !node.isLink {
		return "", &fs.PathError{Op: "readlink", Path: name, Err: errors.New("not a symbolic link")}
	}

	return node.linkDest, nil
}

// WriteFile writes data to a file, creating parent directories
func (m *MemoryFS) WriteFile(name string, data []byte, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	path := m.normalizePath(name)
	if err := m.injected("write", path); err != nil {
		return err
	}

	if err := m.mkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	parent, filename, err := m.getParentAndName("write", path)
	if err != nil {
		return err
	}

	node := &fileNode{
		name:    filename,
		mode:    perm,
		modTime: time.Now(),
		content: make([]byte, len(data)),
	}
	copy(node.content, data)

	parent.children[filename] = node
	m.files[path] = node

	return nil
}

// Remove removes a file, symlink or empty directory
func (m *MemoryFS) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mutationCount++

	path := m.normalizePath(name)

	node, err := m.getNode("remove", path)
	if err != nil {
		return err
	}

	if node.isDir && len(node.children) > 0 {
		return &fs.PathError{Op: "remove", Path: name, Err: errors.New("directory not empty")}
	}

	parent, filename, err := m.getParentAndName("remove", path)
	if err != nil {
		return err
	}

	delete(parent.children, filename)
	delete(m.files, path)

	return nil
}

// RemoveAll removes a file or directory recursively
func (m *MemoryFS) RemoveAll(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mutationCount++

	path = m.normalizePath(path)
	if err := m.injected("removeall", path); err != nil {
		return err
	}

	var toRemove []string
	for p := range m.files {
		if strings.HasPrefix(p, path+"/") || p == path {
			toRemove = append(toRemove, p)
		}
	}

	for _, p := range toRemove {
		delete(m.files, p)
		if dir := filepath.Dir(p); dir != p {
			if parent, ok := m.files[dir]; ok && parent.isDir {
				delete(parent.children, filepath.Base(p))
			}
		}
	}

	return nil
}

// MkdirAll creates a directory and all necessary parents
func (m *MemoryFS) MkdirAll(path string, perm os.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mkdirAll(path, perm)
}

// mkdirAll is the internal implementation without locking
func (m *MemoryFS) mkdirAll(path string, perm os.FileMode) error {
	path = m.normalizePath(path)

	if err := m.injected("mkdir", path); err != nil {
		return err
	}

	if node, ok := m.files[path]; ok {
		if !node.isDir {
			return &fs.PathError{Op: "mkdir", Path: path, Err: errors.New("file exists")}
		}
		return nil
	}

	parts := strings.Split(path, "/")
	current := "/"
	currentNode := m.files["/"]

	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}

		next := filepath.Join(current, parts[i])

		if child, exists := currentNode.children[parts[i]]; exists {
			if !child.isDir {
				return &fs.PathError{Op: "mkdir", Path: next, Err: errors.New("not a directory")}
			}
			currentNode = child
			current = next
			continue
		}

		newDir := &fileNode{
			name:     parts[i],
			mode:     perm | os.ModeDir,
			modTime:  time.Now(),
			isDir:    true,
			children: make(map[string]*fileNode),
		}

		currentNode.children[parts[i]] = newDir
		m.files[next] = newDir

		currentNode = newDir
		current = next
	}

	return nil
}

// Symlink creates a symbolic link at link pointing to target
func (m *MemoryFS) Symlink(target, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mutationCount++

	linkPath := m.normalizePath(link)

	if err := m.injected("symlink", linkPath); err != nil {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: err}
	}

	if _, ok := m.files[linkPath]; ok {
		return &os.LinkError{Op: "symlink", Old: target, New: link, Err: os.ErrExist}
	}

	parent, filename, err := m.getParentAndName("symlink", linkPath)
	if err != nil {
		return err
	}

	node := &fileNode{
		name:     filename,
		mode:     0777 | os.ModeSymlink,
		modTime:  time.Now(),
		isLink:   true,
		linkDest: target,
	}

	parent.children[filename] = node
	m.files[linkPath] = node

	return nil
}

// Abs cleans path; every MemoryFS path is rooted at "/"
func (m *MemoryFS) Abs(path string) (string, error) {
	return m.normalizePath(path), nil
}

// EvalSymlinks resolves symlinks in every component of path
func (m *MemoryFS) EvalSymlinks(path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	path = m.normalizePath(path)
	resolved := "/"
	for _, part := range strings.Split(path, "/") {
		if part == "" {
			continue
		}
		next, _, err := m.resolve("lstat", filepath.Join(resolved, part))
		if err != nil {
			return "", err
		}
		resolved = next
	}
	return resolved, nil
}

// WithError makes every operation on path fail with err
func (m *MemoryFS) WithError(path string, err error) *MemoryFS {
	return m.WithOpError("", path, err)
}

// WithOpError makes one operation ("symlink", "remove", "read", "readdir",
// "stat", "lstat", "mkdir", "removeall") on path fail with err
func (m *MemoryFS) WithOpError(op, path string, err error) *MemoryFS {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = m.normalizePath(path)
	if m.errorPaths[path] == nil {
		m.errorPaths[path] = make(map[string]error)
	}
	m.errorPaths[path][op] = err
	return m
}

// Stats returns how many directory listings and mutations were performed
func (m *MemoryFS) Stats() (readDirs, mutations int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.readDirCount, m.mutationCount
}

// fileInfo implements os.FileInfo
type fileInfo struct {
	node *fileNode
	name string
}

func (fi *fileInfo) Name() string       { return fi.name }
func (fi *fileInfo) Size() int64        { return int64(len(fi.node.content)) }
func (fi *fileInfo) Mode() os.FileMode  { return fi.node.mode }
func (fi *fileInfo) ModTime() time.Time { return fi.node.modTime }
func (fi *fileInfo) IsDir() bool        { return fi.node.isDir }
func (fi *fileInfo) Sys() interface{}   { return fi.node }

// dirEntry implements fs.DirEntry
type dirEntry struct {
	name string
	info os.FileInfo
}

func (de *dirEntry) Name() string               { return de.name }
func (de *dirEntry) IsDir() bool                { return de.info.IsDir() }
func (de *dirEntry) Type() os.FileMode          { return de.info.Mode().Type() }
func (de *dirEntry) Info() (os.FileInfo, error) { return de.info, nil }
