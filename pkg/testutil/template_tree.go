package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TemplateTree is an on-disk template root built in a test temp dir
type TemplateTree struct {
	Root string // template root (the --source directory)
}

// LinkEntry mirrors one build.symlinks entry for fixture manifests
type LinkEntry struct {
	Source string `json:"source"`
	Dest   string `json:"dest,omitempty"`
}

// SetupTemplateTree creates an empty template root. The returned path has
// symlinks resolved so tests can compare against resolved link targets.
func SetupTemplateTree(t *testing.T) *TemplateTree {
	t.Helper()

	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)

	root := filepath.Join(tmpDir, "templates")
	require.NoError(t, os.MkdirAll(root, 0755))

	return &TemplateTree{Root: root}
}

// AddProject creates a project directory and returns its path
func (tt *TemplateTree) AddProject(t *testing.T, name string) string {
	t.Helper()

	dir := filepath.Join(tt.Root, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

// AddDir creates a directory inside a project
func (tt *TemplateTree) AddDir(t *testing.T, project, rel string) string {
	t.Helper()

	dir := filepath.Join(tt.Root, project, rel)
	require.NoError(t, os.MkdirAll(dir, 0755))
	return dir
}

// AddFile writes a file inside a project
func (tt *TemplateTree) AddFile(t *testing.T, project, rel, content string) string {
	t.Helper()

	path := filepath.Join(tt.Root, project, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// AddManifest writes a config.json declaring the given links
func (tt *TemplateTree) AddManifest(t *testing.T, project string, links ...LinkEntry) string {
	t.Helper()

	if links == nil {
		links = []LinkEntry{}
	}
	doc := map[string]interface{}{
		"build": map[string]interface{}{
			"symlinks": links,
		},
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	require.NoError(t, err)
	return tt.AddRawManifest(t, project, string(data))
}

// AddRawManifest writes config.json with verbatim content
func (tt *TemplateTree) AddRawManifest(t *testing.T, project, content string) string {
	t.Helper()
	return tt.AddFile(t, project, "config.json", content)
}

// Path joins elements onto the template root
func (tt *TemplateTree) Path(elem ...string) string {
	return filepath.Join(append([]string{tt.Root}, elem...)...)
}

// AssertSymlink checks that linkPath is a symlink pointing at target
func AssertSymlink(t *testing.T, linkPath, target string) {
	t.Helper()

	info, err := os.Lstat(linkPath)
	require.NoError(t, err, "expected %s to exist", linkPath)
	require.True(t, info.Mode()&os.ModeSymlink != 0, "expected %s to be a symlink", linkPath)

	got, err := os.Readlink(linkPath)
	require.NoError(t, err)
	require.Equal(t, target, got)
}

// AssertNotExists checks that nothing exists at path
func AssertNotExists(t *testing.T, path string) {
	t.Helper()

	_, err := os.Lstat(path)
	require.True(t, os.IsNotExist(err), "expected %s not to exist", path)
}
