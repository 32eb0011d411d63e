package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linkgen/pkg/filesystem"
	"github.com/arthur-debert/linkgen/pkg/testutil"
	"github.com/arthur-debert/linkgen/pkg/types"
)

func TestProcessRealFilesystem(t *testing.T) {
	tree := testutil.SetupTemplateTree(t)
	tree.AddDir(t, "demo", "assets")
	tree.AddFile(t, "demo", "bin/tool", "#!/bin/sh\n")
	tree.AddManifest(t, "demo",
		testutil.LinkEntry{Source: "assets"},
		testutil.LinkEntry{Source: "bin/tool", Dest: "usr/local/bin/tool"},
	)
	tree.AddProject(t, "nomanifest")
	tree.AddProject(t, ".hidden")

	out := testutil.NewRecordingReporter()
	g, err := New(Params{Source: tree.Root}, filesystem.NewOS(), out)
	require.NoError(t, err)

	report, err := g.Process()
	require.NoError(t, err)

	testutil.AssertSymlink(t, tree.Path("assets"), tree.Path("demo", "assets"))
	testutil.AssertSymlink(t, tree.Path("usr", "local", "bin", "tool"), tree.Path("demo", "bin", "tool"))

	assert.Equal(t, 2, report.Count(types.ActionCreated))
	assert.Equal(t, 1, out.Count(testutil.SeverityWarning))
	assert.True(t, out.Contains("config.json not found for nomanifest"))

	// the created links are symlinks, so they are not projects on the next run
	names, err := g.Projects()
	require.NoError(t, err)
	assert.Equal(t, []string{"demo", "nomanifest", "usr"}, names)
}

func TestProcessRealFilesystemIdempotent(t *testing.T) {
	tree := testutil.SetupTemplateTree(t)
	tree.AddDir(t, "linux", "etc")
	tree.AddManifest(t, "linux", testutil.LinkEntry{Source: "etc", Dest: "linux-etc"})

	dest := t.TempDir()
	dest, err := filepath.EvalSymlinks(dest)
	require.NoError(t, err)

	out := testutil.NewRecordingReporter()
	g, err := New(Params{Source: tree.Root, Destination: dest, Projects: []string{"linux"}}, filesystem.NewOS(), out)
	require.NoError(t, err)

	first, err := g.Process()
	require.NoError(t, err)
	second, err := g.Process()
	require.NoError(t, err)

	assert.Equal(t, 1, first.Count(types.ActionCreated))
	assert.Equal(t, 1, second.Count(types.ActionRecreated))
	testutil.AssertSymlink(t, filepath.Join(dest, "linux-etc"), tree.Path("linux", "etc"))
	assert.Equal(t, 1, out.Count(testutil.SeverityNotice))
}

func TestReplaceDirsRealFilesystem(t *testing.T) {
	tree := testutil.SetupTemplateTree(t)
	tree.AddDir(t, "p", "conf")
	tree.AddManifest(t, "p", testutil.LinkEntry{Source: "conf"})

	occupied := tree.Path("conf")
	require.NoError(t, os.MkdirAll(filepath.Join(occupied, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(occupied, "nested", "f"), []byte("x"), 0644))

	g, err := New(Params{Source: tree.Root, Projects: []string{"p"}}, filesystem.NewOS(), testutil.NewRecordingReporter())
	require.NoError(t, err)
	report, err := g.Process()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(types.ActionSkipped))

	info, err := os.Lstat(occupied)
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "directory must survive without replace-dirs")

	g, err = New(Params{Source: tree.Root, Projects: []string{"p"}, ReplaceDirs: true}, filesystem.NewOS(), testutil.NewRecordingReporter())
	require.NoError(t, err)
	report, err = g.Process()
	require.NoError(t, err)
	assert.Equal(t, 1, report.Count(types.ActionRecreated))
	testutil.AssertSymlink(t, occupied, tree.Path("p", "conf"))
}

func TestSymlinkedSourceRootIsResolved(t *testing.T) {
	tree := testutil.SetupTemplateTree(t)
	tree.AddDir(t, "demo", "assets")
	tree.AddManifest(t, "demo", testutil.LinkEntry{Source: "assets"})

	alias := filepath.Join(t.TempDir(), "alias")
	require.NoError(t, os.Symlink(tree.Root, alias))

	g, err := New(Params{Source: alias}, filesystem.NewOS(), testutil.NewRecordingReporter())
	require.NoError(t, err)
	assert.Equal(t, tree.Root, g.Source())

	_, err = g.Process()
	require.NoError(t, err)
	testutil.AssertSymlink(t, tree.Path("assets"), tree.Path("demo", "assets"))
}
