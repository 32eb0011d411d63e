package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/linkgen/pkg/filesystem"
	"github.com/arthur-debert/linkgen/pkg/generator"
	"github.com/arthur-debert/linkgen/pkg/projects"
	"github.com/arthur-debert/linkgen/pkg/testutil"
	"github.com/arthur-debert/linkgen/pkg/types"
)

func TestOSSymlinkRoundTrip(t *testing.T) {
	listers := map[string]types.DirectoryLister{
		"os":         filesystem.NewOS(),
		"afero-osfs": filesystem.NewAferoFS(afero.NewOsFs()),
	}

	for name, lister := range listers {
		t.Run(name, func(t *testing.T) {
			dir, err := filepath.EvalSymlinks(t.TempDir())
			require.NoError(t, err)

			target := filepath.Join(dir, "target")
			require.NoError(t, os.WriteFile(target, []byte("x"), 0644))
			link := filepath.Join(dir, "nested", "link")

			require.NoError(t, lister.MkdirAll(filepath.Dir(link), 0755))
			require.NoError(t, lister.Symlink(target, link))

			info, err := lister.Lstat(link)
			require.NoError(t, err)
			assert.NotZero(t, info.Mode()&os.ModeSymlink)

			info, err = lister.Stat(link)
			require.NoError(t, err)
			assert.True(t, info.Mode().IsRegular())

			got, err := lister.Readlink(link)
			require.NoError(t, err)
			assert.Equal(t, target, got)

			resolved, err := lister.EvalSymlinks(link)
			require.NoError(t, err)
			assert.Equal(t, target, resolved)

			entries, err := lister.ReadDir(filepath.Dir(link))
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.NotZero(t, entries[0].Type()&os.ModeSymlink)

			require.NoError(t, lister.Remove(link))
			require.NoError(t, lister.RemoveAll(filepath.Join(dir, "nested")))
			_, err = lister.Lstat(filepath.Join(dir, "nested"))
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestOSAbs(t *testing.T) {
	abs, err := filesystem.NewOS().Abs("relative")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))
}

func TestAferoMemMapFs(t *testing.T) {
	mem := afero.NewMemMapFs()
	for _, dir := range []string{"/t/linux/etc", "/t/gnu", "/t/.git", "/out"} {
		require.NoError(t, mem.MkdirAll(dir, 0755))
	}
	require.NoError(t, afero.WriteFile(mem, "/t/README", []byte("readme"), 0644))
	require.NoError(t, afero.WriteFile(mem, "/t/linux/config.json",
		[]byte(`{"build":{"symlinks":[{"source":"etc","dest":"linux-etc"}]}}`), 0644))

	lister := filesystem.NewAferoFS(mem)

	t.Run("enumerates project directories", func(t *testing.T) {
		names, err := projects.Enumerate(lister, "/t", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"gnu", "linux"}, names)
	})

	t.Run("plans links", func(t *testing.T) {
		g, err := generator.New(generator.Params{Source: "/t", Destination: "/out"}, lister, testutil.NewRecordingReporter())
		require.NoError(t, err)

		plans, err := g.Plan()
		require.NoError(t, err)
		require.Len(t, plans, 2)
		assert.False(t, plans[0].HasManifest)
		require.Len(t, plans[1].Links, 1)
		assert.Equal(t, types.StateAbsent, plans[1].Links[0].State)
		assert.Equal(t, "/out/linux-etc", plans[1].Links[0].LinkPath)
	})

	t.Run("reading a directory fails", func(t *testing.T) {
		_, err := lister.ReadFile("/t/linux")
		assert.Error(t, err)
	})

	t.Run("symlinks are unsupported", func(t *testing.T) {
		err := lister.Symlink("/t/linux/etc", "/out/linux-etc")
		require.Error(t, err)
		assert.ErrorIs(t, err, afero.ErrNoSymlink)

		_, err = lister.Readlink("/t/linux")
		assert.ErrorIs(t, err, afero.ErrNoReadlink)
	})

	t.Run("missing destination is reported", func(t *testing.T) {
		_, err := lister.EvalSymlinks("/nowhere")
		assert.True(t, os.IsNotExist(err))
	})
}
