package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDir(t *testing.T) {
	tests := []struct {
		name     string
		override string
		xdg      string
		want     string
	}{
		{
			name:     "override wins",
			override: "/etc/linkgen",
			xdg:      "/xdg/config",
			want:     "/etc/linkgen",
		},
		{
			name: "xdg config home",
			xdg:  "/xdg/config",
			want: "/xdg/config/linkgen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvConfigDir, tt.override)
			t.Setenv("XDG_CONFIG_HOME", tt.xdg)

			assert.Equal(t, tt.want, ConfigDir())
			assert.Equal(t, filepath.Join(tt.want, ConfigFileName), ConfigFile())
		})
	}
}

func TestConfigDirDefault(t *testing.T) {
	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := ConfigDir()
	assert.True(t, filepath.IsAbs(dir))
	assert.Equal(t, AppDirName, filepath.Base(dir))
}

func TestStateDir(t *testing.T) {
	t.Setenv(EnvStateDir, "")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")
	assert.Equal(t, "/xdg/state/linkgen", StateDir())
	assert.Equal(t, "/xdg/state/linkgen/linkgen.log", LogFile())

	t.Setenv(EnvStateDir, "/var/log/linkgen")
	assert.Equal(t, "/var/log/linkgen", StateDir())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		in   string
		want string
	}{
		{"~", home},
		{"~/Templates", filepath.Join(home, "Templates")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"~user/x", "~user/x"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandHome(tt.in))
		})
	}
}

func TestOverrideExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv(EnvConfigDir, "~/.linkgen")
	assert.Equal(t, filepath.Join(home, ".linkgen"), ConfigDir())
}
