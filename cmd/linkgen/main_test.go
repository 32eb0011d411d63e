package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("LINKGEN_CONFIG_DIR", t.TempDir())
	t.Setenv("LINKGEN_STATE_DIR", t.TempDir())
	for _, key := range []string{"SOURCE", "DESTINATION", "MANIFEST_NAME", "REPLACE_DIRS"} {
		t.Setenv("LINKGEN_"+key, "")
	}
}

func TestRunVersion(t *testing.T) {
	isolate(t)
	var stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"version"}, &stderr))
}

func TestRunMissingSource(t *testing.T) {
	isolate(t)
	var stderr bytes.Buffer
	code := run([]string{"generate", "--yes", "--no-color", "-d", t.TempDir()}, &stderr)
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr.String(), "--source")
}
