package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/linkgen/pkg/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"yml", FormatYAML, false},
		{"xml", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want, mustParse(t, got.String()))
		})
	}
}

func mustParse(t *testing.T, s string) Format {
	t.Helper()
	f, err := ParseFormat(s)
	require.NoError(t, err)
	return f
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, ColorEnabled(&buf, false), "buffers are never terminals")
	assert.False(t, ColorEnabled(&buf, true))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(&buf, false))
}

func TestIsInteractive(t *testing.T) {
	assert.False(t, IsInteractive(strings.NewReader("y\n")))
}

func TestConsoleReporterPlain(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf, false)

	r.Success("/out/a -> OK")
	r.Notice("/out/b -> to be recreated")
	r.Warning("/t/p/c does not exist")
	r.Error("p: boom")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "OK       /out/a -> OK", lines[0])
	assert.Equal(t, "NOTICE   /out/b -> to be recreated", lines[1])
	assert.Equal(t, "WARNING  /t/p/c does not exist", lines[2])
	assert.Equal(t, "ERROR    p: boom", lines[3])
}

func TestConsoleReporterStyled(t *testing.T) {
	var buf bytes.Buffer
	r := NewConsoleReporter(&buf, true)

	r.Notice("/out/b -> to be recreated")
	r.Success("/out/a -> OK")

	out := buf.String()
	assert.Contains(t, out, "NOTICE")
	assert.Contains(t, out, "/out/b -> to be recreated")
	assert.Contains(t, out, "/out/a -> OK")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRendererBannerAndClosing(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	r.Banner("linux && gnu", "root")
	r.Closing()

	assert.Equal(t,
		"Generating symlinks for \"linux && gnu\" -> Templates dir : root\n"+ClosingMessage+"\n",
		buf.String())
}

func TestRendererSummary(t *testing.T) {
	report := &types.Report{Projects: []types.ProjectResult{
		{Name: "a", Status: types.ProjectProcessed, Links: []types.LinkResult{
			{Action: types.ActionCreated},
			{Action: types.ActionRecreated},
			{Action: types.ActionSkipped},
		}},
		{Name: "b", Status: types.ProjectFailed, Links: []types.LinkResult{
			{Action: types.ActionFailed},
		}},
	}}

	var buf bytes.Buffer
	NewRenderer(&buf, false).Summary(report)

	out := buf.String()
	assert.Contains(t, out, "1 created, 1 recreated, 1 skipped, 1 failed")
	assert.Contains(t, out, "failed projects: b")

	buf.Reset()
	NewRenderer(&buf, false).Summary(&types.Report{DryRun: true})
	assert.Contains(t, buf.String(), "dry run: 0 to create, 0 to recreate, 0 skipped")
}

func samplePlans() []types.ProjectPlan {
	return []types.ProjectPlan{
		{
			Name:        "linux",
			HasManifest: true,
			Links: []types.PlannedLink{
				{Source: "bin", Dest: "bin", SourcePath: "/t/linux/bin", LinkPath: "/t/bin", State: types.StateLinked, CurrentTarget: "/t/linux/bin"},
				{Source: "etc", Dest: "etc", SourcePath: "/t/linux/etc", LinkPath: "/t/etc", State: types.StateStale, CurrentTarget: "/old"},
			},
		},
		{Name: "gnu", Links: []types.PlannedLink{}},
		{Name: "bad", HasManifest: true, ManifestError: "[MANIFEST_PARSE] manifest is not valid JSON", Links: []types.PlannedLink{}},
	}
}

func TestRendererPlansText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, false).Plans(samplePlans(), FormatText))

	out := buf.String()
	assert.Contains(t, out, "linux:")
	assert.Contains(t, out, "linked         /t/bin -> /t/linux/bin")
	assert.Contains(t, out, "(currently /old)")
	assert.Contains(t, out, "gnu:\n    no manifest")
	assert.Contains(t, out, "[MANIFEST_PARSE]")
}

func TestRendererPlansEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, false).Plans(nil, FormatText))
	assert.Equal(t, "no projects found\n", buf.String())
}

func TestRendererPlansJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, false).Plans(samplePlans(), FormatJSON))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "linux", decoded[0]["name"])
	links := decoded[0]["links"].([]interface{})
	assert.Equal(t, "stale", links[1].(map[string]interface{})["state"])
}

func TestRendererPlansYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(&buf, false).Plans(samplePlans(), FormatYAML))

	var decoded []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 3)
	assert.Equal(t, "gnu", decoded[1]["name"])
	assert.Equal(t, false, decoded[1]["has_manifest"])
}

func TestRendererError(t *testing.T) {
	var buf bytes.Buffer
	NewRenderer(&buf, false).Error(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}
