package manifest

import (
	"encoding/json"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/arthur-debert/linkgen/pkg/errors"
	"github.com/arthur-debert/linkgen/pkg/logging"
	"github.com/arthur-debert/linkgen/pkg/types"
)

// DefaultFileName is the manifest looked up inside each project directory
const DefaultFileName = "config.json"

// Manifest is the part of a project's config.json linkgen cares about.
// Unknown keys are ignored; the file is shared with other tooling.
type Manifest struct {
	Build Build `json:"build"`
}

// Build holds the build section of a manifest
type Build struct {
	Symlinks []LinkSpec `json:"symlinks"`
}

// LinkSpec declares one symlink. Source is relative to the project
// directory, Dest relative to the destination root.
type LinkSpec struct {
	Source string `json:"source" yaml:"source"`
	Dest   string `json:"dest,omitempty" yaml:"dest,omitempty"`
}

// Target returns the destination path, defaulting to Source when Dest
// is absent or empty
func (s LinkSpec) Target() string {
	if s.Dest == "" {
		return s.Source
	}
	return s.Dest
}

// Links returns the declared link specs, never nil
func (m *Manifest) Links() []LinkSpec {
	if m == nil || m.Build.Symlinks == nil {
		return []LinkSpec{}
	}
	return m.Build.Symlinks
}

// Parse decodes manifest bytes. Comments and trailing commas are accepted.
func Parse(data []byte) (*Manifest, error) {
	plain := jsonc.ToJSON(data)

	var probe interface{}
	if err := json.Unmarshal(plain, &probe); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "manifest is not valid JSON")
	}

	result, err := Validate(plain)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "manifest could not be checked")
	}
	if !result.Valid {
		return nil, errors.Newf(errors.ErrManifestInvalid, "manifest does not match schema: %s", result.Summary()).
			WithDetail("issues", result.Issues)
	}

	var m Manifest
	if err := json.Unmarshal(plain, &m); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "failed to decode manifest")
	}
	return &m, nil
}

// Load reads and parses the manifest at path. A missing file yields a
// MANIFEST_NOT_FOUND error.
func Load(fs types.DirectoryLister, path string) (*Manifest, error) {
	logger := logging.GetLogger("manifest")

	data, err := fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrManifestNotFound, "manifest not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read manifest: %s", path).
			WithDetail("path", path)
	}

	m, err := Parse(data)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			return nil, e.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Int("links", len(m.Links())).
		Msg("Manifest loaded")
	return m, nil
}
