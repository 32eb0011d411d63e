package generator

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/linkgen/pkg/errors"
	"github.com/arthur-debert/linkgen/pkg/manifest"
	"github.com/arthur-debert/linkgen/pkg/types"
)

// Plan describes every selected project and the current state of each of
// its links. It never writes to the filesystem or the reporter.
func (g *Generator) Plan() ([]types.ProjectPlan, error) {
	names, err := g.Projects()
	if err != nil {
		return nil, err
	}

	plans := make([]types.ProjectPlan, 0, len(names))
	for _, name := range names {
		plans = append(plans, g.planProject(name))
	}
	return plans, nil
}

func (g *Generator) planProject(name string) types.ProjectPlan {
	plan := types.ProjectPlan{Name: name, Links: []types.PlannedLink{}}

	m, err := manifest.Load(g.fs, g.ManifestPath(name))
	if err != nil {
		if !errors.IsErrorCode(err, errors.ErrManifestNotFound) {
			plan.HasManifest = true
			plan.ManifestError = err.Error()
		}
		return plan
	}
	plan.HasManifest = true

	projectDir := filepath.Join(g.params.Source, name)
	for _, spec := range m.Links() {
		link := types.PlannedLink{
			Source:     spec.Source,
			Dest:       spec.Target(),
			SourcePath: filepath.Join(projectDir, spec.Source),
			LinkPath:   filepath.Join(g.params.Destination, spec.Target()),
		}
		link.State, link.CurrentTarget = g.Inspect(link.LinkPath, link.SourcePath)
		plan.Links = append(plan.Links, link)
	}
	return plan
}

// Inspect reports what currently sits at linkPath relative to sourcePath.
// The current target is returned when linkPath is a symlink.
func (g *Generator) Inspect(linkPath, sourcePath string) (types.LinkState, string) {
	if _, err := g.fs.Stat(sourcePath); err != nil {
		return types.StateSourceMissing, ""
	}

	info, err := g.fs.Lstat(linkPath)
	if err != nil {
		if os.IsNotExist(err) {
			return types.StateAbsent, ""
		}
		return types.StateOccupied, ""
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return types.StateOccupied, ""
	}

	target, err := g.fs.Readlink(linkPath)
	if err != nil {
		return types.StateStale, ""
	}
	resolved := target
	if !filepath.IsAbs(resolved) {
		resolved = filepath.Join(filepath.Dir(linkPath), resolved)
	}
	if filepath.Clean(resolved) == filepath.Clean(sourcePath) {
		return types.StateLinked, target
	}
	return types.StateStale, target
}
