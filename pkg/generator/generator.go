package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/linkgen/pkg/errors"
	"github.com/arthur-debert/linkgen/pkg/logging"
	"github.com/arthur-debert/linkgen/pkg/manifest"
	"github.com/arthur-debert/linkgen/pkg/projects"
	"github.com/arthur-debert/linkgen/pkg/types"
)

// MissingSourceMessage is reported when no template root was given
const MissingSourceMessage = "the Templates root must be specified via --source"

// Params is the invocation configuration of a Generator
type Params struct {
	// Source is the template root, one subdirectory per project
	Source string
	// Destination is the root links are created under; defaults to Source
	Destination string
	// Projects is the selection; empty or "*" means every project
	Projects []string
	// ManifestName defaults to config.json
	ManifestName string
	// ReplaceDirs allows removing a real directory sitting at a link path
	ReplaceDirs bool
	// DryRun reports actions without touching the filesystem
	DryRun bool
}

// Generator creates the symlinks declared by project manifests.
// It holds no mutable state; all fields are set by New.
type Generator struct {
	params Params
	fs     types.DirectoryLister
	out    types.StatusReporter
	logger zerolog.Logger
}

// New validates params and resolves the source and destination roots.
// It fails with CONFIGURATION when the source is empty and with
// INVALID_DESTINATION when the destination is not an existing directory.
// No directory is listed and no manifest is read here.
func New(params Params, fs types.DirectoryLister, out types.StatusReporter) (*Generator, error) {
	logger := logging.GetLogger("generator")

	if params.Source == "" {
		return nil, errors.New(errors.ErrConfiguration, MissingSourceMessage)
	}
	if params.Destination == "" {
		params.Destination = params.Source
	}
	if params.ManifestName == "" {
		params.ManifestName = manifest.DefaultFileName
	}
	if len(params.Projects) == 0 {
		params.Projects = []string{types.WildcardProject}
	} else {
		params.Projects = append([]string(nil), params.Projects...)
	}

	destination, err := resolveDestination(fs, params.Destination)
	if err != nil {
		return nil, err
	}

	source, err := resolveRoot(fs, params.Source)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfiguration, "cannot resolve templates root").
			WithDetail("path", params.Source)
	}

	params.Source = source
	params.Destination = destination

	logger.Debug().
		Str("source", source).
		Str("destination", destination).
		Strs("projects", params.Projects).
		Bool("dryRun", params.DryRun).
		Bool("replaceDirs", params.ReplaceDirs).
		Msg("Generator configured")

	return &Generator{
		params: params,
		fs:     fs,
		out:    out,
		logger: logger,
	}, nil
}

func resolveDestination(fs types.DirectoryLister, path string) (string, error) {
	info, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(err, errors.ErrInvalidDestination, "destination does not exist: %s", path).
				WithDetail("path", path)
		}
		return "", errors.Wrapf(err, errors.ErrInvalidDestination, "cannot access destination: %s", path).
			WithDetail("path", path)
	}
	if !info.IsDir() {
		return "", errors.Newf(errors.ErrInvalidDestination, "destination is not a directory: %s", path).
			WithDetail("path", path)
	}

	resolved, err := resolveRoot(fs, path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidDestination, "cannot resolve destination: %s", path).
			WithDetail("path", path)
	}
	return resolved, nil
}

// resolveRoot returns the absolute, symlink-free form of path
func resolveRoot(fs types.DirectoryLister, path string) (string, error) {
	abs, err := fs.Abs(path)
	if err != nil {
		return "", err
	}
	return fs.EvalSymlinks(abs)
}

// Params returns the resolved parameters
func (g *Generator) Params() Params {
	p := g.params
	p.Projects = append([]string(nil), g.params.Projects...)
	return p
}

// Source returns the resolved template root
func (g *Generator) Source() string { return g.params.Source }

// Destination returns the resolved destination root
func (g *Generator) Destination() string { return g.params.Destination }

// Projects enumerates the selected projects. The result is recomputed on
// every call.
func (g *Generator) Projects() ([]string, error) {
	return projects.Enumerate(g.fs, g.params.Source, g.params.Projects)
}

// ManifestPath returns the manifest location for a project
func (g *Generator) ManifestPath(project string) string {
	return filepath.Join(g.params.Source, project, g.params.ManifestName)
}

// LoadManifest reads a project's manifest. A missing manifest emits one
// warning and returns found=false with no error; any other failure is
// returned as an error with found=true.
func (g *Generator) LoadManifest(project string) (*manifest.Manifest, bool, error) {
	path := g.ManifestPath(project)

	m, err := manifest.Load(g.fs, path)
	if err != nil {
		if errors.IsErrorCode(err, errors.ErrManifestNotFound) {
			g.logger.Debug().Str("project", project).Str("path", path).Msg("Manifest not found")
			g.out.Warning(fmt.Sprintf("%s not found for %s", g.params.ManifestName, project))
			return nil, false, nil
		}
		return nil, true, err
	}
	return m, true, nil
}

// Process links every selected project. Per-project failures are reported
// and recorded in the Report; the returned error is reserved for failures
// that prevent enumerating projects at all.
func (g *Generator) Process() (*types.Report, error) {
	defer logging.LogOperationStart(g.logger, "process")()

	names, err := g.Projects()
	if err != nil {
		return nil, err
	}

	report := &types.Report{
		DryRun:   g.params.DryRun,
		Projects: make([]types.ProjectResult, 0, len(names)),
	}
	for _, name := range names {
		report.Projects = append(report.Projects, g.processProject(name))
	}

	g.logger.Info().
		Int("projects", len(report.Projects)).
		Int("created", report.Count(types.ActionCreated)).
		Int("recreated", report.Count(types.ActionRecreated)).
		Int("skipped", report.Count(types.ActionSkipped)).
		Int("failed", len(report.FailedProjects())).
		Msg("Processing finished")

	return report, nil
}

func (g *Generator) processProject(name string) types.ProjectResult {
	logger := logging.WithProject(g.logger, name)
	result := types.ProjectResult{Name: name}

	m, found, err := g.LoadManifest(name)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load manifest")
		g.out.Error(fmt.Sprintf("%s: %v", name, err))
		result.Status = types.ProjectFailed
		result.Err = err
		return result
	}
	if !found {
		result.Status = types.ProjectSkipped
		return result
	}

	links, err := g.PrepareLinks(name, m.Links())
	result.Links = links
	if err != nil {
		logger.Error().Err(err).Msg("Project aborted")
		g.out.Error(fmt.Sprintf("%s: %v", name, err))
		result.Status = types.ProjectFailed
		result.Err = err
		return result
	}

	result.Status = types.ProjectProcessed
	logger.Debug().Int("links", len(links)).Msg("Project processed")
	return result
}
