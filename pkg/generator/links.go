package generator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/linkgen/pkg/errors"
	"github.com/arthur-debert/linkgen/pkg/logging"
	"github.com/arthur-debert/linkgen/pkg/manifest"
	"github.com/arthur-debert/linkgen/pkg/types"
)

// PrepareLinks materialises a project's link specs in order.
//
// A spec whose source entity is missing is warned about and skipped. A link
// path occupied by a directory is skipped unless ReplaceDirs is set. Any
// other failure aborts the remaining specs and is returned; the results
// gathered so far are returned with it.
func (g *Generator) PrepareLinks(project string, specs []manifest.LinkSpec) ([]types.LinkResult, error) {
	projectDir := filepath.Join(g.params.Source, project)
	results := make([]types.LinkResult, 0, len(specs))

	for _, spec := range specs {
		dest := spec.Target()
		res := types.LinkResult{
			Project:    project,
			Source:     spec.Source,
			Dest:       dest,
			SourcePath: filepath.Join(projectDir, spec.Source),
			LinkPath:   filepath.Join(g.params.Destination, dest),
		}

		if skip := g.checkSpec(&res); skip {
			results = append(results, res)
			continue
		}

		action, err := g.CreateOrReplace(res.LinkPath, res.SourcePath)
		res.Action = action
		res.Err = err
		results = append(results, res)

		if err != nil {
			if errors.IsErrorCode(err, errors.ErrDirOccupied) {
				continue
			}
			return results, err
		}
	}

	return results, nil
}

// checkSpec marks res skipped when it cannot be linked
func (g *Generator) checkSpec(res *types.LinkResult) bool {
	if res.LinkPath == g.params.Destination || res.LinkPath == res.SourcePath {
		g.out.Warning(fmt.Sprintf("%s cannot be linked onto itself", res.LinkPath))
		res.Action = types.ActionSkipped
		res.Err = errors.Newf(errors.ErrInvalidInput, "link path %s is not usable", res.LinkPath).
			WithDetail("source", res.SourcePath)
		return true
	}

	if _, err := g.fs.Stat(res.SourcePath); err != nil {
		g.logger.Debug().Err(err).Str("source", res.SourcePath).Msg("Source entity missing")
		g.out.Warning(fmt.Sprintf("%s does not exist", res.SourcePath))
		res.Action = types.ActionSkipped
		res.Err = errors.Wrapf(err, errors.ErrSourceEntityMissing, "%s does not exist", res.SourcePath).
			WithDetail("project", res.Project)
		return true
	}

	return false
}

// CreateOrReplace points linkPath at sourcePath. Whatever occupies linkPath
// is removed first and a "to be recreated" notice is emitted. A real
// directory is only removed when ReplaceDirs is set; otherwise a warning is
// emitted and a DIR_OCCUPIED error returned with ActionSkipped. Missing
// parent directories of linkPath are created.
func (g *Generator) CreateOrReplace(linkPath, sourcePath string) (types.LinkAction, error) {
	logger := logging.WithLink(g.logger, sourcePath, linkPath)

	info, err := g.fs.Lstat(linkPath)
	if err != nil && !os.IsNotExist(err) {
		return types.ActionFailed, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", linkPath).
			WithDetail("link", linkPath)
	}
	exists := err == nil

	if !exists {
		if g.params.DryRun {
			g.out.Notice(fmt.Sprintf("%s -> would be created", linkPath))
			return types.ActionWouldCreate, nil
		}
		if err := g.fs.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
			return types.ActionFailed, linkCreateError(err, linkPath, sourcePath)
		}
		if err := g.symlink(linkPath, sourcePath); err != nil {
			return types.ActionFailed, err
		}
		logger.Debug().Msg("Link created")
		return types.ActionCreated, nil
	}

	isDir := info.IsDir()
	if isDir && !g.params.ReplaceDirs {
		g.out.Warning(fmt.Sprintf("%s is a directory, use --replace-dirs to replace it", linkPath))
		return types.ActionSkipped, errors.Newf(errors.ErrDirOccupied, "%s is a directory", linkPath).
			WithDetail("link", linkPath)
	}

	if g.params.DryRun {
		g.out.Notice(fmt.Sprintf("%s -> would be recreated", linkPath))
		return types.ActionWouldRecreate, nil
	}

	g.out.Notice(fmt.Sprintf("%s -> to be recreated", linkPath))
	if isDir {
		err = g.fs.RemoveAll(linkPath)
	} else {
		err = g.fs.Remove(linkPath)
	}
	if err != nil {
		return types.ActionFailed, errors.Wrapf(err, errors.ErrLinkRemove, "cannot remove %s", linkPath).
			WithDetail("link", linkPath)
	}

	if err := g.symlink(linkPath, sourcePath); err != nil {
		return types.ActionFailed, err
	}
	logger.Debug().Bool("wasDir", isDir).Msg("Link recreated")
	return types.ActionRecreated, nil
}

func (g *Generator) symlink(linkPath, sourcePath string) error {
	if err := g.fs.Symlink(sourcePath, linkPath); err != nil {
		return linkCreateError(err, linkPath, sourcePath)
	}
	g.out.Success(fmt.Sprintf("%s -> OK", linkPath))
	return nil
}

func linkCreateError(err error, linkPath, sourcePath string) error {
	return errors.Wrapf(err, errors.ErrLinkCreate, "cannot link %s to %s", linkPath, sourcePath).
		WithDetail("link", linkPath).
		WithDetail("source", sourcePath)
}
