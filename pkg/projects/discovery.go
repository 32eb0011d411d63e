package projects

import (
	"io/fs"
	"sort"
	"strings"

	"github.com/arthur-debert/linkgen/pkg/errors"
	"github.com/arthur-debert/linkgen/pkg/logging"
	"github.com/arthur-debert/linkgen/pkg/types"
)

// IsWildcard reports whether the selection means "every project".
// Only an empty selection or a lone "*" does; a "*" next to other names
// is kept as a literal project name.
func IsWildcard(selection []string) bool {
	switch len(selection) {
	case 0:
		return true
	case 1:
		return selection[0] == types.WildcardProject
	default:
		return false
	}
}

// Enumerate returns the projects to process under source
func Enumerate(lister types.DirectoryLister, source string, selection []string) ([]string, error) {
	logger := logging.GetLogger("projects")

	if !IsWildcard(selection) {
		names := make([]string, len(selection))
		copy(names, selection)
		logger.Debug().Strs("projects", names).Msg("Using explicit project selection")
		return names, nil
	}

	entries, err := lister.ReadDir(source)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read templates root").
			WithDetail("path", source)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()

		if name == "." || name == ".." || strings.HasPrefix(name, ".") {
			logger.Trace().Str("name", name).Msg("Skipping hidden entry")
			continue
		}
		if entry.Type()&fs.ModeSymlink != 0 {
			logger.Trace().Str("name", name).Msg("Skipping symlinked entry")
			continue
		}
		if !entry.IsDir() {
			logger.Trace().Str("name", name).Msg("Skipping non-directory entry")
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)

	logger.Info().Int("count", len(names)).Msg("Found projects")
	return names, nil
}

// Label joins a selection for display, e.g. "linux && gnu"
func Label(selection []string) string {
	if len(selection) == 0 {
		return types.WildcardProject
	}
	return strings.Join(selection, " && ")
}
