package evalinfo

import (
	"fmt"
	"path/filepath"
	"sort"
)

// DiscoverRuns lists the run directories directly under runsDir.
func DiscoverRuns(runsDir string) ([]string, error) {
	return discoverDirs(runsDir, "runs")
}

// DiscoverScenarios lists the scenario directories directly under
// scenariosDir.
func DiscoverScenarios(scenariosDir string) ([]string, error) {
	return discoverDirs(scenariosDir, "scenarios")
}

func discoverDirs(root string, what string) ([]string, error) {
	if !isDir(root) {
		return nil, fmt.Errorf("%s dir not found: %s", what, root)
	}
	names, err := subdirs(root)
	if err != nil {
		return nil, fmt.Errorf("read %s dir: %w", what, err)
	}
	sort.Strings(names)
	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, filepath.Join(root, name))
	}
	return paths, nil
}
