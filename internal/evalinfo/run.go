package evalinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SummarizeRun reads the run at path. The returned RunInfo is always
// usable; a non-nil error lists the optional files that had to be skipped.
func SummarizeRun(path string) (RunInfo, error) {
	info := RunInfo{Path: path, Name: itemName(path)}
	var errs []error

	names, err := subdirs(path)
	if err != nil {
		errs = append(errs, unreadable(path, err))
	}
	info.ScenarioCount = len(names)
	info.Graded = exists(filepath.Join(path, gradesFileName))

	cost, costErrs := sumCosts(path)
	info.TotalCost = cost
	errs = append(errs, costErrs...)

	info.display = formatRun(info)
	return info, errors.Join(errs...)
}

// SummarizeRuns summarizes every path and orders the result by name,
// newest timestamped run first.
func SummarizeRuns(paths []string) ([]RunInfo, error) {
	runs := make([]RunInfo, 0, len(paths))
	var errs []error
	for _, p := range paths {
		info, err := SummarizeRun(p)
		if err != nil {
			errs = append(errs, err)
		}
		runs = append(runs, info)
	}
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Name > runs[j].Name
	})
	return runs, errors.Join(errs...)
}

// sumCosts adds up total_cost_usd across every metadata.yaml under root.
// It returns nil when no file carries a usable value.
func sumCosts(root string) (*float64, []error) {
	files, errs := collectMetadataFiles(root)
	var total float64
	found := false
	for _, file := range files {
		cost, ok, err := readCost(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !ok {
			continue
		}
		total += cost
		found = true
	}
	if !found {
		return nil, errs
	}
	return &total, errs
}

// collectMetadataFiles walks root recursively and returns all metadata.yaml
// paths in lexical order.
func collectMetadataFiles(root string) ([]string, []error) {
	var files []string
	var errs []error
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// The root itself is reported by the scenario count.
			if path != root {
				errs = append(errs, unreadable(path, err))
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if d.Name() == metadataFileName {
			files = append(files, path)
		}
		return nil
	})
	return files, errs
}

func readCost(path string) (float64, bool, error) {
	data, err := readOptional(path)
	if err != nil || data == nil {
		return 0, false, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, false, malformed(path, err)
	}
	v, ok := doc[costKey]
	if !ok || v == nil {
		return 0, false, nil
	}
	cost, ok := toFloat(v)
	if !ok {
		return 0, false, malformed(path, fmt.Errorf("%s is not a number: %v", costKey, v))
	}
	return cost, true, nil
}

func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
