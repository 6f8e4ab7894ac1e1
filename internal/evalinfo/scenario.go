package evalinfo

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// SummarizeScenario reads the scenario at path. Like SummarizeRun it
// always returns a usable record.
func SummarizeScenario(path string) (ScenarioInfo, error) {
	info := ScenarioInfo{Path: path, Name: itemName(path)}
	var errs []error

	count, err := readSkillSetCount(filepath.Join(path, skillSetsFileName))
	if err != nil {
		errs = append(errs, err)
	}
	info.SkillSetCount = count

	desc, err := readDescription(filepath.Join(path, scenarioFileName))
	if err != nil {
		errs = append(errs, err)
	}
	info.Description = desc

	info.display = formatScenario(info)
	return info, errors.Join(errs...)
}

// SummarizeScenarios summarizes every path, ordered by name.
func SummarizeScenarios(paths []string) ([]ScenarioInfo, error) {
	scenarios := make([]ScenarioInfo, 0, len(paths))
	var errs []error
	for _, p := range paths {
		info, err := SummarizeScenario(p)
		if err != nil {
			errs = append(errs, err)
		}
		scenarios = append(scenarios, info)
	}
	sort.SliceStable(scenarios, func(i, j int) bool {
		return scenarios[i].Name < scenarios[j].Name
	})
	return scenarios, errors.Join(errs...)
}

func readSkillSetCount(path string) (int, error) {
	data, err := readOptional(path)
	if err != nil || data == nil {
		return 0, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, malformed(path, err)
	}
	v, ok := doc[skillSetsKey]
	if !ok || v == nil {
		return 0, nil
	}
	sets, ok := v.([]any)
	if !ok {
		return 0, malformed(path, fmt.Errorf("%s is not a list", skillSetsKey))
	}
	return len(sets), nil
}

func readDescription(path string) (string, error) {
	data, err := readOptional(path)
	if err != nil || data == nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", malformed(path, errors.New("not valid UTF-8"))
	}
	return firstDescriptionLine(string(data)), nil
}

// firstDescriptionLine returns the first line that is neither blank nor a
// markdown heading, trimmed and shortened for display.
func firstDescriptionLine(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return truncateDescription(line)
	}
	return ""
}

func truncateDescription(s string) string {
	if utf8.RuneCountInString(s) <= descriptionMaxRunes {
		return s
	}
	runes := []rune(s)
	return string(runes[:descriptionMaxRunes]) + ellipsis
}
