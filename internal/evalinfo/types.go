package evalinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	EnvRunsDir      = "SKILL_EVAL_RUNS_DIR"
	EnvScenariosDir = "SKILL_EVAL_SCENARIOS_DIR"

	DefaultRunsDir      = "runs"
	DefaultScenariosDir = "scenarios"
)

const (
	gradesFileName    = "grades.yaml"
	metadataFileName  = "metadata.yaml"
	skillSetsFileName = "skill-sets.yaml"
	scenarioFileName  = "scenario.md"

	costKey      = "total_cost_usd"
	skillSetsKey = "sets"

	descriptionMaxRunes = 60
	ellipsis            = "..."
)

// RunInfo summarizes one run directory.
//
// Display format: "2026-01-30-120000 | 3 scenario(s) | graded | $0.75".
type RunInfo struct {
	Path          string   `json:"path"`
	Name          string   `json:"name"`
	ScenarioCount int      `json:"scenarioCount"`
	Graded        bool     `json:"graded"`
	TotalCost     *float64 `json:"totalCostUsd,omitempty"`

	display string
}

// ScenarioInfo summarizes one scenario directory.
//
// Display format: "my-scenario | 2 skill set(s) | Description...".
type ScenarioInfo struct {
	Path          string `json:"path"`
	Name          string `json:"name"`
	SkillSetCount int    `json:"skillSetCount"`
	Description   string `json:"description,omitempty"`

	display string
}

func (r RunInfo) ID() string         { return r.Name }
func (r RunInfo) SourcePath() string { return r.Path }

// DisplayText returns the line built when the run was summarized.
func (r RunInfo) DisplayText() string {
	if r.display == "" {
		return formatRun(r)
	}
	return r.display
}

func (s ScenarioInfo) ID() string         { return s.Name }
func (s ScenarioInfo) SourcePath() string { return s.Path }

func (s ScenarioInfo) DisplayText() string {
	if s.display == "" {
		return formatScenario(s)
	}
	return s.display
}

func formatRun(r RunInfo) string {
	parts := []string{r.Name, fmt.Sprintf("%d scenario(s)", r.ScenarioCount)}
	if r.Graded {
		parts = append(parts, "graded")
	}
	if r.TotalCost != nil {
		parts = append(parts, fmt.Sprintf("$%.2f", *r.TotalCost))
	}
	return strings.Join(parts, " | ")
}

func formatScenario(s ScenarioInfo) string {
	parts := []string{s.Name, fmt.Sprintf("%d skill set(s)", s.SkillSetCount)}
	if s.Description != "" {
		parts = append(parts, s.Description)
	}
	return strings.Join(parts, " | ")
}

func itemName(path string) string {
	return filepath.Base(filepath.Clean(path))
}

// ResolveRunsDir picks the runs root: explicit override, then
// SKILL_EVAL_RUNS_DIR, then the configured value, then ./runs.
func ResolveRunsDir(override, configured string) string {
	return resolveDir(override, EnvRunsDir, configured, DefaultRunsDir)
}

// ResolveScenariosDir is ResolveRunsDir for the scenarios root.
func ResolveScenariosDir(override, configured string) string {
	return resolveDir(override, EnvScenariosDir, configured, DefaultScenariosDir)
}

func resolveDir(override, envKey, configured, def string) string {
	if v := strings.TrimSpace(override); v != "" {
		return filepath.Clean(os.ExpandEnv(v))
	}
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return filepath.Clean(os.ExpandEnv(v))
	}
	if v := strings.TrimSpace(configured); v != "" {
		return filepath.Clean(os.ExpandEnv(v))
	}
	return def
}
