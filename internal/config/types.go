package config

const CurrentVersion = 1

// Config holds the persistent defaults for the selectors. Empty fields
// fall through to the environment or the built-in defaults.
type Config struct {
	Version       int    `json:"version"`
	RunsDir       string `json:"runsDir,omitempty"`
	ScenariosDir  string `json:"scenariosDir,omitempty"`
	RunTitle      string `json:"runTitle,omitempty"`
	ScenarioTitle string `json:"scenarioTitle,omitempty"`
}
