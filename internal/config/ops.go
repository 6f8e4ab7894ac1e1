package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownKey is returned by Get and Set for keys that are not settable.
var ErrUnknownKey = errors.New("unknown config key")

const (
	KeyRunsDir       = "runs-dir"
	KeyScenariosDir  = "scenarios-dir"
	KeyRunTitle      = "run-title"
	KeyScenarioTitle = "scenario-title"
)

func (c *Config) field(key string) (*string, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case KeyRunsDir:
		return &c.RunsDir, nil
	case KeyScenariosDir:
		return &c.ScenariosDir, nil
	case KeyRunTitle:
		return &c.RunTitle, nil
	case KeyScenarioTitle:
		return &c.ScenarioTitle, nil
	}
	return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownKey, key, strings.Join(Keys(), ", "))
}

func (c Config) Get(key string) (string, error) {
	p, err := c.field(key)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// Set stores value under key. An empty value clears the key.
func (c *Config) Set(key, value string) error {
	p, err := c.field(key)
	if err != nil {
		return err
	}
	*p = strings.TrimSpace(value)
	return nil
}

// Keys lists the settable keys in sorted order.
func Keys() []string {
	keys := []string{KeyRunsDir, KeyScenariosDir, KeyRunTitle, KeyScenarioTitle}
	sort.Strings(keys)
	return keys
}
