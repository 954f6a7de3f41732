package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Scenario is a named sequence of runs. Each run is overlaid on
// DefaultConfig independently.
type Scenario struct {
	Name        string
	Description string
	Runs        []*Config
}

type rawScenario struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Runs        []yaml.Node `yaml:"runs"`
}

func ParseScenario(data []byte) (*Scenario, error) {
	var raw rawScenario
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scenario: %w", err)
	}
	if len(raw.Runs) == 0 {
		return nil, errors.New("scenario: no runs")
	}

	sc := &Scenario{
		Name:        raw.Name,
		Description: raw.Description,
		Runs:        make([]*Config, 0, len(raw.Runs)),
	}
	for i := range raw.Runs {
		cfg := DefaultConfig()
		if err := raw.Runs[i].Decode(cfg); err != nil {
			return nil, fmt.Errorf("scenario run %d: %w", i+1, err)
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("scenario run %d: %w", i+1, err)
		}
		sc.Runs = append(sc.Runs, cfg)
	}
	return sc, nil
}
