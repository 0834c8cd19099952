package cmd

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vinlin24/rr-test-suite/sched/testgen"
)

// generatorDefaults is the structure of an optional YAML defaults file for
// the generate command. All fields are optional; unset fields keep the
// built-in defaults.
type generatorDefaults struct {
	Num          int    `yaml:"num"`
	ArrivalRange string `yaml:"arrival_range"`
	BurstRange   string `yaml:"burst_range"`
}

// loadGeneratorDefaults overlays a YAML defaults file onto base. Strict field
// checking: a typoed key must cause an error, not be silently ignored.
func loadGeneratorDefaults(path string, base testgen.Config) (testgen.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return testgen.Config{}, fmt.Errorf("reading defaults file %s: %w", path, err)
	}

	var defaults generatorDefaults
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&defaults); err != nil {
		return testgen.Config{}, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}

	cfg := base
	if defaults.Num != 0 {
		cfg.N = defaults.Num
	}
	if defaults.ArrivalRange != "" {
		r, err := testgen.ParseRange(defaults.ArrivalRange)
		if err != nil {
			return testgen.Config{}, fmt.Errorf("defaults file %s: arrival_range: %w", path, err)
		}
		cfg.Arrival = r
	}
	if defaults.BurstRange != "" {
		r, err := testgen.ParseRange(defaults.BurstRange)
		if err != nil {
			return testgen.Config{}, fmt.Errorf("defaults file %s: burst_range: %w", path, err)
		}
		cfg.Burst = r
	}
	return cfg, nil
}
