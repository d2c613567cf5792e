package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Variables holds the tunable validation thresholds. Loaded from
// data/variables.yml.
type Variables struct {
	UsernameLenMin int `yaml:"username_len_min"`
	UsernameLenMax int `yaml:"username_len_max"`
}

type variablesFile struct {
	Variables Variables `yaml:"variables"`
}

// DefaultVariables returns the built-in thresholds.
func DefaultVariables() Variables {
	return Variables{UsernameLenMin: 3, UsernameLenMax: 20}
}

// LoadVariables parses a variables.yml file. A missing file falls back to
// the built-in defaults; a malformed file is an error.
func LoadVariables(path string) (Variables, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultVariables(), nil
		}
		return Variables{}, fmt.Errorf("read variables: %w", err)
	}
	var f variablesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Variables{}, fmt.Errorf("parse variables: %w", err)
	}
	v := f.Variables
	if v.UsernameLenMin <= 0 || v.UsernameLenMax < v.UsernameLenMin {
		return Variables{}, fmt.Errorf("invalid username length bounds: min=%d max=%d",
			v.UsernameLenMin, v.UsernameLenMax)
	}
	return v, nil
}
