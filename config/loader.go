// Package config holds the generator's static configuration and the YAML
// loading helpers used to read it.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Validator is implemented by configuration types that check themselves after
// decoding.
type Validator interface {
	Validate() error
}

// LoadYAMLFromString decodes yamlContent into target and validates it when
// target implements Validator.
func LoadYAMLFromString[T any](yamlContent string, target *T) error {
	return decode([]byte(yamlContent), target)
}

func decode[T any](data []byte, target *T) error {
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("failed to parse YAML configuration: %w", err)
	}

	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return nil
}
