// Package config loads JSON service configuration from disk.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

var errInvalidConfigPtr = errors.New("config must be a non-nil pointer")

// Validator is implemented by config structs that can check themselves.
type Validator interface {
	Validate() error
}

// LoadAndValidate reads a JSON config file into cfg and runs its Validate
// hook if present.
func LoadAndValidate(path string, cfg interface{}) error {
	if cfg == nil {
		return errInvalidConfigPtr
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if v, ok := cfg.(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", path, err)
		}
	}

	return nil
}
