package config

import (
	"errors"
	"fmt"
	"strings"
)

// Default values applied when neither the config file nor the environment
// sets a key.
var DefaultExtensions = []string{".java"}

// Config holds tool settings loaded from file, environment, and defaults.
type Config struct {
	// Extensions lists the file extensions treated as Java sources.
	Extensions []string `mapstructure:"extensions"`
	// NoColor disables colored status output.
	NoColor bool `mapstructure:"no_color"`
}

// Validate checks the loaded configuration for consistency.
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return errors.New("at least one file extension is required")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("extension %q must start with a dot", ext)
		}
	}
	return nil
}
