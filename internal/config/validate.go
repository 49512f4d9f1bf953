package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

var validFamilies = map[string]bool{
	"api":      true,
	"response": true,
	"ws":       true,
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "table", "json":
	default:
		return fmt.Errorf("output: unknown format %q (want table or json)", c.Output.Format)
	}

	if !validFamilies[c.Decode.Family] {
		return fmt.Errorf("decode: unknown family %q (want api, response or ws)", c.Decode.Family)
	}

	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: unknown level %q", c.Logging.Level)
	}

	return nil
}
