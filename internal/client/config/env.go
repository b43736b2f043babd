package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "NOTEKEEPER_"

// parseEnv overlays cfg with NOTEKEEPER_* variables. Unset variables leave
// fields as they are.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("failed to parse env: %w", err)
	}
	return nil
}
