package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
)

// jsonConfig is the on-disk shape. Pointer and nil-slice fields tell
// "absent" apart from "empty" so the file only overrides what it names.
type jsonConfig struct {
	DatabaseDSN *string  `json:"database_dsn"`
	LogLevel    *string  `json:"log_level"`
	Mirror      []string `json:"mirror"`
}

func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.Mirror != nil {
		cfg.MirrorSlices = jc.Mirror
	}
	return nil
}
