package config

import "os"

// Config holds runtime settings for the notekeeper CLI.
type Config struct {
	DatabaseDSN  string   `env:"DATABASE_DSN"`
	LogLevel     string   `env:"LOG_LEVEL"`
	MirrorSlices []string `env:"MIRROR" envSeparator:","`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "notes.db"
	c.LogLevel = "info"
	c.MirrorSlices = []string{"user", "notes"}
}

// LoadConfig builds a Config from defaults, then JSON, then the
// environment, then flags. Later sources take precedence.
func LoadConfig() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
