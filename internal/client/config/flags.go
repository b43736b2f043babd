package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/flagx"
)

func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("notekeeper", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	mirror := fs.String("w", strings.Join(cfg.MirrorSlices, ","), "slices mirrored to storage")

	if err := fs.Parse(flagx.FilterArgs(args, []string{"-d", "-l", "-w"})); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg.MirrorSlices = splitList(*mirror)
	return nil
}

func splitList(s string) []string {
	out := []string{}
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
