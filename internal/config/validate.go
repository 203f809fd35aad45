package config

import (
	"fmt"
	"strings"

	"toclint/internal/toc"
)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	setDefaults(cfg)

	seen := make(map[string]bool)
	for i, f := range cfg.Files {
		if strings.TrimSpace(f) == "" {
			return fmt.Errorf("config: files: entry %d is empty", i+1)
		}
		if seen[f] {
			return fmt.Errorf("config: files: duplicate entry %q", f)
		}
		seen[f] = true
	}

	if strings.TrimSpace(cfg.TOCHeading) == "" {
		return fmt.Errorf("config: 'toc-heading' must not be blank")
	}

	for i, a := range cfg.IgnoreAnchors {
		a = strings.TrimPrefix(a, "#")
		if a == "" {
			return fmt.Errorf("config: ignore-anchors: entry %d is empty", i+1)
		}
		cfg.IgnoreAnchors[i] = a
	}

	return nil
}

func setDefaults(cfg *Config) {
	if cfg.TOCHeading == "" {
		cfg.TOCHeading = toc.DefaultHeading
	}
}
