package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional .toclint.yaml at the project root.
type Config struct {
	Files            []string `yaml:"files"`
	TOCHeading       string   `yaml:"toc-heading"`
	RequireFenceLang bool     `yaml:"require-fence-lang"`
	IgnoreAnchors    []string `yaml:"ignore-anchors"`
}

// FileName is the config file toclint looks for, walking up from cwd.
const FileName = ".toclint.yaml"

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads a YAML config file and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
