package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of .styleshift/config.yaml.
type ProjectConfig struct {
	Root              string   `yaml:"root"`
	IncludeExtensions []string `yaml:"include_extensions"`
	ExcludeDirNames   []string `yaml:"exclude_dir_names"`
	LogLevel          string   `yaml:"log_level"`
	LogFormat         string   `yaml:"log_format"`
	CallLogPath       string   `yaml:"call_log_path"`
}

// loadProjectConfig reads .styleshift/config.yaml from the current directory.
// Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(".styleshift/config.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveRoot returns the scan root to use, applying the fallback chain:
//  1. Explicit command-line argument
//  2. root from .styleshift/config.yaml
//  3. Current directory
func resolveRoot(arg string, cfg *ProjectConfig) string {
	if arg != "" {
		return arg
	}
	if cfg != nil && cfg.Root != "" {
		return cfg.Root
	}
	return "."
}
