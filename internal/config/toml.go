// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Dataset DatasetConfig `toml:"dataset"`
	Report  ReportConfig  `toml:"report"`
}

// DatasetConfig maps dataset generation settings.
type DatasetConfig struct {
	Count *int    `toml:"count"`
	Seed  *int64  `toml:"seed"`
	DB    *string `toml:"db"`
}

// ReportConfig maps report output settings.
type ReportConfig struct {
	Width *int    `toml:"width"`
	Dates *string `toml:"dates"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
