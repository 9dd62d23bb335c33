// Package config loads sortbench settings from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlsort/logutil"
	"github.com/katalvlaran/lvlsort/sorting"
)

// ErrUnsupportedFormat is returned for config files that are neither YAML nor TOML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// SearchPaths are tried in order when Load is called with an empty path.
var SearchPaths = []string{"configs/sortbench.yaml", "sortbench.yaml", "sortbench.toml"}

type Config struct {
	Dataset    DatasetConfig     `yaml:"dataset" toml:"dataset"`
	Algorithms []string          `yaml:"algorithms" toml:"algorithms"`
	Quick      QuickConfig       `yaml:"quick" toml:"quick"`
	Log        logutil.LogConfig `yaml:"log" toml:"log"`
	History    HistoryConfig     `yaml:"history" toml:"history"`
}

type DatasetConfig struct {
	CSV   []string `yaml:"csv" toml:"csv"`     // CSV files, read before Zip
	Zip   []string `yaml:"zip" toml:"zip"`     // ZIP archives of CSV files
	Field string   `yaml:"field" toml:"field"` // sort key column
	Limit int      `yaml:"limit" toml:"limit"` // max rows read across all files (0 = all)
	Comma string   `yaml:"comma" toml:"comma"` // CSV separator, one character

	Generate GenerateConfig `yaml:"generate" toml:"generate"` // used when no file is given
}

// Files returns the CSV files followed by the ZIP archives.
func (d DatasetConfig) Files() []string {
	out := make([]string, 0, len(d.CSV)+len(d.Zip))
	out = append(out, d.CSV...)
	return append(out, d.Zip...)
}

type GenerateConfig struct {
	Size       int     `yaml:"size" toml:"size"`
	Shape      string  `yaml:"shape" toml:"shape"`
	Seed       int64   `yaml:"seed" toml:"seed"`
	AbsentRate float64 `yaml:"absent_rate" toml:"absent_rate"`
}

type QuickConfig struct {
	MaxDepth int `yaml:"max_depth" toml:"max_depth"`
}

type HistoryConfig struct {
	Path string `yaml:"path" toml:"path"` // SQLite file; empty disables history
}

// Default returns the built-in configuration: a 1000-record random dataset
// sorted by "value" with every algorithm.
func Default() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Field: "value",
			Comma: ",",
			Generate: GenerateConfig{
				Size:  1000,
				Shape: "random",
				Seed:  1,
			},
		},
		Algorithms: sorting.Names(),
		Quick:      QuickConfig{MaxDepth: sorting.DefaultMaxDepth},
		Log:        logutil.DefaultConfig(),
	}
}

// Load reads configPath over Default(). With an empty path the first existing
// entry of SearchPaths is used; if none exists the defaults are returned.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		for _, p := range SearchPaths {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
		if configPath == "" {
			applyDefaults(cfg)
			return cfg, nil // no file found: use defaults
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		_, err = toml.Decode(string(data), cfg)
	default:
		return cfg, fmt.Errorf("%w: %s", ErrUnsupportedFormat, configPath)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", configPath, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// applyDefaults repairs zero or out-of-range values left by a partial file.
// quick.max_depth is left alone: 0 is a valid ceiling and a negative value is
// rejected by bench.NewRunner.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Dataset.Field == "" {
		cfg.Dataset.Field = def.Dataset.Field
	}
	if cfg.Dataset.Comma == "" {
		cfg.Dataset.Comma = def.Dataset.Comma
	}
	if cfg.Dataset.Limit < 0 {
		cfg.Dataset.Limit = 0
	}
	if cfg.Dataset.Generate.Size <= 0 {
		cfg.Dataset.Generate.Size = def.Dataset.Generate.Size
	}
	if cfg.Dataset.Generate.Shape == "" {
		cfg.Dataset.Generate.Shape = def.Dataset.Generate.Shape
	}
	if cfg.Dataset.Generate.AbsentRate < 0 || cfg.Dataset.Generate.AbsentRate > 1 {
		cfg.Dataset.Generate.AbsentRate = 0
	}
	if len(cfg.Algorithms) == 0 {
		cfg.Algorithms = def.Algorithms
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = def.Log.Format
	}
}
